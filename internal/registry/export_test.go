// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"context"
	"encoding/json"
	"slices"
	"testing"
)

func TestToJSON(t *testing.T) {
	t.Parallel()

	r := mustParse(t,
		"superproject.x.repo=c/d",
		"superproject.x.repo=a/b",
		"superproject.y.repo=e/f",
		"superproject.y.repo=e/f",
	)
	r.Remove("gone", "a/b")

	data, err := r.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	if got, want := string(data), `{"x":["a/b","c/d"],"y":["e/f"]}`; got != want {
		t.Errorf("ToJSON() = %s, want %s", got, want)
	}

	var decoded map[string][]string
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("ToJSON() produced invalid JSON: %v", err)
	}
	for name, repos := range decoded {
		if want := r.List(name); !slices.Equal(repos, want) {
			t.Errorf("exported %s = %v, want List() = %v", name, repos, want)
		}
	}
	if _, ok := decoded["gone"]; ok {
		t.Error("empty superproject exported")
	}
}

func TestToJSON_Empty(t *testing.T) {
	t.Parallel()

	data, err := New().ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("ToJSON() = %s, want {}", data)
	}
}

// An emptied superproject has no key left to serialize, so it is absent from
// the export even though Names still reports it until the next load.
func TestToJSON_OmitsEmptiedSuperproject(t *testing.T) {
	t.Parallel()

	r := mustParse(t, "superproject.x.repo=a/b", "superproject.y.repo=c/d")
	r.Remove("x", "a/b")

	if got := r.List("x"); got == nil || len(got) != 0 {
		t.Errorf("List(x) = %#v, want empty non-nil", got)
	}
	if !slices.Contains(r.Names(), "x") {
		t.Errorf("Names() = %v, want x still present", r.Names())
	}

	data, err := r.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	if got, want := string(data), `{"y":["c/d"]}`; got != want {
		t.Errorf("ToJSON() = %s, want %s", got, want)
	}

	reloaded := &memStore{}
	if err := r.Serialize(context.Background(), reloaded); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	again, err := Load(context.Background(), reloaded)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if again.Has("x") {
		t.Error("emptied superproject survived serialization")
	}
}
