// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// TestMain lets testscript run the test binary as git-superproject.
func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"git-superproject": Execute,
	})
}

func TestScripts(t *testing.T) {
	t.Parallel()

	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
		Setup: func(env *testscript.Env) error {
			env.Setenv("XDG_CONFIG_HOME", env.WorkDir+"/config")
			env.Setenv("SUPERPROJECT_STORE", "file")
			env.Setenv("SUPERPROJECT_REGISTRY_FILE", env.WorkDir+"/multi/superprojects.config")
			return nil
		},
	})
}
