// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

const (
	// FormatJSON encodes the export as a JSON object of arrays.
	FormatJSON ExportFormat = "json"
	// FormatYAML encodes the export as a YAML mapping of sequences.
	FormatYAML ExportFormat = "yaml"
	// FormatTOML encodes the export as TOML arrays keyed by name.
	FormatTOML ExportFormat = "toml"
	// FormatConfig writes superproject.<name>.repo=<repo> lines, the store's list format.
	FormatConfig ExportFormat = "config"
)

type (
	// ExportFormat selects the encoding used by Encode.
	ExportFormat string

	// lineAppender is an Appender writing key=value lines to a writer.
	lineAppender struct {
		w io.Writer
	}
)

// ExportFormats lists the formats accepted by Encode.
func ExportFormats() []ExportFormat {
	return []ExportFormat{FormatJSON, FormatYAML, FormatTOML, FormatConfig}
}

// String returns the string representation of the ExportFormat.
func (f ExportFormat) String() string { return string(f) }

// Export returns a snapshot of the registry: every superproject with at least
// one repository, mapped to its sorted repositories.
func (r *Registry) Export() map[string][]string {
	out := make(map[string][]string, len(r.superprojects))
	for name, repos := range r.superprojects {
		if len(repos) == 0 {
			continue
		}
		out[string(name)] = repos.Sorted()
	}
	return out
}

// exportOf restricts Export to names. Unknown or empty names map to an empty array.
func (r *Registry) exportOf(names []string) map[string][]string {
	if len(names) == 0 {
		return r.Export()
	}
	out := make(map[string][]string, len(names))
	for _, name := range names {
		out[name] = r.List(name)
	}
	return out
}

// ToJSON encodes Export as {"<name>": ["<owner/repo>", ...]}.
func (r *Registry) ToJSON() ([]byte, error) {
	return json.Marshal(r.Export())
}

// Encode writes the superprojects in names (all when empty) to w in format.
func (r *Registry) Encode(ctx context.Context, w io.Writer, format ExportFormat, names ...string) error {
	switch format {
	case FormatJSON:
		var (
			data []byte
			err  error
		)
		if len(names) == 0 {
			data, err = r.ToJSON()
		} else {
			data, err = json.Marshal(r.exportOf(names))
		}
		if err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case FormatYAML:
		data, err := yaml.Marshal(r.exportOf(names))
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(r.exportOf(names)); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}
		_, err := buf.WriteTo(w)
		return err
	case FormatConfig:
		return r.Serialize(ctx, lineAppender{w: w}, names...)
	default:
		return fmt.Errorf("unknown export format %q (valid: json, yaml, toml, config)", format)
	}
}

// Append implements Appender.
func (a lineAppender) Append(_ context.Context, key, value string) error {
	_, err := fmt.Fprintf(a.w, "%s=%s\n", key, value)
	return err
}
