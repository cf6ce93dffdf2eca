// Package naming handles the field-name schemes used to pull sub-scores out
// of key/value records.
package naming

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Field identifies one of the eight sub-scores in a record.
type Field string

const (
	FieldVisual       Field = "visual"
	FieldBrainstem    Field = "brainstem"
	FieldPyramidal    Field = "pyramidal"
	FieldCerebellar   Field = "cerebellar"
	FieldSensory      Field = "sensory"
	FieldBowelBladder Field = "bowel_bladder"
	FieldCerebral     Field = "cerebral"
	FieldAmbulation   Field = "ambulation"
)

// Fields lists every field in canonical order.
var Fields = []Field{
	FieldVisual, FieldBrainstem, FieldPyramidal, FieldCerebellar,
	FieldSensory, FieldBowelBladder, FieldCerebral, FieldAmbulation,
}

func (f Field) Valid() bool {
	switch f {
	case FieldVisual, FieldBrainstem, FieldPyramidal, FieldCerebellar,
		FieldSensory, FieldBowelBladder, FieldCerebral, FieldAmbulation:
		return true
	}
	return false
}

// Scheme maps each field to the record key that carries it. Schemes are
// read-only configuration: built-in schemes are embedded, custom ones load
// from a caller-supplied YAML file.
type Scheme struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Fields      map[Field]string `yaml:"fields"`
}

// Key returns the record key for a field, with the longitudinal suffix
// appended when one is set.
func (s *Scheme) Key(f Field, suffix string) string {
	return s.Fields[f] + suffix
}

// LoadBuiltin loads a built-in naming scheme by name.
func LoadBuiltin(name string) (*Scheme, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("naming.LoadBuiltin: unknown scheme %q: %w", name, err)
	}
	var s Scheme
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("naming.LoadBuiltin: parse %q: %w", name, err)
	}
	return &s, nil
}

// LoadFile loads a custom naming scheme from a YAML file. The result is not
// validated; callers should run Validate before use.
func LoadFile(path string) (*Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("naming.LoadFile: %w", err)
	}
	var s Scheme
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("naming.LoadFile: parse %s: %w", path, err)
	}
	return &s, nil
}

// List returns the names of all built-in naming schemes.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	return names, nil
}
