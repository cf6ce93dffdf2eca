package naming

import "fmt"

// ValidationError describes a single problem with a scheme definition.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks that the scheme maps every field to a distinct, non-empty
// record key and carries no unknown fields.
func (s *Scheme) Validate() []ValidationError {
	var errs []ValidationError

	if s.Name == "" {
		errs = append(errs, ValidationError{"name", "required"})
	}

	seen := make(map[string]Field, len(Fields))
	for _, f := range Fields {
		key, ok := s.Fields[f]
		if !ok || key == "" {
			errs = append(errs, ValidationError{fmt.Sprintf("fields.%s", f), "required"})
			continue
		}
		if prev, dup := seen[key]; dup {
			errs = append(errs, ValidationError{
				fmt.Sprintf("fields.%s", f),
				fmt.Sprintf("record key %q already used by %s", key, prev),
			})
			continue
		}
		seen[key] = f
	}

	for f := range s.Fields {
		if !f.Valid() {
			errs = append(errs, ValidationError{fmt.Sprintf("fields.%s", f), "unknown field"})
		}
	}

	return errs
}
