package python

import "fmt"

// Specifier is the value of a [tool.poetry.dependencies] entry as decoded
// from TOML: a constraint string, or a table whose optional "version" key
// holds the constraint. Other table keys (extras, markers, python, git,
// path, optional) do not affect the requirement line.
type Specifier struct {
	Value any
}

// Version returns the constraint string carried by s. A table without a
// "version" key (git, path or url dependencies) has an empty version, which
// converts to no constraint at all. Values of any other shape are
// unsupported.
func (s Specifier) Version() (string, error) {
	switch v := s.Value.(type) {
	case string:
		return v, nil
	case map[string]any:
		raw, ok := v["version"]
		if !ok {
			return "", nil
		}
		str, ok := raw.(string)
		if !ok {
			return "", unsupported(fmt.Sprint(raw), fmt.Sprintf("version must be a string, got %T", raw))
		}
		return str, nil
	default:
		return "", unsupported(fmt.Sprint(v), fmt.Sprintf("dependency specifier of type %T", v))
	}
}

// Empty reports whether s carries nothing: a missing value, an empty string
// or an empty table.
func (s Specifier) Empty() bool {
	switch v := s.Value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}

// Constraint converts the version of s with [ConvertConstraint].
func (s Specifier) Constraint() (string, error) {
	v, err := s.Version()
	if err != nil {
		return "", err
	}
	return ConvertConstraint(v)
}
