package python

import (
	"errors"
	"testing"
)

func TestSpecifierConstraint(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "^1.0", ">=1.0,<2.0.0"},
		{"table with version", map[string]any{"version": "^1.0", "extras": []any{"all"}}, ">=1.0,<2.0.0"},
		{"table with markers", map[string]any{"version": "1.2.3", "markers": "sys_platform == 'linux'"}, "==1.2.3"},
		{"table without version", map[string]any{"git": "https://github.com/o/r.git"}, ""},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Specifier{Value: tt.value}.Constraint()
			if err != nil {
				t.Fatalf("Constraint() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Constraint() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpecifierConstraintUnsupported(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"integer", int64(3)},
		{"non-string version", map[string]any{"version": int64(1)}},
		{"multiple constraints", []map[string]any{
			{"version": "^1.0", "python": "<3.8"},
			{"version": "^2.0", "python": ">=3.8"},
		}},
		{"bad version", "^1.0.0-rc1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Specifier{Value: tt.value}.Constraint()
			if !errors.Is(err, ErrUnsupportedVersion) {
				t.Errorf("Constraint() error = %v, want ErrUnsupportedVersion", err)
			}
		})
	}
}

func TestSpecifierEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"empty table", map[string]any{}, true},
		{"version", "1.0", false},
		{"git table", map[string]any{"git": "https://github.com/o/r.git"}, false},
		{"array", []any{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Specifier{Value: tt.value}).Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}
