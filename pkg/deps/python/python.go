package python

import "strings"

// RuntimeDependency is the [tool.poetry.dependencies] entry that constrains
// the interpreter rather than naming a distribution.
const RuntimeDependency = "python"

// ExcludedNameTokens lists substrings that drop a dependency from the
// requirements file. pywin32 only installs on Windows.
var ExcludedNameTokens = []string{"pywin32"}

// Excluded reports whether the main-table dependency name is left out of
// the requirements file.
func Excluded(name string) bool {
	if name == RuntimeDependency {
		return true
	}
	for _, tok := range ExcludedNameTokens {
		if strings.Contains(name, tok) {
			return true
		}
	}
	return false
}
