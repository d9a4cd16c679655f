package python

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/pyreqs/pkg/errors"
)

// Pyproject holds the parts of a Poetry pyproject.toml needed to produce a
// requirements file. Both mappings keep the order they have in the document.
type Pyproject struct {
	Dependencies []Dependency // [tool.poetry.dependencies]
	Extras       []ExtraGroup // [tool.poetry.extras]

	specs map[string]Specifier
}

// Dependency is one entry of [tool.poetry.dependencies].
type Dependency struct {
	Name string
	Spec Specifier
}

// ExtraGroup is one entry of [tool.poetry.extras]: a named optional group
// listing dependency names.
type ExtraGroup struct {
	Name    string
	Members []string
}

// Lookup returns the specifier of the dependency called name.
func (p *Pyproject) Lookup(name string) (Specifier, bool) {
	s, ok := p.specs[name]
	return s, ok
}

type pyprojectDoc struct {
	Tool struct {
		Poetry struct {
			Dependencies any `toml:"dependencies"`
			Extras       any `toml:"extras"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

var (
	dependenciesPath = []string{"tool", "poetry", "dependencies"}
	extrasPath       = []string{"tool", "poetry", "extras"}
)

// ParsePyproject decodes a pyproject.toml document.
//
// It fails with INVALID_MANIFEST if the text is not valid TOML, if the
// dependencies or extras are not tables, or if an extras group is not a list
// of names, and with MISSING_KEY if the document has no
// [tool.poetry.dependencies] table. A document without extras has none.
func ParsePyproject(text string) (*Pyproject, error) {
	var doc pyprojectDoc
	md, err := toml.Decode(text, &doc)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidManifest, err, "decode pyproject.toml")
	}
	if !md.IsDefined(dependenciesPath...) {
		return nil, errs.New(errs.ErrCodeMissingKey, "pyproject.toml has no [tool.poetry.dependencies] table")
	}

	dependencies, err := table(doc.Tool.Poetry.Dependencies, dependenciesPath)
	if err != nil {
		return nil, err
	}
	extras, err := table(doc.Tool.Poetry.Extras, extrasPath)
	if err != nil {
		return nil, err
	}

	p := &Pyproject{specs: make(map[string]Specifier, len(dependencies))}

	for _, name := range keyOrder(md, dependenciesPath, dependencies) {
		spec := Specifier{Value: dependencies[name]}
		p.specs[name] = spec
		p.Dependencies = append(p.Dependencies, Dependency{Name: name, Spec: spec})
	}

	for _, name := range keyOrder(md, extrasPath, extras) {
		members, err := stringList(extras[name])
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidManifest, err, "extras group %q", name)
		}
		p.Extras = append(p.Extras, ExtraGroup{Name: name, Members: members})
	}

	return p, nil
}

// keyOrder returns the keys of table in the order they first appear in the
// document below path. Keys the metadata does not account for are appended
// sorted.
func keyOrder[V any](md toml.MetaData, path []string, table map[string]V) []string {
	seen := make(map[string]bool, len(table))
	order := make([]string, 0, len(table))
	for _, key := range md.Keys() {
		if len(key) <= len(path) || !slices.Equal([]string(key[:len(path)]), path) {
			continue
		}
		name := key[len(path)]
		if _, ok := table[name]; ok && !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}

	var rest []string
	for name := range table {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

// table returns v as a TOML table. An absent value is an empty table.
func table(v any, path []string) (map[string]any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return t, nil
	default:
		return nil, errs.New(errs.ErrCodeInvalidManifest, "[%s] must be a table, got %T", strings.Join(path, "."), v)
	}
}

func stringList(v any) ([]string, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list of dependency names, got %T", v)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("expected a dependency name, got %T", item)
		}
		out = append(out, s)
	}
	return out, nil
}
