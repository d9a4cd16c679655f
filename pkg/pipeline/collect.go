package pipeline

import (
	"fmt"

	"github.com/matzehuels/pyreqs/pkg/deps"
	"github.com/matzehuels/pyreqs/pkg/deps/python"
	errs "github.com/matzehuels/pyreqs/pkg/errors"
)

// Collected is the outcome of turning a manifest into requirements.
type Collected struct {
	Requirements deps.RequirementSet
	Excluded     []string
	FromExtras   int
	Unresolved   []string
}

// Collect converts the dependencies of p into requirements.
//
// Main-table dependencies come first, in manifest order, minus the runtime
// entry and excluded platform packages. Then every extras member not yet
// recorded is looked up in the main table and added; members that are
// missing or have an empty specifier are skipped.
func Collect(p *python.Pyproject) (*Collected, error) {
	c := &Collected{}

	for _, d := range p.Dependencies {
		if python.Excluded(d.Name) {
			c.Excluded = append(c.Excluded, d.Name)
			continue
		}
		req, err := requirement(d.Name, d.Spec)
		if err != nil {
			return nil, err
		}
		c.Requirements.Add(req)
	}

	for _, group := range p.Extras {
		for _, name := range group.Members {
			if c.Requirements.Has(name) {
				continue
			}
			spec, ok := p.Lookup(name)
			if !ok || spec.Empty() {
				c.Unresolved = append(c.Unresolved, name)
				continue
			}
			req, err := requirement(name, spec)
			if err != nil {
				return nil, fmt.Errorf("extras group %s: %w", group.Name, err)
			}
			c.Requirements.Add(req)
			c.FromExtras++
		}
	}

	return c, nil
}

func requirement(name string, spec python.Specifier) (deps.Requirement, error) {
	if err := errs.ValidateRequirementName(name); err != nil {
		return deps.Requirement{}, err
	}
	constraint, err := spec.Constraint()
	if err != nil {
		return deps.Requirement{}, fmt.Errorf("dependency %s: %w", name, err)
	}
	return deps.Requirement{Name: name, Constraint: constraint}, nil
}
