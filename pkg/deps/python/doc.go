// Package python converts Poetry manifests into pip requirements.
//
// # Parsing
//
// [ParsePyproject] reads the [tool.poetry.dependencies] and
// [tool.poetry.extras] tables of a pyproject.toml, keeping document order.
//
// # Constraints
//
// [ConvertConstraint] rewrites Poetry's caret (^), tilde (~) and wildcard
// (*) constraints as PEP 440 ranges, leaves operator constraints alone and
// pins bare versions with ==:
//
//	^1.4.2   ->  >=1.4.2,<2.0.0
//	^0.2.3   ->  >=0.2.3,<0.3.0
//	~1.2.3   ->  >=1.2.3,<1.3.0
//	1.*      ->  >=1.0.0,<2.0.0
//	1.2.3    ->  ==1.2.3
//
// Pre-release and other non-numeric segments inside caret, tilde and
// wildcard constraints are rejected with [ErrUnsupportedVersion].
//
// # Writing
//
// [WriteRequirements] and [WriteRequirementsFile] emit one
// "<name><constraint>" line per requirement.
package python
