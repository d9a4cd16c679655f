package python

import (
	"errors"
	"strconv"
	"strings"

	errs "github.com/matzehuels/pyreqs/pkg/errors"
)

// ErrUnsupportedVersion is returned when a constraint cannot be converted,
// e.g. a caret version with a pre-release suffix ("^1.0.0-beta") or a
// dependency declared as an array of constraint tables.
var ErrUnsupportedVersion = errors.New("unsupported version")

// normalizedOps are the PEP 440 operators that mark a constraint as already
// in requirements-file form.
var normalizedOps = []string{">=", "<=", ">", "<", "!=", "==", "~="}

// ConvertConstraint translates a Poetry version constraint into a PEP 440
// specifier. Rules are tried in order and the first match wins:
//
//	^X.Y.Z   caret     >=X.Y.Z,<(X+1).0.0  (>=0.Y.Z,<0.(Y+1).0 / >=0.0.Z,<0.0.(Z+1))
//	~X.Y.Z   tilde     >=X.Y.Z,<X.(Y+1).0  (~X.Y: >=X.Y,<X.(Y+1); ~X: >=X,<(X+1).0.0)
//	X.*      wildcard  >=X.0.0,<(X+1).0.0  (X.Y.*: >=X.Y.0,<X.(Y+1).0; other: >=0.0.0)
//	a,b      compound  each clause converted, order kept
//	>=1,<2   operator  unchanged
//	1.2.3    exact     ==1.2.3
//
// Versions inside caret, tilde and wildcard constraints must be made of
// non-negative integer segments; anything else yields ErrUnsupportedVersion.
// An empty constraint converts to the empty string rather than a bare "==",
// so a dependency without a version is written as its name alone. The
// conversion is idempotent: converting an already converted constraint
// returns it as is.
func ConvertConstraint(version string) (string, error) {
	v := strings.TrimSpace(version)
	switch {
	case v == "":
		return "", nil
	case strings.HasPrefix(v, "^"):
		return convertCaret(strings.TrimSpace(v[1:]))
	case strings.HasPrefix(v, "~") && !strings.HasPrefix(v, "~="):
		return convertTilde(strings.TrimSpace(v[1:]))
	case strings.Contains(v, "*"):
		return convertWildcard(v)
	case strings.Contains(v, ","):
		return convertCompound(v)
	case isNormalized(v):
		return v, nil
	default:
		return "==" + v, nil
	}
}

func convertCaret(version string) (string, error) {
	segs, err := segments(version)
	if err != nil {
		return "", err
	}
	switch {
	case segs[0] != 0:
		return ">=" + version + ",<" + itoa(segs[0]+1) + ".0.0", nil
	case len(segs) < 2:
		return "", unsupported(version, "caret on major version 0 needs a minor version")
	case segs[1] != 0:
		return ">=" + version + ",<0." + itoa(segs[1]+1) + ".0", nil
	case len(segs) < 3:
		return "", unsupported(version, "caret on 0.0 needs a patch version")
	default:
		return ">=" + version + ",<0.0." + itoa(segs[2]+1), nil
	}
}

func convertTilde(version string) (string, error) {
	segs, err := segments(version)
	if err != nil {
		return "", err
	}
	switch len(segs) {
	case 3:
		return ">=" + version + ",<" + itoa(segs[0]) + "." + itoa(segs[1]+1) + ".0", nil
	case 2:
		return ">=" + version + ",<" + itoa(segs[0]) + "." + itoa(segs[1]+1), nil
	default:
		return ">=" + version + ",<" + itoa(segs[0]+1) + ".0.0", nil
	}
}

func convertWildcard(version string) (string, error) {
	parts := strings.Split(version, ".")
	switch len(parts) {
	case 2, 3:
		last := len(parts) - 1
		if parts[last] != "*" {
			return "", unsupported(version, "wildcard must be the last segment")
		}
		segs, err := segments(strings.Join(parts[:last], "."))
		if err != nil {
			return "", err
		}
		if len(segs) == 1 {
			return ">=" + itoa(segs[0]) + ".0.0,<" + itoa(segs[0]+1) + ".0.0", nil
		}
		return ">=" + itoa(segs[0]) + "." + itoa(segs[1]) + ".0,<" + itoa(segs[0]) + "." + itoa(segs[1]+1) + ".0", nil
	default:
		return ">=0.0.0", nil
	}
}

func convertCompound(version string) (string, error) {
	clauses := strings.Split(version, ",")
	out := make([]string, len(clauses))
	for i, clause := range clauses {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			return "", unsupported(version, "empty clause")
		}
		c, err := ConvertConstraint(clause)
		if err != nil {
			return "", err
		}
		out[i] = c
	}
	return strings.Join(out, ","), nil
}

func isNormalized(version string) bool {
	for _, op := range normalizedOps {
		if strings.Contains(version, op) {
			return true
		}
	}
	return false
}

// segments parses a dotted version into integers. Every segment must be a
// plain decimal number.
func segments(version string) ([]uint64, error) {
	parts := strings.Split(version, ".")
	segs := make([]uint64, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil, unsupported(version, "segment "+strconv.Quote(p)+" is not a non-negative integer")
		}
		segs[i] = n
	}
	return segs, nil
}

func itoa(n uint64) string { return strconv.FormatUint(n, 10) }

func unsupported(version, reason string) error {
	return errs.Wrap(errs.ErrCodeUnsupportedVersion, ErrUnsupportedVersion, "%q: %s", version, reason)
}
