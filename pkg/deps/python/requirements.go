package python

import (
	"bufio"
	"io"
	"os"

	"github.com/matzehuels/pyreqs/pkg/deps"
	errs "github.com/matzehuels/pyreqs/pkg/errors"
)

// StdoutPath is the output path that writes requirements to standard output.
const StdoutPath = "-"

// WriteRequirements writes one "<name><constraint>" line per requirement.
func WriteRequirements(w io.Writer, reqs []deps.Requirement) error {
	bw := bufio.NewWriter(w)
	for _, r := range reqs {
		if _, err := bw.WriteString(r.String() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteRequirementsFile writes reqs to path, replacing any existing file.
// The file is closed on every return path.
func WriteRequirementsFile(path string, reqs []deps.Requirement) (err error) {
	if path == StdoutPath {
		if err := WriteRequirements(os.Stdout, reqs); err != nil {
			return errs.Wrap(errs.ErrCodeWrite, err, "write stdout")
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return errs.Wrap(errs.ErrCodeWrite, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errs.Wrap(errs.ErrCodeWrite, cerr, "close %s", path)
		}
	}()

	if err := WriteRequirements(f, reqs); err != nil {
		return errs.Wrap(errs.ErrCodeWrite, err, "write %s", path)
	}
	return nil
}
