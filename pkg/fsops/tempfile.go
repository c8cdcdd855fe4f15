package fsops

import (
	"fmt"
	"os"
)

// TempFile is a scoped temporary file created by WithTemporaryFile.
type TempFile struct {
	*os.File
}

// Path returns the temporary file's location on disk.
func (t *TempFile) Path() string { return t.Name() }

// WithTemporaryFile creates a uniquely named temporary file with the
// given suffix and passes it to fn. The file is closed on every exit
// path, including when fn fails; unless keep is true it is also removed.
// With keep, the file survives the scope and the caller reaches it again
// by path.
func WithTemporaryFile(suffix string, keep bool, fn func(*TempFile) error) (err error) {
	f, createErr := os.CreateTemp("", "fsops-*"+suffix)
	if createErr != nil {
		return fmt.Errorf("create temp file: %w", createErr)
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close temp file: %w", closeErr)
		}
		if !keep {
			if removeErr := os.Remove(f.Name()); removeErr != nil && err == nil {
				err = fmt.Errorf("remove temp file: %w", removeErr)
			}
		}
	}()

	return fn(&TempFile{File: f})
}
