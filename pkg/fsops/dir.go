package fsops

import (
	"os"

	"github.com/fsops-project/fsops/pkg/fserr"
)

// MakeDirectory creates path and any missing ancestors. Calling it on an
// existing directory is a no-op.
func MakeDirectory(path string) error {
	opLock.Lock()
	defer opLock.Unlock()

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return fserr.Classify(path, err)
	}
	return nil
}
