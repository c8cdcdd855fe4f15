package fsops

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsops-project/fsops/pkg/fserr"
	"github.com/fsops-project/fsops/pkg/logging"
)

// removeRetryWait is the pause before the final delete attempt. External
// scanners that hold a handle inside a tree being deleted usually release
// it within this window.
const removeRetryWait = 100 * time.Millisecond

// removeEntry is swapped in tests to inject transient delete failures.
var removeEntry = os.Remove

// DeleteFile unlinks path. When mustExist is false and path is not a
// regular file, nothing happens; when mustExist is true a missing path
// surfaces as a NotFound class error and a directory as NotAFile.
func DeleteFile(path string, mustExist bool) error {
	opLock.Lock()
	defer opLock.Unlock()

	if mustExist {
		info, err := os.Lstat(path)
		if err != nil {
			return fserr.Classify(path, err)
		}
		// os.Remove would happily take an empty directory; unlink
		// semantics want a file here.
		if info.IsDir() {
			return fserr.ErrNotAFile.WithPath(path, syscall.EISDIR)
		}
	} else {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return nil
		}
	}
	if err := removeEntry(path); err != nil {
		return fserr.Classify(path, err)
	}
	return nil
}

// RemoveDirectory removes the tree rooted at path. Each entry's delete
// gets up to three attempts (immediate retry, then one more after a short
// wait) before the failure propagates. When ignoreErrors is true a failed
// removal is followed by one best-effort pass that suppresses all errors;
// residual entries may remain. A missing path is a successful no-op, and
// under ignoreErrors so is a path that cannot even be probed.
func RemoveDirectory(path string, ignoreErrors bool) error {
	opLock.Lock()
	defer opLock.Unlock()

	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) || ignoreErrors {
			return nil
		}
		return fserr.Classify(path, err)
	}

	if err := removeTree(path); err != nil {
		if ignoreErrors {
			logging.Warn("directory removal incomplete, switching to best effort",
				map[string]any{"path": path})
			removeTreeBestEffort(path)
			return nil
		}
		return err
	}
	return nil
}

// removeTree deletes depth-first: children before their directory.
func removeTree(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fserr.Classify(path, err)
	}

	if info.IsDir() {
		children, err := os.ReadDir(path)
		if err != nil {
			return fserr.Classify(path, err)
		}
		for _, child := range children {
			if err := removeTree(filepath.Join(path, child.Name())); err != nil {
				return err
			}
		}
	}
	return removeWithRetry(path)
}

// removeWithRetry gives a single entry three delete attempts: the initial
// one, an immediate retry, and a final retry after removeRetryWait.
func removeWithRetry(path string) error {
	if err := removeEntry(path); err == nil {
		return nil
	}
	logging.Debug("delete failed, retrying", map[string]any{"path": path})
	if err := removeEntry(path); err == nil {
		return nil
	}
	logging.Debug("delete failed again, waiting before final attempt",
		map[string]any{"path": path})
	time.Sleep(removeRetryWait)
	if err := removeEntry(path); err != nil {
		return fserr.Classify(path, err)
	}
	return nil
}

// removeTreeBestEffort mirrors removeTree but swallows every error.
func removeTreeBestEffort(path string) {
	info, err := os.Lstat(path)
	if err != nil {
		return
	}
	if info.IsDir() {
		children, err := os.ReadDir(path)
		if err != nil {
			return
		}
		for _, child := range children {
			removeTreeBestEffort(filepath.Join(path, child.Name()))
		}
	}
	removeEntry(path)
}
