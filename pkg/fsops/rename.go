package fsops

import (
	"fmt"
	"io"
	"os"

	"github.com/fsops-project/fsops/pkg/fserr"
	"github.com/fsops-project/fsops/pkg/logging"
)

// renameOp is swapped in tests to force the copy fallback.
var renameOp = os.Rename

// RenameFile moves source to dest, preserving the source's permission
// mode. A failed rename (cross-volume destinations cannot be renamed
// atomically) falls back to copying the bytes and deleting the source.
// Failure to capture or reassert the permission mode is fatal; only the
// rename step itself triggers the fallback.
func RenameFile(source, dest string) error {
	info, err := os.Stat(source)
	if err != nil {
		return fserr.Classify(source, err)
	}

	if err := renameOp(source, dest); err != nil {
		logging.Debug("rename failed, falling back to copy",
			map[string]any{"source": source, "dest": dest})
		if err := CopyFile(source, dest, info.Mode().Perm()); err != nil {
			return err
		}
		if err := os.Remove(source); err != nil {
			return fserr.Classify(source, err)
		}
	}

	// The fallback copy does not guarantee mode preservation, and on some
	// platforms neither does rename onto an existing destination.
	if err := os.Chmod(dest, info.Mode().Perm()); err != nil {
		return fserr.Classify(dest, err)
	}
	return nil
}

// CopyFile copies the bytes of source to dest, creating or truncating
// dest with the given permission mode.
func CopyFile(source, dest string, perm os.FileMode) error {
	src, err := os.Open(source)
	if err != nil {
		return fserr.Classify(source, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return fserr.Classify(dest, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("copy %s to %s: %w", source, dest, err)
	}
	if err := dst.Sync(); err != nil {
		dst.Close()
		return fmt.Errorf("sync %s: %w", dest, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dest, err)
	}
	return nil
}
