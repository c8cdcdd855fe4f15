// Package fserr defines stable, machine-readable error classes for
// filesystem operations. Callers match classes with errors.Is and reach
// the underlying platform error through errors.Unwrap.
package fserr

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Error is a classified filesystem error carrying the offending path and
// the underlying platform error.
type Error struct {
	Code string
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Path == "" && e.Err == nil:
		return e.Code
	case e.Err == nil:
		return fmt.Sprintf("%s: %s", e.Code, e.Path)
	case e.Path == "":
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Code == t.Code
}

// WithPath returns a new Error of the same class for a specific path and
// cause.
func (e *Error) WithPath(path string, err error) *Error {
	return &Error{Code: e.Code, Path: path, Err: err}
}

// All stable error classes.
var (
	ErrNotFound      = &Error{Code: "E_NOT_FOUND"}
	ErrNotADirectory = &Error{Code: "E_NOT_A_DIRECTORY"}
	ErrNotAFile      = &Error{Code: "E_NOT_A_FILE"}
	ErrPermission    = &Error{Code: "E_PERMISSION"}
	ErrCrossVolume   = &Error{Code: "E_CROSS_VOLUME"}
	ErrTransientLock = &Error{Code: "E_TRANSIENT_LOCK"}
)

// Classify maps a platform filesystem error onto a stable class, keeping
// the cause wrapped. Errors that fit no class are returned annotated with
// the path only.
func Classify(path string, err error) error {
	if err == nil {
		return nil
	}
	var classified *Error
	if errors.As(err, &classified) {
		return err
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound.WithPath(path, err)
	case errors.Is(err, fs.ErrPermission):
		return ErrPermission.WithPath(path, err)
	case errors.Is(err, syscall.ENOTDIR):
		return ErrNotADirectory.WithPath(path, err)
	case errors.Is(err, syscall.EISDIR):
		return ErrNotAFile.WithPath(path, err)
	case errors.Is(err, syscall.EXDEV):
		return ErrCrossVolume.WithPath(path, err)
	case errors.Is(err, syscall.EBUSY), errors.Is(err, syscall.ETXTBSY):
		return ErrTransientLock.WithPath(path, err)
	}
	return fmt.Errorf("%s: %w", path, err)
}
