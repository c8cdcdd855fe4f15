// Package fsops provides error-resilient filesystem helpers for build
// tooling: path comparison, directory creation and removal with retry,
// sorted listings, temporary file handling and safe rename/overwrite.
//
// Mutating operations that are sensitive to transient platform file
// locking (directory creation, directory removal, file deletion) are
// serialized by a process-wide lock. Read-only operations run without it.
package fsops
