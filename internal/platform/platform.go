// Package platform answers capability questions about the host filesystem,
// so the rest of the code does not scatter GOOS conditionals.
package platform

// CaseInsensitiveFilesystem reports whether the native filesystem folds
// filename case when resolving paths.
func CaseInsensitiveFilesystem() bool { return caseInsensitive }

// PerVolumePaths reports whether the platform roots paths per volume.
// On such platforms some path pairs cannot be related to each other and
// renames across volumes cannot be atomic.
func PerVolumePaths() bool { return perVolumePaths }

// NormCase folds a path into its canonical case form: lower-cased on
// case-insensitive filesystems, unchanged elsewhere.
func NormCase(path string) string { return normCase(path) }
