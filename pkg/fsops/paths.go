package fsops

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"

	"github.com/fsops-project/fsops/internal/platform"
)

// SamePath reports whether two paths refer to the same location once both
// are cleaned, made absolute, Unicode-normalized and case-folded per the
// host filesystem. It performs no I/O.
func SamePath(a, b string) bool {
	return normalizePath(a) == normalizePath(b)
}

func normalizePath(path string) string {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		// A path that cannot be made absolute still normalizes to itself.
		abs = filepath.Clean(path)
	}
	return platform.NormCase(norm.NFC.String(abs))
}

// RelativePath expresses path relative to the current working directory.
// On platforms with per-volume paths a target on another volume cannot be
// made relative; the absolute path is returned instead of an error.
func RelativePath(path string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("working directory: %w", err)
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil {
		if platform.PerVolumePaths() {
			return filepath.Abs(path)
		}
		return "", fmt.Errorf("relative path for %s: %w", path, err)
	}
	return rel, nil
}

// SplitPath splits a path into its directory and final-segment components,
// dropping empty components. A trailing separator does not produce an
// empty trailing element.
func SplitPath(path string) []string {
	dir, base := filepath.Split(path)
	trimmed := dir
	for len(trimmed) > 0 && os.IsPathSeparator(trimmed[len(trimmed)-1]) {
		trimmed = trimmed[:len(trimmed)-1]
	}
	// A directory part that was all separators is the root; keep it.
	if trimmed != "" {
		dir = trimmed
	}

	parts := make([]string, 0, 2)
	if dir != "" {
		parts = append(parts, dir)
	}
	if base != "" {
		parts = append(parts, base)
	}
	return parts
}

// HasExtension reports whether the case-folded extension of path,
// including the leading dot, is one of the given extensions.
func HasExtension(path string, extensions ...string) bool {
	ext := filepath.Ext(platform.NormCase(path))
	for _, candidate := range extensions {
		if ext == candidate {
			return true
		}
	}
	return false
}
