//go:build darwin

package platform

import "strings"

// HFS+ and APFS default to case-insensitive volumes.
const (
	caseInsensitive = true
	perVolumePaths  = false
)

func normCase(path string) string {
	return strings.ToLower(path)
}
