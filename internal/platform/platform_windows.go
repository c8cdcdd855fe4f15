//go:build windows

package platform

import "strings"

const (
	caseInsensitive = true
	perVolumePaths  = true
)

// Windows accepts both separators; fold to backslash so equal paths
// compare equal.
func normCase(path string) string {
	return strings.ToLower(strings.ReplaceAll(path, "/", `\`))
}
