//go:build !windows && !darwin

package platform

const (
	caseInsensitive = false
	perVolumePaths  = false
)

func normCase(path string) string {
	return path
}
