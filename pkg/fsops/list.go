package fsops

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/fsops-project/fsops/pkg/fserr"
)

// Entry pairs a directory child's full path with its bare name.
type Entry struct {
	Path string
	Name string
}

// ListDirectory enumerates the immediate children of path and returns
// (full path, name) pairs sorted by full path.
func ListDirectory(path string) ([]Entry, error) {
	children, err := os.ReadDir(path)
	if err != nil {
		return nil, fserr.Classify(path, err)
	}

	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		entries = append(entries, Entry{
			Path: filepath.Join(path, child.Name()),
			Name: child.Name(),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}

// ListFiles walks the tree rooted at root and returns the full paths of
// every regular file, in directory visit order. Callers sort when order
// matters.
func ListFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fserr.Classify(root, err)
	}
	return files, nil
}

// ListSubdirectories walks the tree rooted at root and returns the full
// paths of every directory below it, sorted lexicographically.
func ListSubdirectories(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fserr.Classify(root, err)
	}
	sort.Strings(dirs)
	return dirs, nil
}
