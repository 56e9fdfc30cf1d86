package batch

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Find resolves patterns to the files they name within root.
//
// The pattern "*" matches every file below root whose name ends with one of
// exts. A pattern of the form "*.ext" matches every file below root whose name
// ends with ".ext". Any other pattern is a path relative to root, and is
// included if it exists. Paths are returned once each, in lexical order.
func Find(root string, patterns []string, exts []string) ([]string, error) {
	seen := map[string]bool{}
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	var suffixes []string
	for _, pattern := range patterns {
		switch {
		case pattern == "*":
			suffixes = append(suffixes, exts...)
		case strings.HasPrefix(pattern, "*."):
			suffixes = append(suffixes, pattern[1:])
		default:
			path := pattern
			if !filepath.IsAbs(path) {
				path = filepath.Join(root, path)
			}
			if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
				add(path)
			}
		}
	}

	if len(suffixes) > 0 {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.Type().IsRegular() {
				return nil
			}
			for _, suffix := range suffixes {
				if strings.HasSuffix(d.Name(), suffix) {
					add(path)
					break
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}
