package helpers

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ParseExtensions splits a comma-separated extension list into trimmed,
// lowercased entries. Entries that are empty after trimming are dropped.
func ParseExtensions(list string) ([]string, error) {
	var exts []string
	for _, ext := range strings.Split(list, ",") {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		exts = append(exts, strings.ToLower(ext))
	}

	if len(exts) == 0 {
		return nil, fmt.Errorf("no valid file extensions specified")
	}

	return exts, nil
}

// HasMatchingExtension reports whether the file name ends with one of the
// extensions. Comparison is case-insensitive.
func HasMatchingExtension(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// CollectFiles walks root and returns every file whose name matches one of
// the extensions, in walk order. A root that does not exist yields an empty
// list; unreadable subtrees are skipped with a warning.
func CollectFiles(root string, exts []string) []string {
	var files []string

	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path != root {
				fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", path, err)
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if HasMatchingExtension(d.Name(), exts) {
			files = append(files, path)
		}
		return nil
	})

	return files
}
