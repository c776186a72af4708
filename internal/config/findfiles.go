package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// findFilesInPath returns path itself if it is a file, or all *.hcl files
// below it in lexical order if it is a directory.
func findFilesInPath(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var matches []string

	err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(info.Name(), ".hcl") {
			matches = append(matches, p)
		}
		return nil
	})
	if err != nil {
		return matches, err
	}

	if len(matches) == 0 {
		return matches, fmt.Errorf("could not find any configuration files in %s", path)
	}

	sort.Strings(matches)
	return matches, nil
}
