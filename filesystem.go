package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

type walkFunc func(string) ([]string, error)

// walkDirectory enumerates every file under dirPath recursively, hidden files
// included, directory entries excluded. The returned list is sorted so a run
// always sees the same snapshot for the same tree.
func walkDirectory(dirPath string) ([]string, error) {
	if _, statErr := os.Stat(dirPath); statErr != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, dirPath)
	}

	files := make([]string, 0)
	walkErr := filepath.Walk(dirPath, func(path string, f os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !f.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	sort.Strings(files)
	return files, nil
}
