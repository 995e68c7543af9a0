package storage

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// FindTriggerLog returns the .MRK file at root or anywhere under its
// subdirectories.
func FindTriggerLog(root string) (string, error) {
	var found string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		// Previously geotagged outputs are not inputs.
		if strings.HasPrefix(d.Name(), OutputPrefix) {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".MRK") {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if len(found) == 0 {
		return "", fmt.Errorf("no .MRK file found in %s or its subdirectories", root)
	}
	return found, nil
}

// FindTrajectoryLog returns the .pos file in dir.  When several exist
// the lexicographically first is used with a warning.
func FindTrajectoryLog(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	var candidates []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".pos") {
			candidates = append(candidates, e.Name())
		}
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("no .pos file found in %s", dir)
	}
	if len(candidates) > 1 {
		log.Printf("storage: multiple .pos files in %s, using %s", dir, candidates[0])
	}
	return filepath.Join(dir, candidates[0]), nil
}

// FindImageDir returns the subdirectory of root containing files with
// the given extension, e.g. ".JPG".
func FindImageDir(root, ext string) (string, error) {
	var found string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || path == root {
			return nil
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ext) {
				found = path
				return fs.SkipAll
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if len(found) == 0 {
		return "", fmt.Errorf("no subdirectory with %s images found under %s", ext, root)
	}
	return found, nil
}

// ListImages returns the filenames in dir with the given extension, in
// sorted order.
func ListImages(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	// os.ReadDir sorts by filename.
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ext) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
