package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// splitFileArg derives the (name, extension) key from a path: the stem and
// the suffix without its dot. Paths missing either part are rejected here,
// before anything touches the store.
func splitFileArg(arg string) (name, ext string, err error) {
	base := filepath.Base(arg)
	ext = filepath.Ext(base)
	name = strings.TrimSuffix(base, ext)
	ext = strings.TrimPrefix(ext, ".")
	if name == "" || name == "." || ext == "" {
		return "", "", fmt.Errorf("invalid file: %s", arg)
	}
	return name, ext, nil
}

// collectFiles expands command arguments into the list of regular files to
// add. Directories are walked only when recursive is set.
func collectFiles(args []string, recursive bool) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		if !recursive {
			return nil, fmt.Errorf("%s is a directory (use --recursive)", arg)
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}
