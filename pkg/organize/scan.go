package organize

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// imageExtensions maps the supported image file extensions to true.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
}

// IsImageExtension checks whether path has a supported image extension,
// case-insensitively.
func IsImageExtension(path string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}

// ScanSourceDirectory enumerates candidate image files under sourceDir.
// Only the immediate directory entries are considered unless
// opts.Recursive is set, in which case the whole tree is walked. Files
// without a supported extension and hidden files are silently excluded.
// Unreadable entries are warned about and skipped; only a bad sourceDir
// itself is an error.
func ScanSourceDirectory(sourceDir string, opts Options) ([]PhotoFile, error) {
	info, err := os.Stat(sourceDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("source directory '%s' does not exist", sourceDir)
		}
		return nil, fmt.Errorf("error accessing source directory '%s': %w", sourceDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source path '%s' is not a directory", sourceDir)
	}

	var files []PhotoFile
	add := func(path, name string) {
		if strings.HasPrefix(name, ".") {
			return
		}
		if !IsImageExtension(name) {
			return
		}
		files = append(files, PhotoFile{Path: path, Ext: strings.ToLower(filepath.Ext(name))})
	}

	if opts.Recursive {
		err = filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				logrus.Warnf("error accessing path %q: %v", path, walkErr)
				return nil
			}
			if d.IsDir() {
				if path != sourceDir && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			add(path, d.Name())
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("error walking through source directory '%s': %w", sourceDir, err)
		}
	} else {
		entries, err := os.ReadDir(sourceDir)
		if err != nil {
			return nil, fmt.Errorf("error reading source directory '%s': %w", sourceDir, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			add(filepath.Join(sourceDir, e.Name()), e.Name())
		}
	}

	// Stable order regardless of filesystem enumeration order.
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}
