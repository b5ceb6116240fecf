// Package treewalk provides deterministic, cross-platform file tree
// traversal. Entries are ordered by NFC-normalized name so the same tree
// produces the same sequence on every filesystem and locale, and ignore
// files surface before the files they may filter.
package treewalk

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Entry is one directory member.
type Entry struct {
	Name   string
	Path   string
	IsFile bool
	IsDir  bool
}

// Listdir returns the entries of dir sorted by NFC-normalized name, with the
// original name bytes breaking ties. Symlinks and special files are skipped.
func Listdir(dir string) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		mode := de.Type()
		if mode&os.ModeSymlink != 0 {
			continue
		}
		isDir := mode.IsDir()
		isFile := mode.IsRegular()
		if !isDir && !isFile {
			continue
		}
		entries = append(entries, Entry{
			Name:   de.Name(),
			Path:   filepath.Join(dir, de.Name()),
			IsFile: isFile,
			IsDir:  isDir,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		a := norm.NFC.String(entries[i].Name)
		b := norm.NFC.String(entries[j].Name)
		if a != b {
			return a < b
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// isIgnoreName reports whether name follows the .*ignore convention.
func isIgnoreName(name string) bool {
	return strings.HasPrefix(name, ".") && strings.HasSuffix(name, "ignore")
}

func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", root)
	}
	return nil
}

// Walk traverses the tree under root and returns the absolute path of every
// regular file. Within each directory ignore files come first, then the
// remaining files, then subdirectories are descended in sorted order.
func Walk(root string) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err := checkRoot(root); err != nil {
		return nil, err
	}
	var paths []string
	if err := walkDir(root, &paths); err != nil {
		return nil, err
	}
	return paths, nil
}

func walkDir(dir string, paths *[]string) error {
	entries, err := Listdir(dir)
	if err != nil {
		return err
	}
	var ignoreFiles, files, dirs []Entry
	for _, e := range entries {
		switch {
		case e.IsDir:
			dirs = append(dirs, e)
		case isIgnoreName(e.Name):
			ignoreFiles = append(ignoreFiles, e)
		default:
			files = append(files, e)
		}
	}
	for _, e := range ignoreFiles {
		*paths = append(*paths, e.Path)
	}
	for _, e := range files {
		*paths = append(*paths, e.Path)
	}
	for _, e := range dirs {
		if err := walkDir(e.Path, paths); err != nil {
			return err
		}
	}
	return nil
}
