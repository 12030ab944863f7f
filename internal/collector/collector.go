// Package collector enumerates the candidate resource files under a source
// directory, applying the glob pattern and the hidden-file filter.
package collector

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// SourceFile describes one retained file discovered under the source root.
// It is read-only: discovered here, consumed once by the generator.
type SourceFile struct {
	// Path is the absolute path of the file.
	Path string
	// Name is the base name of the file.
	Name string
	// Size is the file length in bytes.
	Size int64
	// Parent is the base name of the immediate parent directory.
	Parent string
	// InRoot is true when the immediate parent is the source root itself.
	InRoot bool
}

// Options controls collection.
type Options struct {
	// Pattern is a glob matched against file base names. Empty means "*".
	Pattern string
	// HiddenSuffixes lists case-insensitive name suffixes treated as hidden.
	HiddenSuffixes []string
	// HiddenNames lists exact names treated as hidden.
	HiddenNames []string
}

func (o Options) pattern() string {
	if o.Pattern == "" {
		return "*"
	}
	return o.Pattern
}

// hiddenName reports whether a bare file or directory name is hidden on its
// own account: a configured suffix (".scc" by default, case-insensitive), a
// configured exact name (".svn" by default), or a leading dot.
func (o Options) hiddenName(name string) bool {
	lower := strings.ToLower(name)
	for _, suffix := range o.HiddenSuffixes {
		if strings.HasSuffix(lower, strings.ToLower(suffix)) {
			return true
		}
	}
	for _, exact := range o.HiddenNames {
		if name == exact {
			return true
		}
	}
	return strings.HasPrefix(name, ".")
}

// HiddenDir reports whether a directory name alone is hidden. Watch mode
// uses it to keep hidden subtrees out of the watch set.
func (o Options) HiddenDir(name string) bool {
	return o.hiddenName(name)
}

// Hidden reports whether the file at path is excluded from encoding: its own
// name is hidden, it is empty, or any ancestor directory strictly between it
// and root has a hidden name. The ancestor check walks upward from the file,
// so the result does not depend on traversal order.
func Hidden(path string, size int64, root string, opts Options) bool {
	if opts.hiddenName(filepath.Base(path)) || size == 0 {
		return true
	}
	for dir := filepath.Dir(path); dir != root && dir != filepath.Dir(dir); dir = filepath.Dir(dir) {
		if opts.hiddenName(filepath.Base(dir)) {
			return true
		}
	}
	return false
}

// Collect walks the tree under root and returns every regular file that
// matches the pattern and is not hidden. root must be an absolute, cleaned
// path. The walk is lexical, so the returned order is stable across runs;
// that order fixes the layout of the generated sources.
//
// Returns:
//   - []SourceFile: The retained files in collector order.
//   - error: An error on an invalid pattern or an unreadable directory.
func Collect(root string, opts Options) ([]SourceFile, error) {
	pattern := opts.pattern()
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("Invalid wildcard pattern: %s", pattern)
	}

	var files []SourceFile
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		matched, _ := doublestar.Match(pattern, d.Name())
		if !matched {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if Hidden(path, info.Size(), root, opts) {
			slog.Debug("skipping hidden file", "path", path)
			return nil
		}

		parent := filepath.Dir(path)
		files = append(files, SourceFile{
			Path:   path,
			Name:   d.Name(),
			Size:   info.Size(),
			Parent: filepath.Base(parent),
			InRoot: parent == root,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("collection finished", "root", root, "pattern", pattern, "files", len(files))
	return files, nil
}
