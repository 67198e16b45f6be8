// Package fs copies, resets and resolves problem files.
package fs

import (
	"io/fs"
	"iter"
	"path"
)

// Walker walks file trees.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields the slash-separated paths of all regular files under root in fsys,
// skipping version-control directories and entries whose name matches an ignore pattern.
func (w *Walker) WalkFiles(fsys fs.FS, root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if p != root {
				if skip, action := w.shouldSkip(d, ignores); skip {
					return action
				}
			}

			if d.IsDir() {
				return nil
			}

			if !yield(p) {
				return fs.SkipAll
			}

			return nil
		})
	}
}

// shouldSkip reports whether d is skipped and what WalkDir should do about it.
func (w *Walker) shouldSkip(d fs.DirEntry, ignores []string) (bool, error) {
	name := d.Name()

	if d.IsDir() && (name == ".git" || name == ".svn") {
		return true, fs.SkipDir
	}

	for _, ignore := range ignores {
		if matched, _ := path.Match(ignore, name); matched {
			if d.IsDir() {
				return true, fs.SkipDir
			}
			return true, nil
		}
	}

	return false, nil
}
