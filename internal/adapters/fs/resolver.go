package fs

import (
	"path/filepath"
	"sort"

	"go.trai.ch/zerr"
)

// Resolver expands glob patterns relative to a directory.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Glob returns the sorted, de-duplicated matches of patterns under root.
// A pattern with no matches contributes nothing.
func (r *Resolver) Glob(root string, patterns ...string) ([]string, error) {
	unique := make(map[string]bool)

	for _, pattern := range patterns {
		p := filepath.Join(root, pattern)
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", p)
		}
		for _, m := range matches {
			unique[m] = true
		}
	}

	result := make([]string, 0, len(unique))
	for p := range unique {
		result = append(result, p)
	}
	sort.Strings(result)

	return result, nil
}
