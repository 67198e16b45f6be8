package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// Verifier checks that files exist.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Missing returns the entries of files, relative to root, that do not exist.
func (v *Verifier) Missing(root string, files []string) ([]string, error) {
	var missing []string
	for _, f := range files {
		p := f
		if !filepath.IsAbs(p) {
			p = filepath.Join(root, f)
		}
		if _, err := os.Stat(p); err != nil {
			if os.IsNotExist(err) {
				missing = append(missing, f)
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", p)
		}
	}
	return missing, nil
}
