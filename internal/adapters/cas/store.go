// Package cas implements the content-addressed hash cache for compiled sources.
package cas

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/olymper/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.HashCache = (*Store)(nil)

// highSeed seeds the second xxhash lane; together the two lanes form a 128-bit digest.
const highSeed uint64 = 0x9e3779b97f4a7c15

// Store implements ports.HashCache with one small file per source basename.
type Store struct{}

// NewStore creates a new hash cache store.
func NewStore() *Store {
	return &Store{}
}

// Digest hashes info, the separator and the content of path.
func (s *Store) Digest(path, info string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	lo := xxhash.New()
	hi := xxhash.NewWithSeed(highSeed)
	w := io.MultiWriter(lo, hi)

	_, _ = io.WriteString(w, info)
	_, _ = io.WriteString(w, domain.HashSeparator)
	if _, err := io.Copy(w, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", path)
	}

	return fmt.Sprintf("%016x%016x", hi.Sum64(), lo.Sum64()), nil
}

// IsUnchanged compares the current digest of path with its record in scratchDir.
func (s *Store) IsUnchanged(scratchDir, path, info string) (bool, error) {
	current, err := s.Digest(path, info)
	if err != nil {
		return false, err
	}

	record := domain.HashRecordPath(scratchDir, path)
	//nolint:gosec // Record path is built from the scratch dir and a basename
	prev, err := os.ReadFile(record)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrHashReadFailed.Error()), "path", record)
	}

	return string(bytes.TrimSpace(prev)) == current, nil
}

// Persist overwrites the record of path in scratchDir.
func (s *Store) Persist(scratchDir, path, info string) error {
	current, err := s.Digest(path, info)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(scratchDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrScratchCreateFailed.Error()), "path", scratchDir)
	}

	record := domain.HashRecordPath(scratchDir, path)
	//nolint:gosec // Record path is built from the scratch dir and a basename
	if err := os.WriteFile(record, []byte(current), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrHashWriteFailed.Error()), "path", record)
	}
	return nil
}
