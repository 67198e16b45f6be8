package fs

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/olymper/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Files = (*Copier)(nil)

// Copier implements ports.Files on the local disk.
type Copier struct {
	walker *Walker
}

// NewCopier creates a new Copier.
func NewCopier(walker *Walker) *Copier {
	return &Copier{walker: walker}
}

// CopyFile copies src to dst, creating dst's directory. The source mode is kept.
func (c *Copier) CopyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return copyError(err, src, dst)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	info, err := in.Stat()
	if err != nil {
		return copyError(err, src, dst)
	}
	return writeFile(in, dst, info.Mode().Perm())
}

// CopyTree copies every file under root in fsys into dst, keeping relative paths.
// Entries matching ignores are skipped.
func (c *Copier) CopyTree(fsys fs.FS, root, dst string, ignores ...string) error {
	for p := range c.walker.WalkFiles(fsys, root, ignores) {
		rel := p
		if root != "." {
			rel = p[len(root)+1:]
		}
		target := filepath.Join(dst, filepath.FromSlash(rel))
		if err := c.copyFromFS(fsys, p, target); err != nil {
			return err
		}
	}
	return nil
}

// CopyFromFS copies one file of fsys to dst.
func (c *Copier) CopyFromFS(fsys fs.FS, name, dst string) error {
	return c.copyFromFS(fsys, path.Clean(name), dst)
}

func (c *Copier) copyFromFS(fsys fs.FS, name, dst string) error {
	in, err := fsys.Open(name)
	if err != nil {
		return copyError(err, name, dst)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	perm := fs.FileMode(domain.FilePerm)
	if info, err := in.Stat(); err == nil && info.Mode().Perm()&0o200 != 0 {
		perm = info.Mode().Perm()
	}
	return writeFile(in, dst, perm)
}

// Reset removes dir and creates it again empty.
func (c *Copier) Reset(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove directory"), "path", dir)
	}
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dir)
	}
	return nil
}

// RemoveAll deletes every path. Missing paths are ignored.
func (c *Copier) RemoveAll(paths ...string) error {
	for _, p := range paths {
		if err := os.RemoveAll(p); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to remove"), "path", p)
		}
	}
	return nil
}

// MakeExecutable adds the owner execute bit to path.
func (c *Copier) MakeExecutable(p string) error {
	info, err := os.Stat(p)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat file"), "path", p)
	}
	if err := os.Chmod(p, info.Mode().Perm()|0o100); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to chmod file"), "path", p)
	}
	return nil
}

func writeFile(r io.Reader, dst string, perm fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return copyError(err, "", dst)
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return copyError(err, "", dst)
	}
	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		return copyError(err, "", dst)
	}
	if err := out.Close(); err != nil {
		return copyError(err, "", dst)
	}
	return nil
}

// copyError keeps domain.ErrFileCopyFailed in the chain.
func copyError(err error, src, dst string) error {
	wrapped := zerr.With(zerr.Wrap(domain.ErrFileCopyFailed, "failed to copy file"), "to", dst)
	if src != "" {
		wrapped = zerr.With(wrapped, "from", src)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return zerr.With(wrapped, "reason", "source does not exist")
	}
	return zerr.With(wrapped, "reason", err.Error())
}
