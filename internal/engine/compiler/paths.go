package compiler

import (
	"os"
	"path/filepath"

	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/zerr"
)

// relTo expresses path relative to workDir, falling back to an absolute path.
func relTo(workDir, path string) string {
	if workDir == "" {
		workDir = "."
	}
	base, err := filepath.Abs(workDir)
	if err != nil {
		return path
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return target
	}
	return rel
}

// localCommand prefixes a relative binary path so it is not looked up in PATH.
func localCommand(workDir, binary string) string {
	rel := relTo(workDir, binary)
	if filepath.IsAbs(rel) {
		return rel
	}
	return "." + string(filepath.Separator) + rel
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func mkdir(dir string) error {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrScratchCreateFailed.Error()), "path", dir)
	}
	return nil
}
