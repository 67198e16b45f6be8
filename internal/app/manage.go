package app

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/zerr"
)

// problemsDirName holds the problems of a contest.
const problemsDirName = "problems"

// Clean removes generated files. When use_wipe is set the wipe command is run instead.
func (a *App) Clean(ctx context.Context, cfg *domain.ProblemConfig) error {
	if cfg.Bool(domain.ParamUseWipe) {
		a.logger.Info("using wipe script for cleaning")
		cmd, ok := cfg.FirstParam(domain.ParamWipeCmd...)
		if !ok {
			cmd = domain.DefaultWipeCommand
		}
		return a.runScript(ctx, cfg, cmd)
	}

	return a.files.RemoveAll(
		cfg.Path(domain.TestsDirName),
		cfg.Path(domain.StressDirName),
		cfg.Path(domain.ScratchDirName),
	)
}

// AddProblem scaffolds problems/<name> in the contest that contains cwd.
func (a *App) AddProblem(cwd, name string) error {
	root, err := a.loader.FindContestRoot(cwd)
	if err != nil {
		return err
	}
	dir := filepath.Join(root, problemsDirName, name)
	if err := a.scaffolder.Problem(dir, name); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to add problem"), "problem", name)
	}
	a.logger.Info("Problem " + name + " created in " + dir)
	return nil
}

// AddContest creates the contest directory name under cwd.
func (a *App) AddContest(cwd, name string) error {
	dir := filepath.Join(cwd, name)
	if err := a.scaffolder.Contest(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to add contest"), "contest", name)
	}
	a.logger.Info("Contest " + name + " created")
	return nil
}

// Update rewrites the shared statement styles and scripts of the contest that contains cwd.
func (a *App) Update(cwd string) error {
	root, err := a.loader.FindContestRoot(cwd)
	if err != nil {
		return err
	}
	if err := a.scaffolder.RefreshContest(root); err != nil {
		return err
	}
	a.logger.Info("Contest files updated in " + root)
	return nil
}

// Import converts a Polygon package into problems/<name> of the contest that contains cwd.
// An empty name is derived from the package path.
func (a *App) Import(cwd, src, name string) error {
	root, err := a.loader.FindContestRoot(cwd)
	if err != nil {
		return err
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(filepath.Clean(src)), ".zip")
	}
	dir := filepath.Join(root, problemsDirName, name)
	if err := a.importer.Import(src, dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to import problem"), "problem", name)
	}
	a.logger.Info("Problem " + name + " imported to " + dir)
	return nil
}
