// Package compiler turns source artifacts into run commands.
package compiler

import (
	"context"
	"strings"
	"sync"

	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/olymper/internal/core/ports"
	"go.trai.ch/zerr"
)

// Backend starts building one artifact.
type Backend interface {
	// Begin starts compilation, or finishes immediately when no compile step is needed.
	// Failures to launch the compiler are deferred to Handle.Finish.
	Begin(ctx context.Context, a *domain.Artifact) (*Handle, error)
}

// Handle tracks one compilation from Begin to Finish.
type Handle struct {
	artifact   domain.Artifact
	runCommand string
	proc       ports.Process
	startErr   error
	cache      ports.HashCache
	logger     ports.Logger

	once sync.Once
	err  error
}

// ready returns a Handle that needs no compile step.
func ready(a *domain.Artifact, runCommand string) *Handle {
	return &Handle{artifact: *a, runCommand: runCommand}
}

// Pending reports whether Finish will wait for a compiler process.
func (h *Handle) Pending() bool {
	return h.proc != nil || h.startErr != nil
}

// Finish waits for the compiler and returns the run command.
// Repeated calls return the first outcome.
func (h *Handle) Finish() (string, error) {
	h.once.Do(func() {
		h.err = h.finish()
	})
	if h.err != nil {
		return "", h.err
	}
	return h.runCommand, nil
}

func (h *Handle) finish() error {
	if h.startErr != nil {
		return &domain.CompilationError{
			Path:        h.artifact.SourcePath,
			ExitCode:    -1,
			Diagnostics: h.startErr.Error(),
		}
	}
	if h.proc == nil {
		return nil
	}

	h.logger.Info("Finishing compilation of " + h.artifact.Target)
	res, err := h.proc.Wait()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "compiler did not finish"), "path", h.artifact.SourcePath)
	}

	var diagnostics []string
	for _, out := range []*string{res.Stdout, res.Stderr} {
		if out != nil {
			h.logger.Warn(*out)
			diagnostics = append(diagnostics, *out)
		}
	}

	if res.ExitCode != 0 {
		return &domain.CompilationError{
			Path:        h.artifact.SourcePath,
			ExitCode:    res.ExitCode,
			Diagnostics: strings.Join(diagnostics, "\n"),
		}
	}

	if h.artifact.SaveCompiled {
		if err := h.cache.Persist(h.artifact.ScratchDir, h.artifact.SourcePath, h.artifact.HashInfo); err != nil {
			return err
		}
	}

	h.logger.Info("Compilation of " + h.artifact.Target + " finished")
	return nil
}

// compileStep holds what the compiled backends share.
type compileStep struct {
	runner ports.Runner
	cache  ports.HashCache
	logger ports.Logger
}

// reusable reports whether the previous build of a can be used as is.
func (s *compileStep) reusable(a *domain.Artifact, output string) (bool, error) {
	if !a.UsePrecompiled || !exists(output) {
		return false, nil
	}
	return s.cache.IsUnchanged(a.ScratchDir, a.SourcePath, a.HashInfo)
}

// start launches the compiler. A launch failure is recorded on the handle.
func (s *compileStep) start(ctx context.Context, a *domain.Artifact, runCommand string, argv []string) *Handle {
	h := &Handle{
		artifact:   *a,
		runCommand: runCommand,
		cache:      s.cache,
		logger:     s.logger,
	}

	// A compile that was started must finish even when the caller is cancelled.
	proc, err := s.runner.Start(context.WithoutCancel(ctx), domain.RunSpec{
		Argv:            argv,
		SkipMemoryLimit: true,
	})
	if err != nil {
		h.startErr = err
		return h
	}
	h.proc = proc
	return h
}

// prepare creates the scratch directory and reports whether the previous output
// can be reused, logging when it is.
func (s *compileStep) prepare(a *domain.Artifact, output string) (bool, error) {
	if err := mkdir(a.ScratchDir); err != nil {
		return false, err
	}

	reuse, err := s.reusable(a, output)
	if err != nil {
		return false, err
	}
	if reuse {
		s.logger.Info("Using previous version of binary")
	}
	return reuse, nil
}
