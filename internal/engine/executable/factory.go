package executable

import (
	"context"

	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/olymper/internal/core/ports"
	"go.trai.ch/olymper/internal/engine/compiler"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// BackendSource selects a compiler backend for a language.
type BackendSource interface {
	Lookup(lang domain.Language) (compiler.Backend, error)
}

// Factory implements ports.ProgramFactory.
type Factory struct {
	backends BackendSource
	runner   ports.Runner
	logger   ports.Logger
}

var _ ports.ProgramFactory = (*Factory)(nil)

// NewFactory creates a Factory.
func NewFactory(backends BackendSource, runner ports.Runner, logger ports.Logger) *Factory {
	return &Factory{backends: backends, runner: runner, logger: logger}
}

// Prepare resolves the language, selects a backend and starts compiling.
// Programs without a compile step come back already compiled.
func (f *Factory) Prepare(ctx context.Context, a domain.Artifact) (ports.Program, error) {
	var (
		lang domain.Language
		err  error
	)
	if a.Language == "" {
		lang, err = domain.ResolveLanguage(a.SourcePath)
	} else {
		lang, err = domain.ParseLanguage(string(a.Language))
	}
	if err != nil {
		return nil, zerr.With(err, "target", a.Target)
	}
	a.Language = lang

	backend, err := f.backends.Lookup(a.Language)
	if err != nil {
		return nil, err
	}

	f.logger.Info("Starting compilation of " + a.Target)
	handle, err := backend.Begin(ctx, &a)
	if err != nil {
		return nil, err
	}

	p := &Program{
		artifact: a,
		runner:   f.runner,
		handle:   handle,
		state:    domain.StatePending,
	}
	if handle.Pending() {
		p.state = domain.StateCompiling
		return p, nil
	}
	if err := p.FinishCompilation(); err != nil {
		return nil, err
	}
	return p, nil
}

// FinishAll finishes every program concurrently and returns the first error.
// All compilations are collected even when one fails.
func FinishAll(programs ...ports.Program) error {
	var g errgroup.Group
	for _, p := range programs {
		if p == nil {
			continue
		}
		g.Go(p.FinishCompilation)
	}
	return g.Wait()
}
