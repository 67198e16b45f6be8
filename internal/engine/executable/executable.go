// Package executable provides the program facade: compile once, run many times.
package executable

import (
	"context"
	"sync"

	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/olymper/internal/core/ports"
	"go.trai.ch/olymper/internal/engine/compiler"
	"go.trai.ch/zerr"
)

// Program is a source file moving through pending, compiling and compiled states.
type Program struct {
	artifact domain.Artifact
	runner   ports.Runner
	handle   *compiler.Handle

	mu         sync.Mutex
	state      domain.CompileState
	runCommand string
	err        error
}

var _ ports.Program = (*Program)(nil)

// Artifact returns the configuration the program was prepared with.
func (p *Program) Artifact() domain.Artifact {
	return p.artifact
}

// State reports the compilation state.
func (p *Program) State() domain.CompileState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// FinishCompilation waits for the compiler. A failed compilation keeps
// returning its error.
func (p *Program) FinishCompilation() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.finishLocked()
}

func (p *Program) finishLocked() error {
	switch p.state {
	case domain.StateCompiledOK:
		return nil
	case domain.StateCompiledError:
		return p.err
	}

	run, err := p.handle.Finish()
	if err != nil {
		if terr := p.transition(domain.StateCompiledError); terr != nil {
			return terr
		}
		p.err = err
		return err
	}

	if err := p.transition(domain.StateCompiledOK); err != nil {
		return err
	}
	p.runCommand = run
	return nil
}

func (p *Program) transition(next domain.CompileState) error {
	if !p.state.CanTransition(next) {
		return zerr.With(
			zerr.With(zerr.Wrap(domain.ErrInvalidStateTransition, "illegal compile state change"), "from", p.state.String()),
			"to", next.String(),
		)
	}
	p.state = next
	return nil
}

// Execute runs the program once, finishing compilation first when needed.
// Exceeding opts.Timeout yields an error matching domain.ErrTimeoutExceeded.
func (p *Program) Execute(ctx context.Context, opts domain.ExecOptions) (*domain.ExecutionResult, error) {
	p.mu.Lock()
	err := p.finishLocked()
	run := p.runCommand
	p.mu.Unlock()
	if err != nil {
		return nil, err
	}

	return p.runner.Run(ctx, domain.RunSpec{
		Command:         run,
		Args:            opts.Args,
		Stdin:           opts.Stdin,
		Stdout:          opts.Stdout,
		Stderr:          opts.Stderr,
		Timeout:         opts.Timeout,
		WorkDir:         p.artifact.WorkDir,
		MemoryLimitMB:   p.artifact.MemoryLimitMB,
		SkipMemoryLimit: p.artifact.Language == domain.LanguageJava,
	})
}
