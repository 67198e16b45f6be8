package ports

import (
	"context"

	"go.trai.ch/olymper/internal/core/domain"
)

// Program is a source file that is being, or has been, prepared for execution.
//
//go:generate go run go.uber.org/mock/mockgen -source=program.go -destination=mocks/mock_program.go -package=mocks
type Program interface {
	// FinishCompilation blocks until compilation completes.
	FinishCompilation() error

	// Execute runs the program, finishing compilation first if needed.
	Execute(ctx context.Context, opts domain.ExecOptions) (*domain.ExecutionResult, error)

	// State reports the compilation state.
	State() domain.CompileState

	// Artifact returns the configuration the program was prepared with.
	Artifact() domain.Artifact
}

// ProgramFactory starts preparing programs.
type ProgramFactory interface {
	// Prepare resolves the language, selects a backend and starts compilation.
	Prepare(ctx context.Context, artifact domain.Artifact) (Program, error)
}
