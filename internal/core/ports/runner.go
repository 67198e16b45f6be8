// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/olymper/internal/core/domain"
)

// Runner spawns programs under a wall-clock timeout and an address-space ceiling.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run starts the command and blocks until it exits.
	// A non-zero exit code is reported in the result, not as an error.
	// Exceeding spec.Timeout returns an error matching domain.ErrTimeoutExceeded.
	Run(ctx context.Context, spec domain.RunSpec) (*domain.ExecutionResult, error)

	// Start launches the command without waiting for it.
	Start(ctx context.Context, spec domain.RunSpec) (Process, error)
}

// Process is a started child process.
type Process interface {
	// Wait blocks until the process exits and returns its result.
	Wait() (*domain.ExecutionResult, error)
}

// Limiter applies an address-space ceiling to an argument vector.
type Limiter interface {
	// Wrap returns the argv to execute and whether the ceiling will be in force.
	Wrap(argv []string, limitMB int) ([]string, bool)
}
