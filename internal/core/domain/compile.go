package domain

import (
	"fmt"
	"strings"
)

// CompileState is the lifecycle of an executable's compilation.
type CompileState int

const (
	// StatePending means compilation has not been requested yet.
	StatePending CompileState = iota
	// StateCompiling means a compiler process has been started and not yet collected.
	StateCompiling
	// StateCompiledOK means a run command is available.
	StateCompiledOK
	// StateCompiledError is terminal: the compiler failed.
	StateCompiledError
)

func (s CompileState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateCompiling:
		return "compiling"
	case StateCompiledOK:
		return "compiled_ok"
	case StateCompiledError:
		return "compiled_error"
	default:
		return fmt.Sprintf("CompileState(%d)", int(s))
	}
}

// CanTransition reports whether moving from s to next is legal.
func (s CompileState) CanTransition(next CompileState) bool {
	switch s {
	case StatePending:
		return next == StateCompiling || next == StateCompiledOK || next == StateCompiledError
	case StateCompiling:
		return next == StateCompiledOK || next == StateCompiledError
	default:
		return false
	}
}

// CompilationError carries the compiler's diagnostics and exit status.
type CompilationError struct {
	Path        string
	ExitCode    int
	Diagnostics string
}

func (e *CompilationError) Error() string {
	msg := fmt.Sprintf("%s (%s, exit code %d)", ErrCompilationFailed.Error(), e.Path, e.ExitCode)
	if d := strings.TrimSpace(e.Diagnostics); d != "" {
		msg += "\n" + d
	}
	return msg
}

// Unwrap lets errors.Is match ErrCompilationFailed.
func (e *CompilationError) Unwrap() error {
	return ErrCompilationFailed
}
