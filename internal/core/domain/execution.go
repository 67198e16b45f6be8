package domain

import (
	"io"
	"time"
)

// RunSpec describes one process invocation.
type RunSpec struct {
	// Command is the run command; it is split on whitespace together with Args.
	Command string
	// Args are extra space-separated arguments appended to Command.
	Args string
	// Argv, when set, is executed verbatim and Command and Args are ignored.
	Argv []string
	// Stdin feeds the process. Nil means no input.
	Stdin io.Reader
	// Stdout receives standard output. Nil captures it into the result.
	Stdout io.Writer
	// Stderr receives standard error. Nil captures it into the result.
	Stderr io.Writer
	// Timeout is the wall-clock budget. Zero means none.
	Timeout time.Duration
	// WorkDir is the process working directory.
	WorkDir string
	// MemoryLimitMB is the address-space ceiling; UnlimitedMemory disables it.
	MemoryLimitMB int
	// SkipMemoryLimit disables the ceiling regardless of MemoryLimitMB.
	SkipMemoryLimit bool
}

// ExecOptions are the per-call parameters of an executable run.
type ExecOptions struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Timeout time.Duration
	Args    string
}

// ExecutionResult is the outcome of one run. A non-zero ExitCode is a runtime failure,
// not an error.
type ExecutionResult struct {
	ExitCode int
	Elapsed  time.Duration
	// Stdout is nil when the stream was not captured or was empty.
	Stdout *string
	// Stderr is nil when the stream was not captured or was empty.
	Stderr *string
	// MemoryLimitApplied reports whether an address-space ceiling was in force.
	MemoryLimitApplied bool
}

// StdoutText returns captured stdout or "" when there was none.
func (r *ExecutionResult) StdoutText() string {
	if r == nil || r.Stdout == nil {
		return ""
	}
	return *r.Stdout
}

// StderrText returns captured stderr or "" when there was none.
func (r *ExecutionResult) StderrText() string {
	if r == nil || r.Stderr == nil {
		return ""
	}
	return *r.Stderr
}

// NormalizeOutput converts captured bytes to text, stripping at most one trailing newline.
// Empty output becomes nil.
func NormalizeOutput(b []byte) *string {
	if len(b) == 0 {
		return nil
	}
	s := string(b)
	if s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	return &s
}
