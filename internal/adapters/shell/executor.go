// Package shell provides the process runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/olymper/internal/core/ports"
	"go.trai.ch/zerr"
)

// waitDelay bounds how long Wait keeps draining pipes after the child was killed.
const waitDelay = 500 * time.Millisecond

// Executor implements ports.Runner using os/exec.
type Executor struct {
	logger  ports.Logger
	limiter ports.Limiter

	warnOnce sync.Once
}

// NewExecutor creates a new Executor. A nil limiter disables memory ceilings.
func NewExecutor(logger ports.Logger, limiter ports.Limiter) *Executor {
	return &Executor{
		logger:  logger,
		limiter: limiter,
	}
}

// Run starts the command described by spec and waits for it.
func (e *Executor) Run(ctx context.Context, spec domain.RunSpec) (*domain.ExecutionResult, error) {
	proc, err := e.Start(ctx, spec)
	if err != nil {
		return nil, err
	}
	return proc.Wait()
}

// Start launches the command described by spec.
// Unless Argv is given, Command and Args are joined and split on whitespace; no shell is involved.
func (e *Executor) Start(ctx context.Context, spec domain.RunSpec) (ports.Process, error) {
	argv := spec.Argv
	if len(argv) == 0 {
		argv = strings.Fields(spec.Command + " " + spec.Args)
	}
	if len(argv) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrEmptyCommand, "nothing to run"), "command", spec.Command)
	}

	applied := false
	if e.wantsLimit(spec) {
		argv, applied = e.limiter.Wrap(argv, spec.MemoryLimitMB)
		if !applied {
			e.warnOnce.Do(func() {
				e.logger.Warn("memory limit is not enforced on this system, running without it")
			})
		}
	}

	runCtx, cancel := ctx, context.CancelFunc(func() {})
	if spec.Timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, spec.Timeout)
	}

	name := argv[0]
	cmd := exec.CommandContext(runCtx, resolveExecutable(name), argv[1:]...) //nolint:gosec // user provided command
	// exec.CommandContext sets Args[0] to the resolved path.
	cmd.Args[0] = name
	cmd.Dir = spec.WorkDir
	cmd.Stdin = spec.Stdin
	cmd.WaitDelay = waitDelay

	p := &process{
		parent:  ctx,
		runCtx:  runCtx,
		cancel:  cancel,
		cmd:     cmd,
		name:    name,
		timeout: spec.Timeout,
		applied: applied,
	}
	cmd.Stdout = p.captureStdout(spec.Stdout)
	cmd.Stderr = p.captureStderr(spec.Stderr)

	p.started = time.Now()
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProcessStartFailed.Error()), "command", name)
	}
	return p, nil
}

func (e *Executor) wantsLimit(spec domain.RunSpec) bool {
	if e.limiter == nil || spec.SkipMemoryLimit {
		return false
	}
	return spec.MemoryLimitMB > 0
}

type process struct {
	parent  context.Context //nolint:containedctx // needed to tell cancellation from timeout in Wait
	runCtx  context.Context //nolint:containedctx // see parent
	cancel  context.CancelFunc
	cmd     *exec.Cmd
	name    string
	timeout time.Duration
	applied bool
	started time.Time

	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func (p *process) captureStdout(w io.Writer) io.Writer {
	if w != nil {
		return w
	}
	p.stdout = new(bytes.Buffer)
	return p.stdout
}

func (p *process) captureStderr(w io.Writer) io.Writer {
	if w != nil {
		return w
	}
	p.stderr = new(bytes.Buffer)
	return p.stderr
}

// Wait blocks until the child exits. Non-zero exits are reported in the result.
func (p *process) Wait() (*domain.ExecutionResult, error) {
	defer p.cancel()

	err := p.cmd.Wait()
	elapsed := time.Since(p.started)

	if err != nil {
		if p.parent.Err() != nil {
			return nil, zerr.With(zerr.Wrap(p.parent.Err(), "process interrupted"), "command", p.name)
		}
		if errors.Is(p.runCtx.Err(), context.DeadlineExceeded) {
			return nil, zerr.With(
				zerr.With(zerr.Wrap(domain.ErrTimeoutExceeded, "process killed"), "command", p.name),
				"timeout", p.timeout.String(),
			)
		}
	}

	result := &domain.ExecutionResult{
		Elapsed:            elapsed,
		MemoryLimitApplied: p.applied,
	}
	if p.stdout != nil {
		result.Stdout = domain.NormalizeOutput(p.stdout.Bytes())
	}
	if p.stderr != nil {
		result.Stderr = domain.NormalizeOutput(p.stderr.Bytes())
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil, errors.Is(err, exec.ErrWaitDelay):
		result.ExitCode = exitCode(p.cmd.ProcessState)
	case errors.As(err, &exitErr):
		result.ExitCode = exitCode(exitErr.ProcessState)
	default:
		return nil, zerr.With(zerr.Wrap(err, "command failed"), "command", p.name)
	}
	return result, nil
}

// exitCode reports the child's exit status, or the negated signal number when it was killed.
func exitCode(state *os.ProcessState) int {
	if state == nil {
		return -1
	}
	if ws, ok := state.Sys().(interface {
		Signaled() bool
		Signal() syscall.Signal
	}); ok && ws.Signaled() {
		return -int(ws.Signal())
	}
	return state.ExitCode()
}

// resolveExecutable searches PATH for bare command names.
// Names containing a separator are left for the kernel to resolve against cmd.Dir.
func resolveExecutable(name string) string {
	if strings.ContainsRune(name, os.PathSeparator) {
		return name
	}
	if lp, err := exec.LookPath(name); err == nil {
		return lp
	}
	return name
}
