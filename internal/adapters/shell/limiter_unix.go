//go:build linux || darwin

package shell

import (
	"fmt"
	"os/exec"

	"golang.org/x/sys/unix"
)

// trampolineName is $0 of the limiting shell, visible in process listings.
const trampolineName = "olymper-limit"

// RlimitLimiter lowers the soft RLIMIT_AS of the child through a sh trampoline.
type RlimitLimiter struct {
	getrlimit func(resource int, rlim *unix.Rlimit) error
	lookPath  func(file string) (string, error)
}

// NewLimiter returns the limiter for this platform.
func NewLimiter() *RlimitLimiter {
	return &RlimitLimiter{
		getrlimit: unix.Getrlimit,
		lookPath:  exec.LookPath,
	}
}

// Wrap prefixes argv with `sh -c 'ulimit -S -v <KiB> && exec "$@"'`.
// The ceiling is clamped to the hard limit of the current process.
func (l *RlimitLimiter) Wrap(argv []string, limitMB int) ([]string, bool) {
	if limitMB <= 0 || len(argv) == 0 {
		return argv, false
	}

	var rl unix.Rlimit
	if err := l.getrlimit(unix.RLIMIT_AS, &rl); err != nil {
		return argv, false
	}

	limit := uint64(limitMB) << 20 //nolint:gosec // limitMB is positive
	if rl.Max != unix.RLIM_INFINITY && limit > rl.Max {
		limit = rl.Max
	}

	sh, err := l.lookPath("sh")
	if err != nil {
		return argv, false
	}

	script := fmt.Sprintf(`ulimit -S -v %d && exec "$@"`, limit>>10)
	wrapped := make([]string, 0, len(argv)+4)
	wrapped = append(wrapped, sh, "-c", script, trampolineName)
	return append(wrapped, argv...), true
}
