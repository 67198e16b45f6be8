//go:build !(linux || darwin)

package shell

// RlimitLimiter is a no-op on platforms without RLIMIT_AS.
type RlimitLimiter struct{}

// NewLimiter returns the limiter for this platform.
func NewLimiter() *RlimitLimiter {
	return &RlimitLimiter{}
}

// Wrap returns argv unchanged and reports that no ceiling is in force.
func (l *RlimitLimiter) Wrap(argv []string, _ int) ([]string, bool) {
	return argv, false
}
