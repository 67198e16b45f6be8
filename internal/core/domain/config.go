package domain

import (
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// ConfigFormat is the on-disk format a configuration was read from.
type ConfigFormat int

const (
	// FormatJSON is problem.json / contest.json.
	FormatJSON ConfigFormat = iota
	// FormatINI is problem.conf / contest.conf.
	FormatINI
)

// ProblemConfig is the resolved problem descriptor. It is passed explicitly to every
// operation that needs it.
type ProblemConfig struct {
	Root         string
	Format       ConfigFormat
	params       map[string]string
	solutions    []Solution
	mainSolution string
}

// NewProblemConfig builds a ProblemConfig from already-parsed values.
// params holds scalar values rendered as strings.
func NewProblemConfig(
	root string,
	format ConfigFormat,
	params map[string]string,
	solutions []Solution,
	mainSolution string,
) *ProblemConfig {
	if params == nil {
		params = map[string]string{}
	}
	return &ProblemConfig{
		Root:         root,
		Format:       format,
		params:       params,
		solutions:    solutions,
		mainSolution: mainSolution,
	}
}

// Path joins a problem-relative path onto the problem root.
func (c *ProblemConfig) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(c.Root, rel)
}

// Param returns a parameter and whether it was set.
func (c *ProblemConfig) Param(name string) (string, bool) {
	v, ok := c.params[name]
	return v, ok
}

// HasParam reports whether a parameter is present.
func (c *ProblemConfig) HasParam(name string) bool {
	_, ok := c.params[name]
	return ok
}

// ProblemParam returns a parameter. With useDefault a missing parameter yields "";
// without it a missing parameter is ErrMissingParam.
func (c *ProblemConfig) ProblemParam(name string, useDefault bool) (string, error) {
	v, ok := c.params[name]
	if !ok && !useDefault {
		return "", zerr.With(zerr.Wrap(ErrMissingParam, "failed to read problem parameter"), "param", name)
	}
	return v, nil
}

// FirstParam returns the first non-empty value among names.
func (c *ProblemConfig) FirstParam(names ...string) (string, bool) {
	for _, n := range names {
		if v, ok := c.params[n]; ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// StringOr returns the parameter or def when unset or empty.
func (c *ProblemConfig) StringOr(name, def string) string {
	if v, ok := c.params[name]; ok && v != "" {
		return v
	}
	return def
}

// Float parses a numeric parameter, falling back to def when unset.
func (c *ProblemConfig) Float(name string, def float64) (float64, error) {
	v, ok := c.params[name]
	if !ok || v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(ErrInvalidParam, err.Error()), "param", name)
	}
	return f, nil
}

// Int parses an integer parameter, falling back to def when unset.
// Fractional values are truncated.
func (c *ProblemConfig) Int(name string, def int) (int, error) {
	f, err := c.Float(name, float64(def))
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// Bool reports whether a parameter is set to a truthy value.
func (c *ProblemConfig) Bool(name string) bool {
	v, ok := c.params[name]
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// TestNumWidth is the zero-padding width of test file names.
func (c *ProblemConfig) TestNumWidth() int {
	w, err := c.Int(ParamTestNumWidth, DefaultTestNumWidth)
	if err != nil || w <= 0 {
		return DefaultTestNumWidth
	}
	return w
}

// MainSolution returns the path of the main solution.
func (c *ProblemConfig) MainSolution() (string, error) {
	if c.mainSolution == "" {
		return "", ErrNoMainSolution
	}
	return c.mainSolution, nil
}

// Solutions returns every configured solution in declaration order.
func (c *ProblemConfig) Solutions() []Solution {
	out := make([]Solution, len(c.solutions))
	copy(out, c.solutions)
	return out
}

// ContestConfig is the resolved contest descriptor.
type ContestConfig struct {
	Root       string
	Host       string
	ServerPath string
}

// LibDir is the contest's shared library directory.
func (c *ContestConfig) LibDir() string {
	return filepath.Join(c.Root, "lib")
}

// ProblemsDir is the contest's problems directory.
func (c *ContestConfig) ProblemsDir() string {
	return filepath.Join(c.Root, "problems")
}
