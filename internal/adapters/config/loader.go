// Package config locates and parses problem and contest descriptors.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/olymper/internal/core/ports"
	"go.trai.ch/zerr"
)

// searchDepth lists the directories probed for a root, relative to the working directory.
var searchDepth = []string{".", "..", filepath.Join("..", "..")}

// Loader implements ports.ConfigLoader.
type Loader struct {
	Logger ports.Logger
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// LoadProblem finds the nearest problem root and parses its descriptor.
// problem.json wins over problem.conf.
func (l *Loader) LoadProblem(cwd string) (*domain.ProblemConfig, error) {
	root, err := FindProblemRoot(cwd)
	if err != nil {
		return nil, err
	}

	jsonPath := filepath.Join(root, domain.ProblemJSONName)
	if isFile(jsonPath) {
		data, err := readFile(jsonPath)
		if err != nil {
			return nil, err
		}
		return parseProblemJSON(root, data)
	}

	return l.parseProblemINI(root, filepath.Join(root, domain.ProblemININame))
}

// LoadContest finds the nearest contest root and parses its descriptor.
func (l *Loader) LoadContest(cwd string) (*domain.ContestConfig, error) {
	root, err := l.FindContestRoot(cwd)
	if err != nil {
		return nil, err
	}

	jsonPath := filepath.Join(root, domain.ContestJSONName)
	if isFile(jsonPath) {
		data, err := readFile(jsonPath)
		if err != nil {
			return nil, err
		}
		return parseContestJSON(root, data)
	}

	return parseContestINI(root, filepath.Join(root, domain.ContestININame))
}

// FindContestRoot returns the nearest directory holding lib/, problems/ and a contest descriptor.
func (l *Loader) FindContestRoot(cwd string) (string, error) {
	for _, rel := range searchDepth {
		dir := filepath.Clean(filepath.Join(cwd, rel))
		if !isDir(filepath.Join(dir, "lib")) || !isDir(filepath.Join(dir, "problems")) {
			continue
		}
		if isFile(filepath.Join(dir, domain.ContestJSONName)) || isFile(filepath.Join(dir, domain.ContestININame)) {
			return dir, nil
		}
	}
	return "", zerr.With(zerr.Wrap(domain.ErrContestNotFound, "failed to locate contest root"), "cwd", cwd)
}

// FindProblemRoot returns the nearest directory holding a problem descriptor.
func FindProblemRoot(cwd string) (string, error) {
	for _, rel := range searchDepth {
		dir := filepath.Clean(filepath.Join(cwd, rel))
		if isFile(filepath.Join(dir, domain.ProblemJSONName)) || isFile(filepath.Join(dir, domain.ProblemININame)) {
			return dir, nil
		}
	}
	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "failed to locate problem root"), "cwd", cwd)
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // descriptor path comes from root discovery
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}
	return data, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
