package ports

import "go.trai.ch/olymper/internal/core/domain"

// ConfigLoader locates and reads problem and contest descriptors.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// LoadProblem finds the problem root from cwd and parses its descriptor.
	LoadProblem(cwd string) (*domain.ProblemConfig, error)

	// LoadContest finds the contest root from cwd and parses its descriptor.
	LoadContest(cwd string) (*domain.ContestConfig, error)

	// FindContestRoot returns the contest root without parsing the descriptor.
	FindContestRoot(cwd string) (string, error)
}
