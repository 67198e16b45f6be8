package ports

// Scaffolder writes bootstrap files for new problems and contests.
//
//go:generate go run go.uber.org/mock/mockgen -source=scaffolder.go -destination=mocks/mock_scaffolder.go -package=mocks
type Scaffolder interface {
	// Problem creates the problem directory dir named name.
	Problem(dir, name string) error

	// Contest creates the contest directory dir.
	Contest(dir string) error

	// RefreshContest rewrites the shared support files of an existing contest.
	RefreshContest(dir string) error
}

// PackageImporter imports problems prepared in another system.
type PackageImporter interface {
	// Import converts the package at src (a directory or an archive) into the problem directory dest.
	Import(src, dest string) error
}
