package ports

// Files performs the file operations of problem commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=files.go -destination=mocks/mock_files.go -package=mocks
type Files interface {
	// CopyFile copies src to dst, creating dst's directory.
	CopyFile(src, dst string) error

	// Reset removes dir and creates it again empty.
	Reset(dir string) error

	// RemoveAll deletes every path. Missing paths are ignored.
	RemoveAll(paths ...string) error
}
