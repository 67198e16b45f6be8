package ports

// RunLog opens per-command journals.
//
//go:generate go run go.uber.org/mock/mockgen -source=runlog.go -destination=mocks/mock_runlog.go -package=mocks
type RunLog interface {
	// Open starts a journal appending to path.
	Open(path string) (Journal, error)
}

// Journal records the progress of one command, both on screen and in its log file.
type Journal interface {
	// Print writes a line to the console and the log file.
	Print(line string)

	// Printf formats and writes a line.
	Printf(format string, args ...any)

	// Close flushes and closes the log file.
	Close() error
}
