package domain

import (
	"fmt"
	"path/filepath"
)

const (
	// ScratchDirName is the per-problem scratch directory for binaries, hashes and logs.
	ScratchDirName = "tmp"

	// LogDirName is the run-log directory inside the scratch directory.
	LogDirName = "log"

	// TestsDirName holds generated tests.
	TestsDirName = "tests"

	// StressDirName holds inputs that failed stress testing.
	StressDirName = "stress_tests"

	// StatementDirName holds the problem statement.
	StatementDirName = "statement"

	// StatementXMLName is the converted statement file.
	StatementXMLName = "statement.xml"

	// ValuerFileName is the valuer configuration uploaded with -g.
	ValuerFileName = "valuer.cfg"

	// HashSuffix is appended to a source basename to form its hash record name.
	HashSuffix = ".hash"

	// BinarySuffix is appended to a source basename to form its native binary name.
	BinarySuffix = ".out"

	// HashSeparator joins extra info and file content before hashing.
	HashSeparator = "-----"

	// ProblemJSONName is the JSON problem descriptor.
	ProblemJSONName = "problem.json"

	// ProblemININame is the INI problem descriptor.
	ProblemININame = "problem.conf"

	// ContestJSONName is the JSON contest descriptor.
	ContestJSONName = "contest.json"

	// ContestININame is the INI contest descriptor.
	ContestININame = "contest.conf"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ScriptPerm is the permission for generated shell scripts (rwxr--r--).
	ScriptPerm = 0o744
)

// DefaultTestlibDir is the testlib include directory, relative to a problem directory.
var DefaultTestlibDir = filepath.Join("..", "..", "lib")

// HashRecordPath returns the hash record location for a source file.
// Records are keyed by basename only.
func HashRecordPath(scratchDir, sourcePath string) string {
	return filepath.Join(scratchDir, filepath.Base(sourcePath)+HashSuffix)
}

// BinaryPath returns the native binary location for a source file.
func BinaryPath(scratchDir, sourcePath string) string {
	return filepath.Join(scratchDir, filepath.Base(sourcePath)+BinarySuffix)
}

// DefaultLogPath returns the run-log path for a journal name.
func DefaultLogPath(name string) string {
	return filepath.Join(ScratchDirName, LogDirName, name+".log")
}

// StressCasePath returns the saved stress input path for case n with a suffix.
func StressCasePath(n int, suffix string) string {
	return filepath.Join(StressDirName, fmt.Sprintf("%04d%s", n, suffix))
}
