package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownLanguage is returned when a source file's language cannot be determined.
	ErrUnknownLanguage = zerr.New("unknown language")

	// ErrCompilationFailed is returned when a compiler exits with a non-zero status.
	ErrCompilationFailed = zerr.New("compilation error")

	// ErrTimeoutExceeded is returned when a program runs past its wall-clock budget.
	ErrTimeoutExceeded = zerr.New("time limit exceeded")

	// ErrInvalidStateTransition is returned when an executable is driven through an illegal state change.
	ErrInvalidStateTransition = zerr.New("invalid compilation state transition")

	// ErrNoBackend is returned when no compiler backend is registered for a language.
	ErrNoBackend = zerr.New("no backend registered for language")

	// ErrProcessStartFailed is returned when a child process cannot be started.
	ErrProcessStartFailed = zerr.New("failed to start process")

	// ErrEmptyCommand is returned when a run command has no program to execute.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrInvalidCompilerFlags is returned when compiler flags cannot be tokenized.
	ErrInvalidCompilerFlags = zerr.New("invalid compiler flags")

	// ErrScratchCreateFailed is returned when the scratch directory cannot be created.
	ErrScratchCreateFailed = zerr.New("failed to create scratch directory")

	// ErrSourceReadFailed is returned when a source file cannot be read for hashing.
	ErrSourceReadFailed = zerr.New("failed to read source file")

	// ErrHashReadFailed is returned when a persisted hash record cannot be read.
	ErrHashReadFailed = zerr.New("failed to read hash record")

	// ErrHashWriteFailed is returned when a hash record cannot be written.
	ErrHashWriteFailed = zerr.New("failed to write hash record")

	// ErrConfigNotFound is returned when no problem configuration file is found.
	ErrConfigNotFound = zerr.New("could not find problem.json or problem.conf")

	// ErrContestNotFound is returned when no contest root is found.
	ErrContestNotFound = zerr.New("could not find contest root")

	// ErrConfigReadFailed is returned when a configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when a configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrMissingParam is returned when a required problem parameter is absent.
	ErrMissingParam = zerr.New("missing problem parameter")

	// ErrInvalidParam is returned when a problem parameter has the wrong type.
	ErrInvalidParam = zerr.New("invalid problem parameter")

	// ErrNoMainSolution is returned when the configuration does not name a main solution.
	ErrNoMainSolution = zerr.New("main solution is not configured")

	// ErrTestsNotFound is returned when the tests folder does not exist.
	ErrTestsNotFound = zerr.New("folder with tests does not exist")

	// ErrGeneratorFailed is returned when the test generator exits with a non-zero status.
	ErrGeneratorFailed = zerr.New("generator error")

	// ErrScriptFailed is returned when a doall or wipe script fails.
	ErrScriptFailed = zerr.New("script failed")

	// ErrAlreadyExists is returned when a scaffold target already exists.
	ErrAlreadyExists = zerr.New("folder with the same name exists")

	// ErrScaffoldFailed is returned when scaffolding files cannot be written.
	ErrScaffoldFailed = zerr.New("failed to scaffold files")

	// ErrStatementNotFound is returned when the problem environment is missing from a statement.
	ErrStatementNotFound = zerr.New("statement does not contain a problem environment")

	// ErrStatementSyntax is returned when a statement contains malformed markup.
	ErrStatementSyntax = zerr.New("malformed statement markup")

	// ErrUploadFailed is returned when an FTP transfer fails.
	ErrUploadFailed = zerr.New("upload failed")

	// ErrCredentialsMissing is returned when no login is available for the contest host.
	ErrCredentialsMissing = zerr.New("no credentials for contest host")

	// ErrInvalidPackage is returned when an imported package is malformed.
	ErrInvalidPackage = zerr.New("invalid problem package")

	// ErrRunLogOpenFailed is returned when a run log file cannot be opened.
	ErrRunLogOpenFailed = zerr.New("failed to open run log")

	// ErrFileCopyFailed is returned when copying a test or artifact fails.
	ErrFileCopyFailed = zerr.New("failed to copy file")
)
