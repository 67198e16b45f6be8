// Package app implements the application layer for olymper.
package app

import (
	"context"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/olymper/internal/core/ports"
	"go.trai.ch/zerr"
)

// timestampLayout formats journal headers.
const timestampLayout = "2006-01-02 15:04:05.000000"

// FileChecker reports which of a set of files are absent.
type FileChecker interface {
	Missing(root string, files []string) ([]string, error)
}

// App represents the main application logic.
type App struct {
	loader   ports.ConfigLoader
	programs ports.ProgramFactory
	runner   ports.Runner
	runlog   ports.RunLog
	files    ports.Files
	logger   ports.Logger

	converter  ports.StatementConverter
	uploader   ports.Uploader
	creds      ports.CredentialStore
	checker    FileChecker
	scaffolder ports.Scaffolder
	importer   ports.PackageImporter

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time
	seed   func() uint64
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	programs ports.ProgramFactory,
	runner ports.Runner,
	runlog ports.RunLog,
	files ports.Files,
	logger ports.Logger,
) *App {
	return &App{
		loader:   loader,
		programs: programs,
		runner:   runner,
		runlog:   runlog,
		files:    files,
		logger:   logger,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		now:      time.Now,
		seed:     func() uint64 { return rand.Uint64N(1_000_000_000_000_000_001) },
	}
}

// WithStatements sets the converter used by BuildStatement.
func (a *App) WithStatements(converter ports.StatementConverter) *App {
	a.converter = converter
	return a
}

// WithUpload sets the collaborators used by Upload.
func (a *App) WithUpload(uploader ports.Uploader, creds ports.CredentialStore, checker FileChecker) *App {
	a.uploader = uploader
	a.creds = creds
	a.checker = checker
	return a
}

// WithScaffolding sets the collaborators used by AddProblem, AddContest, Update and Import.
func (a *App) WithScaffolding(scaffolder ports.Scaffolder, importer ports.PackageImporter) *App {
	a.scaffolder = scaffolder
	a.importer = importer
	return a
}

// WithIO replaces the terminal streams used by scripts, prompts and summaries.
func (a *App) WithIO(stdin io.Reader, stdout, stderr io.Writer) *App {
	a.stdin = stdin
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithClock replaces the clock used for journal headers.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// WithSeed replaces the source of generator seeds used by Stress.
func (a *App) WithSeed(seed func() uint64) *App {
	a.seed = seed
	return a
}

// LoadProblem loads the problem that contains cwd.
func (a *App) LoadProblem(cwd string) (*domain.ProblemConfig, error) {
	cfg, err := a.loader.LoadProblem(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// prepare starts compiling a problem file. path is resolved against the problem root.
func (a *App) prepare(
	ctx context.Context,
	cfg *domain.ProblemConfig,
	path, target string,
	opts ...domain.ArtifactOption,
) (ports.Program, error) {
	base := []domain.ArtifactOption{
		domain.WithScratchDir(cfg.Path(domain.ScratchDirName)),
		domain.WithTestlibDir(cfg.Path(domain.DefaultTestlibDir)),
		domain.WithWorkDir(cfg.Root),
	}
	artifact := domain.NewArtifact(cfg.Path(filepath.Clean(path)), target, append(base, opts...)...)

	program, err := a.programs.Prepare(ctx, artifact)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to prepare "+target), "path", path)
	}
	return program, nil
}

// openJournal opens tmp/log/<name>.log under the problem root and writes the header.
func (a *App) openJournal(cfg *domain.ProblemConfig, name, header string) (ports.Journal, error) {
	j, err := a.runlog.Open(cfg.Path(domain.DefaultLogPath(name)))
	if err != nil {
		return nil, err
	}
	j.Printf("\n%s (%s)...", header, a.now().Format(timestampLayout))
	return j, nil
}

func (a *App) closeJournal(j ports.Journal) {
	if err := j.Close(); err != nil {
		a.logger.Warn(err.Error())
	}
}

// timeLimit returns override when positive, otherwise the problem's tl.
func timeLimit(cfg *domain.ProblemConfig, override time.Duration) (time.Duration, error) {
	if override > 0 {
		return override, nil
	}
	tl, err := cfg.Float(domain.ParamTL, domain.DefaultTimeLimit.Seconds())
	if err != nil {
		return 0, err
	}
	return time.Duration(tl * float64(time.Second)), nil
}

// memoryLimit returns override when positive, otherwise the problem's ml.
func memoryLimit(cfg *domain.ProblemConfig, override int) (int, error) {
	if override > 0 {
		return override, nil
	}
	return cfg.Int(domain.ParamML, domain.DefaultMemoryLimitMB)
}

// solutionPath returns explicit or, when empty, the main solution.
func solutionPath(cfg *domain.ProblemConfig, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	return cfg.MainSolution()
}

// formatSeconds renders a limit the way journals always have: 3 as "3.0", 1.5 as "1.5".
func formatSeconds(d time.Duration) string {
	s := strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
	if strings.ContainsRune(s, '.') {
		return s
	}
	return s + ".0"
}

// relPath renders p relative to the problem root for program arguments.
func relPath(cfg *domain.ProblemConfig, p string) string {
	rel, err := filepath.Rel(cfg.Root, p)
	if err != nil {
		return p
	}
	return rel
}

// runToFile runs program with stdin read from in and stdout written to out.
func runToFile(
	ctx context.Context,
	program ports.Program,
	in, out string,
	timeout time.Duration,
) (*domain.ExecutionResult, error) {
	inf, err := os.Open(in) //nolint:gosec // test paths come from the problem layout
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open input"), "path", in)
	}
	defer inf.Close() //nolint:errcheck // read-only

	ouf, err := os.Create(out) //nolint:gosec // output paths come from the problem layout
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create output"), "path", out)
	}
	defer ouf.Close() //nolint:errcheck // closed after the run completes

	return program.Execute(ctx, domain.ExecOptions{Stdin: inf, Stdout: ouf, Timeout: timeout})
}
