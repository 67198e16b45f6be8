package app

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/shlex"
	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/olymper/internal/core/ports"
	"go.trai.ch/zerr"
)

// BuildOptions configures Build.
type BuildOptions struct {
	// MainSolution replaces the configured main solution.
	MainSolution string
	// MemoryLimitMB replaces the configured ml when positive.
	MemoryLimitMB int
}

// Build generates tests, validates them and writes answers with the main solution.
// When use_doall is set the doall command is run instead.
func (a *App) Build(ctx context.Context, cfg *domain.ProblemConfig, opts BuildOptions) error {
	if cfg.Bool(domain.ParamUseDoall) {
		a.logger.Info("using doall script for tests building")
		return a.runScript(ctx, cfg, cfg.StringOr(domain.ParamDoallCmd, domain.DefaultDoallCommand))
	}

	ml, err := memoryLimit(cfg, opts.MemoryLimitMB)
	if err != nil {
		return err
	}
	mainSolution, err := solutionPath(cfg, opts.MainSolution)
	if err != nil {
		return err
	}

	genWorkDir := cfg.Root
	if dir := cfg.StringOr(domain.ParamGenWorkDir, ""); dir != "" {
		genWorkDir = cfg.Path(dir)
	}
	gen, err := a.prepare(ctx, cfg, cfg.StringOr(domain.ParamGenerator, domain.DefaultGenerator), "gen",
		domain.WithTestlib(), domain.WithWorkDir(genWorkDir))
	if err != nil {
		return err
	}
	solution, err := a.prepare(ctx, cfg, mainSolution, "main_solution", domain.WithMemoryLimit(ml))
	if err != nil {
		return err
	}

	journal, err := a.openJournal(cfg, "gen_"+filepath.Base(mainSolution), "Generating tests")
	if err != nil {
		return err
	}
	defer a.closeJournal(journal)

	testsDir := cfg.Path(domain.TestsDirName)
	if err := a.files.Reset(testsDir); err != nil {
		return err
	}

	res, err := gen.Execute(ctx, domain.ExecOptions{Args: "0", Stdout: a.stdout, Stderr: a.stderr})
	if err != nil {
		return zerr.Wrap(err, "failed to run generator")
	}
	if res.ExitCode != 0 {
		return zerr.With(zerr.Wrap(domain.ErrGeneratorFailed, "failed to generate tests"), "exit_code", res.ExitCode)
	}

	if _, err := a.Validate(ctx, cfg); err != nil {
		return err
	}

	if err := solution.FinishCompilation(); err != nil {
		return err
	}

	journal.Print("\nGenerating answers...")

	tests, err := domain.ListTests(testsDir, cfg.TestNumWidth())
	if err != nil {
		return err
	}
	for _, t := range tests {
		res, err := runToFile(ctx, solution, t.InputPath(), t.AnswerPath(), 0)
		if err != nil {
			return err
		}
		if res.ExitCode != 0 {
			journal.Printf("test %s: Run-time error [%d]", t.Name(), res.ExitCode)
			continue
		}
		journal.Printf("test %s: Generated, time = %.2f", t.Name(), res.Elapsed.Seconds())
	}

	return a.copySamples(cfg, testsDir)
}

// copySamples copies the first samples_num tests into the samples folder as NN.t and NN.t.a.
func (a *App) copySamples(cfg *domain.ProblemConfig, testsDir string) error {
	n, err := cfg.Int(domain.ParamSamplesNum, 0)
	if err != nil || n <= 0 {
		return err
	}

	folder := cfg.Path(cfg.StringOr(domain.ParamSamplesFolder, domain.DefaultSamplesFolder))
	if err := a.files.Reset(folder); err != nil {
		return err
	}
	for i := 1; i <= n; i++ {
		t := domain.TestCase{Folder: testsDir, Num: i, Width: cfg.TestNumWidth()}
		if err := a.files.CopyFile(t.InputPath(), t.SampleInputPath(folder)); err != nil {
			return err
		}
		if err := a.files.CopyFile(t.AnswerPath(), t.SampleAnswerPath(folder)); err != nil {
			return err
		}
	}
	return nil
}

// Validate runs the validator on every test and reports how many passed.
func (a *App) Validate(ctx context.Context, cfg *domain.ProblemConfig) (domain.CheckReport, error) {
	validatorPath := filepath.Clean(cfg.StringOr(domain.ParamValidator, domain.DefaultValidator))
	validator, err := a.prepare(ctx, cfg, validatorPath, "validator", domain.WithTestlib())
	if err != nil {
		return domain.CheckReport{}, err
	}

	tests, err := domain.ListTests(cfg.Path(domain.TestsDirName), cfg.TestNumWidth())
	if err != nil {
		return domain.CheckReport{}, err
	}

	journal, err := a.openJournal(cfg, filepath.Base(validatorPath), "Validating tests")
	if err != nil {
		return domain.CheckReport{}, err
	}
	defer a.closeJournal(journal)

	report := domain.CheckReport{Total: len(tests)}
	for _, t := range tests {
		res, err := validateOne(ctx, validator, t)
		if ctx.Err() != nil {
			journal.Printf("test %s: Interrupted", t.Name())
			break
		}
		if err != nil {
			return report, err
		}

		if res.ExitCode == 0 {
			report.Passed++
			msg := "OK"
			if stderr := res.StderrText(); stderr != "" {
				msg += " (" + stderr + ")"
			}
			journal.Printf("test %s: %s", t.Name(), msg)
			continue
		}
		journal.Printf("test %s: %s [%d]", t.Name(), res.StderrText(), res.ExitCode)
	}

	journal.Printf("correct %d from %d", report.Passed, report.Total)
	a.logger.Info("Validating complete")
	return report, nil
}

func validateOne(ctx context.Context, validator ports.Program, t domain.TestCase) (*domain.ExecutionResult, error) {
	inf, err := os.Open(t.InputPath())
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open test"), "path", t.InputPath())
	}
	defer inf.Close() //nolint:errcheck // read-only

	return validator.Execute(ctx, domain.ExecOptions{Stdin: inf})
}

// runScript splits command with shell quoting rules and runs it in the problem root
// attached to the terminal.
func (a *App) runScript(ctx context.Context, cfg *domain.ProblemConfig, command string) error {
	argv, err := shlex.Split(command)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrScriptFailed, err.Error()), "command", command)
	}
	if len(argv) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrEmptyCommand, "failed to run script"), "command", command)
	}

	res, err := a.runner.Run(ctx, domain.RunSpec{
		Argv:          argv,
		WorkDir:       cfg.Root,
		Stdin:         a.stdin,
		Stdout:        a.stdout,
		Stderr:        a.stderr,
		MemoryLimitMB: domain.UnlimitedMemory,
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to run script"), "command", command)
	}
	if res.ExitCode != 0 {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrScriptFailed, "script exited with an error"),
			"command", command), "exit_code", res.ExitCode)
	}
	return nil
}
