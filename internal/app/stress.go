package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/olymper/internal/core/ports"
	"go.trai.ch/olymper/internal/engine/executable"
	"go.trai.ch/zerr"
)

// StressOptions configures Stress.
type StressOptions struct {
	// Solution is the solution under test.
	Solution string
	// Language forces the language of Solution by name.
	Language string
	// ModelSolution replaces the main solution as the reference.
	ModelSolution string
	// Count is the number of rounds; a negative count runs until ctx is cancelled.
	Count int
	// ModelTimeLimit bounds the model solution; zero means DefaultModelTimeLimit.
	ModelTimeLimit time.Duration
	// TimeLimit replaces the configured tl when positive.
	TimeLimit time.Duration
	// MemoryLimitMB replaces the configured ml when positive.
	MemoryLimitMB int
}

// stressFile is one scratch file of a stress round and the suffix it is saved under.
type stressFile struct {
	path   string
	suffix string
}

type stressRound struct {
	gen, checker, model, user ports.Program
	mtl, tl                   time.Duration
}

// Stress compares a solution against the model on random generated inputs.
// Rounds that fail are saved under stress_tests.
func (a *App) Stress(ctx context.Context, cfg *domain.ProblemConfig, opts StressOptions) (domain.CheckReport, error) {
	if opts.Solution == "" {
		return domain.CheckReport{}, zerr.Wrap(domain.ErrMissingParam, "stress requires a solution")
	}
	round, err := a.prepareStress(ctx, cfg, opts)
	if err != nil {
		return domain.CheckReport{}, err
	}

	if err := a.files.Reset(cfg.Path(domain.StressDirName)); err != nil {
		return domain.CheckReport{}, err
	}

	journal, err := a.openJournal(cfg, "stress_"+filepath.Base(opts.Solution), "Start stress testing")
	if err != nil {
		return domain.CheckReport{}, err
	}
	defer a.closeJournal(journal)

	scratch := cfg.Path(domain.ScratchDirName)
	files := []stressFile{
		{path: filepath.Join(scratch, "problem.in"), suffix: ""},
		{path: filepath.Join(scratch, "problem.out"), suffix: ".out"},
		{path: filepath.Join(scratch, "problem.ans"), suffix: ".a"},
	}
	in, out, ans := files[0].path, files[1].path, files[2].path

	var report domain.CheckReport
	for n := 1; opts.Count < 0 || n <= opts.Count; n++ {
		if ctx.Err() != nil {
			break
		}
		for _, f := range files {
			_ = a.files.RemoveAll(f.path)
		}

		if err := a.generate(ctx, round.gen, in); err != nil {
			if ctx.Err() != nil {
				break
			}
			return report, err
		}

		mTime, uTime, msg, ok, err := a.stressOne(ctx, cfg, round, in, out, ans)
		if ctx.Err() != nil {
			journal.Printf("test %04d: m_time = %.2f, u_time = %.2f, Interrupted", n, mTime, uTime)
			break
		}
		if err != nil {
			return report, err
		}

		report.Total++
		if ok {
			report.Passed++
		} else if err := a.saveStressCase(cfg, n, files); err != nil {
			return report, err
		}
		journal.Printf("test %04d: m_time = %.2f, u_time = %.2f, %s", n, mTime, uTime, msg)
	}

	for _, f := range files {
		_ = a.files.RemoveAll(f.path)
	}
	journal.Printf("passed %d from %d\n", report.Passed, report.Total)
	return report, nil
}

func (a *App) prepareStress(ctx context.Context, cfg *domain.ProblemConfig, opts StressOptions) (*stressRound, error) {
	tl, err := timeLimit(cfg, opts.TimeLimit)
	if err != nil {
		return nil, err
	}
	ml, err := memoryLimit(cfg, opts.MemoryLimitMB)
	if err != nil {
		return nil, err
	}
	mtl := opts.ModelTimeLimit
	if mtl <= 0 {
		mtl = domain.DefaultModelTimeLimit
	}
	modelPath, err := solutionPath(cfg, opts.ModelSolution)
	if err != nil {
		return nil, err
	}

	r := &stressRound{mtl: mtl, tl: tl}
	genPath := filepath.Clean(cfg.StringOr(domain.ParamGenerator, domain.DefaultGenerator))
	if r.gen, err = a.prepare(ctx, cfg, genPath, "gen", domain.WithTestlib()); err != nil {
		return nil, err
	}
	if r.checker, err = a.prepareChecker(ctx, cfg); err != nil {
		return nil, err
	}
	if r.model, err = a.prepare(ctx, cfg, modelPath, "model_solution", domain.WithMemoryLimit(ml)); err != nil {
		return nil, err
	}
	if r.user, err = a.prepare(ctx, cfg, opts.Solution, "user_solution",
		domain.WithMemoryLimit(ml), domain.WithLanguage(domain.Language(opts.Language))); err != nil {
		return nil, err
	}
	if err := executable.FinishAll(r.gen, r.checker, r.model, r.user); err != nil {
		return nil, err
	}
	return r, nil
}

// generate writes one random input: the generator runs in mode 2 with a fresh seed.
func (a *App) generate(ctx context.Context, gen ports.Program, in string) error {
	f, err := os.Create(in) //nolint:gosec // scratch path
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create input"), "path", in)
	}
	defer f.Close() //nolint:errcheck // closed after the run completes

	res, err := gen.Execute(ctx, domain.ExecOptions{Args: fmt.Sprintf("2 %d", a.seed()), Stdout: f})
	if err != nil {
		return zerr.Wrap(err, "failed to run generator")
	}
	if res.ExitCode != 0 {
		return zerr.With(zerr.Wrap(domain.ErrGeneratorFailed, "failed to generate input"), "exit_code", res.ExitCode)
	}
	return nil
}

// stressOne runs the model and the user solution on in and judges the user output.
func (a *App) stressOne(
	ctx context.Context,
	cfg *domain.ProblemConfig,
	r *stressRound,
	in, out, ans string,
) (mTime, uTime float64, msg string, ok bool, err error) {
	res, err := runToFile(ctx, r.model, in, ans, r.mtl)
	if errors.Is(err, domain.ErrTimeoutExceeded) {
		return 0, 0, "Time-limit error at model solution (" + formatSeconds(r.mtl) + " s.)", false, nil
	}
	if err != nil {
		return 0, 0, "", false, err
	}
	mTime = res.Elapsed.Seconds()
	if res.ExitCode != 0 {
		return mTime, 0, fmt.Sprintf("Run-time error at model solution [%d]", res.ExitCode), false, nil
	}

	res, err = runToFile(ctx, r.user, in, out, r.tl)
	if errors.Is(err, domain.ErrTimeoutExceeded) {
		return mTime, 0, "Time-limit error (" + formatSeconds(r.tl) + " s.)", false, nil
	}
	if err != nil {
		return mTime, 0, "", false, err
	}
	uTime = res.Elapsed.Seconds()
	if res.ExitCode != 0 {
		return mTime, uTime, fmt.Sprintf("Run-time error [%d]", res.ExitCode), false, nil
	}

	ok, msg, err = runChecker(ctx, cfg, r.checker, in, out, ans)
	return mTime, uTime, msg, ok, err
}

// saveStressCase copies the files of failed round n that exist into stress_tests.
func (a *App) saveStressCase(cfg *domain.ProblemConfig, n int, files []stressFile) error {
	for _, f := range files {
		if _, err := os.Stat(f.path); err != nil {
			continue
		}
		if err := a.files.CopyFile(f.path, cfg.Path(domain.StressCasePath(n, f.suffix))); err != nil {
			return err
		}
	}
	return nil
}
