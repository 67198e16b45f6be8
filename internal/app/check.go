package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/olymper/internal/core/ports"
	"go.trai.ch/olymper/internal/engine/executable"
)

// outputName is the scratch file a checked solution writes to.
const outputName = "problem.out"

// CheckOptions configures Check and CheckAll.
type CheckOptions struct {
	// Solution replaces the main solution. Ignored by CheckAll.
	Solution string
	// Language forces the solution's language by name. Ignored by CheckAll.
	Language string
	// TimeLimit replaces the configured tl when positive.
	TimeLimit time.Duration
	// MemoryLimitMB replaces the configured ml when positive.
	MemoryLimitMB int
}

// SolutionReport is the CheckAll result for one solution.
type SolutionReport struct {
	Solution domain.Solution
	Report   domain.CheckReport
}

// Check runs a solution on every test and judges each output with the checker.
func (a *App) Check(ctx context.Context, cfg *domain.ProblemConfig, opts CheckOptions) (domain.CheckReport, error) {
	tl, err := timeLimit(cfg, opts.TimeLimit)
	if err != nil {
		return domain.CheckReport{}, err
	}
	ml, err := memoryLimit(cfg, opts.MemoryLimitMB)
	if err != nil {
		return domain.CheckReport{}, err
	}
	solutionFile, err := solutionPath(cfg, opts.Solution)
	if err != nil {
		return domain.CheckReport{}, err
	}

	solution, err := a.prepare(ctx, cfg, solutionFile, "solution",
		domain.WithMemoryLimit(ml), domain.WithLanguage(domain.Language(opts.Language)))
	if err != nil {
		return domain.CheckReport{}, err
	}
	checker, err := a.prepareChecker(ctx, cfg)
	if err != nil {
		return domain.CheckReport{}, err
	}
	if err := executable.FinishAll(solution, checker); err != nil {
		return domain.CheckReport{}, err
	}

	tests, err := domain.ListTests(cfg.Path(domain.TestsDirName), cfg.TestNumWidth())
	if err != nil {
		return domain.CheckReport{}, err
	}

	journal, err := a.openJournal(cfg, filepath.Base(solutionFile), "Checking solution "+solutionFile)
	if err != nil {
		return domain.CheckReport{}, err
	}
	defer a.closeJournal(journal)

	out := cfg.Path(filepath.Join(domain.ScratchDirName, outputName))
	report := domain.CheckReport{Total: len(tests)}
	for _, t := range tests {
		elapsed, msg, ok, err := a.checkOne(ctx, cfg, solution, checker, t, out, tl)
		_ = a.files.RemoveAll(out)
		if ctx.Err() != nil {
			journal.Printf("test %s: time = %.2f, Interrupted", t.Name(), elapsed)
			break
		}
		if err != nil {
			return report, err
		}
		if ok {
			report.Passed++
		}
		journal.Printf("test %s: time = %.2f, %s", t.Name(), elapsed, msg)
	}

	journal.Printf("passed %d from %d\n", report.Passed, report.Total)
	return report, nil
}

// CheckAll checks every configured solution and prints a summary line for each.
func (a *App) CheckAll(ctx context.Context, cfg *domain.ProblemConfig, opts CheckOptions) ([]SolutionReport, error) {
	solutions := cfg.Solutions()
	reports := make([]SolutionReport, 0, len(solutions))
	for _, sol := range solutions {
		o := opts
		o.Solution = sol.Path
		o.Language = ""
		report, err := a.Check(ctx, cfg, o)
		if err != nil {
			return reports, err
		}
		reports = append(reports, SolutionReport{Solution: sol, Report: report})
		if ctx.Err() != nil {
			break
		}
	}

	for _, r := range reports {
		_, _ = fmt.Fprintf(a.stdout, "%s (%s): [%d / %d]\n",
			r.Solution.Name, r.Solution.Path, r.Report.Passed, r.Report.Total)
	}
	return reports, nil
}

func (a *App) prepareChecker(ctx context.Context, cfg *domain.ProblemConfig) (ports.Program, error) {
	path := filepath.Clean(cfg.StringOr(domain.ParamChecker, domain.DefaultChecker))
	return a.prepare(ctx, cfg, path, "checker", domain.WithTestlib())
}

// checkOne runs solution on t and judges the output. Failures of the solution are
// verdicts, not errors.
func (a *App) checkOne(
	ctx context.Context,
	cfg *domain.ProblemConfig,
	solution, checker ports.Program,
	t domain.TestCase,
	out string,
	tl time.Duration,
) (float64, string, bool, error) {
	res, err := runToFile(ctx, solution, t.InputPath(), out, tl)
	if errors.Is(err, domain.ErrTimeoutExceeded) {
		return 0, "Time-limit error (" + formatSeconds(tl) + " s.)", false, nil
	}
	if err != nil {
		return 0, "", false, err
	}

	elapsed := res.Elapsed.Seconds()
	if res.ExitCode != 0 {
		return elapsed, fmt.Sprintf("Run-time error [%d]", res.ExitCode), false, nil
	}

	ok, msg, err := runChecker(ctx, cfg, checker, t.InputPath(), out, t.AnswerPath())
	return elapsed, msg, ok, err
}

// runChecker invokes "checker input output answer" and turns its exit status into a verdict.
func runChecker(
	ctx context.Context,
	cfg *domain.ProblemConfig,
	checker ports.Program,
	in, out, ans string,
) (bool, string, error) {
	args := strings.Join([]string{relPath(cfg, in), relPath(cfg, out), relPath(cfg, ans)}, " ")
	res, err := checker.Execute(ctx, domain.ExecOptions{Args: args})
	if err != nil {
		return false, "", err
	}
	if res.ExitCode != 0 {
		return false, fmt.Sprintf("%s [%d]", res.StderrText(), res.ExitCode), nil
	}
	if stderr := res.StderrText(); stderr != "" {
		return true, stderr, nil
	}
	return true, "OK", nil
}
