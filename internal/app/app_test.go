package app_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/olymper/internal/adapters/fs"
	"go.trai.ch/olymper/internal/adapters/runlog"
	"go.trai.ch/olymper/internal/app"
	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/olymper/internal/core/ports"
	"go.trai.ch/olymper/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type runFunc func(opts domain.ExecOptions) (*domain.ExecutionResult, error)

type fixture struct {
	t          *testing.T
	ctrl       *gomock.Controller
	root       string
	loader     *mocks.MockConfigLoader
	runner     *mocks.MockRunner
	converter  *mocks.MockStatementConverter
	uploader   *mocks.MockUploader
	creds      *mocks.MockCredentialStore
	scaffolder *mocks.MockScaffolder
	importer   *mocks.MockPackageImporter
	journal    *bytes.Buffer
	stdout     *bytes.Buffer
	stdin      *strings.Reader
	programs   map[string]runFunc
	artifacts  map[string]domain.Artifact
	app        *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		t:          t,
		ctrl:       ctrl,
		root:       t.TempDir(),
		loader:     mocks.NewMockConfigLoader(ctrl),
		runner:     mocks.NewMockRunner(ctrl),
		converter:  mocks.NewMockStatementConverter(ctrl),
		uploader:   mocks.NewMockUploader(ctrl),
		creds:      mocks.NewMockCredentialStore(ctrl),
		scaffolder: mocks.NewMockScaffolder(ctrl),
		importer:   mocks.NewMockPackageImporter(ctrl),
		journal:    &bytes.Buffer{},
		stdout:     &bytes.Buffer{},
		stdin:      strings.NewReader(""),
		programs:   map[string]runFunc{},
		artifacts:  map[string]domain.Artifact{},
	}

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	factory := mocks.NewMockProgramFactory(ctrl)
	factory.EXPECT().Prepare(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a domain.Artifact) (ports.Program, error) {
			run, ok := f.programs[a.Target]
			if !ok {
				t.Fatalf("unexpected program %q", a.Target)
			}
			f.artifacts[a.Target] = a

			p := mocks.NewMockProgram(ctrl)
			p.EXPECT().FinishCompilation().Return(nil).AnyTimes()
			p.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, opts domain.ExecOptions) (*domain.ExecutionResult, error) {
					return run(opts)
				}).AnyTimes()
			return p, nil
		}).AnyTimes()

	journals := runlog.New()
	journals.SetEcho(f.journal)

	f.app = app.New(f.loader, factory, f.runner, journals, fs.NewCopier(fs.NewWalker()), log).
		WithStatements(f.converter).
		WithUpload(f.uploader, f.creds, fs.NewVerifier()).
		WithScaffolding(f.scaffolder, f.importer).
		WithIO(f.stdin, f.stdout, io.Discard).
		WithClock(func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) })
	return f
}

// problem returns a JSON-style problem config rooted at the fixture root.
func (f *fixture) problem(params map[string]string, solutions ...domain.Solution) *domain.ProblemConfig {
	main := ""
	if len(solutions) > 0 {
		main = solutions[0].Path
	}
	return domain.NewProblemConfig(f.root, domain.FormatJSON, params, solutions, main)
}

func (f *fixture) program(target string, run runFunc) {
	f.programs[target] = run
}

func (f *fixture) write(files map[string]string) {
	f.t.Helper()
	for name, content := range files {
		p := filepath.Join(f.root, filepath.FromSlash(name))
		require.NoError(f.t, os.MkdirAll(filepath.Dir(p), 0o750))
		require.NoError(f.t, os.WriteFile(p, []byte(content), 0o600))
	}
}

func (f *fixture) read(name string) string {
	f.t.Helper()
	data, err := os.ReadFile(filepath.Join(f.root, filepath.FromSlash(name)))
	require.NoError(f.t, err)
	return string(data)
}

func ok(elapsed time.Duration) *domain.ExecutionResult {
	return &domain.ExecutionResult{Elapsed: elapsed}
}

func withStderr(code int, stderr string) *domain.ExecutionResult {
	return &domain.ExecutionResult{ExitCode: code, Stderr: &stderr}
}

var mainSolution = domain.Solution{Name: "main", Path: "solutions/main.cpp"}

func TestApp_Check(t *testing.T) {
	f := newFixture(t)
	cfg := f.problem(map[string]string{domain.ParamTL: "1.5", domain.ParamML: "128"}, mainSolution)
	f.write(map[string]string{
		"tests/01": "1 2\n", "tests/01.a": "3\n",
		"tests/02": "5 5\n", "tests/02.a": "10\n",
		"tests/03": "0 0\n", "tests/03.a": "0\n",
	})

	f.program("solution", func(opts domain.ExecOptions) (*domain.ExecutionResult, error) {
		assert.Equal(t, 1500*time.Millisecond, opts.Timeout)
		in, err := io.ReadAll(opts.Stdin)
		require.NoError(t, err)
		switch string(in) {
		case "5 5\n":
			return nil, zerr.Wrap(domain.ErrTimeoutExceeded, "process killed")
		case "0 0\n":
			return &domain.ExecutionResult{ExitCode: 1}, nil
		}
		_, _ = io.WriteString(opts.Stdout, "3\n")
		return ok(250 * time.Millisecond), nil
	})
	var checkerArgs []string
	f.program("checker", func(opts domain.ExecOptions) (*domain.ExecutionResult, error) {
		checkerArgs = append(checkerArgs, opts.Args)
		assert.Equal(t, "3\n", f.read("tmp/problem.out"))
		return withStderr(0, "ok 1 number(s)"), nil
	})

	report, err := f.app.Check(context.Background(), cfg, app.CheckOptions{})
	require.NoError(t, err)
	assert.Equal(t, domain.CheckReport{Passed: 1, Total: 3}, report)

	out := f.journal.String()
	assert.Contains(t, out, "Checking solution solutions/main.cpp (2024-03-01 10:00:00.000000)...")
	assert.Contains(t, out, "test 01: time = 0.25, ok 1 number(s)\n")
	assert.Contains(t, out, "test 02: time = 0.00, Time-limit error (1.5 s.)\n")
	assert.Contains(t, out, "test 03: time = 0.00, Run-time error [1]\n")
	assert.Contains(t, out, "passed 1 from 3\n")

	want := strings.Join([]string{
		filepath.Join("tests", "01"),
		filepath.Join("tmp", "problem.out"),
		filepath.Join("tests", "01.a"),
	}, " ")
	assert.Equal(t, []string{want}, checkerArgs)

	assert.Equal(t, 128, f.artifacts["solution"].MemoryLimitMB)
	assert.True(t, f.artifacts["checker"].UseTestlib)
	assert.Equal(t, filepath.Join(f.root, "check.cpp"), f.artifacts["checker"].SourcePath)
	assert.NoFileExists(t, filepath.Join(f.root, "tmp", "problem.out"))
	assert.FileExists(t, filepath.Join(f.root, "tmp", "log", "main.cpp.log"))
}

func TestApp_Check_Overrides(t *testing.T) {
	f := newFixture(t)
	cfg := f.problem(nil, mainSolution)
	f.write(map[string]string{"tests/01": "1\n", "tests/01.a": "1\n"})

	f.program("solution", func(opts domain.ExecOptions) (*domain.ExecutionResult, error) {
		assert.Equal(t, 2*time.Second, opts.Timeout)
		return nil, zerr.Wrap(domain.ErrTimeoutExceeded, "process killed")
	})
	f.program("checker", func(domain.ExecOptions) (*domain.ExecutionResult, error) {
		t.Fatal("checker must not run after a timeout")
		return nil, nil
	})

	report, err := f.app.Check(context.Background(), cfg, app.CheckOptions{
		Solution:      "solutions/slow.py",
		TimeLimit:     2 * time.Second,
		MemoryLimitMB: 64,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CheckReport{Passed: 0, Total: 1}, report)
	assert.Contains(t, f.journal.String(), "Time-limit error (2.0 s.)")
	assert.Equal(t, 64, f.artifacts["solution"].MemoryLimitMB)
	assert.Equal(t, filepath.Join(f.root, "solutions", "slow.py"), f.artifacts["solution"].SourcePath)
}

func TestApp_Check_NoTests(t *testing.T) {
	f := newFixture(t)
	cfg := f.problem(nil, mainSolution)
	f.program("solution", func(domain.ExecOptions) (*domain.ExecutionResult, error) { return ok(0), nil })
	f.program("checker", func(domain.ExecOptions) (*domain.ExecutionResult, error) { return ok(0), nil })

	_, err := f.app.Check(context.Background(), cfg, app.CheckOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTestsNotFound)
}

func TestApp_Check_NoMainSolution(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.Check(context.Background(), f.problem(nil), app.CheckOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoMainSolution)
}

func TestApp_CheckAll(t *testing.T) {
	f := newFixture(t)
	cfg := f.problem(nil, mainSolution, domain.Solution{Name: "wrong", Path: "solutions/wa.py"})
	f.write(map[string]string{"tests/01": "1\n", "tests/01.a": "1\n", "tests/02": "2\n", "tests/02.a": "2\n"})

	f.program("solution", func(opts domain.ExecOptions) (*domain.ExecutionResult, error) {
		in, _ := io.ReadAll(opts.Stdin)
		_, _ = opts.Stdout.Write(in)
		return ok(0), nil
	})
	f.program("checker", func(opts domain.ExecOptions) (*domain.ExecutionResult, error) {
		if strings.HasSuffix(f.artifacts["solution"].SourcePath, "wa.py") && strings.Contains(opts.Args, "02") {
			return withStderr(1, "wrong answer"), nil
		}
		return ok(0), nil
	})

	reports, err := f.app.CheckAll(context.Background(), cfg, app.CheckOptions{})
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, domain.CheckReport{Passed: 2, Total: 2}, reports[0].Report)
	assert.Equal(t, domain.CheckReport{Passed: 1, Total: 2}, reports[1].Report)
	assert.Equal(t, "main (solutions/main.cpp): [2 / 2]\nwrong (solutions/wa.py): [1 / 2]\n", f.stdout.String())
	assert.Contains(t, f.journal.String(), "test 02: time = 0.00, wrong answer [1]")
}

func TestApp_Validate(t *testing.T) {
	f := newFixture(t)
	cfg := f.problem(map[string]string{domain.ParamValidator: "files/val.cpp"})
	f.write(map[string]string{"tests/01": "1 2\n", "tests/02": "-1 2\n"})

	f.program("validator", func(opts domain.ExecOptions) (*domain.ExecutionResult, error) {
		in, _ := io.ReadAll(opts.Stdin)
		if strings.HasPrefix(string(in), "-") {
			return withStderr(3, "FAIL a must be non-negative"), nil
		}
		return ok(0), nil
	})

	report, err := f.app.Validate(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, domain.CheckReport{Passed: 1, Total: 2}, report)

	out := f.journal.String()
	assert.Contains(t, out, "Validating tests (2024-03-01 10:00:00.000000)...")
	assert.Contains(t, out, "test 01: OK\n")
	assert.Contains(t, out, "test 02: FAIL a must be non-negative [3]\n")
	assert.Contains(t, out, "correct 1 from 2\n")
	assert.FileExists(t, filepath.Join(f.root, "tmp", "log", "val.cpp.log"))
}

func TestApp_Build(t *testing.T) {
	f := newFixture(t)
	cfg := f.problem(map[string]string{domain.ParamSamplesNum: "1"}, mainSolution)

	f.program("gen", func(opts domain.ExecOptions) (*domain.ExecutionResult, error) {
		assert.Equal(t, "0", opts.Args)
		f.write(map[string]string{"tests/01": "1 2\n", "tests/02": "3 4\n"})
		return ok(0), nil
	})
	f.program("validator", func(domain.ExecOptions) (*domain.ExecutionResult, error) { return ok(0), nil })
	f.program("main_solution", func(opts domain.ExecOptions) (*domain.ExecutionResult, error) {
		in, _ := io.ReadAll(opts.Stdin)
		if string(in) == "3 4\n" {
			return &domain.ExecutionResult{ExitCode: 139}, nil
		}
		_, _ = io.WriteString(opts.Stdout, "3\n")
		return ok(10 * time.Millisecond), nil
	})
	f.write(map[string]string{"tests/stale": "x"})

	require.NoError(t, f.app.Build(context.Background(), cfg, app.BuildOptions{MemoryLimitMB: 256}))

	assert.NoFileExists(t, filepath.Join(f.root, "tests", "stale"))
	assert.Equal(t, "3\n", f.read("tests/01.a"))
	assert.Equal(t, "1 2\n", f.read("samples/01.t"))
	assert.Equal(t, "3\n", f.read("samples/01.t.a"))

	out := f.journal.String()
	assert.Contains(t, out, "Generating tests (2024-03-01 10:00:00.000000)...")
	assert.Contains(t, out, "Generating answers...")
	assert.Contains(t, out, "test 01: Generated, time = 0.01\n")
	assert.Contains(t, out, "test 02: Run-time error [139]\n")
	assert.FileExists(t, filepath.Join(f.root, "tmp", "log", "gen_main.cpp.log"))

	assert.True(t, f.artifacts["gen"].UseTestlib)
	assert.Equal(t, f.root, f.artifacts["gen"].WorkDir)
	assert.Equal(t, 256, f.artifacts["main_solution"].MemoryLimitMB)
}

func TestApp_Build_GenWorkDir(t *testing.T) {
	f := newFixture(t)
	cfg := f.problem(map[string]string{domain.ParamGenWorkDir: "tests", domain.ParamGenerator: "scripts/gen.py"}, mainSolution)

	f.program("gen", func(domain.ExecOptions) (*domain.ExecutionResult, error) {
		return &domain.ExecutionResult{ExitCode: 2}, nil
	})
	f.program("main_solution", func(domain.ExecOptions) (*domain.ExecutionResult, error) { return ok(0), nil })

	err := f.app.Build(context.Background(), cfg, app.BuildOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGeneratorFailed)
	assert.Equal(t, filepath.Join(f.root, "tests"), f.artifacts["gen"].WorkDir)
	assert.Equal(t, filepath.Join(f.root, "scripts", "gen.py"), f.artifacts["gen"].SourcePath)
}

func TestApp_Build_Doall(t *testing.T) {
	f := newFixture(t)
	cfg := f.problem(map[string]string{domain.ParamUseDoall: "true", domain.ParamDoallCmd: "bash 'doall.sh' --fast"})

	f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec domain.RunSpec) (*domain.ExecutionResult, error) {
			assert.Equal(t, []string{"bash", "doall.sh", "--fast"}, spec.Argv)
			assert.Equal(t, f.root, spec.WorkDir)
			assert.Equal(t, domain.UnlimitedMemory, spec.MemoryLimitMB)
			return ok(0), nil
		})

	require.NoError(t, f.app.Build(context.Background(), cfg, app.BuildOptions{}))
}

func TestApp_Build_DoallFails(t *testing.T) {
	f := newFixture(t)
	cfg := f.problem(map[string]string{domain.ParamUseDoall: "1"})

	f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec domain.RunSpec) (*domain.ExecutionResult, error) {
			assert.Equal(t, []string{"sh", "doall.sh"}, spec.Argv)
			return &domain.ExecutionResult{ExitCode: 2}, nil
		})

	err := f.app.Build(context.Background(), cfg, app.BuildOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrScriptFailed)
}
