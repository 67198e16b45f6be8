package executable_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/olymper/internal/core/ports/mocks"
	"go.trai.ch/olymper/internal/engine/compiler"
	"go.trai.ch/olymper/internal/engine/executable"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	ctrl    *gomock.Controller
	runner  *mocks.MockRunner
	cache   *mocks.MockHashCache
	logger  *mocks.MockLogger
	factory *executable.Factory
	root    string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:   ctrl,
		runner: mocks.NewMockRunner(ctrl),
		cache:  mocks.NewMockHashCache(ctrl),
		logger: mocks.NewMockLogger(ctrl),
		root:   t.TempDir(),
	}
	f.factory = executable.NewFactory(compiler.NewRegistry(f.runner, f.cache, f.logger), f.runner, f.logger)
	return f
}

func (f *fixture) artifact(name, target string, opts ...domain.ArtifactOption) domain.Artifact {
	base := []domain.ArtifactOption{
		domain.WithWorkDir(f.root),
		domain.WithScratchDir(filepath.Join(f.root, "tmp")),
		domain.WithoutCache(),
	}
	return domain.NewArtifact(filepath.Join(f.root, name), target, append(base, opts...)...)
}

func TestPrepare_InterpretedIsCompiledImmediately(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Info("Starting compilation of generator")

	p, err := f.factory.Prepare(context.Background(), f.artifact("gen.sh", "generator"))
	require.NoError(t, err)
	assert.Equal(t, domain.StateCompiledOK, p.State())
	assert.Equal(t, domain.LanguageShell, p.Artifact().Language)

	f.runner.EXPECT().
		Run(gomock.Any(), domain.RunSpec{
			Command:       "sh gen.sh",
			Args:          "2 17",
			WorkDir:       f.root,
			MemoryLimitMB: domain.DefaultMemoryLimitMB,
			Timeout:       time.Second,
		}).
		Return(&domain.ExecutionResult{ExitCode: 0}, nil)

	res, err := p.Execute(context.Background(), domain.ExecOptions{Args: "2 17", Timeout: time.Second})
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
}

func TestPrepare_UnknownLanguage(t *testing.T) {
	f := newFixture(t)

	_, err := f.factory.Prepare(context.Background(), f.artifact("notes.txt", "notes"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownLanguage))
}

func TestPrepare_ExplicitLanguage(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Info("Starting compilation of solution")

	p, err := f.factory.Prepare(context.Background(),
		f.artifact("solve.txt", "solution", domain.WithLanguage("Python")))
	require.NoError(t, err)
	assert.Equal(t, domain.LanguagePython3, p.Artifact().Language)
	assert.Equal(t, domain.StateCompiledOK, p.State())
}

func TestPrepare_UnknownExplicitLanguage(t *testing.T) {
	f := newFixture(t)

	_, err := f.factory.Prepare(context.Background(),
		f.artifact("sol.cpp", "solution", domain.WithLanguage("Rust")))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownLanguage)
	assert.NotErrorIs(t, err, domain.ErrNoBackend)
}

func TestProgram_LazilyFinishesBeforeExecute(t *testing.T) {
	f := newFixture(t)
	a := f.artifact("sol.cpp", "main_solution")
	proc := mocks.NewMockProcess(f.ctrl)

	f.logger.EXPECT().Info("Starting compilation of main_solution")
	f.runner.EXPECT().Start(gomock.Any(), gomock.Any()).Return(proc, nil)

	p, err := f.factory.Prepare(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, domain.StateCompiling, p.State())

	gomock.InOrder(
		f.logger.EXPECT().Info("Finishing compilation of main_solution"),
		proc.EXPECT().Wait().Return(&domain.ExecutionResult{}, nil).Times(1),
		f.logger.EXPECT().Info("Compilation of main_solution finished"),
		f.runner.EXPECT().
			Run(gomock.Any(), domain.RunSpec{
				Command:       "./" + filepath.Join("tmp", "sol.cpp.out"),
				WorkDir:       f.root,
				MemoryLimitMB: domain.DefaultMemoryLimitMB,
			}).
			Return(&domain.ExecutionResult{ExitCode: 0}, nil).
			Times(2),
	)

	_, err = p.Execute(context.Background(), domain.ExecOptions{})
	require.NoError(t, err)
	assert.Equal(t, domain.StateCompiledOK, p.State())

	// The second run does not wait for the compiler again.
	_, err = p.Execute(context.Background(), domain.ExecOptions{})
	require.NoError(t, err)
	require.NoError(t, p.FinishCompilation())
}

func TestProgram_CompilationErrorIsSticky(t *testing.T) {
	f := newFixture(t)
	a := f.artifact("sol.cpp", "main_solution")
	proc := mocks.NewMockProcess(f.ctrl)
	diag := "sol.cpp:1: error"

	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(diag)
	f.runner.EXPECT().Start(gomock.Any(), gomock.Any()).Return(proc, nil)
	proc.EXPECT().Wait().Return(&domain.ExecutionResult{ExitCode: 1, Stderr: &diag}, nil).Times(1)

	p, err := f.factory.Prepare(context.Background(), a)
	require.NoError(t, err)

	err = p.FinishCompilation()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCompilationFailed))
	assert.Equal(t, domain.StateCompiledError, p.State())

	again := p.FinishCompilation()
	assert.Same(t, err, again)

	_, err = p.Execute(context.Background(), domain.ExecOptions{})
	assert.True(t, errors.Is(err, domain.ErrCompilationFailed))
}

func TestProgram_JavaSkipsMemoryLimit(t *testing.T) {
	f := newFixture(t)
	a := f.artifact("Main.java", "main_solution", domain.WithMemoryLimit(256))
	proc := mocks.NewMockProcess(f.ctrl)

	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.runner.EXPECT().Start(gomock.Any(), gomock.Any()).Return(proc, nil)
	proc.EXPECT().Wait().Return(&domain.ExecutionResult{}, nil)

	var got domain.RunSpec
	f.runner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, spec domain.RunSpec) (*domain.ExecutionResult, error) {
			got = spec
			return &domain.ExecutionResult{}, nil
		})

	p, err := f.factory.Prepare(context.Background(), a)
	require.NoError(t, err)
	_, err = p.Execute(context.Background(), domain.ExecOptions{})
	require.NoError(t, err)

	assert.True(t, got.SkipMemoryLimit)
	assert.Equal(t, 256, got.MemoryLimitMB)
	assert.Equal(t, "java -cp "+filepath.Join("tmp", "Main")+" -Xmx256M -Xss128M Main", got.Command)
}

func TestProgram_TimeoutIsReturned(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.runner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrTimeoutExceeded)

	p, err := f.factory.Prepare(context.Background(), f.artifact("sol.py", "solution"))
	require.NoError(t, err)

	_, err = p.Execute(context.Background(), domain.ExecOptions{Timeout: time.Millisecond})
	assert.True(t, errors.Is(err, domain.ErrTimeoutExceeded))
}

func TestFinishAll(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	good := mocks.NewMockProcess(f.ctrl)
	bad := mocks.NewMockProcess(f.ctrl)
	f.runner.EXPECT().Start(gomock.Any(), gomock.Any()).Return(good, nil)
	f.runner.EXPECT().Start(gomock.Any(), gomock.Any()).Return(bad, nil)
	good.EXPECT().Wait().Return(&domain.ExecutionResult{}, nil)
	bad.EXPECT().Wait().Return(&domain.ExecutionResult{ExitCode: 1}, nil)

	p1, err := f.factory.Prepare(context.Background(), f.artifact("check.cpp", "checker"))
	require.NoError(t, err)
	p2, err := f.factory.Prepare(context.Background(), f.artifact("gen.cpp", "generator"))
	require.NoError(t, err)

	err = executable.FinishAll(p1, nil, p2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCompilationFailed))

	// Both compilations were collected.
	assert.NotEqual(t, domain.StateCompiling, p1.State())
	assert.NotEqual(t, domain.StateCompiling, p2.State())
}
