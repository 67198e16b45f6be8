package domain_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/olymper/internal/core/domain"
)

func TestNormalizeOutput(t *testing.T) {
	t.Parallel()

	assert.Nil(t, domain.NormalizeOutput(nil))
	assert.Nil(t, domain.NormalizeOutput([]byte{}))

	got := domain.NormalizeOutput([]byte("stdout example\n"))
	require.NotNil(t, got)
	assert.Equal(t, "stdout example", *got)

	// Only one trailing newline is stripped.
	got = domain.NormalizeOutput([]byte("a\n\n"))
	require.NotNil(t, got)
	assert.Equal(t, "a\n", *got)

	got = domain.NormalizeOutput([]byte("\n"))
	require.NotNil(t, got)
	assert.Empty(t, *got)
}

func TestExecutionResult_Text(t *testing.T) {
	t.Parallel()

	var nilResult *domain.ExecutionResult
	assert.Empty(t, nilResult.StdoutText())

	out := "x"
	res := &domain.ExecutionResult{Stdout: &out}
	assert.Equal(t, "x", res.StdoutText())
	assert.Empty(t, res.StderrText())
}

func TestCompileState_Transitions(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.StatePending.CanTransition(domain.StateCompiling))
	assert.True(t, domain.StatePending.CanTransition(domain.StateCompiledOK))
	assert.True(t, domain.StateCompiling.CanTransition(domain.StateCompiledOK))
	assert.True(t, domain.StateCompiling.CanTransition(domain.StateCompiledError))

	assert.False(t, domain.StateCompiling.CanTransition(domain.StatePending))
	assert.False(t, domain.StateCompiledOK.CanTransition(domain.StateCompiling))
	assert.False(t, domain.StateCompiledError.CanTransition(domain.StateCompiledOK))

	assert.Equal(t, "compiled_error", domain.StateCompiledError.String())
}

func TestCompilationError(t *testing.T) {
	t.Parallel()

	err := error(&domain.CompilationError{Path: "sol.cpp", ExitCode: 1, Diagnostics: "sol.cpp:1: error\n"})
	assert.True(t, errors.Is(err, domain.ErrCompilationFailed))
	assert.Contains(t, err.Error(), "sol.cpp")
	assert.Contains(t, err.Error(), "exit code 1")
	assert.Contains(t, err.Error(), "sol.cpp:1: error")

	var ce *domain.CompilationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 1, ce.ExitCode)
}

func TestNewArtifact_Defaults(t *testing.T) {
	t.Parallel()

	a := domain.NewArtifact("sol.cpp", "solution")
	assert.Equal(t, ".", a.WorkDir)
	assert.Equal(t, domain.DefaultMemoryLimitMB, a.MemoryLimitMB)
	assert.True(t, a.UsePrecompiled)
	assert.True(t, a.SaveCompiled)
	assert.Equal(t, domain.ScratchDirName, a.ScratchDir)

	a = domain.NewArtifact("gen.cpp", "gen", domain.WithTestlib(), domain.WithWorkDir(""), domain.WithoutCache())
	assert.True(t, a.UseTestlib)
	assert.Equal(t, ".", a.WorkDir)
	assert.False(t, a.UsePrecompiled)
	assert.False(t, a.SaveCompiled)
}

func TestLayoutPaths(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("tmp", "sol.cpp.hash"), domain.HashRecordPath("tmp", "a/b/sol.cpp"))
	assert.Equal(t, filepath.Join("tmp", "sol.cpp.out"), domain.BinaryPath("tmp", "a/b/sol.cpp"))
	assert.Equal(t, filepath.Join("stress_tests", "0007.out"), domain.StressCasePath(7, ".out"))
}

func TestListTests(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"01", "01.a", "02", "04"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("1\n"), 0o600))
	}

	tests, err := domain.ListTests(dir, 2)
	require.NoError(t, err)
	require.Len(t, tests, 2)
	assert.Equal(t, "02", tests[1].Name())
	assert.Equal(t, filepath.Join(dir, "01.a"), tests[0].AnswerPath())
	assert.Equal(t, filepath.Join("samples", "01.t.a"), tests[0].SampleAnswerPath("samples"))

	_, err = domain.ListTests(filepath.Join(dir, "missing"), 2)
	require.ErrorIs(t, err, domain.ErrTestsNotFound)
}

func TestProblemConfig_Params(t *testing.T) {
	t.Parallel()

	cfg := domain.NewProblemConfig("/p", domain.FormatJSON, map[string]string{
		"title":      "",
		"tl":         "1.5",
		"ml":         "256",
		"use_doall":  "true",
		"short_name": "floors",
	}, []domain.Solution{{Name: "ks", Path: "solutions/ks.cpp"}}, "solutions/ks.cpp")

	v, err := cfg.ProblemParam("title", false)
	require.NoError(t, err)
	assert.Empty(t, v)

	v, err = cfg.ProblemParam("qwerty", true)
	require.NoError(t, err)
	assert.Empty(t, v)

	_, err = cfg.ProblemParam("qwerty", false)
	require.ErrorIs(t, err, domain.ErrMissingParam)

	tl, err := cfg.Float(domain.ParamTL, 3)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, tl, 1e-9)

	ml, err := cfg.Int(domain.ParamML, 512)
	require.NoError(t, err)
	assert.Equal(t, 256, ml)

	width := cfg.TestNumWidth()
	assert.Equal(t, domain.DefaultTestNumWidth, width)

	assert.True(t, cfg.Bool(domain.ParamUseDoall))
	assert.False(t, cfg.Bool("qwerty"))

	name, ok := cfg.FirstParam(domain.ParamShortName...)
	assert.True(t, ok)
	assert.Equal(t, "floors", name)

	main, err := cfg.MainSolution()
	require.NoError(t, err)
	assert.Equal(t, "solutions/ks.cpp", main)
	assert.Equal(t, filepath.Join("/p", "tests"), cfg.Path("tests"))
}

func TestProblemConfig_InvalidNumber(t *testing.T) {
	t.Parallel()

	cfg := domain.NewProblemConfig(".", domain.FormatINI, map[string]string{"tl": "fast"}, nil, "")
	_, err := cfg.Float(domain.ParamTL, 3)
	require.ErrorIs(t, err, domain.ErrInvalidParam)

	_, err = cfg.MainSolution()
	require.ErrorIs(t, err, domain.ErrNoMainSolution)
}
