package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/olymper/internal/adapters/config"
	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/olymper/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const problemJSON = `{
	// floors, 2015
	"title": "",
	"short name": "floors",
	"system_name": "floors",
	"tl": 2.5,
	"ml": 256,
	"use_doall": false,
	"samples_num": null,
	"solutions": [
		{"name": "ks_fast", "path": "solutions/floors_ks_fast.cpp"},
		{"path": "solutions/floors_ks.cpp", "is_main": true},
		; legacy
		{"path": "solutions/floors_ks_slow.cpp", "is_main": false}
	]
}
`

const problemINI = `[general]
title = ???
main solution = ks
tl = 1
use_wipe

[ks_py]
path = solutions/floors_ks.py

[ks]
path = solutions/floors_ks.cpp

[ks_slow]
path = solutions/floors_ks_slow.cpp

[broken]
lang = cpp
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return config.NewLoader(log), log
}

func TestLoadProblem_JSON(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ProblemJSONName), problemJSON)

	loader, _ := newLoader(t)
	cfg, err := loader.LoadProblem(root)
	require.NoError(t, err)

	assert.Equal(t, domain.FormatJSON, cfg.Format)
	assert.Equal(t, filepath.Clean(root), cfg.Root)

	main, err := cfg.MainSolution()
	require.NoError(t, err)
	assert.Equal(t, "solutions/floors_ks.cpp", main)

	assert.Equal(t, []domain.Solution{
		{Name: "ks_fast", Path: "solutions/floors_ks_fast.cpp"},
		{Name: "floors_ks.cpp", Path: "solutions/floors_ks.cpp"},
		{Name: "floors_ks_slow.cpp", Path: "solutions/floors_ks_slow.cpp"},
	}, cfg.Solutions())

	title, err := cfg.ProblemParam("title", false)
	require.NoError(t, err)
	assert.Empty(t, title)

	name, ok := cfg.FirstParam(domain.ParamShortName...)
	require.True(t, ok)
	assert.Equal(t, "floors", name)

	tl, err := cfg.Float(domain.ParamTL, 3)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, tl, 1e-9)

	assert.False(t, cfg.Bool(domain.ParamUseDoall))
	assert.False(t, cfg.Bool("qwerty"))
	assert.True(t, cfg.HasParam(domain.ParamSamplesNum))

	_, err = cfg.ProblemParam("qwerty", false)
	require.ErrorIs(t, err, domain.ErrMissingParam)
	v, err := cfg.ProblemParam("qwerty", true)
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestLoadProblem_INI(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ProblemININame), problemINI)

	loader, log := newLoader(t)
	log.EXPECT().Warn("solution section [broken] has no path, skipped")

	cfg, err := loader.LoadProblem(root)
	require.NoError(t, err)
	assert.Equal(t, domain.FormatINI, cfg.Format)

	main, err := cfg.MainSolution()
	require.NoError(t, err)
	assert.Equal(t, "solutions/floors_ks.cpp", main)

	assert.ElementsMatch(t, []domain.Solution{
		{Name: "ks_py", Path: "solutions/floors_ks.py"},
		{Name: "ks", Path: "solutions/floors_ks.cpp"},
		{Name: "ks_slow", Path: "solutions/floors_ks_slow.cpp"},
	}, cfg.Solutions())

	title, err := cfg.ProblemParam("title", false)
	require.NoError(t, err)
	assert.Equal(t, "???", title)
	assert.True(t, cfg.Bool(domain.ParamUseWipe))

	_, err = cfg.ProblemParam("qwerty", false)
	require.ErrorIs(t, err, domain.ErrMissingParam)
}

func TestLoadProblem_JSONWinsOverINI(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ProblemJSONName), `{"title": "json"}`)
	writeFile(t, filepath.Join(root, domain.ProblemININame), "[general]\ntitle = ini\n")

	loader, _ := newLoader(t)
	cfg, err := loader.LoadProblem(root)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.StringOr(domain.ParamTitle, ""))
}

func TestLoadProblem_Discovery(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ProblemJSONName), `{"title": "up"}`)
	nested := filepath.Join(root, "solutions", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	loader, _ := newLoader(t)
	cfg, err := loader.LoadProblem(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(root), cfg.Root)

	tooDeep := filepath.Join(nested, "more")
	require.NoError(t, os.MkdirAll(tooDeep, 0o750))
	_, err = loader.LoadProblem(tooDeep)
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestLoadProblem_Malformed(t *testing.T) {
	tests := map[string]string{
		"syntax":     `{"title": `,
		"not object": `["a", "b"]`,
		"solutions":  `{"solutions": "nope"}`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, filepath.Join(root, domain.ProblemJSONName), content)

			loader, _ := newLoader(t)
			_, err := loader.LoadProblem(root)
			require.Error(t, err)
			assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
		})
	}
}

func TestLoadContest(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, domain.ContestJSONName), `{"server": "ejudge.local", "server_path": "/contests/7/"}`)
		require.NoError(t, os.MkdirAll(filepath.Join(root, "lib"), 0o750))
		problem := filepath.Join(root, "problems", "a")
		require.NoError(t, os.MkdirAll(problem, 0o750))

		loader, _ := newLoader(t)
		cfg, err := loader.LoadContest(problem)
		require.NoError(t, err)
		assert.Equal(t, filepath.Clean(root), cfg.Root)
		assert.Equal(t, "ejudge.local", cfg.Host)
		assert.Equal(t, "/contests/7/", cfg.ServerPath)
		assert.Equal(t, filepath.Join(cfg.Root, "lib"), cfg.LibDir())
	})

	t.Run("ini", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, domain.ContestININame), "[default]\ncontest_host = host\ncontest_path = /p/\n")
		require.NoError(t, os.MkdirAll(filepath.Join(root, "lib"), 0o750))
		require.NoError(t, os.MkdirAll(filepath.Join(root, "problems"), 0o750))

		loader, _ := newLoader(t)
		cfg, err := loader.LoadContest(root)
		require.NoError(t, err)
		assert.Equal(t, "host", cfg.Host)
		assert.Equal(t, "/p/", cfg.ServerPath)
	})

	t.Run("requires lib and problems", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, domain.ContestJSONName), `{}`)

		loader, _ := newLoader(t)
		_, err := loader.FindContestRoot(root)
		require.ErrorIs(t, err, domain.ErrContestNotFound)
	})
}
