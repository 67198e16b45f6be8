package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/olymper/internal/adapters/logger"
	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/zerr"
)

func newBufferedLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)
	return l, buf
}

func TestLogger_Levels(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Info("Compiling sol.cpp")
	l.Warn("Using previous version of binary")
	l.Error(errors.New("boom"))

	g := goldie.New(t)
	g.Assert(t, "logger_levels", buf.Bytes())
}

func TestLogger_ErrorChain(t *testing.T) {
	l, buf := newBufferedLogger(t)

	err := zerr.With(
		zerr.Wrap(&domain.CompilationError{Path: "sol.cpp", ExitCode: 1, Diagnostics: "sol.cpp:1: error"}, "build failed"),
		"problem", "a-plus-b",
	)
	l.Error(err)

	g := goldie.New(t)
	g.Assert(t, "logger_error_chain", buf.Bytes())
}

func TestLogger_ErrorNil(t *testing.T) {
	l, buf := newBufferedLogger(t)
	l.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	l, buf := newBufferedLogger(t)
	l.SetJSON(true)

	l.Info("hello")
	l.Error(zerr.Wrap(errors.New("disk full"), "write failed"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var info, failure map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &info))
	require.NoError(t, json.Unmarshal(lines[1], &failure))

	assert.Equal(t, "INFO", info["level"])
	assert.Equal(t, "hello", info["msg"])
	assert.Equal(t, "ERROR", failure["level"])
	assert.Equal(t, "write failed: disk full", failure["error"])
}

func TestLogger_SetJSONKeepsOutput(t *testing.T) {
	l, buf := newBufferedLogger(t)
	l.SetJSON(true)
	l.SetJSON(false)

	l.Info("still here")
	assert.Equal(t, "still here\n", buf.String())
}
