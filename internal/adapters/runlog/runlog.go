// Package runlog writes per-command journals under tmp/log with zap.
package runlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/olymper/internal/core/ports"
	"go.trai.ch/zerr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Store opens journals that append to a file and echo every line to a writer.
type Store struct {
	mu   sync.RWMutex
	echo io.Writer
}

var _ ports.RunLog = (*Store)(nil)

// New creates a Store echoing to stdout.
func New() *Store {
	return &Store{echo: os.Stdout}
}

// SetEcho changes where journal lines are echoed. Nil disables echoing.
func (s *Store) SetEcho(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.echo = w
}

// Open creates the parent directory and opens path for appending.
func (s *Store) Open(path string) (ports.Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRunLogOpenFailed.Error()), "path", path)
	}

	//nolint:gosec // journal path is derived from the problem layout
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.FilePerm)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRunLogOpenFailed.Error()), "path", path)
	}

	s.mu.RLock()
	echo := s.echo
	s.mu.RUnlock()

	sinks := []zapcore.WriteSyncer{zapcore.AddSync(f)}
	if echo != nil {
		sinks = append(sinks, zapcore.AddSync(echo))
	}

	core := zapcore.NewCore(newEncoder(), zapcore.NewMultiWriteSyncer(sinks...), zapcore.InfoLevel)
	return &journal{logger: zap.New(core), file: f}, nil
}

// newEncoder emits the bare message followed by a newline.
func newEncoder() zapcore.Encoder {
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " ",
	})
}

type journal struct {
	logger *zap.Logger
	file   *os.File
}

func (j *journal) Print(line string) {
	j.logger.Info(line)
}

func (j *journal) Printf(format string, args ...any) {
	j.logger.Info(fmt.Sprintf(format, args...))
}

func (j *journal) Close() error {
	_ = j.logger.Sync()
	if err := j.file.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close journal"), "path", j.file.Name())
	}
	return nil
}
