package compiler

import (
	"context"

	"github.com/google/shlex"
	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/olymper/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultCXXFlags are used for C and C++ when the artifact sets none.
const DefaultCXXFlags = "-O2 -Wall -xc++ -std=c++11"

// NativeBackend builds C, C++, Pascal and Delphi sources into tmp/<basename>.out.
type NativeBackend struct {
	compileStep
}

// NewNativeBackend creates a NativeBackend.
func NewNativeBackend(runner ports.Runner, cache ports.HashCache, logger ports.Logger) *NativeBackend {
	return &NativeBackend{compileStep{runner: runner, cache: cache, logger: logger}}
}

// Begin implements Backend.
func (b *NativeBackend) Begin(ctx context.Context, a *domain.Artifact) (*Handle, error) {
	out := domain.BinaryPath(a.ScratchDir, a.SourcePath)
	run := localCommand(a.WorkDir, out)

	reuse, err := b.prepare(a, out)
	if err != nil {
		return nil, err
	}
	if reuse {
		return ready(a, run), nil
	}

	argv, err := nativeArgv(a, out)
	if err != nil {
		return nil, err
	}
	return b.start(ctx, a, run, argv), nil
}

func nativeArgv(a *domain.Artifact, out string) ([]string, error) {
	switch a.Language {
	case domain.LanguagePascal, domain.LanguageDelphi:
		flags, err := splitFlags(a.CompilerFlags)
		if err != nil {
			return nil, err
		}
		argv := []string{"fpc"}
		if a.Language == domain.LanguageDelphi {
			argv = append(argv, "-MDELPHI")
		}
		argv = append(argv, flags...)
		return append(argv, a.SourcePath, "-o"+out), nil

	default:
		raw := a.CompilerFlags
		if raw == "" {
			raw = DefaultCXXFlags
		}
		flags, err := splitFlags(raw)
		if err != nil {
			return nil, err
		}
		argv := append([]string{"g++"}, flags...)
		if a.UseTestlib {
			argv = append(argv, "-I"+a.TestlibDir)
		}
		return append(argv, a.SourcePath, "-o", out), nil
	}
}

// splitFlags tokenizes a flag string with shell quoting rules.
func splitFlags(flags string) ([]string, error) {
	out, err := shlex.Split(flags)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidCompilerFlags, err.Error()), "flags", flags)
	}
	return out, nil
}
