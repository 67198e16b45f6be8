package compiler

import (
	"context"
	"os/exec"

	"go.trai.ch/olymper/internal/core/domain"
)

// InterpretedBackend runs Python, sh and bash sources directly.
type InterpretedBackend struct {
	lookPath func(string) (string, error)
}

// NewInterpretedBackend creates an InterpretedBackend that probes PATH.
func NewInterpretedBackend() *InterpretedBackend {
	return &InterpretedBackend{lookPath: exec.LookPath}
}

// Begin implements Backend. The handle is finished immediately.
func (b *InterpretedBackend) Begin(_ context.Context, a *domain.Artifact) (*Handle, error) {
	return ready(a, b.interpreter(a.Language)+" "+relTo(a.WorkDir, a.SourcePath)), nil
}

func (b *InterpretedBackend) interpreter(lang domain.Language) string {
	switch lang {
	case domain.LanguageShell:
		return "sh"
	case domain.LanguageBash:
		return "bash"
	default:
		// Windows installs only ship "python".
		if _, err := b.lookPath("python3"); err == nil {
			return "python3"
		}
		return "python"
	}
}
