package compiler

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/olymper/internal/core/ports"
)

// JavaBackend compiles into tmp/<Name>/ and runs the class with java.
type JavaBackend struct {
	compileStep
}

// NewJavaBackend creates a JavaBackend.
func NewJavaBackend(runner ports.Runner, cache ports.HashCache, logger ports.Logger) *JavaBackend {
	return &JavaBackend{compileStep{runner: runner, cache: cache, logger: logger}}
}

// Begin implements Backend.
func (b *JavaBackend) Begin(ctx context.Context, a *domain.Artifact) (*Handle, error) {
	class := strings.TrimSuffix(filepath.Base(a.SourcePath), ".java")
	outDir := filepath.Join(a.ScratchDir, class)
	run := javaRunCommand(relTo(a.WorkDir, outDir), class, a.MemoryLimitMB)

	reuse, err := b.prepare(a, filepath.Join(outDir, class+".class"))
	if err != nil {
		return nil, err
	}
	if reuse {
		return ready(a, run), nil
	}
	if err := mkdir(outDir); err != nil {
		return nil, err
	}

	flags, err := splitFlags(a.CompilerFlags)
	if err != nil {
		return nil, err
	}
	argv := append([]string{"javac"}, flags...)
	argv = append(argv, a.SourcePath, "-d", outDir)
	return b.start(ctx, a, run, argv), nil
}

// javaRunCommand builds the java invocation. Heap and stack limits are only
// passed for a positive memory limit.
func javaRunCommand(classPath, class string, mlMB int) string {
	if mlMB <= 0 {
		return fmt.Sprintf("java -cp %s %s", classPath, class)
	}
	return fmt.Sprintf("java -cp %s -Xmx%dM -Xss%dM %s", classPath, mlMB, mlMB/2, class)
}
