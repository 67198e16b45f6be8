package compiler

// NewInterpretedBackendWithLookPath creates an InterpretedBackend with a stubbed PATH probe.
func NewInterpretedBackendWithLookPath(lookPath func(string) (string, error)) *InterpretedBackend {
	return &InterpretedBackend{lookPath: lookPath}
}

// JavaRunCommand exposes javaRunCommand.
var JavaRunCommand = javaRunCommand
