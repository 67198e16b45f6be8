package domain

// DefaultMemoryLimitMB is the memory ceiling applied when the caller sets none.
const DefaultMemoryLimitMB = 512

// UnlimitedMemory disables the address-space ceiling.
const UnlimitedMemory = -1

// Artifact is a source file together with its build and run configuration.
type Artifact struct {
	// SourcePath is the path of the source file, relative to the process working directory.
	SourcePath string
	// Target is a display name such as "checker" or "main_solution".
	Target string
	// Language is resolved from the extension when empty.
	Language Language
	// CompilerFlags replaces the backend's default flags when non-empty.
	CompilerFlags string
	// UseTestlib adds the shared testlib include directory to native compiles.
	UseTestlib bool
	// WorkDir is the directory the program runs in. Run commands are relative to it.
	WorkDir string
	// MemoryLimitMB is the address-space ceiling in megabytes; UnlimitedMemory disables it.
	MemoryLimitMB int
	// UsePrecompiled reuses the previous binary when the hash record matches.
	UsePrecompiled bool
	// SaveCompiled persists the hash record after a successful compile.
	SaveCompiled bool
	// ScratchDir receives binaries and hash records.
	ScratchDir string
	// TestlibDir is the include directory added when UseTestlib is set.
	TestlibDir string
	// HashInfo is folded into the content digest. Flag changes not reflected here do not invalidate the cache.
	HashInfo string
}

// ArtifactOption customizes an Artifact built by NewArtifact.
type ArtifactOption func(*Artifact)

// NewArtifact returns an artifact for path with the usual defaults:
// run in ".", 512 MB, reuse and save compiled binaries.
func NewArtifact(path, target string, opts ...ArtifactOption) Artifact {
	a := Artifact{
		SourcePath:     path,
		Target:         target,
		WorkDir:        ".",
		ScratchDir:     ScratchDirName,
		TestlibDir:     DefaultTestlibDir,
		MemoryLimitMB:  DefaultMemoryLimitMB,
		UsePrecompiled: true,
		SaveCompiled:   true,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// WithTestlib enables the testlib include path.
func WithTestlib() ArtifactOption {
	return func(a *Artifact) { a.UseTestlib = true }
}

// WithScratchDir sets where binaries and hash records are kept.
func WithScratchDir(dir string) ArtifactOption {
	return func(a *Artifact) { a.ScratchDir = dir }
}

// WithTestlibDir sets the testlib include directory.
func WithTestlibDir(dir string) ArtifactOption {
	return func(a *Artifact) { a.TestlibDir = dir }
}

// WithLanguage forces a language instead of guessing it from the extension.
func WithLanguage(l Language) ArtifactOption {
	return func(a *Artifact) { a.Language = l }
}

// WithWorkDir sets the execution directory. An empty dir keeps the default.
func WithWorkDir(dir string) ArtifactOption {
	return func(a *Artifact) {
		if dir != "" {
			a.WorkDir = dir
		}
	}
}

// WithMemoryLimit sets the memory ceiling in megabytes.
func WithMemoryLimit(mb int) ArtifactOption {
	return func(a *Artifact) { a.MemoryLimitMB = mb }
}

// WithCompilerFlags overrides the backend's default compiler flags.
func WithCompilerFlags(flags string) ArtifactOption {
	return func(a *Artifact) { a.CompilerFlags = flags }
}

// WithoutCache disables both reuse and persistence of hash records.
func WithoutCache() ArtifactOption {
	return func(a *Artifact) {
		a.UsePrecompiled = false
		a.SaveCompiled = false
	}
}
