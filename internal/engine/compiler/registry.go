package compiler

import (
	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/olymper/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry maps languages to backends.
type Registry struct {
	backends map[domain.Language]Backend
}

// NewRegistry returns a registry with every built-in backend.
func NewRegistry(runner ports.Runner, cache ports.HashCache, logger ports.Logger) *Registry {
	native := NewNativeBackend(runner, cache, logger)
	interpreted := NewInterpretedBackend()

	r := &Registry{backends: map[domain.Language]Backend{}}
	for _, lang := range []domain.Language{
		domain.LanguageC, domain.LanguageCPP, domain.LanguagePascal, domain.LanguageDelphi,
	} {
		r.Register(lang, native)
	}
	for _, lang := range []domain.Language{
		domain.LanguagePython3, domain.LanguageShell, domain.LanguageBash,
	} {
		r.Register(lang, interpreted)
	}
	r.Register(domain.LanguageJava, NewJavaBackend(runner, cache, logger))
	return r
}

// Register binds lang to b, replacing any previous binding.
func (r *Registry) Register(lang domain.Language, b Backend) {
	r.backends[lang] = b
}

// Lookup returns the backend for lang.
func (r *Registry) Lookup(lang domain.Language) (Backend, error) {
	b, ok := r.backends[lang]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoBackend, "failed to select backend"), "language", lang.String())
	}
	return b, nil
}
