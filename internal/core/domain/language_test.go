package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestResolveLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want domain.Language
	}{
		{"sol.c", domain.LanguageC},
		{"solutions/sol.cpp", domain.LanguageCPP},
		{"Main.java", domain.LanguageJava},
		{"gen.py", domain.LanguagePython3},
		{"doall.sh", domain.LanguageShell},
		{"wipe.bash", domain.LanguageBash},
		{"sol.pas", domain.LanguagePascal},
		{"sol.dpr", domain.LanguageDelphi},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			got, err := domain.ResolveLanguage(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveLanguage_Unknown(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"notes.txt", "Makefile", "sol.cc", "archive.cpp.bak"} {
		_, err := domain.ResolveLanguage(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnknownLanguage), path)

		var zErr *zerr.Error
		require.ErrorAs(t, err, &zErr)
		assert.Equal(t, path, zErr.Metadata()["path"])
		assert.Equal(t, ".c .cpp .java .py .sh .bash .pas .dpr", zErr.Metadata()["supported"])
	}
}

func TestResolveLanguage_TotalOverSuffixes(t *testing.T) {
	t.Parallel()

	seen := map[domain.Language]string{}
	for _, suffix := range domain.SupportedSuffixes() {
		lang, err := domain.ResolveLanguage("x" + suffix)
		require.NoError(t, err)
		if prev, ok := seen[lang]; ok {
			t.Fatalf("language %s resolved from both %s and %s", lang, prev, suffix)
		}
		seen[lang] = suffix

		again, err := domain.ResolveLanguage("x" + suffix)
		require.NoError(t, err)
		assert.Equal(t, lang, again)
	}
}

func TestParseLanguage(t *testing.T) {
	t.Parallel()

	lang, err := domain.ParseLanguage("Python")
	require.NoError(t, err)
	assert.Equal(t, domain.LanguagePython3, lang)

	lang, err = domain.ParseLanguage("C++")
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageCPP, lang)

	_, err = domain.ParseLanguage("Rust")
	require.ErrorIs(t, err, domain.ErrUnknownLanguage)
}

func TestLanguage_IsInterpreted(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.LanguagePython3.IsInterpreted())
	assert.True(t, domain.LanguageShell.IsInterpreted())
	assert.True(t, domain.LanguageBash.IsInterpreted())
	assert.False(t, domain.LanguageCPP.IsInterpreted())
	assert.False(t, domain.LanguageJava.IsInterpreted())
}
