package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// Language identifies the toolchain used to build and run a source file.
type Language string

// Supported languages.
const (
	LanguageC       Language = "C"
	LanguageCPP     Language = "C++"
	LanguageJava    Language = "Java"
	LanguagePython3 Language = "Python3"
	LanguageShell   Language = "Shell"
	LanguageBash    Language = "Bash"
	LanguagePascal  Language = "Pascal"
	LanguageDelphi  Language = "Delphi"
)

// suffixLanguages is the fixed suffix table used to guess a language.
// Matching is done on the exact extension, so ".bash" never matches ".sh".
var suffixLanguages = []struct {
	suffix   string
	language Language
}{
	{".c", LanguageC},
	{".cpp", LanguageCPP},
	{".java", LanguageJava},
	{".py", LanguagePython3},
	{".sh", LanguageShell},
	{".bash", LanguageBash},
	{".pas", LanguagePascal},
	{".dpr", LanguageDelphi},
}

// String returns the language name.
func (l Language) String() string {
	return string(l)
}

// IsInterpreted reports whether the language runs without a compile step.
func (l Language) IsInterpreted() bool {
	switch l {
	case LanguagePython3, LanguageShell, LanguageBash:
		return true
	default:
		return false
	}
}

// ResolveLanguage maps a source path to its language by file extension.
func ResolveLanguage(path string) (Language, error) {
	ext := filepath.Ext(path)
	for _, entry := range suffixLanguages {
		if entry.suffix == ext {
			return entry.language, nil
		}
	}
	err := zerr.With(zerr.Wrap(ErrUnknownLanguage, "failed to resolve language"), "path", path)
	return "", zerr.With(err, "supported", strings.Join(SupportedSuffixes(), " "))
}

// ParseLanguage validates an explicitly named language.
// "Python" is accepted as an alias for Python3.
func ParseLanguage(name string) (Language, error) {
	if name == "Python" {
		return LanguagePython3, nil
	}
	for _, entry := range suffixLanguages {
		if string(entry.language) == name {
			return entry.language, nil
		}
	}
	return "", zerr.With(zerr.Wrap(ErrUnknownLanguage, "failed to parse language"), "language", name)
}

// SupportedSuffixes lists the recognised source extensions in table order.
func SupportedSuffixes() []string {
	out := make([]string, 0, len(suffixLanguages))
	for _, entry := range suffixLanguages {
		out = append(out, entry.suffix)
	}
	return out
}
