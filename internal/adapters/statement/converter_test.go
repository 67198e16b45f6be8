package statement_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/olymper/internal/adapters/statement"
	"go.trai.ch/olymper/internal/core/domain"
)

func TestConverter_Convert(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "aplusb.tex"))
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck // test file

	var buf bytes.Buffer
	err = statement.NewConverter().Convert(f, &buf, domain.StatementMeta{
		Package: "aplusb",
		Title:   "ignored",
		Source:  "Regional 2015",
	})
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "convert_aplusb", buf.Bytes())
}

func TestConverter_BuildPlain(t *testing.T) {
	var buf bytes.Buffer
	err := statement.NewConverter().BuildPlain(&buf, "Read two numbers.\n\nPrint a < b.\n", domain.StatementMeta{
		Package: "plain",
		Title:   "Plain",
		PDFLink: "https://example.org/plain.pdf",
	})
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "build_plain", buf.Bytes())
}

func TestConverter_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "no problem environment",
			input:   "\\section{Intro}\nhello\n",
			wantErr: domain.ErrStatementNotFound,
		},
		{
			name:    "unterminated environment",
			input:   "\\begin{problem}{T}{}{}{}{}\ntext\n",
			wantErr: domain.ErrStatementSyntax,
		},
		{
			name:    "item outside itemize",
			input:   "\\begin{problem}{T}{}{}{}{}\n\\item stray\n\\end{problem}\n",
			wantErr: domain.ErrStatementSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := statement.NewConverter().Convert(strings.NewReader(tt.input), &buf, domain.StatementMeta{})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, buf.String())
		})
	}
}

func TestConverter_TitleFallsBackToMeta(t *testing.T) {
	var buf bytes.Buffer
	err := statement.NewConverter().Convert(
		strings.NewReader("\\begin{problem}\nbody\n\\end{problem}\n"),
		&buf,
		domain.StatementMeta{Title: "From config"},
	)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<title>From config</title>")
	assert.Contains(t, buf.String(), "\nbody\n")
}
