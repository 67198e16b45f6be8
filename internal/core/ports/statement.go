package ports

import (
	"io"

	"go.trai.ch/olymper/internal/core/domain"
)

// StatementConverter turns a TeX statement into the contest system's XML.
//
//go:generate go run go.uber.org/mock/mockgen -source=statement.go -destination=mocks/mock_statement.go -package=mocks
type StatementConverter interface {
	// Convert reads a TeX problem environment from r and writes XML to w.
	Convert(r io.Reader, w io.Writer, meta domain.StatementMeta) error

	// BuildPlain writes a statement made of plain text only.
	BuildPlain(w io.Writer, text string, meta domain.StatementMeta) error
}
