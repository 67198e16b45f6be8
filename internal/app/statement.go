package app

import (
	"bytes"
	"os"
	"path/filepath"

	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/zerr"
)

// BuildStatement converts statement/<short name>.tex into statement/statement.xml.
// A problem with statement_text gets a plain statement instead.
func (a *App) BuildStatement(cfg *domain.ProblemConfig) error {
	meta := domain.StatementMeta{
		Title:  cfg.StringOr(domain.ParamTitle, ""),
		Source: cfg.StringOr(domain.ParamSource, ""),
	}
	meta.Package, _ = cfg.FirstParam(domain.ParamSystemName...)
	meta.PDFLink, _ = cfg.FirstParam(domain.ParamPDFLink...)

	var buf bytes.Buffer
	if text, ok := cfg.Param(domain.ParamStatementText); ok && text != "" {
		if err := a.converter.BuildPlain(&buf, text, meta); err != nil {
			return err
		}
	} else {
		short, ok := cfg.FirstParam(domain.ParamShortName...)
		if !ok {
			return zerr.With(zerr.Wrap(domain.ErrMissingParam, "failed to build statement"), "param", "short_name")
		}

		src := cfg.Path(filepath.Join(domain.StatementDirName, short+".tex"))
		f, err := os.Open(src) //nolint:gosec // statement path comes from the problem layout
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrStatementNotFound, "failed to open statement"), "path", src)
		}
		defer f.Close() //nolint:errcheck // read-only

		if err := a.converter.Convert(f, &buf, meta); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to convert statement"), "path", src)
		}
	}

	dst := cfg.Path(filepath.Join(domain.StatementDirName, domain.StatementXMLName))
	if err := os.WriteFile(dst, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write statement"), "path", dst)
	}
	a.logger.Info("Statement written to " + relPath(cfg, dst))
	return nil
}
