// Package scaffold creates problem and contest directories from embedded templates.
package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/olymper/internal/core/ports"
	"go.trai.ch/zerr"
)

//go:embed templates
var templates embed.FS

const templateSuffix = ".tmpl"

// entry maps one template onto a destination relative to the target directory.
type entry struct {
	src  string
	dst  string
	perm fs.FileMode
}

// templateData is what .tmpl files are rendered with.
type templateData struct {
	Name string
}

var _ ports.Scaffolder = (*Scaffolder)(nil)

// Scaffolder implements ports.Scaffolder.
type Scaffolder struct {
	files fs.FS
}

// New creates a Scaffolder over the embedded templates.
func New() *Scaffolder {
	return &Scaffolder{files: templates}
}

func problemEntries(name string) []entry {
	return []entry{
		{src: "problem/check.cpp", dst: domain.DefaultChecker},
		{src: "problem/gen.cpp", dst: domain.DefaultGenerator},
		{src: "problem/validator.cpp", dst: domain.DefaultValidator},
		{src: "problem/solution.cpp", dst: path.Join("solutions", name+".cpp")},
		{src: "problem/problem.json.tmpl", dst: domain.ProblemJSONName},
		{src: "problem/statement.tex.tmpl", dst: path.Join(domain.StatementDirName, name+".tex")},
		{src: "problem/valuer.cfg", dst: domain.ValuerFileName},
	}
}

// contestSupport lists the files RefreshContest rewrites.
var contestSupport = []entry{
	{src: "contest/problems.tex", dst: "statements/problems.tex"},
	{src: "contest/olymp.sty", dst: "statements/olymp.sty"},
	{src: "contest/import.sty", dst: "statements/import.sty"},
	{src: "contest/clean.sh", dst: "statements/clean.sh", perm: domain.ScriptPerm},
	{src: "contest/r.sh", dst: "statements/r.sh", perm: domain.ScriptPerm},
	{src: "contest/r.cmd", dst: "statements/r.cmd", perm: domain.ScriptPerm},
}

// Problem creates dir with the standard problem layout. dir must not exist.
func (s *Scaffolder) Problem(dir, name string) error {
	if err := create(dir); err != nil {
		return err
	}
	if err := mkdirs(dir, "solutions", domain.StatementDirName); err != nil {
		return err
	}
	return s.write(dir, problemEntries(name), templateData{Name: name})
}

// Contest creates dir with statements/, problems/ and lib/. dir must not exist.
// lib/ is left empty; testlib.h is supplied by the user.
func (s *Scaffolder) Contest(dir string) error {
	if err := create(dir); err != nil {
		return err
	}
	if err := mkdirs(dir, "statements", "problems", "lib"); err != nil {
		return err
	}

	entries := append([]entry{{src: "contest/contest.json", dst: domain.ContestJSONName}}, contestSupport...)
	return s.write(dir, entries, templateData{Name: filepath.Base(dir)})
}

// RefreshContest overwrites the statement styles and scripts of an existing contest.
// contest.json is left alone.
func (s *Scaffolder) RefreshContest(dir string) error {
	if err := mkdirs(dir, "statements"); err != nil {
		return err
	}
	return s.write(dir, contestSupport, templateData{Name: filepath.Base(dir)})
}

// ProblemTemplate returns a rendered problem template such as "check.cpp".
func (s *Scaffolder) ProblemTemplate(file, name string) ([]byte, error) {
	return s.render(path.Join("problem", file), templateData{Name: name})
}

func (s *Scaffolder) write(dir string, entries []entry, data templateData) error {
	for _, e := range entries {
		content, err := s.render(e.src, data)
		if err != nil {
			return err
		}

		dst := filepath.Join(dir, filepath.FromSlash(e.dst))
		perm := e.perm
		if perm == 0 {
			perm = domain.FilePerm
		}
		if err := os.WriteFile(dst, content, perm); err != nil {
			return failed(err, "path", dst)
		}
		// WriteFile keeps the mode of an existing file.
		if err := os.Chmod(dst, perm); err != nil {
			return failed(err, "path", dst)
		}
	}
	return nil
}

func (s *Scaffolder) render(src string, data templateData) ([]byte, error) {
	raw, err := fs.ReadFile(s.files, path.Join("templates", src))
	if err != nil {
		return nil, failed(err, "template", src)
	}
	if !strings.HasSuffix(src, templateSuffix) {
		return raw, nil
	}

	tmpl, err := template.New(src).Parse(string(raw))
	if err != nil {
		return nil, failed(err, "template", src)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, failed(err, "template", src)
	}
	return buf.Bytes(), nil
}

// create makes dir, failing when anything already exists at that path.
func create(dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return zerr.With(zerr.Wrap(domain.ErrAlreadyExists, "failed to scaffold"), "path", dir)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return failed(err, "path", dir)
	}
	if err := os.Mkdir(dir, domain.DirPerm); err != nil {
		return failed(err, "path", dir)
	}
	return nil
}

func mkdirs(root string, names ...string) error {
	for _, n := range names {
		p := filepath.Join(root, n)
		if err := os.MkdirAll(p, domain.DirPerm); err != nil {
			return failed(err, "path", p)
		}
	}
	return nil
}

// failed wraps a filesystem or template error so it matches domain.ErrScaffoldFailed.
func failed(err error, key, value string) error {
	return zerr.With(zerr.With(zerr.Wrap(domain.ErrScaffoldFailed, "failed to scaffold"), key, value), "reason", err.Error())
}
