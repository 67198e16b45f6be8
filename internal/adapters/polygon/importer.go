// Package polygon imports problem packages exported by Polygon.
package polygon

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"

	"go.trai.ch/olymper/internal/adapters/fs"
	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/olymper/internal/core/ports"
	"go.trai.ch/zerr"
)

const descriptorName = "problem.xml"

// copiedDirs are copied verbatim when present.
var copiedDirs = []string{"solutions", "scripts", "files", "tests"}

// copiedScripts are the package's build scripts.
var copiedScripts = []string{"doall.sh", "wipe.sh"}

// TemplateSource renders fallback problem files.
type TemplateSource interface {
	ProblemTemplate(file, name string) ([]byte, error)
}

// config is the problem.json written for an imported package.
type config struct {
	Title        string     `json:"title"`
	ShortName    string     `json:"short_name"`
	SystemName   string     `json:"system_name"`
	Solutions    []solution `json:"solutions"`
	TestNumWidth int        `json:"test_num_width"`
	SamplesNum   int        `json:"samples_num"`
	TL           float64    `json:"tl"`
	ML           int        `json:"ml"`
	Validator    string     `json:"validator"`
	Checker      string     `json:"checker"`
	UseDoall     bool       `json:"use_doall"`
	DoallCmd     string     `json:"doall_cmd"`
	UseWipe      bool       `json:"use_wipe"`
	WipeCmd      string     `json:"wipe_cmd"`
}

type solution struct {
	Path   string `json:"path"`
	IsMain bool   `json:"is_main"`
	Tag    string `json:"tag"`
	Type   string `json:"type"`
}

var _ ports.PackageImporter = (*Importer)(nil)

// Importer implements ports.PackageImporter.
type Importer struct {
	copier    *fs.Copier
	resolver  *fs.Resolver
	templates TemplateSource
	logger    ports.Logger
}

// NewImporter creates an Importer.
func NewImporter(copier *fs.Copier, resolver *fs.Resolver, templates TemplateSource, logger ports.Logger) *Importer {
	return &Importer{copier: copier, resolver: resolver, templates: templates, logger: logger}
}

// Import converts the package at src, a directory or a .zip archive, into dest.
// dest must not exist.
func (im *Importer) Import(src, dest string) error {
	pkg, closeFn, err := openPackage(src)
	if err != nil {
		return err
	}
	defer closeFn()

	root, err := findRoot(pkg)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read package"), "package", src)
	}

	f, err := pkg.Open(path.Join(root, descriptorName))
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrInvalidPackage, "failed to open problem.xml"), "package", src)
	}
	desc, err := parseDescriptor(f)
	_ = f.Close()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read package"), "package", src)
	}

	tl, ml, err := desc.limits()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read package"), "package", src)
	}

	if err := createDest(dest); err != nil {
		return err
	}

	cfg := config{
		Title:        desc.title(),
		ShortName:    desc.ShortName,
		SystemName:   desc.ShortName,
		TestNumWidth: domain.DefaultTestNumWidth,
		TL:           tl,
		ML:           ml,
		UseDoall:     true,
		DoallCmd:     "bash doall.sh",
		UseWipe:      true,
		WipeCmd:      "bash wipe.sh",
	}
	for _, s := range desc.Solutions {
		cfg.Solutions = append(cfg.Solutions, solution{
			Path:   s.Source.Path,
			IsMain: s.Tag == "main",
			Tag:    s.Tag,
			Type:   s.Source.Type,
		})
	}

	im.logger.Info("Importing " + desc.ShortName)

	steps := []func() error{
		func() error { return im.importStatement(pkg, root, dest, desc) },
		func() error {
			cfg.Validator, err = im.importValidator(pkg, root, dest, desc)
			return err
		},
		func() error {
			cfg.Checker, err = im.importChecker(pkg, root, dest, desc)
			return err
		},
		func() error { return im.copyContent(pkg, root, dest) },
		func() error { return im.markScripts(dest) },
		func() error { return writeConfig(dest, &cfg) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (im *Importer) importStatement(pkg iofs.FS, root, dest string, desc *descriptor) error {
	dst := filepath.Join(dest, domain.StatementDirName, desc.ShortName+".tex")
	if p := desc.texStatement(); p != "" {
		if err := im.copier.CopyFromFS(pkg, path.Join(root, p), dst); err == nil {
			return nil
		}
		im.logger.Warn("statement " + p + " could not be copied, using template")
	}
	return im.writeTemplate("statement.tex.tmpl", dst, desc.ShortName)
}

func (im *Importer) importValidator(pkg iofs.FS, root, dest string, desc *descriptor) (string, error) {
	if len(desc.Validators) > 0 && desc.Validators[0].Source.Path != "" {
		p := desc.Validators[0].Source.Path
		name := path.Base(p)
		return name, im.copier.CopyFromFS(pkg, path.Join(root, p), filepath.Join(dest, name))
	}
	return domain.DefaultValidator, im.writeTemplate(domain.DefaultValidator, filepath.Join(dest, domain.DefaultValidator), desc.ShortName)
}

func (im *Importer) importChecker(pkg iofs.FS, root, dest string, desc *descriptor) (string, error) {
	if desc.Checker == nil || desc.Checker.Source.Path == "" {
		return domain.DefaultChecker, im.writeTemplate(domain.DefaultChecker, filepath.Join(dest, domain.DefaultChecker), desc.ShortName)
	}

	p := desc.Checker.Source.Path
	name := path.Base(p)
	if err := im.copier.CopyFromFS(pkg, path.Join(root, p), filepath.Join(dest, name)); err != nil {
		return "", err
	}
	if b := desc.Checker.Binary; b != nil && b.Path != "" {
		if err := im.copier.CopyFromFS(pkg, path.Join(root, b.Path), filepath.Join(dest, path.Base(b.Path))); err != nil {
			im.logger.Warn("checker binary " + b.Path + " is missing")
		}
	}
	return name, nil
}

func (im *Importer) copyContent(pkg iofs.FS, root, dest string) error {
	for _, dir := range copiedDirs {
		src := path.Join(root, dir)
		if !isDir(pkg, src) {
			im.logger.Warn("package has no " + dir + " folder")
			continue
		}
		if err := im.copier.CopyTree(pkg, src, filepath.Join(dest, dir)); err != nil {
			return err
		}
	}
	for _, script := range copiedScripts {
		src := path.Join(root, script)
		if _, err := iofs.Stat(pkg, src); err != nil {
			im.logger.Warn("package has no " + script)
			continue
		}
		if err := im.copier.CopyFromFS(pkg, src, filepath.Join(dest, script)); err != nil {
			return err
		}
	}
	return nil
}

// markScripts sets the owner execute bit on the build scripts.
func (im *Importer) markScripts(dest string) error {
	scripts, err := im.resolver.Glob(dest, append(copiedScripts, filepath.Join("scripts", "*.sh"))...)
	if err != nil {
		return err
	}
	for _, s := range scripts {
		if err := im.copier.MakeExecutable(s); err != nil {
			return err
		}
	}
	return nil
}

func (im *Importer) writeTemplate(file, dst, name string) error {
	data, err := im.templates.ProblemTemplate(file, name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dst)
	}
	if err := os.WriteFile(dst, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write file"), "path", dst)
	}
	return nil
}

func writeConfig(dest string, cfg *config) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(cfg); err != nil {
		return zerr.Wrap(err, "failed to encode problem.json")
	}

	p := filepath.Join(dest, domain.ProblemJSONName)
	if err := os.WriteFile(p, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write problem.json"), "path", p)
	}
	return nil
}

// openPackage exposes a package directory or zip archive as a file system.
func openPackage(src string) (iofs.FS, func(), error) {
	info, err := os.Stat(src)
	if err != nil {
		return nil, nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidPackage, "failed to open package"), "package", src), "reason", err.Error())
	}
	if info.IsDir() {
		return os.DirFS(src), func() {}, nil
	}

	zr, err := zip.OpenReader(src)
	if err != nil {
		return nil, nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidPackage, "failed to open archive"), "package", src), "reason", err.Error())
	}
	return zr, func() { _ = zr.Close() }, nil
}

// findRoot returns the directory holding problem.xml: the package root or its only subdirectory.
func findRoot(pkg iofs.FS) (string, error) {
	if _, err := iofs.Stat(pkg, descriptorName); err == nil {
		return ".", nil
	}

	entries, err := iofs.ReadDir(pkg, ".")
	if err == nil && len(entries) == 1 && entries[0].IsDir() {
		root := entries[0].Name()
		if _, err := iofs.Stat(pkg, path.Join(root, descriptorName)); err == nil {
			return root, nil
		}
	}
	return "", zerr.Wrap(domain.ErrInvalidPackage, "problem.xml not found")
}

func isDir(pkg iofs.FS, name string) bool {
	info, err := iofs.Stat(pkg, name)
	return err == nil && info.IsDir()
}

func createDest(dest string) error {
	if _, err := os.Stat(dest); err == nil {
		return zerr.With(zerr.Wrap(domain.ErrAlreadyExists, "failed to import"), "path", dest)
	} else if !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to stat destination"), "path", dest)
	}
	if err := os.MkdirAll(dest, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create destination"), "path", dest)
	}
	return nil
}
