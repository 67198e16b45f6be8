package app

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/olymper/internal/core/ports"
	"go.trai.ch/zerr"
)

// UploadOptions selects what Upload sends.
type UploadOptions struct {
	Tests     bool
	Checker   bool
	Validator bool
	Testlib   bool
	Statement bool
	Valuer    bool
}

// transfer is one local file and its remote name.
type transfer struct {
	local  string
	remote string
}

// uploadGroup is a set of transfers announced with one message.
type uploadGroup struct {
	label     string
	transfers []transfer
}

// Upload sends the selected problem files to the contest server over FTP.
// Every file is checked before connecting.
func (a *App) Upload(ctx context.Context, cfg *domain.ProblemConfig, opts UploadOptions) error {
	contest, err := a.loader.LoadContest(cfg.Root)
	if err != nil {
		return zerr.Wrap(err, "failed to load contest configuration")
	}
	systemName, ok := cfg.FirstParam(domain.ParamSystemName...)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrMissingParam, "failed to upload"), "param", "system_name")
	}

	groups, err := uploadGroups(cfg, opts)
	if err != nil {
		return err
	}
	if err := a.verifyUpload(cfg, groups); err != nil {
		return err
	}

	creds, err := a.credentials(contest.Host)
	if err != nil {
		return err
	}

	session, err := a.uploader.Connect(ctx, contest.Host, creds)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(); err != nil {
			a.logger.Warn(err.Error())
		}
	}()
	a.logger.Info("Logged in to " + contest.Host)

	if err := session.ChangeDir(contest.ServerPath + "problems/" + systemName); err != nil {
		return err
	}

	for _, g := range groups {
		a.logger.Info(g.label)
		for _, t := range g.transfers {
			if err := store(session, t); err != nil {
				return err
			}
		}
	}
	return nil
}

func uploadGroups(cfg *domain.ProblemConfig, opts UploadOptions) ([]uploadGroup, error) {
	single := func(label, rel string) uploadGroup {
		rel = filepath.Clean(rel)
		return uploadGroup{label: label, transfers: []transfer{{local: cfg.Path(rel), remote: filepath.Base(rel)}}}
	}

	var groups []uploadGroup
	if opts.Checker {
		groups = append(groups, single("Uploading checker", cfg.StringOr(domain.ParamChecker, domain.DefaultChecker)))
	}
	if opts.Validator {
		groups = append(groups, single("Uploading validator", cfg.StringOr(domain.ParamValidator, domain.DefaultValidator)))
	}
	if opts.Testlib {
		groups = append(groups, single("Uploading testlib", filepath.Join(domain.DefaultTestlibDir, "testlib.h")))
	}
	if opts.Tests {
		tests, err := domain.ListTests(cfg.Path(domain.TestsDirName), cfg.TestNumWidth())
		if err != nil {
			return nil, err
		}
		g := uploadGroup{label: "Uploading tests"}
		for _, t := range tests {
			g.transfers = append(g.transfers,
				transfer{local: t.InputPath(), remote: domain.TestsDirName + "/" + t.Name()},
				transfer{local: t.AnswerPath(), remote: domain.TestsDirName + "/" + t.AnswerName()},
			)
		}
		groups = append(groups, g)
	}
	if opts.Statement {
		groups = append(groups, single("Uploading statement.xml", filepath.Join(domain.StatementDirName, domain.StatementXMLName)))
	}
	if opts.Valuer {
		groups = append(groups, single("Uploading valuer.cfg", domain.ValuerFileName))
	}
	return groups, nil
}

func (a *App) verifyUpload(cfg *domain.ProblemConfig, groups []uploadGroup) error {
	var files []string
	for _, g := range groups {
		for _, t := range g.transfers {
			files = append(files, t.local)
		}
	}
	missing, err := a.checker.Missing(cfg.Root, files)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		for i, m := range missing {
			missing[i] = relPath(cfg, m)
		}
		return zerr.With(zerr.Wrap(domain.ErrUploadFailed, "files are missing"), "files", strings.Join(missing, ", "))
	}
	return nil
}

// credentials returns the saved login for host or prompts for one.
func (a *App) credentials(host string) (ports.Credentials, error) {
	creds, ok, err := a.creds.Lookup(host)
	if err != nil {
		return ports.Credentials{}, err
	}
	if ok {
		return creds, nil
	}

	scanner := bufio.NewScanner(a.stdin)
	prompt := func(label string) (string, error) {
		_, _ = fmt.Fprint(a.stdout, label+": ")
		if !scanner.Scan() {
			return "", zerr.With(zerr.Wrap(domain.ErrCredentialsMissing, "failed to read "+label), "host", host)
		}
		return strings.TrimRight(scanner.Text(), "\r"), nil
	}

	if creds.Login, err = prompt("login"); err != nil {
		return ports.Credentials{}, err
	}
	if creds.Password, err = prompt("password"); err != nil {
		return ports.Credentials{}, err
	}
	return creds, nil
}

func store(session ports.UploadSession, t transfer) error {
	f, err := os.Open(t.local) //nolint:gosec // upload paths come from the problem layout
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrUploadFailed, "failed to open file"), "path", t.local)
	}
	defer f.Close() //nolint:errcheck // read-only

	return session.Store(t.remote, f)
}
