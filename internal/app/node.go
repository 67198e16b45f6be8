package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/olymper/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/olymper/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/olymper/internal/adapters/ftp"       //nolint:depguard // Wired in app layer
	"go.trai.ch/olymper/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/olymper/internal/adapters/polygon"   //nolint:depguard // Wired in app layer
	"go.trai.ch/olymper/internal/adapters/runlog"    //nolint:depguard // Wired in app layer
	"go.trai.ch/olymper/internal/adapters/scaffold"  //nolint:depguard // Wired in app layer
	"go.trai.ch/olymper/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/olymper/internal/adapters/statement" //nolint:depguard // Wired in app layer
	"go.trai.ch/olymper/internal/core/ports"
	"go.trai.ch/olymper/internal/engine/executable"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			executable.NodeID,
			shell.NodeID,
			runlog.NodeID,
			fs.FilesNodeID,
			fs.VerifierNodeID,
			logger.NodeID,
			statement.NodeID,
			ftp.UploaderNodeID,
			ftp.CredentialsNodeID,
			scaffold.NodeID,
			polygon.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	programs, err := graft.Dep[ports.ProgramFactory](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.Runner](ctx)
	if err != nil {
		return nil, err
	}

	journals, err := graft.Dep[ports.RunLog](ctx)
	if err != nil {
		return nil, err
	}

	files, err := graft.Dep[ports.Files](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[*fs.Verifier](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	converter, err := graft.Dep[ports.StatementConverter](ctx)
	if err != nil {
		return nil, err
	}

	uploader, err := graft.Dep[ports.Uploader](ctx)
	if err != nil {
		return nil, err
	}

	creds, err := graft.Dep[ports.CredentialStore](ctx)
	if err != nil {
		return nil, err
	}

	scaffolder, err := graft.Dep[ports.Scaffolder](ctx)
	if err != nil {
		return nil, err
	}

	importer, err := graft.Dep[ports.PackageImporter](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, programs, runner, journals, files, log).
		WithStatements(converter).
		WithUpload(uploader, creds, verifier).
		WithScaffolding(scaffolder, importer), nil
}
