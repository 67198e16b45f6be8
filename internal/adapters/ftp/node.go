package ftp

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/olymper/internal/core/ports"
)

const (
	// UploaderNodeID is the unique identifier for the FTP uploader Graft node.
	UploaderNodeID graft.ID = "adapter.uploader"
	// CredentialsNodeID is the unique identifier for the netrc credential store Graft node.
	CredentialsNodeID graft.ID = "adapter.credentials"
)

func init() {
	graft.Register(graft.Node[ports.Uploader]{
		ID:        UploaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Uploader, error) {
			return NewUploader(), nil
		},
	})

	graft.Register(graft.Node[ports.CredentialStore]{
		ID:        CredentialsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CredentialStore, error) {
			return NewNetrcStore(), nil
		},
	})
}
