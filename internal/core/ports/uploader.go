package ports

import (
	"context"
	"io"
)

// Credentials is a login for a contest server.
type Credentials struct {
	Login    string
	Password string
}

// Uploader opens sessions on a contest server.
//
//go:generate go run go.uber.org/mock/mockgen -source=uploader.go -destination=mocks/mock_uploader.go -package=mocks
type Uploader interface {
	// Connect dials host and logs in.
	Connect(ctx context.Context, host string, creds Credentials) (UploadSession, error)
}

// UploadSession is an authenticated connection to a contest server.
type UploadSession interface {
	// ChangeDir changes the remote working directory.
	ChangeDir(path string) error

	// Store uploads r as the remote file path.
	Store(path string, r io.Reader) error

	// Close ends the session.
	Close() error
}

// CredentialStore looks up saved logins.
type CredentialStore interface {
	// Lookup returns the saved credentials for host. ok is false when none are saved.
	Lookup(host string) (creds Credentials, ok bool, err error)
}
