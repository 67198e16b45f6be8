// Package ftp uploads problem files to a contest server over FTP.
package ftp

import (
	"context"
	"io"
	"net"
	"time"

	jftp "github.com/jlaffaye/ftp"
	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/olymper/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultPort is used when the contest host does not name one.
const DefaultPort = "21"

const dialTimeout = 30 * time.Second

var _ ports.Uploader = (*Uploader)(nil)

// Uploader dials contest servers.
type Uploader struct {
	timeout time.Duration
}

// NewUploader creates an Uploader with the default dial timeout.
func NewUploader() *Uploader {
	return &Uploader{timeout: dialTimeout}
}

// Connect dials host and logs in with creds.
func (u *Uploader) Connect(ctx context.Context, host string, creds ports.Credentials) (ports.UploadSession, error) {
	addr := Address(host)
	conn, err := jftp.Dial(addr, jftp.DialWithContext(ctx), jftp.DialWithTimeout(u.timeout))
	if err != nil {
		return nil, uploadError(err, "failed to connect", "host", addr)
	}

	if err := conn.Login(creds.Login, creds.Password); err != nil {
		_ = conn.Quit()
		return nil, zerr.With(uploadError(err, "failed to log in", "host", addr), "login", creds.Login)
	}

	return &session{conn: conn}, nil
}

// Address appends the default FTP port to host when it has none.
func Address(host string) string {
	if _, _, err := net.SplitHostPort(host); err == nil {
		return host
	}
	return net.JoinHostPort(host, DefaultPort)
}

type session struct {
	conn *jftp.ServerConn
}

func (s *session) ChangeDir(path string) error {
	if err := s.conn.ChangeDir(path); err != nil {
		return uploadError(err, "failed to change directory", "dir", path)
	}
	return nil
}

func (s *session) Store(path string, r io.Reader) error {
	if err := s.conn.Stor(path, r); err != nil {
		return uploadError(err, "failed to store file", "file", path)
	}
	return nil
}

func (s *session) Close() error {
	return s.conn.Quit()
}

// uploadError keeps domain.ErrUploadFailed in the chain and the server's reply as metadata.
func uploadError(err error, msg, key, value string) error {
	return zerr.With(zerr.With(zerr.Wrap(domain.ErrUploadFailed, msg), key, value), "reason", err.Error())
}
