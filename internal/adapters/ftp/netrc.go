package ftp

import (
	"errors"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bgentry/go-netrc/netrc"
	"go.trai.ch/olymper/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CredentialStore = (*NetrcStore)(nil)

// NetrcStore reads saved logins from a netrc file.
type NetrcStore struct {
	path string
}

// NewNetrcStore returns a store for $NETRC, or ~/.netrc when it is unset.
func NewNetrcStore() *NetrcStore {
	return &NetrcStore{path: DefaultNetrcPath()}
}

// NewNetrcStoreAt returns a store for the netrc file at path.
func NewNetrcStoreAt(path string) *NetrcStore {
	return &NetrcStore{path: path}
}

// DefaultNetrcPath resolves the netrc location.
func DefaultNetrcPath() string {
	if p := os.Getenv("NETRC"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	name := ".netrc"
	if runtime.GOOS == "windows" {
		name = "_netrc"
	}
	return filepath.Join(home, name)
}

// Lookup finds the machine entry for host. The port, if any, is ignored.
// A missing file means no saved credentials.
func (s *NetrcStore) Lookup(host string) (ports.Credentials, bool, error) {
	if s.path == "" {
		return ports.Credentials{}, false, nil
	}

	n, err := netrc.ParseFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ports.Credentials{}, false, nil
		}
		return ports.Credentials{}, false, zerr.With(zerr.Wrap(err, "failed to parse netrc"), "path", s.path)
	}

	name := host
	if h, _, err := net.SplitHostPort(host); err == nil {
		name = h
	}

	m := n.FindMachine(name)
	if m == nil || m.Login == "" {
		return ports.Credentials{}, false, nil
	}
	return ports.Credentials{Login: m.Login, Password: m.Password}, true, nil
}
