// Package cache is the durable local credential cache: two small JSON
// documents in a configurable directory. It exists so the common case
// resolves without a network round trip and so the CLI keeps working
// when the secret store is unreachable.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spotkeep/spotkeep/internal/creds"
)

const (
	appAuthFile  = "app_auth.json"
	userAuthFile = "user_auth.json"

	// cacheFilePerm keeps token material unreadable by other users.
	cacheFilePerm = fs.FileMode(0o600)
)

// Store reads and writes the cached credential documents.
type Store struct {
	dir string
}

// New creates a cache store rooted at dir. An empty dir means the
// process working directory.
func New(dir string) *Store {
	if dir == "" {
		dir = "."
	}

	return &Store{dir: dir}
}

// LoadApp reads the cached application identity.
func (s *Store) LoadApp() (*creds.AppAuthData, error) {
	return load[creds.AppAuthData](filepath.Join(s.dir, appAuthFile))
}

// StoreApp caches the application identity.
func (s *Store) StoreApp(data *creds.AppAuthData) error {
	return store(filepath.Join(s.dir, appAuthFile), data)
}

// LoadUser reads the cached user token bundle.
func (s *Store) LoadUser() (*creds.UserAuthData, error) {
	return load[creds.UserAuthData](filepath.Join(s.dir, userAuthFile))
}

// StoreUser caches the user token bundle.
func (s *Store) StoreUser(data *creds.UserAuthData) error {
	return store(filepath.Join(s.dir, userAuthFile), data)
}

// load reads and decodes one JSON document, distinguishing the three
// outcomes the resolver applies different fallback policy to: the file
// does not exist (ErrAbsent), it exists but does not parse (ErrCorrupt),
// or it cannot be accessed at all (ErrIO).
func load[T any](path string) (*T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", creds.ErrAbsent, path)
		}

		return nil, fmt.Errorf("%w: reading %s: %v", creds.ErrIO, path, err)
	}

	var data T
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", creds.ErrCorrupt, path, err)
	}

	return &data, nil
}

// store encodes one JSON document with a full truncate+write. Callers
// treat failures as warnings: the in-memory value and, for user tokens,
// the secret store stay authoritative.
func store[T any](path string, data *T) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", creds.ErrIO, path, err)
	}

	if err := os.WriteFile(path, raw, cacheFilePerm); err != nil {
		return fmt.Errorf("%w: writing %s: %v", creds.ErrIO, path, err)
	}

	return nil
}

var _ creds.LocalCache = (*Store)(nil)
