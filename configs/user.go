package configs

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/subquery/cli/entity"
)

// CredentialStore keeps the signed-in user in a single JSON file.
type CredentialStore struct {
	path string
}

func NewCredentialStore(path string) *CredentialStore {
	return &CredentialStore{path: path}
}

func (s *CredentialStore) Path() string {
	return s.path
}

// load returns the raw top level object, or nil if the file does not exist.
func (s *CredentialStore) load() (map[string]json.RawMessage, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	raw := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(b)) == 0 {
		return raw, nil
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, errors.Wrapf(err, "decode config %s", s.path)
	}
	return raw, nil
}

func (s *CredentialStore) save(raw map[string]json.RawMessage) (err error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "create config directory")
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return errors.Wrap(err, "open config for writing")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close config")
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(raw); err != nil {
		return errors.Wrap(err, "write config")
	}
	return errors.Wrap(f.Sync(), "flush config")
}

// Restore returns the stored user, or nil if nobody has logged in yet.
func (s *CredentialStore) Restore() (*entity.User, error) {
	raw, err := s.load()
	if err != nil || raw == nil {
		return nil, err
	}
	data, ok := raw["user"]
	if !ok {
		return nil, nil
	}
	var user *entity.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, errors.Wrapf(err, "decode user in %s", s.path)
	}
	return user, nil
}

// Store replaces the user record and keeps every other key in the file.
func (s *CredentialStore) Store(user *entity.User) error {
	raw, err := s.load()
	if err != nil {
		return err
	}
	if raw == nil {
		raw = map[string]json.RawMessage{}
	}
	data, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "encode user")
	}
	raw["user"] = data
	return s.save(raw)
}

// Clear forgets the stored user.
func (s *CredentialStore) Clear() error {
	return s.Store(nil)
}

func (s *CredentialStore) IsLoggedIn() (bool, error) {
	user, err := s.Restore()
	if err != nil {
		return false, err
	}
	return user != nil && user.AccessToken != "", nil
}
