package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// storedSessionFile is the on-disk JSON shape. Expiration is serialized as an
// ISO-8601 timestamp.
type storedSessionFile struct {
	Token      string `json:"token"`
	Expiration string `json:"expiration"`
	UserID     string `json:"userId"`
}

// FileStorage persists the session as a JSON file, the client equivalent of
// browser localStorage.
type FileStorage struct {
	path string
}

// NewFileStorage creates a storage rooted at path; parent directories are
// created on first save.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) Save(state *StoredSession) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(storedSessionFile{
		Token:      state.Token,
		Expiration: state.Expiration.UTC().Format(time.RFC3339),
		UserID:     state.UserID,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileStorage) Load() (*StoredSession, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var file storedSessionFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	expiration, err := time.Parse(time.RFC3339, file.Expiration)
	if err != nil {
		return nil, err
	}

	return &StoredSession{
		Token:      file.Token,
		Expiration: expiration,
		UserID:     file.UserID,
	}, nil
}

func (s *FileStorage) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
