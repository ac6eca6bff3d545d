// Package store persists settings and custom lists as independent JSON
// blobs, one per key, so corruption of one never affects the others.
package store

import (
	"errors"
	"os"
	"path/filepath"
)

// Persisted blob keys. Each key maps to its own file.
const (
	KeyExtendedSettings = "medai_extended_settings"
	KeyCustomPresets    = "medai_custom_presets"
	KeyCustomDomains    = "medai_custom_domains"
	KeyCustomScopes     = "medai_custom_scopes"
	KeyCustomAudiences  = "medai_custom_audiences"
)

// Keys lists every persisted blob key.
var Keys = []string{
	KeyExtendedSettings,
	KeyCustomPresets,
	KeyCustomDomains,
	KeyCustomScopes,
	KeyCustomAudiences,
}

// Repository is the key-value contract injected into the application layer.
// The template engine never sees it.
type Repository interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, data []byte) error
	Delete(key string) error
}

// FileStore keeps one JSON file per key under Dir.
type FileStore struct {
	Dir string
}

func (s *FileStore) ensureDir() error {
	if s == nil || s.Dir == "" {
		return errors.New("store dir not configured")
	}
	return os.MkdirAll(s.Dir, 0o755)
}

func (s *FileStore) pathFor(key string) string {
	return filepath.Join(s.Dir, key+".json")
}

// Load returns the stored bytes for key. A missing file is not an error; it
// reports found=false so callers fall back to defaults.
func (s *FileStore) Load(key string) ([]byte, bool, error) {
	if err := s.ensureDir(); err != nil {
		return nil, false, err
	}
	b, err := os.ReadFile(s.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

// Save writes the blob for key.
func (s *FileStore) Save(key string, data []byte) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	return os.WriteFile(s.pathFor(key), data, 0o644)
}

// Delete removes the blob for key. Deleting a missing key is a no-op.
func (s *FileStore) Delete(key string) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	err := os.Remove(s.pathFor(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
