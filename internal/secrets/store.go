package secrets

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrSecretNotFound = errors.New("secret not found")

// Store is the application-managed fallback location for credentials that
// are not present in the process environment.
type Store interface {
	Lookup(name string) (string, error)
}

// FileStore reads secrets from a flat YAML file of name: value pairs,
// the deployment-side equivalent of the original secrets file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Lookup(name string) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("read secrets file: %w", err)
	}

	var values map[string]string
	if err := yaml.Unmarshal(data, &values); err != nil {
		return "", fmt.Errorf("parse secrets file: %w", err)
	}

	value, ok := values[name]
	if !ok || value == "" {
		return "", ErrSecretNotFound
	}

	return value, nil
}

var _ Store = (*FileStore)(nil)
