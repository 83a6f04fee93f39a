package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type fileStore struct {
	dir string
}

// NewFileStore keeps each document as <name>.json under dir.
func NewFileStore(dir string) (DocumentStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	return &fileStore{dir: dir}, nil
}

func (s *fileStore) Load(name string, out any) error {
	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		// A document that was never saved loads as the zero document.
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to read document %q: %w", name, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode document %q: %w", name, err)
	}

	return nil
}

func (s *fileStore) Save(name string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document %q: %w", name, err)
	}

	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write document %q: %w", name, err)
	}

	return nil
}

func (s *fileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}
