// Package adapter provides infrastructure components for reading and writing
// circuit design files so the domain layer can focus on the transform itself.
package adapter

import (
	"encoding/json"
	"fmt"
	"os"

	m "github.com/mouse-blink/hierwrap/internal/model"
)

// DesignStore loads and persists circuit designs.
type DesignStore interface {
	Load(path m.Path) (*m.Circuit, error)
	Save(path m.Path, c *m.Circuit) error
}

type localDesignStore struct {
	validator *Validator
}

// NewDesignStore constructs a DesignStore backed by the local file system.
// Every loaded design is checked against the embedded schema before it is
// decoded, so the domain layer never sees a malformed circuit.
func NewDesignStore() (DesignStore, error) {
	v, err := NewValidator()
	if err != nil {
		return nil, err
	}

	return &localDesignStore{validator: v}, nil
}

func (s *localDesignStore) Load(path m.Path) (*m.Circuit, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := s.validator.Validate(data); err != nil {
		return nil, fmt.Errorf("invalid design %s: %w", path, err)
	}

	var c m.Circuit
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return &c, nil
}

func (s *localDesignStore) Save(path m.Path, c *m.Circuit) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	data = append(data, '\n')

	if err := os.WriteFile(string(path), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
