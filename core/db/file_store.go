// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/toeirei/portmaster/core/model"
)

const (
	serialSection     = "serial"
	connectionsKey    = "connections"
	settingsFileMode  = 0o600
	settingsDirectory = 0o755
)

type settingsDocument struct {
	Serial struct {
		Connections []model.Connection `yaml:"connections"`
	} `yaml:"serial"`
}

// FileStore persists connections under `serial.connections` in a YAML
// settings file. Other keys in the file are preserved on save.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore for path. The file does not need to exist.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the settings file location.
func (s *FileStore) Path() string { return s.path }

// Load reads the connection list. A missing file is an empty list.
func (s *FileStore) Load(ctx context.Context) ([]model.Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.Connection{}, nil
	}
	if err != nil {
		return nil, err
	}

	var doc settingsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	if doc.Serial.Connections == nil {
		return []model.Connection{}, nil
	}
	return doc.Serial.Connections, nil
}

// Save writes the whole connection list. The file is replaced atomically so
// a crash never leaves a truncated settings file behind.
func (s *FileStore) Save(ctx context.Context, connections []model.Connection) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := s.readRaw()
	if err != nil {
		return err
	}
	section, _ := raw[serialSection].(map[string]any)
	if section == nil {
		section = map[string]any{}
	}
	if connections == nil {
		connections = []model.Connection{}
	}
	section[connectionsKey] = connections
	raw[serialSection] = section

	data, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return writeFileAtomic(s.path, data)
}

func (s *FileStore) readRaw() (map[string]any, error) {
	raw := map[string]any{}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return raw, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, settingsDirectory); err != nil {
		return fmt.Errorf("could not create settings directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, settingsFileMode); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
