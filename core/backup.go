// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/toeirei/portmaster/core/model"
)

// WriteBackup writes connections as zstd-compressed JSON.
func WriteBackup(w io.Writer, connections []model.Connection) error {
	data := model.BackupData{
		SchemaVersion: model.BackupSchemaVersion,
		Connections:   connections,
	}
	if data.Connections == nil {
		data.Connections = []model.Connection{}
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("create zstd writer: %w", err)
	}
	enc := json.NewEncoder(zw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		_ = zw.Close()
		return fmt.Errorf("encode backup: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("flush backup: %w", err)
	}
	return nil
}

// ReadBackup reads a backup written by WriteBackup.
func ReadBackup(r io.Reader) (model.BackupData, error) {
	var data model.BackupData

	zr, err := zstd.NewReader(r)
	if err != nil {
		return data, fmt.Errorf("create zstd reader: %w", err)
	}
	defer zr.Close()

	if err := json.NewDecoder(zr).Decode(&data); err != nil {
		return data, fmt.Errorf("decode backup: %w", err)
	}
	if data.SchemaVersion < 1 || data.SchemaVersion > model.BackupSchemaVersion {
		return data, fmt.Errorf("unsupported backup schema version %d", data.SchemaVersion)
	}
	return data, nil
}
