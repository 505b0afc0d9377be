// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package model

// BackupSchemaVersion is the schema version written by the current release.
const BackupSchemaVersion = 1

// BackupData is a container for all data to be exported for a backup.
type BackupData struct {
	// SchemaVersion helps in handling migrations during restore.
	SchemaVersion int `json:"schema_version"`

	Connections []Connection `json:"connections"`
}
