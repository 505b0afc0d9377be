// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/portmaster/core/model"
)

func TestBackup_RoundTrip(t *testing.T) {
	in := []model.Connection{conn("COM1", ""), conn("COM2", "Lab")}
	in[1].RTSCTS = true
	in[1].StopBits = 1.5

	var buf bytes.Buffer
	require.NoError(t, WriteBackup(&buf, in))

	out, err := ReadBackup(&buf)
	require.NoError(t, err)
	assert.Equal(t, model.BackupSchemaVersion, out.SchemaVersion)
	assert.Equal(t, in, out.Connections)
}

func TestBackup_EmptyListIsNotNull(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBackup(&buf, nil))

	out, err := ReadBackup(&buf)
	require.NoError(t, err)
	assert.NotNil(t, out.Connections)
	assert.Empty(t, out.Connections)
}

func TestReadBackup_RejectsUnknownSchema(t *testing.T) {
	for _, version := range []int{0, model.BackupSchemaVersion + 1} {
		raw, err := json.Marshal(model.BackupData{SchemaVersion: version})
		require.NoError(t, err)

		var buf bytes.Buffer
		zw, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		_, err = zw.Write(raw)
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		_, err = ReadBackup(&buf)
		assert.ErrorContains(t, err, "unsupported backup schema version")
	}
}

func TestReadBackup_NotCompressed(t *testing.T) {
	_, err := ReadBackup(bytes.NewBufferString(`{"schema_version":1}`))
	assert.Error(t, err)
}
