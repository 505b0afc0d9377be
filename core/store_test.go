// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/portmaster/core/model"
)

func TestStore_AppendKeepsOrderAndAllowsDuplicates(t *testing.T) {
	st := NewStore([]model.Connection{conn("COM1", "")})
	st.Append(conn("COM1", "Lab"))
	st.Append(conn("COM2", ""))

	vals := st.Values()
	require.Len(t, vals, 3)
	assert.Equal(t, []string{"COM1", "COM1", "COM2"}, []string{vals[0].Name, vals[1].Name, vals[2].Name})
	assert.Equal(t, "Lab", vals[1].Group)
}

func TestStore_ReplaceInPlacePreservesIdentity(t *testing.T) {
	st := NewStore([]model.Connection{conn("COM1", "")})
	rec := st.Records()[0]

	updated := conn("COM9", "Bench")
	updated.BaudRate = 9600
	require.NoError(t, st.ReplaceInPlace(rec, updated))

	assert.Same(t, rec, st.Records()[0])
	assert.Equal(t, updated, *rec)
}

func TestStore_ReplaceInPlaceUnknown(t *testing.T) {
	st := NewStore(nil)
	stranger := conn("X", "")
	assert.ErrorIs(t, st.ReplaceInPlace(&stranger, conn("Y", "")), ErrUnknownConnection)
	assert.ErrorIs(t, st.ReplaceInPlace(nil, conn("Y", "")), ErrUnknownConnection)
}

func TestStore_RemoveByIdentityNotName(t *testing.T) {
	st := NewStore([]model.Connection{conn("COM1", "a"), conn("COM1", "b")})
	recs := st.Records()

	require.NoError(t, st.Remove(recs[1]))
	require.Equal(t, 1, st.Len())
	assert.Same(t, recs[0], st.Records()[0])

	assert.ErrorIs(t, st.Remove(recs[1]), ErrUnknownConnection)
	assert.ErrorIs(t, st.Remove(nil), ErrUnknownConnection)
}

func TestStore_RecordsAndValuesAreDetachedSlices(t *testing.T) {
	st := NewStore([]model.Connection{conn("COM1", "")})

	recs := st.Records()
	recs[0] = nil
	assert.NotNil(t, st.Records()[0])

	vals := st.Values()
	vals[0].Name = "changed"
	assert.Equal(t, "COM1", st.Records()[0].Name)
}

func TestStore_Matching(t *testing.T) {
	st := NewStore([]model.Connection{conn("a", "Lab"), conn("b", ""), conn("c", "Lab")})
	m := st.Matching("Lab")
	require.Len(t, m, 2)
	assert.Equal(t, "a", m[0].Name)
	assert.Equal(t, "c", m[1].Name)
	assert.Len(t, st.Matching(""), 1)
}

func TestStore_Replace(t *testing.T) {
	st := NewStore([]model.Connection{conn("a", "")})
	st.Replace([]model.Connection{conn("x", ""), conn("y", "")})
	assert.Equal(t, 2, st.Len())
	assert.Equal(t, "x", st.Records()[0].Name)
}
