// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"slices"

	"github.com/toeirei/portmaster/core/model"
	"github.com/toeirei/portmaster/util/slicest"
)

// Store holds the ordered list of connection records. Records are addressed
// by identity (pointer), never by name, because names are not unique.
// Store does not persist or reindex on its own; callers do both after every
// mutation.
type Store struct {
	records []*model.Connection
}

// NewStore builds a store from loaded records, keeping their order.
func NewStore(records []model.Connection) *Store {
	return &Store{
		records: slicest.Map(records, func(c model.Connection) *model.Connection {
			return &c
		}),
	}
}

// Records returns the live records in store order. The slice is a copy; the
// pointed-to records are shared with the store.
func (s *Store) Records() []*model.Connection {
	return slices.Clone(s.records)
}

// Values returns a detached copy of every record, suitable for persistence.
func (s *Store) Values() []model.Connection {
	return slicest.Map(s.records, func(c *model.Connection) model.Connection {
		return *c
	})
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Contains reports whether c is one of the store's records.
func (s *Store) Contains(c *model.Connection) bool {
	return c != nil && slices.Contains(s.records, c)
}

// Append adds a new record at the end and returns its identity. Duplicate
// names are permitted.
func (s *Store) Append(c model.Connection) *model.Connection {
	rec := &c
	s.records = append(s.records, rec)
	return rec
}

// ReplaceInPlace copies every field of c onto old, preserving old's identity
// so that references held elsewhere stay valid.
func (s *Store) ReplaceInPlace(old *model.Connection, c model.Connection) error {
	if !s.Contains(old) {
		return ErrUnknownConnection
	}
	*old = c
	return nil
}

// Remove deletes c by identity.
func (s *Store) Remove(c *model.Connection) error {
	i := slices.Index(s.records, c)
	if c == nil || i < 0 {
		return ErrUnknownConnection
	}
	s.records = slices.Delete(s.records, i, i+1)
	return nil
}

// Matching returns the live records whose group key equals group.
func (s *Store) Matching(group string) []*model.Connection {
	return slicest.Filter(s.records, func(c *model.Connection) bool {
		return c.Group == group
	})
}

// Replace swaps the whole record list, used by full restores.
func (s *Store) Replace(records []model.Connection) {
	*s = *NewStore(records)
}
