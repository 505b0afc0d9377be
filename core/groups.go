// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/toeirei/portmaster/core/model"
)

// GroupsOf derives the grouped view of records. Groups appear in the order
// their key is first used; members keep store order. The ungrouped bucket is
// placed wherever its first member falls.
//
// Each record's group key is normalized and written back onto the record.
// A key that matches no existing bucket simply opens a new one. The scan is
// linear per record, which is fine for the tens to hundreds of connections a
// user keeps.
func GroupsOf(records []*model.Connection) []model.Group {
	var groups []model.Group
	for _, rec := range records {
		rec.Group = NormalizeGroupName(rec.Group)

		idx := -1
		for i := range groups {
			if groups[i].Name == rec.Group {
				idx = i
				break
			}
		}
		if idx < 0 {
			groups = append(groups, model.Group{Name: rec.Group})
			idx = len(groups) - 1
		}
		groups[idx].Connections = append(groups[idx].Connections, rec)
	}
	return groups
}

// NormalizeGroupName returns the canonical group key: surrounding whitespace
// is dropped, so a blank name means ungrouped.
func NormalizeGroupName(name string) string {
	return strings.TrimSpace(name)
}

// ValidateGroupName normalizes name and rejects keys that cannot be shown or
// stored as a single line.
func ValidateGroupName(name string) (string, error) {
	name = NormalizeGroupName(name)
	if strings.ContainsFunc(name, unicode.IsControl) {
		return "", fmt.Errorf("%w: %q", ErrInvalidGroupName, name)
	}
	return name, nil
}

// FindGroup returns the bucket with the given key.
func FindGroup(groups []model.Group, name string) (model.Group, bool) {
	name = NormalizeGroupName(name)
	for _, g := range groups {
		if g.Name == name {
			return g, true
		}
	}
	return model.Group{}, false
}
