// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package connections

import (
	"github.com/toeirei/portmaster/core"
	"github.com/toeirei/portmaster/core/model"
)

// row is one line of the list: a group header when conn is nil, a member
// otherwise. Display fields are copied while the store is locked.
type row struct {
	group string
	conn  *model.Connection
	name  string
	port  string
	baud  int
	count int
}

func (r row) isGroup() bool {
	return r.conn == nil
}

// same reports whether r and o show the same group or the same record.
func (r row) same(o row) bool {
	if r.isGroup() || o.isGroup() {
		return r.isGroup() && o.isGroup() && r.group == o.group
	}
	return r.conn == o.conn
}

// buildRows flattens the grouped view. Members of collapsed groups are
// left out; their header stays.
func buildRows(s core.Snapshot, collapsed map[string]bool) []row {
	rows := make([]row, 0, len(s.Connections)+len(s.Groups))
	for _, g := range s.Groups {
		rows = append(rows, row{group: g.Name, count: len(g.Connections)})
		if collapsed[g.Name] {
			continue
		}
		for _, c := range g.Connections {
			rows = append(rows, row{
				group: g.Name,
				conn:  c,
				name:  c.String(),
				port:  c.Port,
				baud:  c.BaudRate,
			})
		}
	}
	return rows
}
