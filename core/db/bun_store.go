// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"fmt"

	"github.com/toeirei/portmaster/core/model"
	"github.com/toeirei/portmaster/util/slicest"
	"github.com/uptrace/bun"
)

// ConnectionModel maps the `serial_connections` table for Bun queries.
// Position keeps the user-visible order, which is significant.
type ConnectionModel struct {
	bun.BaseModel `bun:"table:serial_connections"`
	ID            int64   `bun:"id,pk,autoincrement"`
	Position      int     `bun:"position,notnull"`
	Name          string  `bun:"name,notnull"`
	GroupName     string  `bun:"group_name,notnull"`
	Port          string  `bun:"port,notnull"`
	BaudRate      int     `bun:"baudrate,notnull"`
	DataBits      int     `bun:"databits,notnull"`
	Parity        string  `bun:"parity,notnull"`
	StopBits      float64 `bun:"stopbits,notnull"`
	RTSCTS        bool    `bun:"rtscts,notnull"`
	XON           bool    `bun:"xon,notnull"`
	XOFF          bool    `bun:"xoff,notnull"`
	XANY          bool    `bun:"xany,notnull"`
}

func connectionToModel(position int, c model.Connection) ConnectionModel {
	return ConnectionModel{
		Position:  position,
		Name:      c.Name,
		GroupName: c.Group,
		Port:      c.Port,
		BaudRate:  c.BaudRate,
		DataBits:  c.DataBits,
		Parity:    c.Parity,
		StopBits:  c.StopBits,
		RTSCTS:    c.RTSCTS,
		XON:       c.XON,
		XOFF:      c.XOFF,
		XANY:      c.XANY,
	}
}

func connectionFromModel(m ConnectionModel) model.Connection {
	return model.Connection{
		Name:     m.Name,
		Group:    m.GroupName,
		Port:     m.Port,
		BaudRate: m.BaudRate,
		DataBits: m.DataBits,
		Parity:   m.Parity,
		StopBits: m.StopBits,
		RTSCTS:   m.RTSCTS,
		XON:      m.XON,
		XOFF:     m.XOFF,
		XANY:     m.XANY,
	}
}

// BunStore persists the connection list in a SQL table.
type BunStore struct {
	db *bun.DB
}

// BunDB exposes the underlying *bun.DB for tests and maintenance.
func (s *BunStore) BunDB() *bun.DB { return s.db }

// Load returns every stored connection in list order.
func (s *BunStore) Load(ctx context.Context) ([]model.Connection, error) {
	var rows []ConnectionModel
	if err := s.db.NewSelect().Model(&rows).Order("position ASC", "id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("query connections: %w", err)
	}
	return slicest.Map(rows, connectionFromModel), nil
}

// Save replaces the stored list with connections in one transaction.
func (s *BunStore) Save(ctx context.Context, connections []model.Connection) error {
	rows := slicest.MapI(connections, func(i int, c model.Connection) ConnectionModel {
		return connectionToModel(i, c)
	})

	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		// Bun requires a WHERE clause for Delete queries.
		if _, err := tx.NewDelete().Model((*ConnectionModel)(nil)).Where("1 = 1").Exec(ctx); err != nil {
			return fmt.Errorf("clear connections: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if _, err := tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
			return fmt.Errorf("insert connections: %w", err)
		}
		return nil
	})
}

// Close releases the database handle.
func (s *BunStore) Close() error {
	return s.db.Close()
}
