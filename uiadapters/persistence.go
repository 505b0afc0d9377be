// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package uiadapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/toeirei/portmaster/config"
	"github.com/toeirei/portmaster/core"
	"github.com/toeirei/portmaster/core/db"
	"github.com/toeirei/portmaster/internal/logging"
)

// NewPersistence returns the backend selected by `storage.type` together
// with a function releasing its resources. An empty type selects the file
// backend; an empty DSN for the file backend selects the default path.
func NewPersistence(ctx context.Context, cfg config.Config) (core.Persistence, func() error, error) {
	kind := strings.ToLower(strings.TrimSpace(cfg.Storage.Type))
	dsn := cfg.Storage.Dsn

	switch kind {
	case "", config.StorageFile:
		if dsn == "" {
			dsn = config.DefaultConnectionsPath()
		}
		logging.Debugf("storage: file %s", dsn)
		return db.NewFileStore(dsn), noopClose, nil
	case config.StorageSQLite, config.StoragePostgres, config.StorageMySQL:
		if dsn == "" {
			return nil, nil, fmt.Errorf("storage.dsn is required for storage type %q", kind)
		}
		s, err := db.NewStoreFromDSN(ctx, kind, dsn)
		if err != nil {
			return nil, nil, err
		}
		logging.Debugf("storage: %s", kind)
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage type %q", cfg.Storage.Type)
	}
}

func noopClose() error { return nil }
