package store

import (
	"context"
	"fmt"

	"kodevidecamp/internal/config"
)

// Open builds the Slot selected by STORE_BACKEND. SQL backends are migrated
// before they are returned.
func Open(ctx context.Context, s config.Settings) (Slot, error) {
	switch s.StoreBackend {
	case "", "memory":
		return NewMemory(), nil

	case "redis":
		client, err := config.InitRedis(ctx, s)
		if err != nil {
			return nil, err
		}
		return NewRedis(client), nil

	case "mysql", "postgres", "sqlite":
		db, err := config.InitDB(s)
		if err != nil {
			return nil, err
		}
		slot := NewSQL(db)
		if err := slot.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
		return slot, nil

	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", s.StoreBackend)
	}
}
