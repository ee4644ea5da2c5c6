package storage

import (
	"context"
	"errors"
	"marquee/internal/domain/chats"
	"marquee/internal/domain/events"
	"marquee/internal/domain/financials"
	"marquee/internal/domain/profiles"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Container groups the repositories the service reads from.
type Container struct {
	pool       *pgxpool.Pool
	Profiles   profiles.Store
	Events     events.Store
	Chats      chats.Store
	Financials financials.Store
}

func NewContainer(db *pgxpool.Pool) *Container {
	return &Container{
		pool:       db,
		Profiles:   profiles.NewRepository(db),
		Events:     events.NewRepository(db),
		Chats:      chats.NewRepository(db),
		Financials: financials.NewRepository(db),
	}
}

// Ping checks that the backing database is reachable.
func (c *Container) Ping(ctx context.Context) error {
	if c.pool == nil {
		return errors.New("storage: no database pool")
	}
	return c.pool.Ping(ctx)
}
