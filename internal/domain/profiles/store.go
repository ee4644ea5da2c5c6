package profiles

import (
	"context"
	"errors"
	"fmt"
	"marquee/internal/query"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Repository struct {
	db query.Querier
}

func NewRepository(db query.Querier) Store {
	return &Repository{db: db}
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	const q = `
		SELECT id, role, name, email, avatar_public_id
		FROM profiles
		WHERE id = $1
	`

	p := &Profile{}
	err := r.db.QueryRow(ctx, q, id).Scan(
		&p.ID,
		&p.Role,
		&p.Name,
		&p.Email,
		&p.AvatarPublicID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}
