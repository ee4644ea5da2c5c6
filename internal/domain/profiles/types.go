package profiles

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("resource not found")
	QueryTimeoutDuration = time.Second * 5
)

type Role string

const (
	RoleHost    Role = "host"
	RoleCreator Role = "creator"
)

// Profile is the signed-in user's identity record.
type Profile struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Role           Role      `db:"role" json:"role"`
	Name           *string   `db:"name" json:"name,omitempty" swaggertype:"string"`
	Email          string    `db:"email" json:"email"`
	AvatarPublicID *string   `db:"avatar_public_id" json:"-"`
}

func (p *Profile) IsHost() bool    { return p != nil && p.Role == RoleHost }
func (p *Profile) IsCreator() bool { return p != nil && p.Role == RoleCreator }

type Store interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Profile, error)
}
