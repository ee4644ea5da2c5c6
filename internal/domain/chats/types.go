package chats

import (
	"context"
	"marquee/internal/params"
	"time"

	"github.com/google/uuid"
)

var QueryTimeoutDuration = time.Second * 5

// Chat is a messaging thread between the host and the creator of one event.
type Chat struct {
	ID                    uuid.UUID `db:"id" json:"id"`
	EventID               uuid.UUID `db:"event_id" json:"event_id"`
	EventTitle            *string   `db:"event_title" json:"event_title,omitempty" swaggertype:"string"`
	HostID                uuid.UUID `db:"host_id" json:"host_id"`
	HostName              *string   `db:"host_name" json:"host_name,omitempty" swaggertype:"string"`
	HostEmail             *string   `db:"host_email" json:"host_email,omitempty" swaggertype:"string"`
	HostAvatarPublicID    *string   `db:"host_avatar_public_id" json:"-"`
	CreatorID             uuid.UUID `db:"creator_id" json:"creator_id"`
	CreatorName           *string   `db:"creator_name" json:"creator_name,omitempty" swaggertype:"string"`
	CreatorEmail          *string   `db:"creator_email" json:"creator_email,omitempty" swaggertype:"string"`
	CreatorAvatarPublicID *string   `db:"creator_avatar_public_id" json:"-"`
	LastMessageAt         time.Time `db:"last_message_at" json:"last_message_at"`
	UnreadCount           *int      `db:"unread_count" json:"unread_count,omitempty" swaggertype:"integer"`
}

type Store interface {
	ListForParticipant(ctx context.Context, userID uuid.UUID) ([]Chat, error)
	PageForParticipant(ctx context.Context, userID uuid.UUID, p params.Pagination) ([]Chat, int, error)
}
