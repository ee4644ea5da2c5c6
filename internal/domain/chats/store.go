package chats

import (
	"context"
	"fmt"
	"marquee/internal/params"
	"marquee/internal/query"

	"github.com/google/uuid"
)

type Repository struct {
	db query.Querier
}

func NewRepository(db query.Querier) Store {
	return &Repository{db: db}
}

// ForParticipantSpec selects every chat where userID is the host or the
// creator party, most recently active first.
func ForParticipantSpec(userID uuid.UUID) query.Spec {
	return query.Spec{
		From:  "chats",
		Alias: "c",
		Fields: []query.Field{
			{Ref: "c.id"},
			{Ref: "c.event_id"},
			{Ref: "c.host_id"},
			{Ref: "c.creator_id"},
			{Ref: "c.last_message_at"},
			{Ref: "c.unread_count"},
			{Ref: "e.title", As: "event_title"},
			{Ref: "h.name", As: "host_name"},
			{Ref: "h.email", As: "host_email"},
			{Ref: "h.avatar_public_id", As: "host_avatar_public_id"},
			{Ref: "cr.name", As: "creator_name"},
			{Ref: "cr.email", As: "creator_email"},
			{Ref: "cr.avatar_public_id", As: "creator_avatar_public_id"},
		},
		Joins: []query.Join{
			{Table: "events", Alias: "e", Left: "e.id", Right: "c.event_id"},
			{Table: "profiles", Alias: "h", Left: "h.id", Right: "c.host_id"},
			{Table: "profiles", Alias: "cr", Left: "cr.id", Right: "c.creator_id"},
		},
		Where: []query.Predicate{
			query.Or(query.Eq("c.host_id", userID), query.Eq("c.creator_id", userID)),
		},
		Order: []query.Order{{Ref: "c.last_message_at", Desc: true}},
	}
}

func (r *Repository) ListForParticipant(ctx context.Context, userID uuid.UUID) ([]Chat, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return query.Collect[Chat](ctx, r.db, ForParticipantSpec(userID))
}

func (r *Repository) PageForParticipant(ctx context.Context, userID uuid.UUID, p params.Pagination) ([]Chat, int, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	s := ForParticipantSpec(userID)
	total, err := query.Total(ctx, r.db, s)
	if err != nil {
		return nil, 0, fmt.Errorf("count chats: %w", err)
	}

	s.Limit = p.Limit
	s.Offset = p.Offset
	out, err := query.Collect[Chat](ctx, r.db, s)
	if err != nil {
		return nil, 0, fmt.Errorf("list chats: %w", err)
	}
	return out, total, nil
}
