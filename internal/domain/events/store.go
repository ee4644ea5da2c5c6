package events

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

func baseSpec() query.Spec {
	return query.Spec{
		From:  "events",
		Alias: "e",
		Fields: []query.Field{
			{Ref: "e.id"},
			{Ref: "e.title"},
			{Ref: "e.description"},
			{Ref: "e.event_date"},
			{Ref: "e.creator_id"},
			{Ref: "e.seeking_creators"},
			{Ref: "e.status"},
			{Ref: "p.name", As: "creator_name"},
			{Ref: "p.email", As: "creator_email"},
		},
		Joins:  []query.Join{{Table: "profiles", Alias: "p", Left: "p.id", Right: "e.creator_id"}},
		Counts: []query.Count{{Table: "applications", FK: "event_id", Ref: "e.id", As: "applications"}},
		Order:  []query.Order{{Ref: "e.event_date"}},
	}
}

// ByCreatorSpec selects the events authored by creatorID, soonest first.
func ByCreatorSpec(creatorID uuid.UUID) query.Spec {
	s := baseSpec()
	s.Where = []query.Predicate{query.Eq("e.creator_id", creatorID)}
	return s
}

// OpportunitiesSpec selects published events still seeking creators that
// viewerID did not author, soonest first.
func OpportunitiesSpec(viewerID uuid.UUID) query.Spec {
	s := baseSpec()
	s.Where = []query.Predicate{
		query.Eq("e.status", StatusPublished),
		query.Eq("e.seeking_creators", true),
		query.Neq("e.creator_id", viewerID),
	}
	return s
}

func (r *Repository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]Event, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return query.Collect[Event](ctx, r.db, ByCreatorSpec(creatorID))
}

func (r *Repository) ListOpportunities(ctx context.Context, viewerID uuid.UUID) ([]Event, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return query.Collect[Event](ctx, r.db, OpportunitiesSpec(viewerID))
}

func (r *Repository) PageByCreator(ctx context.Context, creatorID uuid.UUID, p params.Pagination) ([]Event, int, error) {
	return r.page(ctx, ByCreatorSpec(creatorID), p)
}

func (r *Repository) PageOpportunities(ctx context.Context, viewerID uuid.UUID, p params.Pagination) ([]Event, int, error) {
	return r.page(ctx, OpportunitiesSpec(viewerID), p)
}

func (r *Repository) page(ctx context.Context, s query.Spec, p params.Pagination) ([]Event, int, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	total, err := query.Total(ctx, r.db, s)
	if err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}

	s.Limit = p.Limit
	s.Offset = p.Offset
	out, err := query.Collect[Event](ctx, r.db, s)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	return out, total, nil
}
