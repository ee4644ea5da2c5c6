package financials

import (
	"context"
	"marquee/internal/query"

	"github.com/google/uuid"
)

type Repository struct {
	db query.Querier
}

func NewRepository(db query.Querier) Store {
	return &Repository{db: db}
}

// ForEventsSpec selects the financial rows of exactly the given events.
// An empty id list yields a spec that never reaches the database.
func ForEventsSpec(eventIDs []uuid.UUID) query.Spec {
	return query.Spec{
		From: "event_financials",
		Fields: []query.Field{
			{Ref: "event_id"},
			{Ref: "total_sales"},
			{Ref: "creator_cost"},
		},
		Where: []query.Predicate{query.In("event_id", eventIDs)},
	}
}

func (r *Repository) ListForEvents(ctx context.Context, eventIDs []uuid.UUID) ([]Row, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return query.Collect[Row](ctx, r.db, ForEventsSpec(eventIDs))
}
