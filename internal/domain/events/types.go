package events

import (
	"context"
	"errors"
	"marquee/internal/params"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("resource not found")
	QueryTimeoutDuration = time.Second * 5
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusCancelled = "cancelled"
)

// Event is one row of the events table enriched with its creator profile
// and the number of applications received.
type Event struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Title           string    `db:"title" json:"title"`
	Description     *string   `db:"description" json:"description,omitempty" swaggertype:"string"`
	EventDate       time.Time `db:"event_date" json:"event_date"`
	CreatorID       uuid.UUID `db:"creator_id" json:"creator_id"`
	CreatorName     *string   `db:"creator_name" json:"creator_name,omitempty" swaggertype:"string"`
	CreatorEmail    *string   `db:"creator_email" json:"creator_email,omitempty" swaggertype:"string"`
	SeekingCreators bool      `db:"seeking_creators" json:"seeking_creators"`
	Status          string    `db:"status" json:"status"`
	Applications    int       `db:"applications" json:"applications"`
}

type Store interface {
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]Event, error)
	ListOpportunities(ctx context.Context, viewerID uuid.UUID) ([]Event, error)
	PageByCreator(ctx context.Context, creatorID uuid.UUID, p params.Pagination) ([]Event, int, error)
	PageOpportunities(ctx context.Context, viewerID uuid.UUID, p params.Pagination) ([]Event, int, error)
}
