package financials

import (
	"context"
	"time"

	"github.com/google/uuid"
)

var QueryTimeoutDuration = time.Second * 5

// Row is the per-event money summary maintained by the ticketing side.
type Row struct {
	EventID     uuid.UUID `db:"event_id" json:"event_id"`
	TotalSales  float64   `db:"total_sales" json:"total_sales"`
	CreatorCost float64   `db:"creator_cost" json:"creator_cost"`
}

type Store interface {
	ListForEvents(ctx context.Context, eventIDs []uuid.UUID) ([]Row, error)
}

// NetProfit folds rows into Σ(total_sales − creator_cost).
func NetProfit(rows []Row) float64 {
	var net float64
	for _, r := range rows {
		net += r.TotalSales - r.CreatorCost
	}
	return net
}
