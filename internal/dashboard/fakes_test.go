package dashboard

import (
	"context"
	"marquee/internal/domain/chats"
	"marquee/internal/domain/events"
	"marquee/internal/domain/financials"
	"marquee/internal/params"
	"sync"
	"time"

	"github.com/google/uuid"
)

type fakeEvents struct {
	mu            sync.Mutex
	own           map[uuid.UUID][]events.Event
	opportunities []events.Event
	ownErr        error
	oppErr        error
	oppCalls      int

	// gate, when set for a creator, blocks ListByCreator until closed;
	// entered is signalled once the call is waiting.
	gate    map[uuid.UUID]chan struct{}
	entered chan uuid.UUID
}

func (f *fakeEvents) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]events.Event, error) {
	f.mu.Lock()
	gate := f.gate[creatorID]
	f.mu.Unlock()
	if gate != nil {
		if f.entered != nil {
			f.entered <- creatorID
		}
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.ownErr != nil {
		return nil, f.ownErr
	}
	return f.own[creatorID], nil
}

func (f *fakeEvents) ListOpportunities(ctx context.Context, viewerID uuid.UUID) ([]events.Event, error) {
	f.mu.Lock()
	f.oppCalls++
	f.mu.Unlock()
	if f.oppErr != nil {
		return nil, f.oppErr
	}
	return f.opportunities, nil
}

func (f *fakeEvents) PageByCreator(ctx context.Context, creatorID uuid.UUID, p params.Pagination) ([]events.Event, int, error) {
	return f.own[creatorID], len(f.own[creatorID]), f.ownErr
}

func (f *fakeEvents) PageOpportunities(ctx context.Context, viewerID uuid.UUID, p params.Pagination) ([]events.Event, int, error) {
	return f.opportunities, len(f.opportunities), f.oppErr
}

type fakeChats struct {
	chats []chats.Chat
	err   error
}

func (f *fakeChats) ListForParticipant(ctx context.Context, userID uuid.UUID) ([]chats.Chat, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.chats, nil
}

func (f *fakeChats) PageForParticipant(ctx context.Context, userID uuid.UUID, p params.Pagination) ([]chats.Chat, int, error) {
	return f.chats, len(f.chats), f.err
}

type fakeFinancials struct {
	mu    sync.Mutex
	rows  []financials.Row
	err   error
	calls [][]uuid.UUID
}

// ListForEvents returns only the rows belonging to the requested events.
func (f *fakeFinancials) ListForEvents(ctx context.Context, eventIDs []uuid.UUID) ([]financials.Row, error) {
	f.mu.Lock()
	f.calls = append(f.calls, eventIDs)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[uuid.UUID]bool, len(eventIDs))
	for _, id := range eventIDs {
		want[id] = true
	}
	var out []financials.Row
	for _, r := range f.rows {
		if want[r.EventID] {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeAvatars struct{}

func (fakeAvatars) AvatarURL(publicID string) string {
	return "https://img.example/" + publicID
}

func strptr(s string) *string { return &s }
func intptr(n int) *int       { return &n }

var fixedNow = time.Date(2026, 3, 18, 12, 0, 0, 0, time.UTC)
