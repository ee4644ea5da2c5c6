package dashboard

import (
	"context"
	"errors"
	"marquee/internal/domain/chats"
	"marquee/internal/domain/events"
	"marquee/internal/domain/financials"
	"marquee/internal/domain/profiles"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSuperseded is returned by a fetch cycle whose results were discarded
// because a newer cycle started before it finished.
var ErrSuperseded = errors.New("dashboard: fetch cycle superseded")

// State is the lifecycle stage of a Page.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Sources are the reads a fetch cycle is made of.
type Sources struct {
	Events     events.Store
	Chats      chats.Store
	Financials financials.Store
}

// Snapshot is the page state committed by fetch cycles.
type Snapshot struct {
	State         State
	Profile       *profiles.Profile
	Events        []EventView
	Opportunities []EventView
	Chats         []ChatView
	NetProfit     float64
	Err           string
}

// Page holds the view state of one dashboard for one viewer. Fetch cycles
// are tagged with a sequence number; only the newest cycle may commit, so
// a slow cycle for an old profile can never overwrite a newer one.
type Page struct {
	src     Sources
	avatars AvatarResolver
	logger  *zap.SugaredLogger

	mu   sync.RWMutex
	seq  uint64
	snap Snapshot
}

func NewPage(src Sources, avatars AvatarResolver, logger *zap.SugaredLogger) *Page {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Page{
		src:     src,
		avatars: avatars,
		logger:  logger,
		snap: Snapshot{
			State:         StateLoading,
			Events:        []EventView{},
			Opportunities: []EventView{},
			Chats:         []ChatView{},
		},
	}
}

// Snapshot returns a copy of the current page state.
func (p *Page) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snap
}

// SetProfile hands the page the current viewer. A nil profile leaves the
// page loading without fetching. A profile with a new identity starts a
// fetch cycle; the same identity again is a no-op.
func (p *Page) SetProfile(ctx context.Context, profile *profiles.Profile) error {
	p.mu.Lock()
	if sameIdentity(p.snap.Profile, profile) {
		p.mu.Unlock()
		return nil
	}
	p.mu.Unlock()

	if profile == nil {
		p.begin(nil)
		return nil
	}
	return p.cycle(ctx, profile)
}

// Refresh runs a fetch cycle for the current profile, if any.
func (p *Page) Refresh(ctx context.Context) error {
	p.mu.RLock()
	profile := p.snap.Profile
	p.mu.RUnlock()

	if profile == nil {
		return nil
	}
	return p.cycle(ctx, profile)
}

func (p *Page) begin(profile *profiles.Profile) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.seq++
	if !sameIdentity(p.snap.Profile, profile) {
		p.snap.Events = []EventView{}
		p.snap.Opportunities = []EventView{}
		p.snap.Chats = []ChatView{}
		p.snap.NetProfit = 0
	}
	p.snap.Profile = profile
	p.snap.State = StateLoading
	p.snap.Err = ""
	return p.seq
}

// commit applies fn to the snapshot unless cycle seq has been superseded.
func (p *Page) commit(seq uint64, fn func(s *Snapshot)) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if seq != p.seq {
		return false
	}
	fn(&p.snap)
	return true
}

func (p *Page) cycle(ctx context.Context, profile *profiles.Profile) error {
	seq := p.begin(profile)
	log := p.logger.With("seq", seq, "profile_id", profile.ID, "role", profile.Role)
	log.Debugw("dashboard fetch cycle started")

	err := p.fetch(ctx, seq, profile)
	switch {
	case errors.Is(err, ErrSuperseded):
		log.Infow("dashboard fetch cycle superseded")
		return err
	case err != nil:
		if !p.commit(seq, func(s *Snapshot) {
			s.State = StateError
			s.Err = err.Error()
		}) {
			log.Infow("dashboard fetch cycle superseded")
			return ErrSuperseded
		}
		log.Warnw("dashboard fetch cycle failed", "error", err.Error())
		return err
	}

	if !p.commit(seq, func(s *Snapshot) {
		s.State = StateReady
		s.Err = ""
	}) {
		log.Infow("dashboard fetch cycle superseded")
		return ErrSuperseded
	}
	log.Debugw("dashboard fetch cycle finished")
	return nil
}

// fetch runs the reads in order, committing each result as it arrives so a
// later failure leaves the earlier results visible.
func (p *Page) fetch(ctx context.Context, seq uint64, profile *profiles.Profile) error {
	own, err := p.src.Events.ListByCreator(ctx, profile.ID)
	if err != nil {
		return err
	}
	ownViews := normalizeEvents(own)
	if !p.commit(seq, func(s *Snapshot) { s.Events = ownViews }) {
		return ErrSuperseded
	}

	opportunities := []EventView{}
	if profile.IsCreator() {
		rows, err := p.src.Events.ListOpportunities(ctx, profile.ID)
		if err != nil {
			return err
		}
		opportunities = normalizeEvents(rows)
	}
	if !p.commit(seq, func(s *Snapshot) { s.Opportunities = opportunities }) {
		return ErrSuperseded
	}

	threads, err := p.src.Chats.ListForParticipant(ctx, profile.ID)
	if err != nil {
		return err
	}
	chatViews := normalizeChats(threads, p.avatars)
	if !p.commit(seq, func(s *Snapshot) { s.Chats = chatViews }) {
		return ErrSuperseded
	}

	var net float64
	if profile.IsHost() {
		ids := make([]uuid.UUID, 0, len(own))
		for _, e := range own {
			ids = append(ids, e.ID)
		}
		rows, err := p.src.Financials.ListForEvents(ctx, ids)
		if err != nil {
			return err
		}
		net = financials.NetProfit(rows)
	}
	if !p.commit(seq, func(s *Snapshot) { s.NetProfit = net }) {
		return ErrSuperseded
	}
	return nil
}

func sameIdentity(a, b *profiles.Profile) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID == b.ID
}
