package main

import (
	"context"
	"marquee/internal/auth"
	"marquee/internal/dashboard"
	"marquee/internal/domain/chats"
	"marquee/internal/domain/events"
	"marquee/internal/domain/financials"
	"marquee/internal/domain/profiles"
	"marquee/internal/domain/storage"
	"marquee/internal/params"
	"marquee/internal/ui"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var fixedNow = time.Date(2026, 3, 18, 12, 0, 0, 0, time.UTC)

type fakeProfiles struct {
	byID map[uuid.UUID]*profiles.Profile
}

func (f *fakeProfiles) GetByID(ctx context.Context, id uuid.UUID) (*profiles.Profile, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, profiles.ErrNotFound
	}
	return p, nil
}

type fakeEvents struct {
	own           []events.Event
	opportunities []events.Event
	lastPage      params.Pagination
}

func (f *fakeEvents) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]events.Event, error) {
	return f.own, nil
}

func (f *fakeEvents) ListOpportunities(ctx context.Context, viewerID uuid.UUID) ([]events.Event, error) {
	return f.opportunities, nil
}

func (f *fakeEvents) PageByCreator(ctx context.Context, creatorID uuid.UUID, p params.Pagination) ([]events.Event, int, error) {
	f.lastPage = p
	return window(f.own, p), len(f.own), nil
}

func (f *fakeEvents) PageOpportunities(ctx context.Context, viewerID uuid.UUID, p params.Pagination) ([]events.Event, int, error) {
	f.lastPage = p
	return window(f.opportunities, p), len(f.opportunities), nil
}

type fakeChats struct {
	chats []chats.Chat
	err   error
}

func (f *fakeChats) ListForParticipant(ctx context.Context, userID uuid.UUID) ([]chats.Chat, error) {
	return f.chats, f.err
}

func (f *fakeChats) PageForParticipant(ctx context.Context, userID uuid.UUID, p params.Pagination) ([]chats.Chat, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	return window(f.chats, p), len(f.chats), nil
}

type fakeFinancials struct {
	rows []financials.Row
}

func (f *fakeFinancials) ListForEvents(ctx context.Context, eventIDs []uuid.UUID) ([]financials.Row, error) {
	return f.rows, nil
}

func window[T any](rows []T, p params.Pagination) []T {
	if p.Offset >= len(rows) {
		return nil
	}
	end := min(p.Offset+p.Limit, len(rows))
	return rows[p.Offset:end]
}

type testEnv struct {
	app      *application
	profiles *fakeProfiles
	events   *fakeEvents
	chats    *fakeChats
	fin      *fakeFinancials
	auth     *auth.JWTAuthenticator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	renderer, err := ui.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	env := &testEnv{
		profiles: &fakeProfiles{byID: map[uuid.UUID]*profiles.Profile{}},
		events:   &fakeEvents{},
		chats:    &fakeChats{},
		fin:      &fakeFinancials{},
		auth:     auth.NewJWTAuthenticator("test-secret", "test-refresh-secret", "marquee", "marquee"),
	}
	env.app = &application{
		config: config{
			env: "test",
			auth: authConfig{
				basic: basicConfig{user: "ops", pass: "s3cret"},
			},
		},
		store: &storage.Container{
			Profiles:   env.profiles,
			Events:     env.events,
			Chats:      env.chats,
			Financials: env.fin,
		},
		logger:        zap.NewNop().Sugar(),
		authenticator: env.auth,
		renderer:      renderer,
		format:        dashboard.NewFormatter(language.AmericanEnglish),
		now:           func() time.Time { return fixedNow },
	}
	return env
}

// addProfile registers p and returns an access token for it.
func (e *testEnv) addProfile(t *testing.T, p *profiles.Profile) string {
	t.Helper()

	e.profiles.byID[p.ID] = p
	token, _, err := e.auth.GenerateTokens(p.ID, string(p.Role))
	if err != nil {
		t.Fatalf("GenerateTokens() error = %v", err)
	}
	return token
}

func strptr(s string) *string { return &s }
