package main

import (
	"encoding/json"
	"marquee/internal/domain/events"
	"marquee/internal/domain/profiles"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestListEventsHandlerPaginates(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	host := &profiles.Profile{ID: uuid.New(), Role: profiles.RoleHost, Email: "hana@example.com"}
	token := env.addProfile(t, host)
	for i := 0; i < 7; i++ {
		env.events.own = append(env.events.own, events.Event{ID: uuid.New(), Title: "Event", EventDate: fixedNow.Add(time.Duration(i) * time.Hour)})
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/events?page=2&limit=5", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	env.app.mount().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var body struct {
		Data EventListResponse `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data.Events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(body.Data.Events))
	}
	pg := body.Data.Pagination
	if pg.Total != 7 || pg.TotalPages != 2 || pg.HasNext || !pg.HasPrev {
		t.Fatalf("pagination = %+v", pg)
	}
	if env.events.lastPage.Offset != 5 {
		t.Fatalf("store offset = %d, want 5", env.events.lastPage.Offset)
	}
}

func TestListOpportunitiesHandlerHostGetsNone(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	token := env.addProfile(t, &profiles.Profile{ID: uuid.New(), Role: profiles.RoleHost, Email: "hana@example.com"})
	env.events.opportunities = []events.Event{{ID: uuid.New(), Title: "Open Call"}}

	req := httptest.NewRequest(http.MethodGet, "/v1/opportunities", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	env.app.mount().ServeHTTP(rr, req)

	var body struct {
		Data EventListResponse `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rr.Code != http.StatusOK || len(body.Data.Events) != 0 || body.Data.Pagination.Total != 0 {
		t.Fatalf("status %d, body %+v; want 200 with no opportunities", rr.Code, body.Data)
	}
}

func TestListChatsHandlerUnknownProfile(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	token, _, err := env.auth.GenerateTokens(uuid.New(), "creator")
	if err != nil {
		t.Fatalf("GenerateTokens() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/chats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	env.app.mount().ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}
