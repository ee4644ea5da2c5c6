package main

import (
	"encoding/json"
	"errors"
	"marquee/internal/domain/chats"
	"marquee/internal/domain/events"
	"marquee/internal/domain/financials"
	"marquee/internal/domain/profiles"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

type dashboardBody struct {
	Data struct {
		State    string `json:"state"`
		Error    string `json:"error"`
		UserName string `json:"user_name"`
		IsHost   bool   `json:"is_host"`
		Cards    []struct {
			Title string `json:"title"`
			Value string `json:"value"`
		} `json:"cards"`
		Events struct {
			Title string `json:"title"`
			Rows  []struct {
				Title string `json:"title"`
			} `json:"rows"`
		} `json:"events"`
		Chats struct {
			Rows []json.RawMessage `json:"rows"`
		} `json:"chats"`
	} `json:"data"`
}

func seedHost(t *testing.T, env *testEnv) string {
	t.Helper()

	host := &profiles.Profile{ID: uuid.New(), Role: profiles.RoleHost, Name: strptr("Hana"), Email: "hana@example.com"}
	past := events.Event{ID: uuid.New(), Title: "Rooftop Sessions", EventDate: fixedNow.Add(-24 * time.Hour), CreatorID: host.ID}
	next := events.Event{ID: uuid.New(), Title: "Spring Market", EventDate: fixedNow.Add(7 * 24 * time.Hour), CreatorID: host.ID}
	env.events.own = []events.Event{past, next}
	env.fin.rows = []financials.Row{
		{EventID: past.ID, TotalSales: 1000, CreatorCost: 400},
		{EventID: next.ID, TotalSales: 500, CreatorCost: 300},
	}
	return env.addProfile(t, host)
}

func getDashboard(t *testing.T, env *testEnv, target, token string) (*httptest.ResponseRecorder, dashboardBody) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	env.app.mount().ServeHTTP(rr, req)

	var body dashboardBody
	if rr.Code == http.StatusOK {
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode dashboard: %v", err)
		}
	}
	return rr, body
}

func TestDashboardHandlerHost(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	token := seedHost(t, env)

	rr, body := getDashboard(t, env, "/v1/dashboard", token)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
	}
	if body.Data.State != "ready" || !body.Data.IsHost || body.Data.UserName != "Hana" {
		t.Fatalf("view = %+v", body.Data)
	}

	want := map[string]string{"Active Events": "1", "Total Events": "2", "Unread Messages": "0", "Net Profit": "$800"}
	for _, c := range body.Data.Cards {
		if c.Value != want[c.Title] {
			t.Errorf("card %q = %q, want %q", c.Title, c.Value, want[c.Title])
		}
	}

	_, upcoming := getDashboard(t, env, "/v1/dashboard?filter=upcoming", token)
	if rows := upcoming.Data.Events.Rows; len(rows) != 1 || rows[0].Title != "Spring Market" {
		t.Fatalf("upcoming rows = %+v", rows)
	}
	rr, mixed := getDashboard(t, env, "/v1/dashboard?filter=%20Upcoming", token)
	if rr.Code != http.StatusOK {
		t.Fatalf("filter=Upcoming status = %d, want 200", rr.Code)
	}
	if rows := mixed.Data.Events.Rows; len(rows) != 1 || rows[0].Title != "Spring Market" {
		t.Fatalf("mixed-case filter rows = %+v", rows)
	}
	_, searched := getDashboard(t, env, "/v1/dashboard?q=ROOFTOP", token)
	if rows := searched.Data.Events.Rows; len(rows) != 1 || rows[0].Title != "Rooftop Sessions" {
		t.Fatalf("searched rows = %+v", rows)
	}
}

func TestDashboardHandlerReportsFetchError(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	token := seedHost(t, env)
	env.chats.err = errors.New("permission denied for table chats")

	rr, body := getDashboard(t, env, "/v1/dashboard", token)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if body.Data.State != "error" || body.Data.Error != "permission denied for table chats" {
		t.Fatalf("state/error = %q/%q", body.Data.State, body.Data.Error)
	}
	if len(body.Data.Events.Rows) != 2 || len(body.Data.Chats.Rows) != 0 {
		t.Fatalf("events/chats rows = %d/%d, want 2/0", len(body.Data.Events.Rows), len(body.Data.Chats.Rows))
	}
}

func TestDashboardHandlerWithoutProfileStaysLoading(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	token, _, err := env.auth.GenerateTokens(uuid.New(), "creator")
	if err != nil {
		t.Fatalf("GenerateTokens() error = %v", err)
	}

	rr, body := getDashboard(t, env, "/v1/dashboard", token)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if body.Data.State != "loading" || body.Data.Error != "" {
		t.Fatalf("state/error = %q/%q, want loading", body.Data.State, body.Data.Error)
	}
}

func TestDashboardHandlerRejects(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	token := seedHost(t, env)

	tests := []struct {
		name   string
		target string
		token  string
		want   int
	}{
		{"no token", "/v1/dashboard", "", http.StatusUnauthorized},
		{"bad token", "/v1/dashboard", "nope", http.StatusUnauthorized},
		{"unknown filter", "/v1/dashboard?filter=soon", token, http.StatusBadRequest},
		{"query too long", "/v1/dashboard?q=" + strings.Repeat("a", 201), token, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, _ := getDashboard(t, env, tt.target, tt.token)
			if rr.Code != tt.want {
				t.Fatalf("status = %d, want %d", rr.Code, tt.want)
			}
		})
	}
}

func TestDashboardPageHandler(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	token := seedHost(t, env)
	env.chats.chats = []chats.Chat{{
		ID:            uuid.New(),
		EventTitle:    strptr("Spring Market"),
		CreatorEmail:  strptr("cleo@example.com"),
		LastMessageAt: fixedNow.Add(-time.Hour),
	}}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
	rr := httptest.NewRecorder()
	env.app.mount().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("Content-Type = %q, want text/html", ct)
	}
	page := rr.Body.String()
	for _, want := range []string{"Welcome back, Hana", "$800", "Spring Market", "cleo", `href="/events/new"`} {
		if !strings.Contains(page, want) {
			t.Errorf("page does not contain %q", want)
		}
	}

	anon := httptest.NewRecorder()
	env.app.mount().ServeHTTP(anon, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if anon.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous status = %d, want 401", anon.Code)
	}
}
