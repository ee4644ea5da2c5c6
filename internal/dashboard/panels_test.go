package dashboard

import (
	"marquee/internal/domain/profiles"
	"testing"
)

func eventRows(n int) []EventView {
	out := make([]EventView, n)
	for i := range out {
		out[i].Title = string(rune('A' + i))
	}
	return out
}

func TestEventsPanel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		role        profiles.Role
		events      int
		opps        int
		title       string
		rows        int
		viewAll     bool
		emptyAction string
	}{
		{"host sees own events", profiles.RoleHost, 3, 9, "Your Events", 3, false, CreateEventURL},
		{"exactly five rows has no view all", profiles.RoleHost, 5, 0, "Your Events", 5, false, CreateEventURL},
		{"six rows are cut to five", profiles.RoleHost, 6, 0, "Your Events", 5, true, CreateEventURL},
		{"creator sees opportunities", profiles.RoleCreator, 9, 2, "Opportunities", 2, false, ""},
		{"unknown role falls back to opportunities", "", 1, 7, "Opportunities", 5, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := EventsPanel(tt.role, eventRows(tt.events), eventRows(tt.opps))
			if p.Title != tt.title || len(p.Rows) != tt.rows || p.ShowViewAll != tt.viewAll {
				t.Fatalf("EventsPanel() = %q, %d rows, view all %v; want %q, %d, %v", p.Title, len(p.Rows), p.ShowViewAll, tt.title, tt.rows, tt.viewAll)
			}
			if p.Empty.ActionURL != tt.emptyAction {
				t.Fatalf("empty action = %q, want %q", p.Empty.ActionURL, tt.emptyAction)
			}
		})
	}

	// Rows keep the order they were given in.
	p := EventsPanel(profiles.RoleHost, eventRows(7), nil)
	if p.Rows[0].Title != "A" || p.Rows[4].Title != "E" || p.Matched != 7 {
		t.Fatalf("rows = %v, matched %d", p.Rows, p.Matched)
	}
}

func TestChatsPanelEmptyCopy(t *testing.T) {
	t.Parallel()

	host := ChatsPanel(profiles.RoleHost, nil)
	creator := ChatsPanel(profiles.RoleCreator, nil)
	if host.Empty.Title != "No chats yet" || creator.Empty.Title != "No chats yet" {
		t.Fatalf("empty titles = %q / %q", host.Empty.Title, creator.Empty.Title)
	}
	if host.Empty.Body == creator.Empty.Body {
		t.Fatal("hosts and creators share the same empty copy")
	}

	p := ChatsPanel(profiles.RoleCreator, make([]ChatView, 8))
	if len(p.Rows) != PanelLimit || !p.ShowViewAll || p.ViewAllURL != ChatsURL {
		t.Fatalf("ChatsPanel(8) = %d rows, view all %v, url %q", len(p.Rows), p.ShowViewAll, p.ViewAllURL)
	}
}
