package dashboard

import "marquee/internal/domain/profiles"

// PanelLimit is the number of rows a dashboard panel shows.
const PanelLimit = 5

const (
	EventsURL        = "/events"
	ChatsURL         = "/chats"
	OpportunitiesURL = "/opportunities"
	CreateEventURL   = "/events/new"
)

type EmptyState struct {
	Title       string `json:"title"`
	Body        string `json:"body"`
	ActionLabel string `json:"action_label,omitempty"`
	ActionURL   string `json:"action_url,omitempty"`
}

// Panel is one list box of the dashboard: the first rows of a filtered
// list, how many rows matched, and what to show when nothing did.
type Panel[T any] struct {
	Title       string     `json:"title"`
	Rows        []T        `json:"rows"`
	Matched     int        `json:"matched"`
	ShowViewAll bool       `json:"show_view_all"`
	ViewAllURL  string     `json:"view_all_url"`
	Empty       EmptyState `json:"empty"`
}

func newPanel[T any](title string, matched []T, viewAll string, empty EmptyState) Panel[T] {
	rows := matched
	if len(rows) > PanelLimit {
		rows = rows[:PanelLimit]
	}
	return Panel[T]{
		Title:       title,
		Rows:        rows,
		Matched:     len(matched),
		ShowViewAll: len(matched) > PanelLimit,
		ViewAllURL:  viewAll,
		Empty:       empty,
	}
}

// EventsPanel lists the host's own events, or open opportunities for
// everyone else.
func EventsPanel(role profiles.Role, events, opportunities []EventView) Panel[EventView] {
	if role == profiles.RoleHost {
		return newPanel("Your Events", events, EventsURL, EmptyState{
			Title:       "No events found",
			Body:        "Create your first event to start finding creators.",
			ActionLabel: "Create Event",
			ActionURL:   CreateEventURL,
		})
	}
	return newPanel("Opportunities", opportunities, OpportunitiesURL, EmptyState{
		Title: "No opportunities found",
		Body:  "Check back soon for events looking for creators like you.",
	})
}

func ChatsPanel(role profiles.Role, cs []ChatView) Panel[ChatView] {
	body := "Conversations with hosts will appear here once you apply to events."
	if role == profiles.RoleHost {
		body = "Conversations with creators will appear here once they apply to your events."
	}
	return newPanel("Recent Chats", cs, ChatsURL, EmptyState{
		Title: "No chats yet",
		Body:  body,
	})
}
