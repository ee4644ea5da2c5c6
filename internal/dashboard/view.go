package dashboard

import (
	"marquee/internal/domain/profiles"
	"marquee/internal/ui"
	"time"
)

// Options are the per-render inputs: the user's search box and filter
// buttons, and the instant "now" is pinned to.
type Options struct {
	Query  string
	Filter FilterMode
	Now    time.Time
	Format Formatter
}

type FilterOption struct {
	Value  FilterMode `json:"value"`
	Label  string     `json:"label"`
	Active bool       `json:"active"`
}

// View is everything the dashboard page renders. It is derived from a
// Snapshot on every render and never stored.
type View struct {
	State          State            `json:"state"`
	Error          string           `json:"error,omitempty"`
	UserName       string           `json:"user_name"`
	Role           profiles.Role    `json:"role"`
	IsHost         bool             `json:"is_host"`
	Query          string           `json:"query"`
	Filter         FilterMode       `json:"filter"`
	Filters        []FilterOption   `json:"filters"`
	Stats          Stats            `json:"stats"`
	Cards          []ui.Card        `json:"cards"`
	Chart          ui.Chart         `json:"chart"`
	Events         Panel[EventView] `json:"events"`
	Chats          Panel[ChatView]  `json:"chats"`
	CreateEventURL string           `json:"create_event_url"`
	GeneratedAt    time.Time        `json:"generated_at"`
}

func Build(s Snapshot, opts Options) View {
	if opts.Filter == "" {
		opts.Filter = FilterAll
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	var role profiles.Role
	userName := unknownUser
	if s.Profile != nil {
		role = s.Profile.Role
		userName = displayName(s.Profile.Name, s.Profile.Email)
	}

	stats := ComputeStats(s, opts.Now)

	filters := make([]FilterOption, 0, 3)
	for _, f := range []struct {
		mode  FilterMode
		label string
	}{{FilterAll, "All"}, {FilterUpcoming, "Upcoming"}, {FilterPast, "Past"}} {
		filters = append(filters, FilterOption{Value: f.mode, Label: f.label, Active: f.mode == opts.Filter})
	}

	return View{
		State:          s.State,
		Error:          s.Err,
		UserName:       userName,
		Role:           role,
		IsHost:         role == profiles.RoleHost,
		Query:          opts.Query,
		Filter:         opts.Filter,
		Filters:        filters,
		Stats:          stats,
		Cards:          stats.Cards(opts.Format),
		Chart:          ui.NewChart("weekly", "Events", "Chats", WeeklySeries(s, opts.Now)),
		Events:         EventsPanel(role, FilterEvents(s.Events, opts.Query, opts.Filter, opts.Now), FilterOpportunities(s.Opportunities, opts.Query)),
		Chats:          ChatsPanel(role, FilterChats(s.Chats, opts.Query)),
		CreateEventURL: CreateEventURL,
		GeneratedAt:    opts.Now,
	}
}
