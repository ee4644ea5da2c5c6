package dashboard

import (
	"fmt"
	"strings"
	"time"
)

// FilterMode selects which side of now the events list shows.
type FilterMode string

const (
	FilterAll      FilterMode = "all"
	FilterUpcoming FilterMode = "upcoming"
	FilterPast     FilterMode = "past"
)

// ParseFilterMode maps a query parameter to a FilterMode; "" means all.
func ParseFilterMode(s string) (FilterMode, error) {
	switch m := FilterMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return FilterAll, nil
	case FilterAll, FilterUpcoming, FilterPast:
		return m, nil
	default:
		return "", fmt.Errorf("invalid filter %q: want all, upcoming or past", s)
	}
}

// matches reports whether q is a case-insensitive substring of any field.
// The empty query matches everything.
func matches(q string, fields ...string) bool {
	q = strings.ToLower(q)
	if q == "" {
		return true
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func isUpcoming(e EventView, now time.Time) bool {
	return e.EventDate.After(now)
}

// FilterEvents keeps the viewer's own events matching q by title or
// description and lying on the requested side of now.
func FilterEvents(evs []EventView, q string, mode FilterMode, now time.Time) []EventView {
	out := make([]EventView, 0, len(evs))
	for _, e := range evs {
		if !matches(q, e.Title, e.Description) {
			continue
		}
		switch mode {
		case FilterUpcoming:
			if !isUpcoming(e, now) {
				continue
			}
		case FilterPast:
			if isUpcoming(e, now) {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// FilterOpportunities keeps opportunities matching q by title or
// description. Opportunities ignore the date filter.
func FilterOpportunities(evs []EventView, q string) []EventView {
	out := make([]EventView, 0, len(evs))
	for _, e := range evs {
		if matches(q, e.Title, e.Description) {
			out = append(out, e)
		}
	}
	return out
}

// FilterChats keeps chats whose event title or either party's email
// matches q.
func FilterChats(cs []ChatView, q string) []ChatView {
	out := make([]ChatView, 0, len(cs))
	for _, c := range cs {
		if matches(q, c.EventTitle, c.HostEmail, c.CreatorEmail) {
			out = append(out, c)
		}
	}
	return out
}
