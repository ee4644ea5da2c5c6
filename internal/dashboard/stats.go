package dashboard

import (
	"marquee/internal/ui"
	"math"
	"time"
)

const week = 7 * 24 * time.Hour

// Stats are the summary numbers derived from a snapshot at a fixed now.
type Stats struct {
	ActiveEvents   int      `json:"active_events"`
	TotalEvents    int      `json:"total_events"`
	UnreadMessages int      `json:"unread_messages"`
	NetProfit      float64  `json:"net_profit"`
	EventsChange   *float64 `json:"events_change,omitempty"`
	MessagesChange *float64 `json:"messages_change,omitempty"`
}

func ComputeStats(s Snapshot, now time.Time) Stats {
	st := Stats{
		TotalEvents: len(s.Events),
		NetProfit:   s.NetProfit,
	}
	for _, e := range s.Events {
		if isUpcoming(e, now) {
			st.ActiveEvents++
		}
	}
	for _, c := range s.Chats {
		st.UnreadMessages += c.Unread
	}

	var evCur, evPrev, chCur, chPrev int
	for _, e := range s.Events {
		switch weekBucket(e.EventDate, now) {
		case 0:
			evCur++
		case 1:
			evPrev++
		}
	}
	for _, c := range s.Chats {
		switch weekBucket(c.LastMessageAt, now) {
		case 0:
			chCur++
		case 1:
			chPrev++
		}
	}
	st.EventsChange = percentChange(evCur, evPrev)
	st.MessagesChange = percentChange(chCur, chPrev)
	return st
}

// Cards renders the stats as the four dashboard tiles.
func (st Stats) Cards(f Formatter) []ui.Card {
	return []ui.Card{
		{Title: "Active Events", Value: f.Count(st.ActiveEvents), Change: st.EventsChange, Icon: "calendar"},
		{Title: "Total Events", Value: f.Count(st.TotalEvents), Icon: "layers"},
		{Title: "Unread Messages", Value: f.Count(st.UnreadMessages), Change: st.MessagesChange, Icon: "message"},
		{Title: "Net Profit", Value: f.Currency(st.NetProfit), Icon: "dollar"},
	}
}

// weekBucket returns 0 for t in [now-7d, now), 1 for [now-14d, now-7d)
// and -1 otherwise.
func weekBucket(t, now time.Time) int {
	if !t.Before(now) {
		return -1
	}
	switch age := now.Sub(t); {
	case age <= week:
		return 0
	case age <= 2*week:
		return 1
	}
	return -1
}

// percentChange is the change from prev to cur in percent, rounded to one
// decimal. Growth from zero counts as 100%.
func percentChange(cur, prev int) *float64 {
	var v float64
	switch {
	case prev == 0 && cur == 0:
		v = 0
	case prev == 0:
		v = 100
	default:
		v = math.Round(float64(cur-prev)/float64(prev)*1000) / 10
	}
	return &v
}

// WeeklySeries buckets the last seven calendar days, oldest first: Value
// counts own events dated that day, Total counts chats active that day.
func WeeklySeries(s Snapshot, now time.Time) []ui.ChartPoint {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	points := make([]ui.ChartPoint, 7)
	for i := range points {
		day := today.AddDate(0, 0, i-6)
		points[i].Name = day.Format("Mon")
	}

	index := func(t time.Time) int {
		ty, tm, td := t.In(now.Location()).Date()
		day := time.Date(ty, tm, td, 0, 0, 0, 0, now.Location())
		diff := int(math.Round(today.Sub(day).Hours() / 24))
		if diff < 0 || diff > 6 {
			return -1
		}
		return 6 - diff
	}

	for _, e := range s.Events {
		if i := index(e.EventDate); i >= 0 {
			points[i].Value++
		}
	}
	for _, c := range s.Chats {
		if i := index(c.LastMessageAt); i >= 0 {
			points[i].Total++
		}
	}
	return points
}
