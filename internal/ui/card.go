package ui

import (
	"math"
	"strconv"
)

// Card is a labeled metric tile with an optional signed percentage change.
type Card struct {
	Title  string   `json:"title"`
	Value  string   `json:"value"`
	Change *float64 `json:"change,omitempty"`
	Icon   string   `json:"icon,omitempty"`
}

// HasDelta reports whether the change row is rendered at all.
func (c Card) HasDelta() bool {
	return c.Change != nil
}

// Positive is true only for a strictly positive change; zero counts as
// non-positive.
func (c Card) Positive() bool {
	return c.Change != nil && *c.Change > 0
}

// DeltaText is the magnitude of the change with a percent sign.
func (c Card) DeltaText() string {
	if c.Change == nil {
		return ""
	}
	return strconv.FormatFloat(math.Abs(*c.Change), 'f', -1, 64) + "%"
}

func (c Card) Arrow() string {
	if c.Positive() {
		return "↑"
	}
	return "↓"
}

// Tone is the CSS modifier used to color the change row.
func (c Card) Tone() string {
	if c.Positive() {
		return "positive"
	}
	return "negative"
}
