package params

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 15
	MaxLimit     = 30
)

// Pagination is the page window of a "view all" listing plus the metadata
// filled in once the total is known.
//
//	/v1/events?page=2&limit=10 -> Limit 10, Page 2, Offset 10
type Pagination struct {
	Limit      int  `json:"limit"`
	Offset     int  `json:"offset"`
	Page       int  `json:"page"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// ParsePagination reads page and limit. Invalid values fall back to the
// defaults; limit is capped at MaxLimit.
func ParsePagination(q url.Values) Pagination {
	p := Pagination{Limit: DefaultLimit, Page: 1}

	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			p.Limit = min(limit, MaxLimit)
		}
	}
	if v := strings.TrimSpace(q.Get("page")); v != "" {
		if page, err := strconv.Atoi(v); err == nil && page > 0 {
			p.Page = page
		}
	}

	p.Offset = (p.Page - 1) * p.Limit
	return p
}

// ComputeMeta fills the totals after the count query ran.
func (p *Pagination) ComputeMeta(total int) {
	p.Total = total
	p.TotalPages = 0
	if p.Limit > 0 {
		p.TotalPages = int(math.Ceil(float64(total) / float64(p.Limit)))
	}
	p.HasPrev = p.Page > 1
	p.HasNext = p.Page*p.Limit < total
}
