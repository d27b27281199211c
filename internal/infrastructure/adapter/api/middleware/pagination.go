package middleware

import (
	"strconv"
	"time"

	"github.com/lendmark/demo-credit/internal/domain/port/persistence"
	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// Pagination carries the parsed list query parameters
type Pagination struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder persistence.SortOrder
	From      *time.Time
	To        *time.Time
}

// ParsePagination reads page, limit, sortBy, sortOrder, startDate and
// endDate from the query string. Out-of-range values fall back to
// defaults; limit is capped. Dates use YYYY-MM-DD and expand to whole-day
// bounds.
func ParsePagination(c *gin.Context) Pagination {
	p := Pagination{
		Page:      defaultPage,
		Limit:     defaultLimit,
		SortBy:    "created_at",
		SortOrder: persistence.SortDesc,
	}

	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		p.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		p.Limit = min(limit, maxLimit)
	}
	if sortBy := c.Query("sortBy"); sortBy != "" {
		p.SortBy = sortBy
	}
	if order := persistence.SortOrder(c.Query("sortOrder")); order == persistence.SortAsc || order == persistence.SortDesc {
		p.SortOrder = order
	}
	if from, err := time.Parse(time.DateOnly, c.Query("startDate")); err == nil {
		p.From = &from
	}
	if to, err := time.Parse(time.DateOnly, c.Query("endDate")); err == nil {
		end := to.Add(24*time.Hour - time.Nanosecond)
		p.To = &end
	}

	return p
}

// ListOptions converts the parsed pagination into repository list options
func (p Pagination) ListOptions() persistence.ListOptions {
	return persistence.ListOptions{
		SortBy:    p.SortBy,
		SortOrder: p.SortOrder,
		From:      p.From,
		To:        p.To,
	}
}
