package dto

import (
	"strings"

	"github.com/cuongbtq/jobboard/internal/api/domain"
	"github.com/samber/lo"
)

// ListJobsQuery is the query string of GET /jobs
type ListJobsQuery struct {
	Search   string `form:"search"`
	Type     string `form:"type"`
	Location string `form:"location"`
}

func (q ListJobsQuery) ToFilter() domain.JobFilter {
	return domain.JobFilter{
		Search:   q.Search,
		Type:     domain.JobType(strings.TrimSpace(q.Type)),
		Location: q.Location,
	}
}

// ActivityQuery is the query string of GET /admin/activity
type ActivityQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=0"`
}

// NonEmpty keeps list fields rendering as [] rather than null
func NonEmpty[T any](items []T) []T {
	return lo.Ternary(items == nil, []T{}, items)
}
