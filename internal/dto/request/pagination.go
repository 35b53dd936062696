package request

import "airline-backoffice/pkg/utils"

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// PaginatedRequest is built from the page and per_page query parameters.
// Out of range values are clamped rather than rejected.
type PaginatedRequest struct {
	Page    int
	PerPage int
}

func (p PaginatedRequest) Limit() int {
	if p.PerPage < 1 {
		return defaultPerPage
	}
	return min(p.PerPage, maxPerPage)
}

func (p PaginatedRequest) Offset() int {
	return utils.CalculateOffset(p.Page, p.Limit())
}
