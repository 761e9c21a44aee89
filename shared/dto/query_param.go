package dto

import (
	"net/http"
	"primecm/shared/constant"
	"slices"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries ordering only; listings are never paginated.
type QueryParams struct {
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads sort_by and sort_dir from the query string. Sort columns
// outside allowed are ignored; when defaultRequest is set, missing values fall
// back to newest first.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool, allowed ...string) {
	queryParams := r.URL.Query()

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		if slices.Contains(allowed, sortBy) {
			q.SortBy = sortBy
		}
	}

	if sortDir := strings.ToUpper(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}

	if defaultRequest {
		if q.SortBy == "" {
			q.SortBy = constant.DefaultValueSortBy
		}

		if q.SortDir == "" {
			q.SortDir = constant.DefaultValueSortDir
		}
	}
}
