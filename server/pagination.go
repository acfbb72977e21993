package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/openmediastation/mediaserver/pkg/pagination"
)

// maxPageSize bounds a single listing; a pageSize of 0 still means everything
const maxPageSize = 500

// ParsePaginationParams reads page and pageSize from the query. Page defaults to 1.
func ParsePaginationParams(r *http.Request) (pagination.Params, error) {
	params := pagination.Params{Page: 1}
	qp := r.URL.Query()

	if raw := qp.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid page parameter %q: must be positive integer", raw)
		}
		params.Page = page
	}

	if raw := qp.Get("pageSize"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 0 || size > maxPageSize {
			return params, fmt.Errorf("invalid pageSize parameter %q: must be between 0 and %d", raw, maxPageSize)
		}
		params.PageSize = size
	}

	return params, nil
}
