package httputil

import (
	"net/http"
	"strconv"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type PageOpts struct {
	Limit  int
	Offset int
}

// ParsePageOpts reads limit/offset query parameters, falling back to defaults
// on missing or out-of-range values instead of erroring.
func ParsePageOpts(r *http.Request) PageOpts {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return PageOpts{Limit: limit, Offset: offset}
}

// Page and Pages implement the list-envelope convention:
// page = offset/limit + 1, pages = ceil(total/limit).
func (p PageOpts) Page() int {
	return p.Offset/p.Limit + 1
}

func (p PageOpts) Pages(total int) int {
	return (total + p.Limit - 1) / p.Limit
}
