package utils

import (
	"net/http"
	"strings"
)

// FilterParams carries the catalog filter query string options.
type FilterParams struct {
	Query    string
	Category string
}

func ParseFilterParams(r *http.Request) FilterParams {
	q := r.URL.Query()
	return FilterParams{
		Query:    strings.TrimSpace(q.Get("q")),
		Category: strings.TrimSpace(q.Get("category")),
	}
}

func ContainsIgnoreCase(str, substr string) bool {
	return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
}
