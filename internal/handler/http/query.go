package http

import (
	"net/http"
	"strconv"
)

// pagination reads page/limit query params with the API-wide defaults.
func pagination(r *http.Request) (int, int) {
	page := 1
	limit := 20

	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	return page, limit
}

// queryString returns a pointer to the query param, or nil when absent.
func queryString(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}

// queryBool reports whether the query param is "true".
func queryBool(r *http.Request, key string) bool {
	return r.URL.Query().Get(key) == "true"
}
