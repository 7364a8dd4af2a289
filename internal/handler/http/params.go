package http

import (
	"net/http"
	"strconv"
)

// optionalQuery returns a pointer to the query value, nil when absent.
func optionalQuery(r *http.Request, key string) *string {
	if !r.URL.Query().Has(key) {
		return nil
	}
	v := r.URL.Query().Get(key)
	return &v
}

// intQuery returns the query value as an int, or fallback when absent or
// malformed.
func intQuery(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// boolQuery reports whether the query value parses as true.
func boolQuery(r *http.Request, key string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(key))
	return err == nil && v
}
