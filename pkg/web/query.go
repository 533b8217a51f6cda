package web

import (
	"fmt"
	"net/http"
	"strconv"
)

// QueryInt32 reads an optional base-10 int32 query parameter.
// An absent or empty parameter yields def.
func QueryInt32(r *http.Request, key string, def int32) (int32, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return def, nil
	}
	intValue, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s number %q: %w", key, value, err)
	}
	return int32(intValue), nil
}

// QueryString reads an optional query parameter, returning def when it is absent or empty.
func QueryString(r *http.Request, key, def string) string {
	if value := r.URL.Query().Get(key); value != "" {
		return value
	}
	return def
}
