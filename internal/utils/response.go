package utils

import (
	"encoding/json"
	"net/http"
)

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// NoStoreJSON writes a JSON response that clients must not cache.
// Generated problems are single-use, so the header prevents a browser
// from replaying a stale problem for the same grade/topic pair.
func NoStoreJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Cache-Control", "no-store")
	JSON(w, statusCode, data)
}
