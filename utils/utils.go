package utils

import (
	"net/http"
	"regexp"
	"strconv"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// DownloadFilename derives a safe attachment name from a recipe title,
// replacing anything outside [a-zA-Z0-9] with underscores. An empty or
// fully-stripped title falls back to "recipe".
func DownloadFilename(title string) string {
	clean := nonAlphanumeric.ReplaceAllString(title, "_")
	if clean == "" {
		return "recipe"
	}
	return clean
}

// ParseLimit reads a ?limit= query value, applying a default and a cap.
func ParseLimit(r *http.Request, def, max int) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
