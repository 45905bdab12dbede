package handlers

import (
	"strconv"
	"time"
)

// effectiveYear applies the current-calendar-year default when the query param
// is absent, malformed or non-positive.
func effectiveYear(raw string) int {
	year, err := strconv.Atoi(raw)
	if err != nil || year <= 0 {
		return time.Now().Year()
	}
	return year
}

// optionalID parses an optional numeric query param; anything unparseable is
// treated as absent so partially-specified requests stay tolerated.
func optionalID(raw string) *int64 {
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

func optionalInt(raw string) *int {
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func intOrDefault(raw string, def int) int {
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
