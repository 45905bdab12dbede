package services

import (
	"strings"

	json "github.com/goccy/go-json"
)

// emptyList is the canonical encoding of an empty followed-identifier list.
const emptyList = "[]"

// decodeStringList turns a stored JSON-array column back into a string list.
// Null, blank or malformed input decodes to an empty list so a corrupt
// preference row can never break a read.
func decodeStringList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return []string{}
	}
	if list == nil {
		return []string{}
	}
	return list
}

// encodeStringList serializes a list for single-column storage, preserving
// order and duplicates. Nil and empty both encode as "[]".
func encodeStringList(list []string) string {
	if len(list) == 0 {
		return emptyList
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return emptyList
	}
	return string(raw)
}
