// Package pathutil provides helpers for working with URL paths:
// identifier extraction and normalization for metrics labels.
package pathutil

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
// Callers map it to not-found: a malformed identifier can never resolve
// to a stored record, and the contract has no separate error class for it.
var ErrInvalidID = errors.New("invalid id")

// ExtractID extracts and parses an integer ID from a URL path.
// It removes the given prefix and parses the remainder as an int64.
// Returns ErrInvalidID when the remainder is not a positive integer.
func ExtractID(path, prefix string) (int64, error) {
	idStr := strings.TrimPrefix(path, prefix)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
