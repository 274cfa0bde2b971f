package errors

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// ValidateNodeID validates a node identifier typed by a user.
//
// The rules are conservative:
//   - No empty or whitespace-only IDs
//   - No control characters
//   - Maximum length of 256 characters
func ValidateNodeID(id string) error {
	if strings.TrimSpace(id) == "" {
		return New(ErrCodeInvalidNode, "node id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidNode, "node id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidNode, "node id contains invalid control characters")
		}
	}

	return nil
}

// ParseWeight parses an edge weight typed by a user. It rejects anything
// that is not a finite number.
func ParseWeight(s string) (float64, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, New(ErrCodeInvalidWeight, "weight %q is not a number", s)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, New(ErrCodeInvalidWeight, "weight %q must be finite", s)
	}
	return w, nil
}

// ValidateGraphID checks that id is a UUID as issued by the graph stores.
func ValidateGraphID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "graph id cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return New(ErrCodeInvalidInput, "graph id %q is not a valid UUID", id)
	}
	return nil
}
