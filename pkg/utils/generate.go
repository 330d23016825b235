package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateBookingRef creates a short reference code customers can quote
// at the counter, e.g. "BK-9F3A2C1B".
func GenerateBookingRef() string {
	id := uuid.New()
	return "BK-" + strings.ToUpper(id.String()[:8])
}
