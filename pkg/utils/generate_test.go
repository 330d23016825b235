package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateBookingRef(t *testing.T) {
	ref := GenerateBookingRef()

	assert.True(t, strings.HasPrefix(ref, "BK-"))
	assert.Len(t, ref, 11)
	assert.Equal(t, strings.ToUpper(ref), ref)
	assert.NotEqual(t, ref, GenerateBookingRef())
}
