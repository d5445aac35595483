package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewInviteTokenUnique(t *testing.T) {
	start := time.Date(2024, 11, 8, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3)

	// Identical inputs must still yield distinct tokens.
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token := NewInviteToken("host-1", start, end)
		assert.False(t, seen[token])
		seen[token] = true
	}
}

func TestNewInviteTokenURLSafe(t *testing.T) {
	token := NewInviteToken("host-1", time.Now(), time.Now())
	assert.NotEmpty(t, token)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
	assert.NotContains(t, token, "=")
}
