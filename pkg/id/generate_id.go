package id

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// NewID32 returns a random (v4) UUID as exactly 32 lowercase hex characters.
func NewID32() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// NewRequestID is the canonical hyphenated form used for X-Request-Id.
func NewRequestID() string { return uuid.NewString() }
