package utils

import (
	"encoding/base32"
	"strings"

	"github.com/google/uuid"
)

var idEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewID returns a random UUIDv4 encoded as 26 lowercase base32 characters.
func NewID() string {
	u := uuid.New()
	return strings.ToLower(idEncoding.EncodeToString(u[:]))
}
