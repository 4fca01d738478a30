package identifier

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Business ID prefixes used across the system
const (
	PrefixProduct = "PROD"
	PrefixBatch   = "BATCH"
	PrefixFactory = "FAC"
	PrefixShipper = "SHIP"
)

// New produces a human-readable unique ID: {PREFIX}{YYYYMMDD}{6 uppercase hex}.
// Uniqueness relies on randomness only; collisions are not retried.
func New(prefix string) string {
	u := uuid.New()
	suffix := strings.ToUpper(hex.EncodeToString(u[:3]))
	return prefix + time.Now().Format("20060102") + suffix
}
