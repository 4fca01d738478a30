package identifier

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewFormat(t *testing.T) {
	id := New(PrefixProduct)
	pattern := "^PROD" + time.Now().Format("20060102") + "[0-9A-F]{6}$"
	require.Regexp(t, regexp.MustCompile(pattern), id)
}

func TestNewPrefixes(t *testing.T) {
	require.Regexp(t, "^BATCH", New(PrefixBatch))
	require.Regexp(t, "^FAC", New(PrefixFactory))
	require.Regexp(t, "^SHIP", New(PrefixShipper))
}

func TestNewIsUnique(t *testing.T) {
	const n = 10000
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		seen[New(PrefixBatch)] = true
	}
	// statistical: collisions at ~1/16^6 per pair are overwhelmingly unlikely
	require.Len(t, seen, n)
}
