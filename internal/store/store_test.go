package store

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type sessionBlob struct {
	Postal string `json:"postal"`
	Visits int    `json:"visits"`
}

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(testLogger())

	in := sessionBlob{Postal: "M5V 2T6", Visits: 3}
	m.Set(ctx, "profile:abc", in)

	var out sessionBlob
	require.True(t, m.Get(ctx, "profile:abc", &out))
	assert.Equal(t, in, out)
}

func TestMemoryMissingKey(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(testLogger())

	var out sessionBlob
	assert.False(t, m.Get(ctx, "no-such-key", &out))
	assert.Zero(t, out)
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(testLogger())

	m.Set(ctx, "k", sessionBlob{Visits: 1})
	m.Delete(ctx, "k")

	var out sessionBlob
	assert.False(t, m.Get(ctx, "k", &out))

	// Deleting a missing key is fine
	m.Delete(ctx, "k")
}

func TestMemoryCorruptedValueCountsAsAbsent(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(testLogger())

	// Stored shape does not decode into the requested one
	m.Set(ctx, "k", "just a string")

	var out []sessionBlob
	assert.False(t, m.Get(ctx, "k", &out))
}

func TestMemoryPartiallyDecodableValueLeavesDestUntouched(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(testLogger())

	// Valid JSON whose first field decodes but whose second does not. The
	// caller's pre-seeded default must survive in full.
	m.Set(ctx, "k", map[string]interface{}{"postal": "K1A 0B1", "visits": "oops"})

	out := sessionBlob{Postal: "M5V 2T6", Visits: 3}
	assert.False(t, m.Get(ctx, "k", &out))
	assert.Equal(t, sessionBlob{Postal: "M5V 2T6", Visits: 3}, out)
}

func TestMemoryOverwrite(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(testLogger())

	m.Set(ctx, "k", sessionBlob{Visits: 1})
	m.Set(ctx, "k", sessionBlob{Visits: 2})

	var out sessionBlob
	require.True(t, m.Get(ctx, "k", &out))
	assert.Equal(t, 2, out.Visits)
}

func TestChainReadsFirstTierWithValue(t *testing.T) {
	ctx := context.Background()
	primary := NewMemory(testLogger())
	fallback := NewMemory(testLogger())
	chain := NewChain(primary, fallback)

	// Value only present in the fallback tier
	fallback.Set(ctx, "k", sessionBlob{Visits: 7})

	var out sessionBlob
	require.True(t, chain.Get(ctx, "k", &out))
	assert.Equal(t, 7, out.Visits)

	// Primary tier wins once it has the key
	primary.Set(ctx, "k", sessionBlob{Visits: 1})
	require.True(t, chain.Get(ctx, "k", &out))
	assert.Equal(t, 1, out.Visits)
}

func TestChainWritesAllTiers(t *testing.T) {
	ctx := context.Background()
	primary := NewMemory(testLogger())
	fallback := NewMemory(testLogger())
	chain := NewChain(primary, fallback)

	chain.Set(ctx, "k", sessionBlob{Visits: 4})

	var out sessionBlob
	require.True(t, primary.Get(ctx, "k", &out))
	require.True(t, fallback.Get(ctx, "k", &out))

	chain.Delete(ctx, "k")
	assert.False(t, primary.Get(ctx, "k", &out))
	assert.False(t, fallback.Get(ctx, "k", &out))
}

func TestChainSkipsCorruptedTier(t *testing.T) {
	ctx := context.Background()
	primary := NewMemory(testLogger())
	fallback := NewMemory(testLogger())
	chain := NewChain(primary, fallback)

	primary.Set(ctx, "k", "not the shape you want")
	fallback.Set(ctx, "k", []sessionBlob{{Visits: 9}})

	var out []sessionBlob
	require.True(t, chain.Get(ctx, "k", &out))
	require.Len(t, out, 1)
	assert.Equal(t, 9, out[0].Visits)
}
