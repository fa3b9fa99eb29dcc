package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsCacheRoundTrip(t *testing.T) {
	InitCache()

	key := AnalyticsCacheKey("user-1", "summary")
	SetAnalyticsCache(key, 42)
	Cache.Wait()

	got, found := GetAnalyticsCache(key)
	require.True(t, found)
	assert.Equal(t, 42, got)
}

func TestClearUserAnalyticsCaches(t *testing.T) {
	InitCache()

	key := AnalyticsCacheKey("user-1", "summary")
	otherKey := AnalyticsCacheKey("user-2", "summary")
	SetAnalyticsCache(key, "a")
	SetAnalyticsCache(otherKey, "b")
	Cache.Wait()

	ClearUserAnalyticsCaches("user-1")

	// Readers now ask for a new generation, which is a miss.
	assert.NotEqual(t, key, AnalyticsCacheKey("user-1", "summary"))
	_, found := GetAnalyticsCache(AnalyticsCacheKey("user-1", "summary"))
	assert.False(t, found)

	// Other users keep their entries.
	assert.Equal(t, otherKey, AnalyticsCacheKey("user-2", "summary"))
	got, found := GetAnalyticsCache(otherKey)
	require.True(t, found)
	assert.Equal(t, "b", got)
}

func TestStaleViewSetAfterInvalidationIsUnreachable(t *testing.T) {
	InitCache()

	// A view handler computes its key, then a mutation invalidates before
	// the handler stores its result.
	staleKey := AnalyticsCacheKey("user-1", "monthly")
	ClearUserAnalyticsCaches("user-1")
	SetAnalyticsCache(staleKey, "pre-mutation snapshot")
	Cache.Wait()

	_, found := GetAnalyticsCache(AnalyticsCacheKey("user-1", "monthly"))
	assert.False(t, found)
}
