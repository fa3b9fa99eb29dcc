package db

import (
	"fmt"
	"log"
	"sync"

	"github.com/dgraph-io/ristretto"
)

// Analytics views are cached per user and recomputed after any expense,
// budget or category mutation. Keys carry a per-user generation counter:
// invalidating bumps the generation, so a view computed from a snapshot
// taken before the mutation can only Set a key no reader will ask for
// again. Orphaned entries age out of ristretto on their own.
var (
	Cache         *ristretto.Cache
	analyticsGens = struct {
		sync.RWMutex
		m map[string]uint64
	}{m: make(map[string]uint64)}
)

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func analyticsGen(userID string) uint64 {
	analyticsGens.RLock()
	defer analyticsGens.RUnlock()
	return analyticsGens.m[userID]
}

// AnalyticsCacheKey builds the key for one user's view at the current
// generation. Callers compute it once and use it for both Get and Set.
func AnalyticsCacheKey(userID, view string) string {
	return fmt.Sprintf("analytics:%s:%d:%s", userID, analyticsGen(userID), view)
}

func SetAnalyticsCache(cacheKey string, value interface{}) {
	Cache.Set(cacheKey, value, 1)
}

func GetAnalyticsCache(cacheKey string) (interface{}, bool) {
	return Cache.Get(cacheKey)
}

// ClearUserAnalyticsCaches invalidates every cached view for one user by
// moving them to a new generation.
func ClearUserAnalyticsCaches(userID string) {
	analyticsGens.Lock()
	analyticsGens.m[userID]++
	analyticsGens.Unlock()
}
