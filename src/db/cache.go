package db

import (
	"log"
	"sync"

	"github.com/dgraph-io/ristretto"
)

// Storing cache keys in concurrent data structures to allow for clearing all
// caches of a certain type. Categories and subscriptions are the two per-user
// lists read on nearly every page, so they are the only cached reads.
var (
	Cache             *ristretto.Cache
	CategoryCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
	SubscriptionCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
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

// Category Cache Functions
func SetCategoryCache(cacheKey string, value interface{}) {
	CategoryCacheKeys.Lock()
	CategoryCacheKeys.m[cacheKey] = struct{}{}
	CategoryCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func DelCategoryCache(cacheKey string) {
	CategoryCacheKeys.Lock()
	delete(CategoryCacheKeys.m, cacheKey)
	CategoryCacheKeys.Unlock()
	Cache.Del(cacheKey)
}

func ClearAllCategoryCaches() {
	CategoryCacheKeys.Lock()
	for key := range CategoryCacheKeys.m {
		Cache.Del(key)
	}
	CategoryCacheKeys.m = make(map[string]struct{})
	CategoryCacheKeys.Unlock()
}

// Subscription Cache Functions
func SetSubscriptionCache(cacheKey string, value interface{}) {
	SubscriptionCacheKeys.Lock()
	SubscriptionCacheKeys.m[cacheKey] = struct{}{}
	SubscriptionCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func DelSubscriptionCache(cacheKey string) {
	SubscriptionCacheKeys.Lock()
	delete(SubscriptionCacheKeys.m, cacheKey)
	SubscriptionCacheKeys.Unlock()
	Cache.Del(cacheKey)
}

func ClearAllSubscriptionCaches() {
	SubscriptionCacheKeys.Lock()
	for key := range SubscriptionCacheKeys.m {
		Cache.Del(key)
	}
	SubscriptionCacheKeys.m = make(map[string]struct{})
	SubscriptionCacheKeys.Unlock()
}
