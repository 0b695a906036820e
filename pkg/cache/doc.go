// Package cache provides a generic, thread-safe LRU cache with optional
// per-entry expiry.
//
// Entries are evicted when the cache exceeds its capacity (least recently
// used first) or, when a TTL is configured, once they are older than the TTL.
// Expired entries behave as missing and are dropped when they are touched.
//
//	posts := cache.New[string, []legacy.Post](1, cache.WithTTL(time.Hour))
//	posts.Put("posts", found)
//	if cached, ok := posts.Get("posts"); ok {
//		return cached
//	}
//
// WithClock replaces time.Now, which lets tests advance time explicitly.
package cache
