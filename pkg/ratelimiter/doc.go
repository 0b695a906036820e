// Package ratelimiter provides an in-memory token bucket limiter and an HTTP
// middleware that applies it per client.
//
//	bucket, err := ratelimiter.NewBucket(ratelimiter.Config{
//		Capacity:       60,
//		RefillRate:     60,
//		RefillInterval: time.Minute,
//	})
//	if err != nil {
//		return err
//	}
//	r.Use(ratelimiter.Middleware(bucket, resolver.GetIP, log))
package ratelimiter
