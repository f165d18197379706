package constants

import "time"

const (
	// MaxProofAge is the inclusive upper bound, in seconds, on the age of a
	// proof timestamp accepted by the gated mint path.
	MaxProofAge int64 = 300

	// DefaultResultCacheMaxSize bounds the verification result cache.
	DefaultResultCacheMaxSize int64 = 10_000
	// DefaultResultCacheTTL is how long memoized verification results are kept.
	DefaultResultCacheTTL = 5 * time.Minute
)
