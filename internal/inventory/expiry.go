package inventory

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// DaysUntilExpiry returns the whole days from now until expiry, rounded up
// toward the later date. Already expired items give zero or a negative count.
func DaysUntilExpiry(expiry, now time.Time) int {
	return int(math.Ceil(expiry.Sub(now).Hours() / 24))
}

// fullDaysUntil counts complete 24h periods between now and expiry.
func fullDaysUntil(expiry, now time.Time) int {
	return int(expiry.Sub(now) / day)
}

// IsExpired reports whether expiry is already behind now.
func IsExpired(expiry, now time.Time) bool {
	return expiry.Before(now)
}

// IsExpiringSoon reports whether expiry is strictly after now and no later than now+window.
func IsExpiringSoon(expiry, now time.Time, window time.Duration) bool {
	return expiry.After(now) && !expiry.After(now.Add(window))
}
