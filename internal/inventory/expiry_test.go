package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysUntilExpiry(t *testing.T) {
	assert.Equal(t, 1, DaysUntilExpiry(now.Add(time.Hour), now))
	assert.Equal(t, 1, DaysUntilExpiry(now.Add(24*time.Hour), now))
	assert.Equal(t, 2, DaysUntilExpiry(now.Add(25*time.Hour), now))
	assert.Equal(t, 0, DaysUntilExpiry(now, now))
	assert.Equal(t, 0, DaysUntilExpiry(now.Add(-time.Hour), now))
	assert.Equal(t, -1, DaysUntilExpiry(now.Add(-24*time.Hour), now))
}

func TestIsExpiringSoon(t *testing.T) {
	window := 3 * 24 * time.Hour
	assert.False(t, IsExpiringSoon(now, now, window))
	assert.True(t, IsExpiringSoon(now.Add(time.Second), now, window))
	assert.True(t, IsExpiringSoon(now.Add(window), now, window))
	assert.False(t, IsExpiringSoon(now.Add(window+time.Second), now, window))
	assert.True(t, IsExpired(now.Add(-time.Second), now))
	assert.False(t, IsExpired(now, now))
}
