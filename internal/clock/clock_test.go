package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystemClock_UTC(t *testing.T) {
	c := NewSystemClock()
	assert.Equal(t, time.UTC, c.Now().Location())
}

func TestFakeClock_Advance(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewFakeClock(start)

	assert.Equal(t, start, c.Now())

	c.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), c.Now())

	// Repeated reads do not move the clock.
	assert.Equal(t, c.Now(), c.Now())
}
