package shared_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/featherlane/henhouse-go/internal/domain/shared"
)

func TestMockClock(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := shared.NewMockClock(start)

	assert.Equal(t, start, clock.Now())

	clock.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), clock.Now())

	clock.SetTime(start)
	assert.Equal(t, start, clock.Now())

	// Sleep advances mock time instead of blocking.
	clock.Sleep(time.Hour)
	assert.Equal(t, start.Add(time.Hour), clock.Now())
}

func TestRealClock_NowIsUTC(t *testing.T) {
	now := shared.NewRealClock().Now()
	assert.Equal(t, time.UTC, now.Location())
}
