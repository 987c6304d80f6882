package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimestamp_RoundTrip(t *testing.T) {
	at := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	ts := NewTimestamp(at)

	assert.True(t, ts.Time().Equal(at))
	assert.False(t, ts.IsZero())
	assert.True(t, NewTimestamp(time.Time{}).IsZero())
}

func TestTimestamp_Ordering(t *testing.T) {
	earlier := NewTimestamp(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	later := NewTimestamp(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))
	assert.False(t, earlier.After(later))
}

func TestNow(t *testing.T) {
	assert.False(t, Now().IsZero())
}
