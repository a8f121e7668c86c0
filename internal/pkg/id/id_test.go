package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewAt_SortsByTime(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	earlier := NewAt(base)
	later := NewAt(base.Add(time.Second))
	assert.Len(t, earlier, 26)
	assert.Less(t, earlier, later)
}

func TestNewAt_MonotonicWithinMillisecond(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	prev := NewAt(ts)
	for i := 0; i < 100; i++ {
		next := NewAt(ts)
		assert.Less(t, prev, next)
		prev = next
	}
}
