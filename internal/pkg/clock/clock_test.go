package clock

import (
	"testing"
	"time"
)

func TestFixedNow(t *testing.T) {
	instant := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	c := NewFixed(instant)

	if got := c.Now(); !got.Equal(instant) {
		t.Errorf("Now() = %v, want %v", got, instant)
	}
	if got := c.Now(); !got.Equal(instant) {
		t.Errorf("Now() moved without Advance: %v", got)
	}
}

func TestFixedAdvance(t *testing.T) {
	instant := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	c := NewFixed(instant)

	c.Advance(90 * time.Minute)
	want := instant.Add(90 * time.Minute)
	if got := c.Now(); !got.Equal(want) {
		t.Errorf("Now() after Advance = %v, want %v", got, want)
	}

	c.Advance(-time.Hour)
	want = want.Add(-time.Hour)
	if got := c.Now(); !got.Equal(want) {
		t.Errorf("Now() after negative Advance = %v, want %v", got, want)
	}
}

func TestSystemClockIsUTC(t *testing.T) {
	now := NewSystemClock().Now()
	if now.Location() != time.UTC {
		t.Errorf("system clock location = %v, want UTC", now.Location())
	}
}
