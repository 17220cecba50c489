// Package restriction evaluates recurring blackout windows against
// candidate send instants.
//
// Windows are half-open [start, end) in minutes from midnight; an end at or
// before the start denotes a window crossing midnight and is treated as
// [start, end+1440). Adjustment is best effort: the pass loop is bounded,
// and under pathological overlapping window sets the returned instant can
// still violate a restriction. Callers should log when Violates reports
// that.
package restriction

import (
	"time"

	"github.com/chatdrip/sequence-engine/internal/models"
)

// maxPasses bounds the adjustment loop. Fixing one violation can trigger
// another window, so the evaluator re-tests from scratch after every move.
const maxPasses = 100

const minutesPerDay = 24 * 60

// NextAllowed returns the smallest instant t' >= t outside all active
// windows that cover t's weekday, or the best position reached within the
// pass bound.
func NextAllowed(t time.Time, restrictions []models.TimeRestriction) time.Time {
	for i := 0; i < maxPasses; i++ {
		moved := false
		for idx := range restrictions {
			r := &restrictions[idx]
			wait := blockedFor(t, r)
			if wait > 0 {
				t = t.Add(time.Duration(wait) * time.Minute)
				moved = true
				break
			}
		}
		if !moved {
			return t
		}
	}
	return t
}

// Violates reports whether t falls inside any active window.
func Violates(t time.Time, restrictions []models.TimeRestriction) bool {
	for idx := range restrictions {
		if blockedFor(t, &restrictions[idx]) > 0 {
			return true
		}
	}
	return false
}

// blockedFor returns the minutes remaining until the window's end when t is
// inside it, zero otherwise. The returned wait lands exactly on the window
// end, keeping the adjustment minimal.
func blockedFor(t time.Time, r *models.TimeRestriction) int {
	if !r.Active || !r.AppliesOn(t.Weekday()) {
		return 0
	}

	m := t.Hour()*60 + t.Minute()
	start, end := r.StartOffset(), r.EndOffset()

	if end <= start {
		// Window spans midnight: [start, end+1440).
		switch {
		case m >= start:
			return end + minutesPerDay - m
		case m < end:
			return end - m
		}
		return 0
	}

	if m >= start && m < end {
		return end - m
	}
	return 0
}
