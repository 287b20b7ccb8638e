package model

import "github.com/samber/lo"

// Overlaps reports whether two meeting intervals collide: same day and
// overlapping half-open time spans. Touching endpoints (one class ending
// at 10:30, another starting at 10:30) do not collide, so back-to-back
// classes are allowed.
func Overlaps(a, b MeetingInterval) bool {
	return a.Day == b.Day && a.Start < b.End && b.Start < a.End
}

// Conflicts reports whether any interval of a collides with any interval
// of b. An empty set never conflicts, which is what makes TBA sections
// compatible with everything.
func Conflicts(a, b []MeetingInterval) bool {
	return lo.SomeBy(a, func(x MeetingInterval) bool {
		return lo.SomeBy(b, func(y MeetingInterval) bool {
			return Overlaps(x, y)
		})
	})
}
