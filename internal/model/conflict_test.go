package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	t.Run("SameDayOverlap", func(t *testing.T) {
		a := MeetingInterval{Day: Monday, Start: 9.0, End: 10.5}
		b := MeetingInterval{Day: Monday, Start: 10.0, End: 11.0}

		assert.True(t, Overlaps(a, b))
		assert.True(t, Overlaps(b, a))
	})

	t.Run("TouchingEndpointsDoNotConflict", func(t *testing.T) {
		a := MeetingInterval{Day: Monday, Start: 9.0, End: 10.5}
		b := MeetingInterval{Day: Monday, Start: 10.5, End: 11.5}

		assert.False(t, Overlaps(a, b))
		assert.False(t, Overlaps(b, a))
	})

	t.Run("DifferentDaysNeverConflict", func(t *testing.T) {
		a := MeetingInterval{Day: Monday, Start: 9.0, End: 10.5}
		b := MeetingInterval{Day: Tuesday, Start: 9.0, End: 10.5}

		assert.False(t, Overlaps(a, b))
	})

	t.Run("Containment", func(t *testing.T) {
		a := MeetingInterval{Day: Friday, Start: 8.0, End: 12.0}
		b := MeetingInterval{Day: Friday, Start: 9.0, End: 10.0}

		assert.True(t, Overlaps(a, b))
	})
}

func TestConflicts(t *testing.T) {
	t.Run("AnyPairwiseOverlap", func(t *testing.T) {
		a := []MeetingInterval{
			{Day: Monday, Start: 9.0, End: 10.5},
			{Day: Wednesday, Start: 9.0, End: 10.5},
		}
		b := []MeetingInterval{
			{Day: Tuesday, Start: 9.0, End: 10.5},
			{Day: Wednesday, Start: 10.0, End: 11.0},
		}

		assert.True(t, Conflicts(a, b))
	})

	t.Run("DisjointSets", func(t *testing.T) {
		a := []MeetingInterval{{Day: Monday, Start: 9.0, End: 10.5}}
		b := []MeetingInterval{{Day: Monday, Start: 10.5, End: 12.0}}

		assert.False(t, Conflicts(a, b))
	})

	t.Run("EmptySetConflictsWithNothing", func(t *testing.T) {
		b := []MeetingInterval{{Day: Monday, Start: 9.0, End: 10.5}}

		assert.False(t, Conflicts(nil, b))
		assert.False(t, Conflicts(b, nil))
		assert.False(t, Conflicts(nil, nil))
	})
}
