package model

import (
	"regexp"
	"strconv"
	"strings"
)

// Availability is the seat classification of a single section.
type Availability int

const (
	AvailabilityOpen Availability = iota
	AvailabilityFull
	AvailabilityDissolved
	AvailabilityUnknown
)

var enrolledPattern = regexp.MustCompile(`^\s*(\d+)\s*/\s*(\d+)\s*$`)

// Classify tags a section by its status and enrollment text. A DISSOLVED
// status wins outright. Otherwise "<n>/<capacity>" decides open versus
// full. Malformed enrollment text yields AvailabilityUnknown, which
// downstream treats as non-blocking.
func Classify(course Course) Availability {
	if strings.ToUpper(course.Status) == "DISSOLVED" {
		return AvailabilityDissolved
	}

	match := enrolledPattern.FindStringSubmatch(course.Enrolled)
	if match == nil {
		return AvailabilityUnknown
	}
	enrolled, _ := strconv.Atoi(match[1])
	capacity, _ := strconv.Atoi(match[2])
	if enrolled >= capacity {
		return AvailabilityFull
	}
	return AvailabilityOpen
}

// Blocking reports whether a section with this availability makes its
// combination unavailable.
func (availability Availability) Blocking() bool {
	return availability == AvailabilityFull || availability == AvailabilityDissolved
}
