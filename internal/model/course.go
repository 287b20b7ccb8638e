package model

import (
	"fmt"
	"strings"
	"time"
)

// Course is one scraped section row. Every field is a string because the
// wire format mirrors the offering table verbatim; interpretation of
// Schedule and Enrolled happens in the parser and the classifier.
type Course struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Teacher     string `json:"teacher"`
	Schedule    string `json:"schedule"`
	Room        string `json:"room"`
	Department  string `json:"department"`
	Enrolled    string `json:"enrolled"`
}

const (
	CombinationAvailable   = "available"
	CombinationUnavailable = "unavailable"
)

// ScheduleCombination is one conflict-free assignment of exactly one
// section per requested base code. Courses follows the requested-code
// order. Intervals is the union of the selected sections' meeting
// intervals and is not part of the wire format.
type ScheduleCombination struct {
	Courses     []Course          `json:"courses"`
	Status      string            `json:"status"`
	FullCourses []string          `json:"full_courses"`
	Intervals   []MeetingInterval `json:"-"`
}

// GenerationResult carries the enumerated combinations along with the
// wall-clock duration of the search and whether it stopped at the cap.
type GenerationResult struct {
	Combinations []ScheduleCombination
	Elapsed      time.Duration
	Truncated    bool
}

// ValidationError reports a request the generator refuses to run: either
// no codes were requested, or some requested codes have no sections in
// the dataset.
type ValidationError struct {
	Missing []string
}

func (err *ValidationError) Error() string {
	if len(err.Missing) == 0 {
		return "no course codes requested"
	}
	return fmt.Sprintf("course codes not found in dataset: %v", strings.Join(err.Missing, ", "))
}
