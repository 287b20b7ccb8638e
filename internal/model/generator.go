package model

// UnscheduledPolicy controls what happens to sections whose schedule text
// resolves to zero intervals (TBA or unparsable).
type UnscheduledPolicy int

const (
	// UnscheduledCompatible keeps such sections as candidates; with no
	// intervals they conflict with nothing and appear in every
	// combination their course allows.
	UnscheduledCompatible UnscheduledPolicy = iota
	// UnscheduledExclude drops them from the candidate lists, treating a
	// section without a parseable meeting time as unschedulable.
	UnscheduledExclude
)

// DefaultMaxCombinations bounds the search when the caller passes a
// non-positive cap.
const DefaultMaxCombinations = 5000

// Generator enumerates every way to pick exactly one section per
// requested base code such that no two picks overlap in time.
type Generator interface {
	// Generate searches the given course snapshot. Requested codes are
	// tried in input order and sections in their listed order, so output
	// order is reproducible. The search stops the instant cap
	// combinations have been collected. Zero combinations is not an
	// error; a *ValidationError is returned for an empty request or for
	// requested codes absent from the snapshot.
	Generate(courses []Course, requestedCodes []string, maxCombinations int) (GenerationResult, error)
}

func NewGenerator(policy UnscheduledPolicy) Generator {
	return &generatorImplementation{policy: policy}
}
