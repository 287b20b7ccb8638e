package model

import (
	"time"

	"github.com/samber/lo"
)

type generatorImplementation struct {
	policy UnscheduledPolicy
}

// candidate is a section pre-resolved for the search: parsed intervals
// and seat classification are computed once per section, with parsing
// memoized per distinct schedule string.
type candidate struct {
	course       Course
	intervals    []MeetingInterval
	availability Availability
}

func (generator *generatorImplementation) Generate(courses []Course, requestedCodes []string, maxCombinations int) (GenerationResult, error) {
	started := time.Now()

	if len(requestedCodes) == 0 {
		return GenerationResult{}, &ValidationError{}
	}
	if maxCombinations <= 0 {
		maxCombinations = DefaultMaxCombinations
	}

	index := BuildSectionIndex(courses)
	missing := lo.Filter(requestedCodes, func(code string, _ int) bool {
		_, ok := index.Sections(code)
		return !ok
	})
	if len(missing) > 0 {
		return GenerationResult{}, &ValidationError{Missing: missing}
	}

	candidates := generator.resolveCandidates(index, requestedCodes)
	combinations, truncated := search(requestedCodes, candidates, maxCombinations)

	return GenerationResult{
		Combinations: combinations,
		Elapsed:      time.Since(started),
		Truncated:    truncated,
	}, nil
}

func (generator *generatorImplementation) resolveCandidates(index SectionIndex, requestedCodes []string) [][]candidate {
	parsed := make(map[string][]MeetingInterval)
	candidates := make([][]candidate, len(requestedCodes))

	for i, code := range requestedCodes {
		sections, _ := index.Sections(code)
		candidates[i] = make([]candidate, 0, len(sections))
		for _, section := range sections {
			intervals, ok := parsed[section.Schedule]
			if !ok {
				intervals = ParseSchedule(section.Schedule)
				parsed[section.Schedule] = intervals
			}
			if len(intervals) == 0 && generator.policy == UnscheduledExclude {
				continue
			}
			candidates[i] = append(candidates[i], candidate{
				course:       section,
				intervals:    intervals,
				availability: Classify(section),
			})
		}
	}
	return candidates
}

// search runs an explicit-stack depth-first search over the candidate
// lists: one depth per requested code, an interval accumulator holding
// the union of the partial combination, and a per-depth cursor so
// backtracking resumes at the next sibling section. Recursion is avoided
// so large requests cannot grow the call stack.
func search(requestedCodes []string, candidates [][]candidate, maxCombinations int) ([]ScheduleCombination, bool) {
	total := len(requestedCodes)
	combinations := make([]ScheduleCombination, 0)

	cursor := make([]int, total)
	chosen := make([]candidate, 0, total)
	accumulated := make([]MeetingInterval, 0)
	depth := 0

	backtrack := func() {
		depth--
		if depth < 0 {
			return
		}
		last := chosen[len(chosen)-1]
		accumulated = accumulated[:len(accumulated)-len(last.intervals)]
		chosen = chosen[:len(chosen)-1]
	}

	for depth >= 0 {
		if depth == total {
			combinations = append(combinations, assembleCombination(requestedCodes, chosen))
			if len(combinations) >= maxCombinations {
				return combinations, true
			}
			backtrack()
			continue
		}

		advanced := false
		for cursor[depth] < len(candidates[depth]) {
			next := candidates[depth][cursor[depth]]
			cursor[depth]++
			if Conflicts(next.intervals, accumulated) {
				continue
			}
			chosen = append(chosen, next)
			accumulated = append(accumulated, next.intervals...)
			depth++
			advanced = true
			break
		}
		if advanced {
			continue
		}

		cursor[depth] = 0
		backtrack()
	}

	return combinations, false
}

func assembleCombination(requestedCodes []string, chosen []candidate) ScheduleCombination {
	combination := ScheduleCombination{
		Courses:     make([]Course, len(chosen)),
		Status:      CombinationAvailable,
		FullCourses: make([]string, 0),
	}
	for i, pick := range chosen {
		combination.Courses[i] = pick.course
		combination.Intervals = append(combination.Intervals, pick.intervals...)
		if pick.availability.Blocking() {
			combination.Status = CombinationUnavailable
			combination.FullCourses = append(combination.FullCourses, requestedCodes[i])
		}
	}
	return combination
}
