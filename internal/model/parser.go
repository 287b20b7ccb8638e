package model

import (
	"regexp"
	"strconv"
	"strings"
)

// timeRangePattern matches "H(:MM)? (AM|PM)? - H(:MM)? (AM|PM)?" anywhere
// in the schedule text; everything before the match is the day-token region.
var timeRangePattern = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(AM|PM)?\s*-\s*(\d{1,2})(?::(\d{2}))?\s*(AM|PM)?`)

type dayRule struct {
	token string
	day   Day
}

// dayRules is tried in order at each scan position, so longer tokens must
// come first: "TH" has to win over "T" or "TTh" decays into
// Tuesday+Tuesday plus a stray H.
var dayRules = []dayRule{
	{"MONDAY", Monday},
	{"TUESDAY", Tuesday},
	{"WEDNESDAY", Wednesday},
	{"THURSDAY", Thursday},
	{"SATURDAY", Saturday},
	{"SUNDAY", Sunday},
	{"FRIDAY", Friday},
	{"MON", Monday},
	{"TUE", Tuesday},
	{"WED", Wednesday},
	{"THU", Thursday},
	{"FRI", Friday},
	{"SAT", Saturday},
	{"SUN", Sunday},
	{"TH", Thursday},
	{"SA", Saturday},
	{"SU", Sunday},
	{"M", Monday},
	{"T", Tuesday},
	{"W", Wednesday},
	{"R", Thursday},
	{"F", Friday},
	{"S", Saturday},
	{"U", Sunday},
}

// ParseSchedule resolves a free-text meeting description like
// "TTh 09:00 AM - 10:30 AM" into one MeetingInterval per meeting day.
// It never fails: blank text, "TBA", text without a recognizable time
// range, and text without any day token all yield an empty slice.
func ParseSchedule(schedule string) []MeetingInterval {
	schedule = strings.TrimSpace(schedule)
	if schedule == "" || strings.EqualFold(schedule, "TBA") {
		return nil
	}

	match := timeRangePattern.FindStringSubmatchIndex(schedule)
	if match == nil {
		return nil
	}

	start, end, ok := parseClockRange(schedule, match)
	if !ok {
		return nil
	}

	days := parseDayTokens(schedule[:match[0]])
	if len(days) == 0 {
		return nil
	}

	intervals := make([]MeetingInterval, 0, len(days))
	for _, day := range days {
		intervals = append(intervals, MeetingInterval{Day: day, Start: start, End: end})
	}
	return intervals
}

// parseClockRange converts the matched hour/minute/meridiem groups into
// fractional hours. When neither side carries an AM/PM marker, bare hours
// 1 through 7 are assumed to be PM: afternoon and evening classes vastly
// outnumber 1-7 AM ones. This is a heuristic; a genuine 6 AM class written
// without a marker will be shifted to 6 PM and the text alone cannot
// disambiguate it.
func parseClockRange(schedule string, match []int) (float64, float64, bool) {
	group := func(i int) string {
		if match[2*i] < 0 {
			return ""
		}
		return schedule[match[2*i]:match[2*i+1]]
	}

	startHour, _ := strconv.Atoi(group(1))
	endHour, _ := strconv.Atoi(group(4))
	startMin := 0
	if group(2) != "" {
		startMin, _ = strconv.Atoi(group(2))
	}
	endMin := 0
	if group(5) != "" {
		endMin, _ = strconv.Atoi(group(5))
	}
	if startHour > 23 || endHour > 23 || startMin > 59 || endMin > 59 {
		return 0, 0, false
	}

	startMeridiem := strings.ToUpper(group(3))
	endMeridiem := strings.ToUpper(group(6))

	startHour = toClock24(startHour, startMeridiem)
	endHour = toClock24(endHour, endMeridiem)
	if startMeridiem == "" && endMeridiem == "" {
		startHour = assumePM(startHour)
		endHour = assumePM(endHour)
	}

	start := float64(startHour) + float64(startMin)/60
	end := float64(endHour) + float64(endMin)/60
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

func toClock24(hour int, meridiem string) int {
	switch meridiem {
	case "PM":
		if hour < 12 {
			return hour + 12
		}
	case "AM":
		if hour == 12 {
			return 0
		}
	}
	return hour
}

func assumePM(hour int) int {
	if hour >= 1 && hour <= 7 {
		return hour + 12
	}
	return hour
}

// parseDayTokens scans the day-token region left to right, trying the
// rule table at each position and consuming the longest match. Unknown
// characters are skipped rather than rejected. Repeated days collapse to
// their first occurrence.
func parseDayTokens(region string) []Day {
	region = strings.ToUpper(region)
	days := make([]Day, 0, 3)
	seen := make(map[Day]bool)

	for pos := 0; pos < len(region); {
		matched := false
		for _, rule := range dayRules {
			if strings.HasPrefix(region[pos:], rule.token) {
				if !seen[rule.day] {
					seen[rule.day] = true
					days = append(days, rule.day)
				}
				pos += len(rule.token)
				matched = true
				break
			}
		}
		if !matched {
			pos++
		}
	}
	return days
}
