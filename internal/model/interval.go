package model

// Day is a day of the week, Monday first.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = map[Day]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

func (day Day) String() string {
	return dayNames[day]
}

// MeetingInterval is a single weekly meeting: a day of the week and a
// start/end time expressed as fractional hours (10:30 is 10.5).
// Start < End always holds for intervals produced by ParseSchedule.
type MeetingInterval struct {
	Day   Day
	Start float64
	End   float64
}
