// Package htmlimport builds course datasets from a saved copy of the
// course-offering table page, so datasets can be produced without a live
// crawler session.
package htmlimport

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"ismis-scheduler/internal/model"
)

// Parse extracts course sections from the offering table HTML. Table rows
// carry seven cells: code, description, status, teacher, schedule+room,
// department, enrolled. The schedule cell holds the meeting time with the
// room appended as its last word; rows with fewer cells are skipped and
// duplicate codes keep their first occurrence, matching the crawler's
// behavior across paginated tables.
func Parse(r io.Reader) ([]model.Course, error) {
	document, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse course table html: %w", err)
	}

	courses := make([]model.Course, 0)
	seen := make(map[string]bool)

	document.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 7 {
			return
		}

		text := func(i int) string {
			return strings.TrimSpace(cells.Eq(i).Text())
		}

		code := text(0)
		if code == "" || seen[code] {
			return
		}
		seen[code] = true

		schedule, room := splitScheduleRoom(text(4))
		courses = append(courses, model.Course{
			Code:        code,
			Description: text(1),
			Status:      text(2),
			Teacher:     text(3),
			Schedule:    schedule,
			Room:        room,
			Department:  text(5),
			Enrolled:    text(6),
		})
	})

	return courses, nil
}

// splitScheduleRoom peels the room off the end of the combined cell:
// "TTh 09:00 AM - 10:30 AM LB442" splits at the last space. A cell
// without spaces (plain "TBA") has no room.
func splitScheduleRoom(cell string) (schedule, room string) {
	index := strings.LastIndex(cell, " ")
	if index < 0 {
		return cell, "TBA"
	}
	return cell[:index], cell[index+1:]
}
