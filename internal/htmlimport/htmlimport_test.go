package htmlimport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ismis-scheduler/internal/model"
)

const offeringTable = `
<html><body>
<table>
<thead><tr><th>Code</th><th>Description</th><th>Status</th><th>Teacher</th><th>Schedule</th><th>Department</th><th>Enrolled</th></tr></thead>
<tbody>
<tr>
  <td> CIS 2103 - Group 1 </td>
  <td>Data Structures</td>
  <td>REGULAR</td>
  <td>DELA CRUZ, J</td>
  <td>TTh 09:00 AM - 10:30 AM LB442</td>
  <td>CS</td>
  <td>25/40</td>
</tr>
<tr>
  <td>IS 3101N - Group 1</td>
  <td>Systems Analysis</td>
  <td>BLOCKSECTION</td>
  <td>TBA</td>
  <td>TBA</td>
  <td>IS</td>
  <td>?/?</td>
</tr>
<tr>
  <td colspan="7">No sections on this page</td>
</tr>
<tr>
  <td>CIS 2103 - Group 1</td>
  <td>Data Structures (duplicate row from pagination)</td>
  <td>REGULAR</td>
  <td>DELA CRUZ, J</td>
  <td>TTh 09:00 AM - 10:30 AM LB442</td>
  <td>CS</td>
  <td>25/40</td>
</tr>
</tbody>
</table>
</body></html>`

func TestParse(t *testing.T) {
	// Act
	courses, err := Parse(strings.NewReader(offeringTable))

	// Assert
	require.NoError(t, err)
	require.Len(t, courses, 2)

	assert.Equal(t, model.Course{
		Code:        "CIS 2103 - Group 1",
		Description: "Data Structures",
		Status:      "REGULAR",
		Teacher:     "DELA CRUZ, J",
		Schedule:    "TTh 09:00 AM - 10:30 AM",
		Room:        "LB442",
		Department:  "CS",
		Enrolled:    "25/40",
	}, courses[0])

	// A schedule cell without a trailing room keeps the whole text as
	// the schedule and gets a TBA room.
	assert.Equal(t, "TBA", courses[1].Schedule)
	assert.Equal(t, "TBA", courses[1].Room)
}

func TestParseEmptyDocument(t *testing.T) {
	courses, err := Parse(strings.NewReader("<html><body><p>nothing here</p></body></html>"))

	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestSplitScheduleRoom(t *testing.T) {
	schedule, room := splitScheduleRoom("MWF 07:30 AM - 08:30 AM LB160")
	assert.Equal(t, "MWF 07:30 AM - 08:30 AM", schedule)
	assert.Equal(t, "LB160", room)

	schedule, room = splitScheduleRoom("TBA")
	assert.Equal(t, "TBA", schedule)
	assert.Equal(t, "TBA", room)
}
