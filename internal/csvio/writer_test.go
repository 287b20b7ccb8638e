package csvio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ismis-scheduler/internal/model"
)

func sampleCombinations() []model.ScheduleCombination {
	return []model.ScheduleCombination{
		{
			Status: model.CombinationAvailable,
			Courses: []model.Course{
				{Code: "CIS 2103 - Group 1", Schedule: "MWF 07:30 AM - 08:30 AM", Room: "LB442", Enrolled: "10/40"},
				{Code: "IS 3101N - Group 2", Schedule: "TTh 01:00 PM - 02:30 PM", Room: "LB160", Enrolled: "12/40"},
			},
		},
		{
			Status: model.CombinationUnavailable,
			Courses: []model.Course{
				{Code: "CIS 2103 - Group 2", Schedule: "MWF 09:00 AM - 10:00 AM", Room: "LB443", Enrolled: "40/40"},
				{Code: "IS 3101N - Group 2", Schedule: "TTh 01:00 PM - 02:30 PM", Room: "LB160", Enrolled: "12/40"},
			},
		},
	}
}

func TestExportCombinationsString(t *testing.T) {
	// Act
	csv, err := ExportCombinationsString(sampleCombinations())

	// Assert
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(csv), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "combination,status,code,description,teacher,schedule,room,enrolled", lines[0])
	assert.Contains(t, lines[1], "1,available,CIS 2103 - Group 1")
	assert.Contains(t, lines[3], "2,unavailable,CIS 2103 - Group 2")
}

func TestExportCombinationsFile(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "combinations.csv")

	// Act
	err := ExportCombinations(sampleCombinations(), path)

	// Assert
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "IS 3101N - Group 2")
}
