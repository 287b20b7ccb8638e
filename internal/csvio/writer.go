// Package csvio exports generated schedule combinations as CSV, one row
// per selected section.
package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"ismis-scheduler/internal/model"
)

// CombinationCSVRow is the flattened CSV shape of one section inside one
// combination.
type CombinationCSVRow struct {
	Combination int    `csv:"combination"`
	Status      string `csv:"status"`
	Code        string `csv:"code"`
	Description string `csv:"description"`
	Teacher     string `csv:"teacher"`
	Schedule    string `csv:"schedule"`
	Room        string `csv:"room"`
	Enrolled    string `csv:"enrolled"`
}

func flatten(combinations []model.ScheduleCombination) []*CombinationCSVRow {
	rows := make([]*CombinationCSVRow, 0, len(combinations))
	for i, combination := range combinations {
		for _, course := range combination.Courses {
			rows = append(rows, &CombinationCSVRow{
				Combination: i + 1,
				Status:      combination.Status,
				Code:        course.Code,
				Description: course.Description,
				Teacher:     course.Teacher,
				Schedule:    course.Schedule,
				Room:        course.Room,
				Enrolled:    course.Enrolled,
			})
		}
	}
	return rows
}

// ExportCombinations writes the combinations to the CSV file at path,
// replacing any existing file.
func ExportCombinations(combinations []model.ScheduleCombination, path string) error {
	rows := flatten(combinations)

	out, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open export file: %w", err)
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("cannot write export file: %w", err)
	}
	return nil
}

// ExportCombinationsString renders the combinations as a CSV document.
func ExportCombinationsString(combinations []model.ScheduleCombination) (string, error) {
	rows := flatten(combinations)
	return gocsv.MarshalString(&rows)
}
