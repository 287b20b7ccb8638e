package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ismis-scheduler/internal/model"
)

func testCourses() []model.Course {
	return []model.Course{
		{
			Code:        "CIS 2103 - Group 1",
			Description: "Data Structures",
			Status:      "REGULAR",
			Teacher:     "DELA CRUZ",
			Schedule:    "MWF 07:30 AM - 08:30 AM",
			Room:        "LB442",
			Department:  "CS",
			Enrolled:    "25/40",
		},
		{
			Code:     "CIS 2103 - Group 2",
			Schedule: "TTh 09:00 AM - 10:30 AM",
			Enrolled: "40/40",
		},
		{
			Code:     "IS 3101N - Group 1",
			Schedule: "TBA",
			Enrolled: "?/?",
		},
	}
}

func TestSaveAndLoad(t *testing.T) {
	// Arrange
	store, err := New(t.TempDir())
	require.NoError(t, err)
	courses := testCourses()

	// Act
	name, err := store.Save("1st-Semester_2025_all.json", courses)
	require.NoError(t, err)
	loaded, modified, err := store.Load(name)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, courses, loaded)
	assert.False(t, modified.IsZero())
}

func TestLoadLatestWhenUnnamed(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	_, err = store.Save("older.json", testCourses()[:1])
	require.NoError(t, err)
	_, err = store.Save("newer.json", testCourses())
	require.NoError(t, err)
	// Make the ordering unambiguous regardless of filesystem timestamp
	// resolution.
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "older.json"), past, past))

	// Act
	loaded, _, err := store.Load("")

	// Assert
	require.NoError(t, err)
	assert.Len(t, loaded, 3)
}

func TestLoadWrappedDataset(t *testing.T) {
	// Arrange: some exports wrap the list under a "courses" key.
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)
	wrapped := `{"courses": [{"code": "CIS 2103 - Group 1", "schedule": "TBA", "enrolled": "1/2"}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wrapped.json"), []byte(wrapped), 0o644))

	// Act
	loaded, _, err := store.Load("wrapped.json")

	// Assert
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "CIS 2103 - Group 1", loaded[0].Code)
}

func TestLoadErrors(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	t.Run("EmptyDirectory", func(t *testing.T) {
		_, _, err := store.Load("")
		assert.ErrorIs(t, err, ErrNoDataset)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, _, err := store.Load("nope.json")
		assert.ErrorIs(t, err, ErrNoDataset)
	})

	t.Run("TraversalRejected", func(t *testing.T) {
		_, _, err := store.Load("../secrets.json")
		assert.ErrorIs(t, err, ErrBadFilename)

		_, _, err = store.Load("sub/dataset.json")
		assert.ErrorIs(t, err, ErrBadFilename)
	})

	t.Run("NonJSONRejected", func(t *testing.T) {
		_, _, err := store.Load("dataset.csv")
		assert.ErrorIs(t, err, ErrBadFilename)
	})
}

func TestList(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)
	_, err = store.Save("a.json", testCourses())
	require.NoError(t, err)
	_, err = store.Save("b.json", testCourses())
	require.NoError(t, err)
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "a.json"), past, past))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	// Act
	files, err := store.List()

	// Assert
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "b.json", files[0].Filename)
	assert.Equal(t, "a.json", files[1].Filename)
}

func TestUniqueCodes(t *testing.T) {
	assert.Equal(t, 2, UniqueCodes(testCourses()))
}

func TestDatasetName(t *testing.T) {
	assert.Equal(t, "1st-Semester_2025_all.json", DatasetName("FIRST_SEMESTER", "2025", false))
	assert.Equal(t, "Summer_2026_specific.json", DatasetName("SUMMER", "2026", true))
	assert.Equal(t, "courses_2025_all.json", DatasetName("SENIORHIGH_TRANSITION_SEMESTER_1", "2025", false))
}
