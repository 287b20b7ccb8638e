// Package store persists scraped course datasets as JSON files in a
// single data directory, one file per scrape run.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"

	"ismis-scheduler/internal/model"
)

var (
	// ErrNoDataset is returned when no dataset file resolves: the named
	// file does not exist, or the directory holds no datasets at all.
	ErrNoDataset = errors.New("no course dataset found")
	// ErrBadFilename rejects names that escape the data directory or are
	// not JSON files.
	ErrBadFilename = errors.New("invalid dataset filename")
)

// FileInfo describes one dataset file.
type FileInfo struct {
	Filename string    `json:"filename"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// Store reads and writes dataset files under a fixed directory.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// List returns every dataset file, newest first.
func (store *Store) List() ([]FileInfo, error) {
	entries, err := os.ReadDir(store.dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read data directory: %w", err)
	}

	files := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Filename: entry.Name(),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Modified.After(files[j].Modified)
	})
	return files, nil
}

// Latest returns the most recently modified dataset filename.
func (store *Store) Latest() (string, error) {
	files, err := store.List()
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", ErrNoDataset
	}
	return files[0].Filename, nil
}

// Load reads the named dataset. An empty filename loads the latest one.
// The second return value is the file's modification time.
func (store *Store) Load(filename string) ([]model.Course, time.Time, error) {
	if filename == "" {
		latest, err := store.Latest()
		if err != nil {
			return nil, time.Time{}, err
		}
		filename = latest
	}
	if err := checkFilename(filename); err != nil {
		return nil, time.Time{}, err
	}

	path := filepath.Join(store.dir, filename)
	bytes, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, time.Time{}, ErrNoDataset
		}
		return nil, time.Time{}, fmt.Errorf("cannot read dataset %v: %w", filename, err)
	}

	courses, err := decodeCourses(bytes)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("cannot decode dataset %v: %w", filename, err)
	}

	modified := time.Time{}
	if info, err := os.Stat(path); err == nil {
		modified = info.ModTime()
	}
	return courses, modified, nil
}

// Save writes a dataset under the given filename and returns the name.
func (store *Store) Save(filename string, courses []model.Course) (string, error) {
	if err := checkFilename(filename); err != nil {
		return "", err
	}

	bytes, err := json.MarshalIndent(courses, "", "  ")
	if err != nil {
		return "", fmt.Errorf("cannot encode dataset: %w", err)
	}
	if err := os.WriteFile(filepath.Join(store.dir, filename), bytes, 0o644); err != nil {
		return "", fmt.Errorf("cannot write dataset %v: %w", filename, err)
	}
	return filename, nil
}

// UniqueCodes counts distinct base course codes in a dataset.
func UniqueCodes(courses []model.Course) int {
	return len(model.BuildSectionIndex(courses).Codes())
}

// decodeCourses accepts both dataset shapes the system has produced: a
// bare JSON array of course records and an object wrapping one under a
// "courses" key.
func decodeCourses(bytes []byte) ([]model.Course, error) {
	var raw any
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return nil, err
	}

	if wrapped, ok := raw.(map[string]any); ok {
		inner, ok := wrapped["courses"]
		if !ok {
			return nil, errors.New("object dataset lacks a courses field")
		}
		raw = inner
	}

	var courses []model.Course
	if err := mapstructure.Decode(raw, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func checkFilename(filename string) error {
	if filename == "" ||
		!strings.HasSuffix(filename, ".json") ||
		strings.ContainsAny(filename, "/\\") ||
		strings.Contains(filename, "..") {
		return ErrBadFilename
	}
	return nil
}

// DatasetName derives the canonical filename for a scraped dataset from
// its academic period, year and scope, e.g.
// "1st-Semester_2025_specific.json".
func DatasetName(period, year string, specific bool) string {
	names := map[string]string{
		"FIRST_SEMESTER":   "1st-Semester",
		"SECOND_SEMESTER":  "2nd-Semester",
		"SUMMER":           "Summer",
		"FIRST_TRIMESTER":  "1st-Trimester",
		"SECOND_TRIMESTER": "2nd-Trimester",
		"THIRD_TRIMESTER":  "3rd-Trimester",
	}
	name, ok := names[period]
	if !ok {
		name = "courses"
	}
	scope := "_all"
	if specific {
		scope = "_specific"
	}
	return name + "_" + year + scope + ".json"
}
