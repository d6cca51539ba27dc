package fixtures

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/code679/course-builder/store"
)

// Record kinds used in the store.
const (
	KindUnit   = "Unit"
	KindLesson = "Lesson"
)

// The shipped course data has exactly this many rows. Load refuses to proceed
// with anything else: a short count means a truncated or mis-parsed file, and
// every page assertion downstream depends on this data being intact.
const (
	expectedUnitCount   = 11
	expectedLessonCount = 29
)

// Default file names inside a fixture data directory.
const (
	UnitsFile   = "unit.csv"
	LessonsFile = "lesson.csv"
)

// CountError reports a fixture-integrity failure: the store did not contain
// the expected number of records after loading.
type CountError struct {
	Kind string
	Want int
	Got  int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("fixture integrity check failed: want %d %s records, got %d",
		e.Want, e.Kind, e.Got)
}

// ReadUnits parses unit.csv, verifying the header row.
func ReadUnits(path string) ([]Unit, error) {
	rows, err := readCSV(path, UnitsHeader)
	if err != nil {
		return nil, err
	}
	units := make([]Unit, 0, len(rows))
	for i, row := range rows {
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad id %q", path, i+2, row[0])
		}
		units = append(units, Unit{
			ID:           id,
			Type:         row[1],
			UnitID:       row[2],
			Title:        row[3],
			ReleaseDate:  row[4],
			NowAvailable: parseBool(row[5]),
		})
	}
	return units, nil
}

// ReadLessons parses lesson.csv, verifying the header row.
func ReadLessons(path string) ([]Lesson, error) {
	rows, err := readCSV(path, LessonsHeader)
	if err != nil {
		return nil, err
	}
	lessons := make([]Lesson, 0, len(rows))
	for i, row := range rows {
		unitID, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad unit_id %q", path, i+2, row[0])
		}
		id, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad lesson_id %q", path, i+2, row[2])
		}
		lessons = append(lessons, Lesson{
			UnitID:       unitID,
			UnitTitle:    row[1],
			ID:           id,
			Title:        row[3],
			Activity:     parseBool(row[4]),
			ActivityName: row[5],
			Notes:        row[6],
			VideoID:      row[7],
			Objectives:   row[8],
		})
	}
	return lessons, nil
}

// Load resets the namespace, reads unit.csv and lesson.csv from dataDir, and
// persists every record. It then re-counts the stored records and fails with
// a *CountError if the totals are not exactly the expected 11 units and 29
// lessons. Load is idempotent: re-running it re-seeds the namespace.
func Load(ns *store.Namespace, dataDir string) error {
	if err := ns.Reset(); err != nil {
		return err
	}

	units, err := ReadUnits(filepath.Join(dataDir, UnitsFile))
	if err != nil {
		return err
	}
	lessons, err := ReadLessons(filepath.Join(dataDir, LessonsFile))
	if err != nil {
		return err
	}

	for _, u := range units {
		if err := ns.Put(KindUnit, u.Key(), u); err != nil {
			return err
		}
	}
	for _, l := range lessons {
		if err := ns.Put(KindLesson, l.Key(), l); err != nil {
			return err
		}
	}

	if got, err := ns.Count(KindUnit); err != nil {
		return err
	} else if got != expectedUnitCount {
		return &CountError{Kind: KindUnit, Want: expectedUnitCount, Got: got}
	}
	if got, err := ns.Count(KindLesson); err != nil {
		return err
	} else if got != expectedLessonCount {
		return &CountError{Kind: KindLesson, Want: expectedLessonCount, Got: got}
	}
	return nil
}

func readCSV(path string, header []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}
	for i, name := range header {
		if records[0][i] != name {
			return nil, fmt.Errorf("%s: header mismatch: want %q, got %q",
				path, strings.Join(header, ","), strings.Join(records[0], ","))
		}
	}
	return records[1:], nil
}

func parseBool(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}
