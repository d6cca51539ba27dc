// Package fixtures loads the course seed data (units and lessons) from CSV
// files and persists it into a store namespace before a test run. The CSV
// schemas are fixed: a file whose header row does not match exactly is
// rejected.
package fixtures

import "strconv"

// UnitsHeader is the required header row of unit.csv.
var UnitsHeader = []string{
	"id", "type", "unit_id", "title", "release_date", "now_available",
}

// LessonsHeader is the required header row of lesson.csv.
var LessonsHeader = []string{
	"unit_id", "unit_title", "lesson_id", "lesson_title",
	"lesson_activity", "lesson_activity_name", "lesson_notes",
	"lesson_video_id", "lesson_objectives",
}

// Unit is one row of unit.csv. A "unit" is any top-level course component:
// type "U" is a lesson unit, "A" an assessment, "O" other content such as an
// interview. UnitID is the natural key within the type ("1".."6" for units,
// "Pre"/"Mid"/"Fin" for assessments).
type Unit struct {
	ID           int    `json:"id"`
	Type         string `json:"type"`
	UnitID       string `json:"unit_id"`
	Title        string `json:"title"`
	ReleaseDate  string `json:"release_date"`
	NowAvailable bool   `json:"now_available"`
}

// Key returns the unit's natural key within its namespace.
func (u Unit) Key() string {
	return u.Type + ":" + u.UnitID
}

// Lesson is one row of lesson.csv, identified by (unit id, lesson id).
type Lesson struct {
	UnitID       int    `json:"unit_id"`
	UnitTitle    string `json:"unit_title"`
	ID           int    `json:"lesson_id"`
	Title        string `json:"title"`
	Activity     bool   `json:"activity"`
	ActivityName string `json:"activity_name"`
	Notes        string `json:"notes"`
	VideoID      string `json:"video_id"`
	Objectives   string `json:"objectives"`
}

// Key returns the lesson's natural key within its namespace.
func (l Lesson) Key() string {
	return strconv.Itoa(l.UnitID) + ":" + strconv.Itoa(l.ID)
}
