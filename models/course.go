package models

import (
	"time"

	"gorm.io/datatypes"
)

// Quiz is embedded in its course document. The answer is stored in plaintext
// and is visible to any caller, matching the behavior of the system this
// replaces.
type Quiz struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// Course document. Lessons are plain names, not foreign keys. The
// enrolled-student list is the course-side view of the same relationship the
// user's enrolled-course list tracks; the two are kept in sync by the
// enrollment transaction and the reconciler sweep.
type Course struct {
	ID               string                      `gorm:"primaryKey" json:"id"`
	Title            string                      `json:"title"`
	Description      string                      `json:"description"`
	Category         string                      `gorm:"index" json:"category"`
	Lessons          datatypes.JSONSlice[string] `json:"lessons"`
	Quizzes          datatypes.JSONSlice[Quiz]   `json:"quizzes"`
	EnrolledStudents datatypes.JSONSlice[string] `json:"enrolledStudents"`
	CreatedAt        time.Time                   `json:"-"`
	UpdatedAt        time.Time                   `json:"-"`
}
