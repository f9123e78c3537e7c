package models

import (
	"time"

	"gorm.io/datatypes"
)

// Progress tracks lesson completion for one (user, course) pair. Lessons are
// stored in first-insertion order and never removed.
type Progress struct {
	CourseID         string   `json:"courseId"`
	CompletedLessons []string `json:"completedLessons"`
}

// User is stored as a single document: the enrolled-course list and the
// progress records live inside the user row as JSON columns, and every save
// overwrites the whole document (last-writer-wins).
type User struct {
	ID              string                        `gorm:"primaryKey" json:"id"`
	Name            string                        `json:"name"`
	Email           string                        `gorm:"uniqueIndex;not null" json:"email"`
	Password        string                        `json:"-"` // bcrypt hash
	EnrolledCourses datatypes.JSONSlice[string]   `json:"enrolledCourses"`
	Progress        datatypes.JSONSlice[Progress] `json:"progress"`
	CreatedAt       time.Time                     `json:"-"`
	UpdatedAt       time.Time                     `json:"-"`
}

// FindProgress returns the progress record for courseID, or nil if the user
// never enrolled. The pointer aliases the user's slice so callers can mutate
// the record in place before saving the user.
func (u *User) FindProgress(courseID string) *Progress {
	for i := range u.Progress {
		if u.Progress[i].CourseID == courseID {
			return &u.Progress[i]
		}
	}
	return nil
}

// AuthData is returned once at login and never persisted.
type AuthData struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
