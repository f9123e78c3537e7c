package service

import (
	"context"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"

	"github.com/google/uuid"
)

// CourseService is the enrollment/progress engine. Every gated operation
// reads the authentication context first and fails with ErrUnauthorized when
// it is absent; Courses is the only public operation.
type CourseService struct {
	store database.Store
}

func NewCourseService(store database.Store) *CourseService {
	return &CourseService{store: store}
}

// Courses returns all courses, or those whose category matches exactly.
func (s *CourseService) Courses(category string) ([]models.Course, error) {
	return s.store.ListCourses(category)
}

// AddCourse creates a new catalog entry.
func (s *CourseService) AddCourse(ctx context.Context, course models.Course) (*models.Course, error) {
	if _, ok := middleware.UserIDFromContext(ctx); !ok {
		return nil, models.ErrUnauthorized
	}
	course.ID = uuid.NewString()
	if course.Lessons == nil {
		course.Lessons = []string{}
	}
	if course.EnrolledStudents == nil {
		course.EnrolledStudents = []string{}
	}
	if err := s.store.CreateCourse(&course); err != nil {
		return nil, err
	}
	return &course, nil
}

// Enroll adds the authenticated user to a course. Enrolling twice is a no-op
// that still returns the course. Both sides of the relationship — the user's
// enrolled-course list and the course's student list — plus the new empty
// progress record are written in a single transaction, so a failure cannot
// leave the two views disagreeing.
func (s *CourseService) Enroll(ctx context.Context, courseID string) (*models.Course, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, models.ErrUnauthorized
	}

	var enrolled *models.Course
	err := s.store.Transaction(func(tx database.Store) error {
		user, err := tx.FindUserByID(userID)
		if err != nil {
			return err
		}
		course, err := tx.FindCourseByID(courseID)
		if err != nil {
			return err
		}

		// Already enrolled: idempotent, nothing to write
		if containsString(user.EnrolledCourses, courseID) {
			enrolled = course
			return nil
		}

		user.EnrolledCourses = append(user.EnrolledCourses, courseID)
		user.Progress = append(user.Progress, models.Progress{
			CourseID:         courseID,
			CompletedLessons: []string{},
		})
		if !containsString(course.EnrolledStudents, userID) {
			course.EnrolledStudents = append(course.EnrolledStudents, userID)
		}

		if err := tx.SaveUser(user); err != nil {
			return err
		}
		if err := tx.SaveCourse(course); err != nil {
			return err
		}
		enrolled = course
		return nil
	})
	if err != nil {
		return nil, err
	}
	return enrolled, nil
}

// CompleteLesson records a lesson as completed for the authenticated user.
// The lesson set keeps first-insertion order and never holds duplicates.
// Completing a lesson on a course the user never enrolled in fails with
// ErrNoSuchProgress.
func (s *CourseService) CompleteLesson(ctx context.Context, courseID, lesson string) (*models.Progress, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, models.ErrUnauthorized
	}

	user, err := s.store.FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	progress := user.FindProgress(courseID)
	if progress == nil {
		return nil, models.ErrNoSuchProgress
	}

	if !containsString(progress.CompletedLessons, lesson) {
		progress.CompletedLessons = append(progress.CompletedLessons, lesson)
		if err := s.store.SaveUser(user); err != nil {
			return nil, err
		}
	}

	result := *progress
	return &result, nil
}

// MyProgress returns the authenticated user's progress record for a course.
func (s *CourseService) MyProgress(ctx context.Context, courseID string) (*models.Progress, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, models.ErrUnauthorized
	}

	user, err := s.store.FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	progress := user.FindProgress(courseID)
	if progress == nil {
		return nil, models.ErrNoSuchProgress
	}
	result := *progress
	return &result, nil
}

// MyCourses resolves the authenticated user's enrolled course ids to full
// course records. Ids that no longer resolve are skipped rather than failing
// the whole list.
func (s *CourseService) MyCourses(ctx context.Context) ([]models.Course, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, models.ErrUnauthorized
	}

	user, err := s.store.FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	courses := make([]models.Course, 0, len(user.EnrolledCourses))
	for _, id := range user.EnrolledCourses {
		course, err := s.store.FindCourseByID(id)
		if err != nil {
			if err == models.ErrCourseNotFound {
				continue
			}
			return nil, err
		}
		courses = append(courses, *course)
	}
	return courses, nil
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
