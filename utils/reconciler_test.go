package utils

import (
	"testing"

	"learnhub/database"
	"learnhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileRepairsCourseSide(t *testing.T) {
	store := database.NewMemoryStore()

	// User enrolled, but the course never recorded the student and the
	// progress record is missing — the shape a crash between the two legacy
	// writes would leave behind.
	require.NoError(t, store.CreateUser(&models.User{
		ID:              "u1",
		Email:           "ann@x.com",
		EnrolledCourses: []string{"c1"},
	}))
	require.NoError(t, store.CreateCourse(&models.Course{ID: "c1", Title: "Algebra"}))

	require.NoError(t, ReconcileEnrollments(store))

	course, err := store.FindCourseByID("c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, []string(course.EnrolledStudents))

	user, err := store.FindUserByID("u1")
	require.NoError(t, err)
	require.Len(t, user.Progress, 1)
	assert.Equal(t, "c1", user.Progress[0].CourseID)
}

func TestReconcileRepairsUserSide(t *testing.T) {
	store := database.NewMemoryStore()

	require.NoError(t, store.CreateUser(&models.User{ID: "u1", Email: "ann@x.com"}))
	require.NoError(t, store.CreateCourse(&models.Course{
		ID:               "c1",
		Title:            "Algebra",
		EnrolledStudents: []string{"u1"},
	}))

	require.NoError(t, ReconcileEnrollments(store))

	user, err := store.FindUserByID("u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, []string(user.EnrolledCourses))
	require.Len(t, user.Progress, 1)
	assert.Equal(t, "c1", user.Progress[0].CourseID)
}

func TestReconcileLeavesConsistentStateAlone(t *testing.T) {
	store := database.NewMemoryStore()

	require.NoError(t, store.CreateUser(&models.User{
		ID:              "u1",
		Email:           "ann@x.com",
		EnrolledCourses: []string{"c1"},
		Progress: []models.Progress{{
			CourseID:         "c1",
			CompletedLessons: []string{"lesson1"},
		}},
	}))
	require.NoError(t, store.CreateCourse(&models.Course{
		ID:               "c1",
		Title:            "Algebra",
		EnrolledStudents: []string{"u1"},
	}))

	require.NoError(t, ReconcileEnrollments(store))

	user, err := store.FindUserByID("u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, []string(user.EnrolledCourses))
	require.Len(t, user.Progress, 1)
	assert.Equal(t, []string{"lesson1"}, user.Progress[0].CompletedLessons)
}

func TestReconcileToleratesDanglingReferences(t *testing.T) {
	store := database.NewMemoryStore()

	require.NoError(t, store.CreateUser(&models.User{
		ID:              "u1",
		Email:           "ann@x.com",
		EnrolledCourses: []string{"ghost-course"},
	}))
	require.NoError(t, store.CreateCourse(&models.Course{
		ID:               "c1",
		Title:            "Algebra",
		EnrolledStudents: []string{"ghost-user"},
	}))

	// Dangling ids are logged and skipped, never an error
	assert.NoError(t, ReconcileEnrollments(store))
}
