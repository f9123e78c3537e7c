package utils

import (
	"log"
	"strconv"
	"time"

	"learnhub/database"
	"learnhub/models"

	"github.com/robfig/cron/v3"
)

// logReconciler logs reconciler events with timestamp
func logReconciler(message string) {
	log.Printf("[ENROLLMENT-RECONCILER %s] %s", time.Now().Format(time.RFC3339), message)
}

// InitializeReconciler sets up the nightly enrollment reconciliation sweep
func InitializeReconciler(store database.Store) *cron.Cron {
	logReconciler("Initializing enrollment reconciler...")

	c := cron.New()

	// Run daily at 3:30 AM
	c.AddFunc("30 3 * * *", func() {
		logReconciler("Running nightly enrollment sweep...")
		if err := ReconcileEnrollments(store); err != nil {
			logReconciler("Sweep failed: " + err.Error())
		}
	})

	c.Start()
	logReconciler("Enrollment reconciler started - runs daily at 3:30 AM")
	return c
}

// ReconcileEnrollments repairs divergence between the user-side and the
// course-side enrollment views. The enroll transaction keeps the two in sync
// on the happy path; this sweep covers documents written by older versions of
// the system, where the two saves were independent and a crash between them
// could strand one side. It also backfills missing progress records.
func ReconcileEnrollments(store database.Store) error {
	repaired := 0

	users, err := store.ListUsers()
	if err != nil {
		return err
	}

	// User says enrolled: course's student list and progress record must agree
	for i := range users {
		user := &users[i]
		userDirty := false
		for _, courseID := range user.EnrolledCourses {
			course, err := store.FindCourseByID(courseID)
			if err != nil {
				if err == models.ErrCourseNotFound {
					logReconciler("User " + user.ID + " enrolled in missing course " + courseID)
					continue
				}
				return err
			}
			if !sliceContains(course.EnrolledStudents, user.ID) {
				course.EnrolledStudents = append(course.EnrolledStudents, user.ID)
				if err := store.SaveCourse(course); err != nil {
					return err
				}
				repaired++
			}
			if user.FindProgress(courseID) == nil {
				user.Progress = append(user.Progress, models.Progress{
					CourseID:         courseID,
					CompletedLessons: []string{},
				})
				userDirty = true
				repaired++
			}
		}
		if userDirty {
			if err := store.SaveUser(user); err != nil {
				return err
			}
		}
	}

	// Course says enrolled: user's enrolled list must agree
	courses, err := store.ListCourses("")
	if err != nil {
		return err
	}
	for i := range courses {
		course := &courses[i]
		for _, userID := range course.EnrolledStudents {
			user, err := store.FindUserByID(userID)
			if err != nil {
				if err == models.ErrUserNotFound {
					logReconciler("Course " + course.ID + " lists missing user " + userID)
					continue
				}
				return err
			}
			if !sliceContains(user.EnrolledCourses, course.ID) {
				user.EnrolledCourses = append(user.EnrolledCourses, course.ID)
				if user.FindProgress(course.ID) == nil {
					user.Progress = append(user.Progress, models.Progress{
						CourseID:         course.ID,
						CompletedLessons: []string{},
					})
				}
				if err := store.SaveUser(user); err != nil {
					return err
				}
				repaired++
			}
		}
	}

	if repaired > 0 {
		logReconciler("Sweep finished, repaired " + strconv.Itoa(repaired) + " inconsistencies")
	} else {
		logReconciler("Sweep finished, no inconsistencies found")
	}
	return nil
}

func sliceContains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
