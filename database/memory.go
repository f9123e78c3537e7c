package database

import (
	"sync"

	"learnhub/models"
)

// MemoryStore is an in-memory Store used by tests and local experiments.
// Documents are deep-copied on the way in and out so callers observe the
// same full-document overwrite semantics as the database-backed store.
type MemoryStore struct {
	mu      sync.Mutex
	users   map[string]models.User
	emails  map[string]string // email -> user id
	courses map[string]models.Course
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   make(map[string]models.User),
		emails:  make(map[string]string),
		courses: make(map[string]models.Course),
	}
}

func (s *MemoryStore) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.emails[user.Email]; ok {
		return models.ErrDuplicateEmail
	}
	s.users[user.ID] = copyUser(*user)
	s.emails[user.Email] = user.ID
	return nil
}

func (s *MemoryStore) FindUserByID(id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	user = copyUser(user)
	return &user, nil
}

func (s *MemoryStore) FindUserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.emails[email]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	user := copyUser(s.users[id])
	return &user, nil
}

func (s *MemoryStore) SaveUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = copyUser(*user)
	s.emails[user.Email] = user.ID
	return nil
}

func (s *MemoryStore) ListUsers() ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, copyUser(u))
	}
	return users, nil
}

func (s *MemoryStore) CreateCourse(course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses[course.ID] = copyCourse(*course)
	return nil
}

func (s *MemoryStore) FindCourseByID(id string) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	course, ok := s.courses[id]
	if !ok {
		return nil, models.ErrCourseNotFound
	}
	course = copyCourse(course)
	return &course, nil
}

func (s *MemoryStore) ListCourses(category string) ([]models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	courses := make([]models.Course, 0, len(s.courses))
	for _, c := range s.courses {
		if category != "" && c.Category != category {
			continue
		}
		courses = append(courses, copyCourse(c))
	}
	return courses, nil
}

func (s *MemoryStore) SaveCourse(course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses[course.ID] = copyCourse(*course)
	return nil
}

// Transaction runs fn against the same store. There is no rollback here; the
// memory store exists for tests, which only exercise the commit path.
func (s *MemoryStore) Transaction(fn func(tx Store) error) error {
	return fn(s)
}

func copyUser(u models.User) models.User {
	u.EnrolledCourses = append(u.EnrolledCourses[:0:0], u.EnrolledCourses...)
	progress := make([]models.Progress, len(u.Progress))
	for i, p := range u.Progress {
		p.CompletedLessons = append(p.CompletedLessons[:0:0], p.CompletedLessons...)
		progress[i] = p
	}
	u.Progress = progress
	return u
}

func copyCourse(c models.Course) models.Course {
	c.Lessons = append(c.Lessons[:0:0], c.Lessons...)
	c.EnrolledStudents = append(c.EnrolledStudents[:0:0], c.EnrolledStudents...)
	quizzes := make([]models.Quiz, len(c.Quizzes))
	for i, q := range c.Quizzes {
		q.Options = append(q.Options[:0:0], q.Options...)
		quizzes[i] = q
	}
	c.Quizzes = quizzes
	return c
}
