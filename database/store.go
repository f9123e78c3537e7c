package database

import (
	"errors"

	"learnhub/models"

	"gorm.io/gorm"
)

// IdentityStore holds user documents: identity, enrolled-course list and
// progress records. Saves are full-document overwrites (last-writer-wins).
type IdentityStore interface {
	// CreateUser fails with models.ErrDuplicateEmail when the email is taken.
	CreateUser(user *models.User) error
	FindUserByID(id string) (*models.User, error)
	FindUserByEmail(email string) (*models.User, error)
	SaveUser(user *models.User) error
	ListUsers() ([]models.User, error)
}

// CatalogStore holds course documents: lessons, quizzes and the
// enrolled-student list.
type CatalogStore interface {
	CreateCourse(course *models.Course) error
	FindCourseByID(id string) (*models.Course, error)
	// ListCourses filters by exact category match; empty returns everything.
	ListCourses(category string) ([]models.Course, error)
	SaveCourse(course *models.Course) error
}

// Store is the document store both engines talk to. Transaction binds a
// callback to a store whose writes commit or roll back together, which is
// what keeps the user-side and course-side enrollment views consistent.
type Store interface {
	IdentityStore
	CatalogStore
	Transaction(fn func(tx Store) error) error
}

// GormStore backs Store with a relational database; list-valued fields live
// in JSON columns so each row behaves like one document.
type GormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateUser(user *models.User) error {
	// Check if email already exists
	var existing models.User
	err := s.db.Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		return models.ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.Create(user).Error
}

func (s *GormStore) FindUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) SaveUser(user *models.User) error {
	return s.db.Save(user).Error
}

func (s *GormStore) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStore) CreateCourse(course *models.Course) error {
	return s.db.Create(course).Error
}

func (s *GormStore) FindCourseByID(id string) (*models.Course, error) {
	var course models.Course
	if err := s.db.Where("id = ?", id).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

func (s *GormStore) ListCourses(category string) ([]models.Course, error) {
	var courses []models.Course
	db := s.db
	if category != "" {
		db = db.Where("category = ?", category)
	}
	if err := db.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *GormStore) SaveCourse(course *models.Course) error {
	return s.db.Save(course).Error
}

func (s *GormStore) Transaction(fn func(tx Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
