package service

import (
	"fmt"
	"log"
	"strings"

	"learnhub/config"
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput carries the register mutation arguments.
type RegisterInput struct {
	Name     string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

// AuthService handles registration and login.
type AuthService struct {
	store    database.IdentityStore
	validate *validator.Validate
}

func NewAuthService(store database.IdentityStore) *AuthService {
	return &AuthService{
		store:    store,
		validate: validator.New(),
	}
}

// Register creates a new user. The email must not already be registered.
// Passwords are stored as bcrypt hashes; the system this replaces kept them
// in plaintext, which is a defect, not behavior worth preserving.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, formatValidationError(err)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return nil, fmt.Errorf("failed to process registration: %w", err)
	}

	newUser := &models.User{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashedPassword),
	}

	if err := s.store.CreateUser(newUser); err != nil {
		return nil, err
	}

	// Notify the external sync endpoint without blocking registration
	go utils.NotifyRegistration(*newUser)

	return newUser, nil
}

// Login checks credentials and issues a signed token. Unknown email and
// wrong password produce the same error so callers cannot probe for accounts.
func (s *AuthService) Login(email, password string) (*models.AuthData, error) {
	user, err := s.store.FindUserByEmail(email)
	if err != nil {
		if err == models.ErrUserNotFound {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	// Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	token, err := middleware.GenerateJWT(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthData{Token: token, UserID: user.ID}, nil
}

// formatValidationError flattens validator output into one request-level
// message, field names lowercased to match the wire contract.
func formatValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
		case "email":
			msgs = append(msgs, "invalid email")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters long", strings.ToLower(fe.Field()), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", strings.ToLower(fe.Field())))
		}
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
