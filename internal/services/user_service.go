// filepath: internal/services/user_service.go
package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"recipehub/internal/logging"
	"recipehub/internal/models"
	"recipehub/internal/repository"
	"recipehub/internal/shared"
)

// Compile-time check to ensure interface is implemented
var _ UserService = (*userService)(nil)

// userService handles registration, credential verification and user reads.
type userService struct {
	Repo *repository.Repository
}

// NewUserService creates a new UserService.
func NewUserService(repo *repository.Repository) *userService {
	return &userService{Repo: repo}
}

// Register creates a new account. A taken username surfaces as
// shared.ErrUserExists.
func (s *userService) Register(args repository.UserCreateArgs) (*models.User, error) {
	if args.Username == "" {
		return nil, fmt.Errorf("%w: username is required", shared.ErrValidation)
	}
	if args.Name == "" {
		return nil, fmt.Errorf("%w: name is required", shared.ErrValidation)
	}
	if args.Password == "" {
		return nil, fmt.Errorf("%w: password is required", shared.ErrValidation)
	}

	logging.Log.Debugf("UserService: Attempting to register user '%s'", args.Username)

	// Pre-check before hashing; the INSERT's unique constraint still catches
	// concurrent registrations of the same name.
	exists, err := s.Repo.UserExists(args.Username)
	if err != nil {
		logging.Log.Errorf("UserService: Failed to check username '%s': %v", args.Username, err)
		return nil, fmt.Errorf("failed to register user")
	}
	if exists {
		return nil, shared.ErrUserExists
	}

	createdUser, err := s.Repo.CreateUser(&args)
	if err != nil {
		if errors.Is(err, shared.ErrUserExists) {
			return nil, err // Pass the specific error up
		}
		logging.Log.Errorf("UserService: Failed to register user '%s': %v", args.Username, err)
		return nil, fmt.Errorf("failed to register user")
	}
	return createdUser, nil
}

// Authenticate verifies a username/password pair. Unknown usernames and
// wrong passwords collapse into the same shared.ErrInvalidCredentials so
// the response does not reveal which of the two failed.
func (s *userService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.Repo.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, shared.ErrUserNotFound) {
			return nil, shared.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, shared.ErrInvalidCredentials
	}

	return user, nil
}

// GetUserByUsername retrieves a user by their username.
func (s *userService) GetUserByUsername(username string) (*models.User, error) {
	return s.Repo.GetUserByUsername(username)
}

// GetUsers retrieves all users.
func (s *userService) GetUsers() ([]models.User, error) {
	return s.Repo.GetUsers()
}

// GetUserRecipes retrieves the recipes owned by one user.
func (s *userService) GetUserRecipes(username string) ([]models.Recipe, error) {
	if _, err := s.Repo.GetUserByUsername(username); err != nil {
		return nil, err
	}
	return s.Repo.GetRecipesByUser(username)
}
