// filepath: internal/repository/user_repo.go
package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"recipehub/internal/logging"
	"recipehub/internal/models"
	"recipehub/internal/shared"
)

// UserCreateArgs is a struct used for creating users in the database layer.
// It is separate from models.User to include the plaintext password for creation.
type UserCreateArgs struct {
	Username string
	Name     string
	Password string
}

// GetUserByUsername retrieves a user by their username, using a cache for performance.
func (s *Repository) GetUserByUsername(username string) (*models.User, error) {
	cacheKey := fmt.Sprintf("user_by_name_%s", username)
	if user, found := s.Cache.Get(cacheKey); found {
		return user.(*models.User), nil
	}

	logging.Log.Debugf("GetUserByUsername: CACHE MISS for '%s'. Querying DB.", username)
	query := "SELECT username, name, password_hash FROM users WHERE username = ?"
	row := s.DB.QueryRow(query, username)

	var user models.User
	if err := row.Scan(&user.Username, &user.Name, &user.PasswordHash); err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.ErrUserNotFound
		}
		return nil, err
	}

	s.Cache.Set(cacheKey, &user, 5*time.Minute)
	return &user, nil
}

// UserExists checks if a user with the given username exists.
func (s *Repository) UserExists(username string) (bool, error) {
	_, err := s.GetUserByUsername(username)
	if err != nil {
		if err == shared.ErrUserNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CreateUser creates a new user. A username collision surfaces as
// shared.ErrUserExists; the existing row is never overwritten.
func (s *Repository) CreateUser(user *UserCreateArgs) (*models.User, error) {
	logging.Log.Debugf("CreateUser: Hashing password for '%s'", user.Username)
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	query := "INSERT INTO users (username, name, password_hash) VALUES (?, ?, ?)"
	if _, err := s.DB.Exec(query, user.Username, user.Name, string(hashedPassword)); err != nil {
		// Check for UNIQUE constraint violation
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.username") {
			return nil, shared.ErrUserExists
		}
		return nil, err
	}

	logging.Log.Debugf("CreateUser: User '%s' created", user.Username)

	return &models.User{
		Username:     user.Username,
		Name:         user.Name,
		PasswordHash: string(hashedPassword),
	}, nil
}

// GetUsers retrieves all users from the database.
func (s *Repository) GetUsers() ([]models.User, error) {
	query := "SELECT username, name, password_hash FROM users ORDER BY username"
	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.Username, &user.Name, &user.PasswordHash); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}
