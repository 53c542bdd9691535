// filepath: internal/repository/token_repo.go
package repository

import (
	"database/sql"
	"time"

	"recipehub/internal/logging"
	"recipehub/internal/shared"
)

// StoreRefreshToken persists the hash of an issued refresh token.
func (s *Repository) StoreRefreshToken(username string, tokenHash string, expiry time.Time) error {
	query := "INSERT INTO refresh_tokens (token_hash, username, expiry) VALUES (?, ?, ?)"
	_, err := s.DB.Exec(query, tokenHash, username, expiry)
	return err
}

// ValidateRefreshToken checks a refresh token hash against the allow list
// and returns the owning username. Expired rows are treated as missing and
// cleaned up opportunistically.
func (s *Repository) ValidateRefreshToken(tokenHash string) (string, error) {
	query := "SELECT username, expiry FROM refresh_tokens WHERE token_hash = ?"
	row := s.DB.QueryRow(query, tokenHash)

	var username string
	var expiry time.Time
	if err := row.Scan(&username, &expiry); err != nil {
		if err == sql.ErrNoRows {
			return "", shared.ErrTokenNotFound
		}
		return "", err
	}

	if time.Now().After(expiry) {
		if err := s.DeleteRefreshToken(tokenHash); err != nil {
			logging.Log.Warnf("ValidateRefreshToken: failed to delete expired token: %v", err)
		}
		return "", shared.ErrTokenNotFound
	}

	return username, nil
}

// DeleteRefreshToken revokes a single refresh token.
func (s *Repository) DeleteRefreshToken(tokenHash string) error {
	_, err := s.DB.Exec("DELETE FROM refresh_tokens WHERE token_hash = ?", tokenHash)
	return err
}

// DeleteAllRefreshTokensForUser revokes every session of one user.
func (s *Repository) DeleteAllRefreshTokensForUser(username string) error {
	_, err := s.DB.Exec("DELETE FROM refresh_tokens WHERE username = ?", username)
	return err
}
