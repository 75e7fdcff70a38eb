package database

import (
	"database/sql"
	"fmt"
	"time"
)

// --- Users ---

func (db *DB) CreateUser(u *User) error {
	_, err := db.Exec(
		`INSERT INTO users (id, email, name, avatar, password_hash) VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Name, u.Avatar, u.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (db *DB) GetUserByEmail(email string) (*User, error) {
	u := &User{}
	err := db.QueryRow(
		`SELECT id, email, name, avatar, password_hash, created_at FROM users WHERE email = ?`, email,
	).Scan(&u.ID, &u.Email, &u.Name, &u.Avatar, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (db *DB) GetUser(id string) (*User, error) {
	u := &User{}
	err := db.QueryRow(
		`SELECT id, email, name, avatar, password_hash, created_at FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Email, &u.Name, &u.Avatar, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// --- Sessions ---

func (db *DB) CreateSession(s *Session) error {
	_, err := db.Exec(
		`INSERT INTO sessions (token, user_id, expires_at) VALUES (?, ?, ?)`,
		s.Token, s.UserID, s.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetSessionUser resolves a bearer token to its user, ignoring expired
// sessions.
func (db *DB) GetSessionUser(token string) (*User, error) {
	u := &User{}
	err := db.QueryRow(
		`SELECT u.id, u.email, u.name, u.avatar, u.password_hash, u.created_at
		 FROM sessions s JOIN users u ON s.user_id = u.id
		 WHERE s.token = ? AND s.expires_at > ?`, token, time.Now(),
	).Scan(&u.ID, &u.Email, &u.Name, &u.Avatar, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session user: %w", err)
	}
	return u, nil
}

func (db *DB) DeleteSession(token string) error {
	_, err := db.Exec(`DELETE FROM sessions WHERE token = ?`, token)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (db *DB) DeleteExpiredSessions() error {
	_, err := db.Exec(`DELETE FROM sessions WHERE expires_at <= ?`, time.Now())
	if err != nil {
		return fmt.Errorf("delete expired sessions: %w", err)
	}
	return nil
}
