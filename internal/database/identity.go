package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hmartins/secconsole/internal/apperr"
	"github.com/hmartins/secconsole/internal/model"
)

const sessionTTL = 24 * time.Hour

// Register stores a new identity. Registration does not authenticate; the
// caller still has to log in.
func (db *DB) Register(email, password string) (model.User, error) {
	if email == "" || len(password) < 6 {
		return model.User{}, apperr.New(apperr.InvalidCredentials, "email required and password must be at least 6 characters")
	}

	existing, err := db.GetUserByEmail(email)
	if err != nil {
		return model.User{}, err
	}
	if existing != nil {
		return model.User{}, apperr.New(apperr.InvalidCredentials, "email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("hashing password: %w", err)
	}

	u := &User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := db.CreateUser(u); err != nil {
		return model.User{}, err
	}
	return u.toModel(), nil
}

// Login verifies the password and issues a fresh session token.
func (db *DB) Login(email, password string) (model.AuthResponse, error) {
	u, err := db.GetUserByEmail(email)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if u == nil {
		return model.AuthResponse{}, apperr.New(apperr.InvalidCredentials, "email or password is incorrect")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return model.AuthResponse{}, apperr.New(apperr.InvalidCredentials, "email or password is incorrect")
	}

	session := &Session{
		Token:     uuid.NewString(),
		UserID:    u.ID,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := db.CreateSession(session); err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{Token: session.Token, User: u.toModel()}, nil
}

// UserForToken resolves a bearer token, returning Unauthorized for unknown
// or expired tokens.
func (db *DB) UserForToken(token string) (model.User, error) {
	u, err := db.GetSessionUser(token)
	if err != nil {
		return model.User{}, err
	}
	if u == nil {
		return model.User{}, apperr.New(apperr.Unauthorized, "invalid or expired session")
	}
	return u.toModel(), nil
}

func (u *User) toModel() model.User {
	return model.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}
