package database

import (
	"testing"
	"time"

	"github.com/hmartins/secconsole/internal/apperr"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRegister(t *testing.T) {
	db := newTestDB(t)

	user, err := db.Register("a@b.com", "123456")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == "" || user.Email != "a@b.com" {
		t.Errorf("user = %+v", user)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"duplicate email", "a@b.com", "123456"},
		{"empty email", "", "123456"},
		{"short password", "c@d.com", "12345"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := db.Register(tt.email, tt.password); apperr.KindOf(err) != apperr.InvalidCredentials {
				t.Errorf("got %v, want invalid credentials", err)
			}
		})
	}
}

func TestLoginAndSessions(t *testing.T) {
	db := newTestDB(t)

	if _, err := db.Register("a@b.com", "123456"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := db.Login("a@b.com", "wrong1"); apperr.KindOf(err) != apperr.InvalidCredentials {
		t.Errorf("wrong password: %v, want invalid credentials", err)
	}
	if _, err := db.Login("nobody@b.com", "123456"); apperr.KindOf(err) != apperr.InvalidCredentials {
		t.Errorf("unknown email: %v, want invalid credentials", err)
	}

	resp, err := db.Login("a@b.com", "123456")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("login issued no token")
	}

	user, err := db.UserForToken(resp.Token)
	if err != nil {
		t.Fatalf("UserForToken: %v", err)
	}
	if user.Email != "a@b.com" {
		t.Errorf("user = %+v", user)
	}

	if _, err := db.UserForToken("bogus"); apperr.KindOf(err) != apperr.Unauthorized {
		t.Errorf("bogus token: %v, want unauthorized", err)
	}

	if err := db.DeleteSession(resp.Token); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	if _, err := db.UserForToken(resp.Token); apperr.KindOf(err) != apperr.Unauthorized {
		t.Errorf("deleted session: %v, want unauthorized", err)
	}
}

func TestExpiredSessionRejected(t *testing.T) {
	db := newTestDB(t)

	user, err := db.Register("a@b.com", "123456")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	session := &Session{
		Token:     "expired-token",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	if err := db.CreateSession(session); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	if _, err := db.UserForToken(session.Token); apperr.KindOf(err) != apperr.Unauthorized {
		t.Errorf("expired session: %v, want unauthorized", err)
	}
}

func TestDeleteExpiredSessions(t *testing.T) {
	db := newTestDB(t)

	user, err := db.Register("a@b.com", "123456")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	stale := &Session{Token: "stale", UserID: user.ID, ExpiresAt: time.Now().Add(-time.Hour)}
	fresh := &Session{Token: "fresh", UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}
	for _, s := range []*Session{stale, fresh} {
		if err := db.CreateSession(s); err != nil {
			t.Fatalf("CreateSession: %v", err)
		}
	}

	if err := db.DeleteExpiredSessions(); err != nil {
		t.Fatalf("DeleteExpiredSessions: %v", err)
	}
	if _, err := db.UserForToken("fresh"); err != nil {
		t.Errorf("fresh session should survive: %v", err)
	}
	if u, _ := db.GetSessionUser("stale"); u != nil {
		t.Error("stale session should be gone")
	}
}
