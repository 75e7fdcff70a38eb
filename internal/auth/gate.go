// Package auth holds the console's session state. A Gate is either
// anonymous or authenticated; it delegates credential checks to a Provider
// and persists the session so it survives a restart.
package auth

import (
	"context"
	"log/slog"
	"sync"

	"github.com/hmartins/secconsole/internal/model"
)

// Provider is the identity backend behind the gate: either the built-in
// mock identity or a real API.
type Provider interface {
	Login(ctx context.Context, email, password string) (model.User, error)
	Register(ctx context.Context, email, password string) (model.User, error)
	Logout(ctx context.Context) error
	// Session probes for an existing server-side session. Providers
	// without one return an error and the gate falls back to its own
	// persisted state.
	Session(ctx context.Context) (model.User, error)
}

type Gate struct {
	mu       sync.Mutex
	provider Provider
	sessions *SessionFile
	user     *model.User
}

func NewGate(provider Provider, sessionPath string) *Gate {
	return &Gate{
		provider: provider,
		sessions: NewSessionFile(sessionPath),
	}
}

// Login transitions to authenticated on success and persists the session.
func (g *Gate) Login(ctx context.Context, email, password string) (model.User, error) {
	user, err := g.provider.Login(ctx, email, password)
	if err != nil {
		return model.User{}, err
	}

	g.mu.Lock()
	g.user = &user
	g.mu.Unlock()

	if err := g.sessions.Save(user); err != nil {
		slog.Warn("persisting session failed", "error", err)
	}
	return user, nil
}

// Register creates a pending identity. It does not authenticate.
func (g *Gate) Register(ctx context.Context, email, password string) (model.User, error) {
	return g.provider.Register(ctx, email, password)
}

// Logout transitions to anonymous and clears the persisted session.
func (g *Gate) Logout(ctx context.Context) error {
	err := g.provider.Logout(ctx)

	g.mu.Lock()
	g.user = nil
	g.mu.Unlock()
	g.sessions.Clear()

	return err
}

// CheckAuth is the idempotent session probe. It returns the current user if
// one is set, otherwise tries the provider's session and then the persisted
// session file. It never fails outward; every failure degrades to nil.
func (g *Gate) CheckAuth(ctx context.Context) *model.User {
	g.mu.Lock()
	if g.user != nil {
		user := *g.user
		g.mu.Unlock()
		return &user
	}
	g.mu.Unlock()

	if user, err := g.provider.Session(ctx); err == nil {
		g.mu.Lock()
		g.user = &user
		g.mu.Unlock()
		return &user
	}

	user, err := g.sessions.Load()
	if err != nil {
		return nil
	}
	g.mu.Lock()
	g.user = &user
	g.mu.Unlock()
	return &user
}

// CurrentUser reports the session state without probing anything.
func (g *Gate) CurrentUser() *model.User {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.user == nil {
		return nil
	}
	user := *g.user
	return &user
}
