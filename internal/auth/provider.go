package auth

import (
	"context"
	"errors"
	"time"

	"github.com/hmartins/secconsole/internal/api"
	"github.com/hmartins/secconsole/internal/apperr"
	"github.com/hmartins/secconsole/internal/model"
)

// MockProvider is the offline identity used in mock mode. Any non-empty
// email with a password of at least six characters logs in.
type MockProvider struct{}

func (MockProvider) Login(_ context.Context, email, password string) (model.User, error) {
	if email == "" || len(password) < 6 {
		return model.User{}, apperr.New(apperr.InvalidCredentials, "email or password is incorrect")
	}
	return model.User{ID: "mock-user-id", Email: email, Name: "Test User"}, nil
}

func (MockProvider) Register(_ context.Context, email, _ string) (model.User, error) {
	return model.User{ID: "new-user-id", Email: email, CreatedAt: time.Now()}, nil
}

func (MockProvider) Logout(context.Context) error { return nil }

// Session always misses: mock mode has no server-side session, so the gate
// rehydrates from its persisted file instead.
func (MockProvider) Session(context.Context) (model.User, error) {
	return model.User{}, errors.New("no mock session")
}

// APIProvider delegates to a live console API through the facade.
type APIProvider struct {
	Client *api.Client
}

func (p *APIProvider) Login(ctx context.Context, email, password string) (model.User, error) {
	resp, err := p.Client.Auth.Login(ctx, email, password)
	if err != nil {
		return model.User{}, err
	}
	return resp.User, nil
}

func (p *APIProvider) Register(ctx context.Context, email, password string) (model.User, error) {
	return p.Client.Auth.Register(ctx, email, password)
}

func (p *APIProvider) Logout(ctx context.Context) error {
	return p.Client.Auth.Logout(ctx)
}

func (p *APIProvider) Session(ctx context.Context) (model.User, error) {
	return p.Client.Auth.Profile(ctx)
}
