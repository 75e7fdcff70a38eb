package api

import (
	"os"
	"strings"
	"sync"
)

// TokenStore keeps the bearer credential on disk so a session outlives the
// process, mirroring what the browser console keeps in local storage.
type TokenStore struct {
	mu   sync.Mutex
	path string
}

func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

func (t *TokenStore) Get() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	data, err := os.ReadFile(t.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (t *TokenStore) Set(token string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return os.WriteFile(t.path, []byte(token), 0600)
}

func (t *TokenStore) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	os.Remove(t.path)
}
