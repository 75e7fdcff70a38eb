package auth

import (
	"encoding/json"
	"os"

	"github.com/hmartins/secconsole/internal/model"
)

// SessionFile persists the authenticated user to disk so a restarted
// console picks the session back up without prompting for credentials.
type SessionFile struct {
	path string
}

func NewSessionFile(path string) *SessionFile {
	return &SessionFile{path: path}
}

func (s *SessionFile) Save(user model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *SessionFile) Load() (model.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// Clear removes the persisted session. A missing file is not an error.
func (s *SessionFile) Clear() {
	_ = os.Remove(s.path)
}
