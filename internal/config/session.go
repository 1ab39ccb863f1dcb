package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// sessionFile is the persisted session credential. The Hub issues the
// token as a cookie on login; the CLI keeps it here between runs.
type sessionFile struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

func sessionPath() string {
	if v := os.Getenv("HUBCTL_CONFIG"); v != "" {
		return filepath.Join(filepath.Dir(v), "session.json")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "hubctl", "session.json")
}

// SaveSession persists the session token (0600).
func SaveSession(token string) error {
	path := sessionPath()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(sessionFile{Token: token, SavedAt: time.Now()}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// LoadSession returns the persisted session token, or "" when no session
// exists. HUBCTL_TOKEN overrides the file.
func LoadSession() string {
	if v := os.Getenv("HUBCTL_TOKEN"); v != "" {
		return v
	}
	data, err := os.ReadFile(sessionPath())
	if err != nil {
		return ""
	}
	var sf sessionFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return ""
	}
	return sf.Token
}

// ClearSession removes the persisted session.
func ClearSession() error {
	err := os.Remove(sessionPath())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
