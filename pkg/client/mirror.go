package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Fixed mirror keys, matching what the browser build keeps in local storage.
const (
	dataMirrorFile = "notesync_data.json"
	userMirrorFile = "notesync_user.json"
)

// Mirror persists the cached document and the current user to local files so
// a client can come up offline with its last known state.
type Mirror struct {
	dir string
}

// NewMirror creates the mirror directory if needed.
func NewMirror(dir string) (*Mirror, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create mirror directory: %w", err)
	}
	return &Mirror{dir: dir}, nil
}

// SaveData overwrites the data mirror.
func (m *Mirror) SaveData(d Data) error {
	return m.write(dataMirrorFile, d)
}

// LoadData reads the last mirrored document.
func (m *Mirror) LoadData() (Data, error) {
	var d Data
	if err := m.read(dataMirrorFile, &d); err != nil {
		return Data{}, err
	}
	return d, nil
}

// SaveUser overwrites the current-user mirror.
func (m *Mirror) SaveUser(u User) error {
	return m.write(userMirrorFile, u)
}

// LoadUser reads the last mirrored current user.
func (m *Mirror) LoadUser() (User, error) {
	var u User
	if err := m.read(userMirrorFile, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// ClearUser removes the current-user mirror, e.g. on logout.
func (m *Mirror) ClearUser() error {
	err := os.Remove(filepath.Join(m.dir, userMirrorFile))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (m *Mirror) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize mirror %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(m.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write mirror %s: %w", name, err)
	}
	return nil
}

func (m *Mirror) read(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(m.dir, name))
	if err != nil {
		return fmt.Errorf("failed to read mirror %s: %w", name, err)
	}
	return json.Unmarshal(data, v)
}
