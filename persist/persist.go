// Package persist stores sprite playback state in the platform save-data
// directory through gdata, one JSON snapshot per named slot. Loading restores
// the full aggregate; a sprite deserialized mid-animation resumes exactly
// where it left off. Custom effect transforms are not part of the snapshot
// and must be re-attached by the caller after a load.
package persist

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"

	"github.com/automoto/queuedsprite/sprite"
)

// Manager wraps a gdata manager scoped to one application name.
type Manager struct {
	m *gdata.Manager
}

// Open initializes save-data storage for the given application.
func Open(appName string) (*Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open save storage: %w", err)
	}
	return &Manager{m: m}, nil
}

// Save writes the sprite's full playback state under slot.
func Save[K comparable](m *Manager, slot string, s *sprite.Sprite[K]) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize sprite: %w", err)
	}
	if err := m.m.SaveItem(slot, data); err != nil {
		return fmt.Errorf("save slot %q: %w", slot, err)
	}
	return nil
}

// Load restores a sprite from slot. The boolean is false when the slot has
// never been saved; the sprite is left untouched in that case.
func Load[K comparable](m *Manager, slot string, s *sprite.Sprite[K]) (bool, error) {
	data, err := m.m.LoadItem(slot)
	if err != nil {
		return false, fmt.Errorf("load slot %q: %w", slot, err)
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, s); err != nil {
		return false, fmt.Errorf("decode slot %q: %w", slot, err)
	}
	return true, nil
}
