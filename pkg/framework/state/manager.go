// Package state saves and restores parameter values as the opaque blob a host
// stores with a project.
package state

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/justyntemme/vst3param/pkg/framework/debug"
	"github.com/justyntemme/vst3param/pkg/framework/param"
)

const (
	magic          = "VST3PM"
	currentVersion = uint32(1)
)

var (
	// ErrBadHeader is returned when a blob does not start with the state magic.
	ErrBadHeader = errors.New("state: invalid state format")
	// ErrNewerVersion is returned for blobs written by a newer format version.
	ErrNewerVersion = errors.New("state: unsupported state version")
)

// CustomState lets a plugin store data beyond parameter values. It is
// written after the parameters and read back only if it was present.
type CustomState interface {
	SaveState(w io.Writer) error
	LoadState(r io.Reader) error
}

// Manager handles plugin state saving and loading
type Manager struct {
	registry *param.Registry
	custom   CustomState
	log      *debug.Logger
}

// NewManager creates a state manager over registry.
func NewManager(registry *param.Registry) *Manager {
	return &Manager{
		registry: registry,
		log:      debug.Default().With("state"),
	}
}

// SetCustomState sets the extra state saved with the parameters.
func (m *Manager) SetCustomState(cs CustomState) {
	m.custom = cs
}

// SetLogger replaces the manager's logger.
func (m *Manager) SetLogger(l *debug.Logger) {
	m.log = l
}

// Save writes the raw value of every registered parameter, then the custom
// state if one is set. When IDs repeat, only the parameter that ByID
// resolves to is written, which is the one Load restores into.
func (m *Manager) Save(w io.Writer) error {
	params := m.registry.Indexed()

	if _, err := io.WriteString(w, magic); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, currentVersion); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(params))); err != nil {
		return err
	}

	for _, p := range params {
		entry := struct {
			ID    uint32
			Value float64
		}{p.Info().ID, p.Value()}
		if err := binary.Write(w, binary.LittleEndian, entry); err != nil {
			return fmt.Errorf("write parameter %d: %w", entry.ID, err)
		}
	}

	if m.custom == nil {
		return binary.Write(w, binary.LittleEndian, uint8(0))
	}
	if err := binary.Write(w, binary.LittleEndian, uint8(1)); err != nil {
		return err
	}
	if err := m.custom.SaveState(w); err != nil {
		return fmt.Errorf("write custom state: %w", err)
	}

	m.log.Debug("saved %d parameters", len(params))
	return nil
}

// Load restores parameter values with SetValue, so change handlers fire for
// values that differ. IDs that are no longer registered are skipped.
func (m *Manager) Load(r io.Reader) error {
	header := make([]byte, len(magic))
	if _, err := io.ReadFull(r, header); err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	if string(header) != magic {
		return ErrBadHeader
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return fmt.Errorf("read version: %w", err)
	}
	if version > currentVersion {
		return fmt.Errorf("%w: %d is newer than %d", ErrNewerVersion, version, currentVersion)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return fmt.Errorf("read parameter count: %w", err)
	}

	restored := 0
	for i := uint32(0); i < count; i++ {
		var entry struct {
			ID    uint32
			Value float64
		}
		if err := binary.Read(r, binary.LittleEndian, &entry); err != nil {
			return fmt.Errorf("read parameter %d of %d: %w", i+1, count, err)
		}

		p := m.registry.ByID(entry.ID)
		if p == nil {
			m.log.Debug("skipping unknown parameter %d", entry.ID)
			continue
		}
		p.SetValue(entry.Value)
		restored++
	}

	var hasCustom uint8
	if err := binary.Read(r, binary.LittleEndian, &hasCustom); err != nil {
		return fmt.Errorf("read custom marker: %w", err)
	}
	if hasCustom != 0 {
		if m.custom == nil {
			m.log.Warn("state carries custom data but no handler is set")
		} else if err := m.custom.LoadState(r); err != nil {
			return fmt.Errorf("read custom state: %w", err)
		}
	}

	m.log.Debug("restored %d of %d parameters", restored, count)
	return nil
}
