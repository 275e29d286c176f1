// Package preset keeps named snapshots of parameter values in SQLite.
package preset

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	// SQLite driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"

	"github.com/justyntemme/vst3param/pkg/framework/debug"
	"github.com/justyntemme/vst3param/pkg/framework/param"
)

// ErrNotFound is returned for preset IDs that are not in the store.
var ErrNotFound = errors.New("preset: not found")

// Preset describes a stored snapshot.
type Preset struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Values    map[uint32]float64
}

const schema = `
CREATE TABLE IF NOT EXISTS preset (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS preset_value (
	preset_id TEXT NOT NULL REFERENCES preset(id) ON DELETE CASCADE,
	param_id  INTEGER NOT NULL,
	value     REAL NOT NULL,
	PRIMARY KEY (preset_id, param_id)
);
`

// Store is a preset database.
type Store struct {
	db  *sql.DB
	log *debug.Logger
	now func() time.Time
}

// Open opens or creates the preset database at path. ":memory:" gives a
// private in-memory store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open preset db: %w", err)
	}
	// one connection so ":memory:" is a single database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create preset schema: %w", err)
	}

	return &Store{
		db:  db,
		log: debug.Default().With("preset"),
		now: time.Now,
	}, nil
}

// SetLogger replaces the store's logger.
func (s *Store) SetLogger(l *debug.Logger) {
	s.log = l
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores the current raw value of every parameter in reg under name.
// When IDs repeat, the value stored is that of the parameter ByID resolves
// to, which is the one Apply writes back.
func (s *Store) Save(name string, reg *param.Registry) (Preset, error) {
	p := Preset{
		ID:        xid.New().String(),
		Name:      name,
		CreatedAt: s.now().UTC().Truncate(time.Second),
		Values:    make(map[uint32]float64),
	}
	for _, par := range reg.Indexed() {
		p.Values[par.Info().ID] = par.Value()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Preset{}, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO preset (id, name, created_at) VALUES (?, ?, ?)",
		p.ID, p.Name, p.CreatedAt.Unix(),
	); err != nil {
		return Preset{}, fmt.Errorf("insert preset %q: %w", name, err)
	}

	stmt, err := tx.Prepare("INSERT INTO preset_value (preset_id, param_id, value) VALUES (?, ?, ?)")
	if err != nil {
		return Preset{}, err
	}
	defer stmt.Close()

	for id, v := range p.Values {
		if _, err := stmt.Exec(p.ID, id, v); err != nil {
			return Preset{}, fmt.Errorf("insert value %d: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Preset{}, err
	}

	s.log.Info("saved preset %q (%s) with %d values", name, p.ID, len(p.Values))
	return p, nil
}

// List returns all presets, oldest first, without their values.
func (s *Store) List() ([]Preset, error) {
	rows, err := s.db.Query("SELECT id, name, created_at FROM preset ORDER BY created_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []Preset
	for rows.Next() {
		var (
			p       Preset
			created int64
		)
		if err := rows.Scan(&p.ID, &p.Name, &created); err != nil {
			return nil, err
		}
		p.CreatedAt = time.Unix(created, 0).UTC()
		presets = append(presets, p)
	}
	return presets, rows.Err()
}

// Get loads a preset with its values.
func (s *Store) Get(id string) (Preset, error) {
	var (
		p       Preset
		created int64
	)
	err := s.db.QueryRow("SELECT id, name, created_at FROM preset WHERE id = ?", id).
		Scan(&p.ID, &p.Name, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return Preset{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Preset{}, err
	}
	p.CreatedAt = time.Unix(created, 0).UTC()

	rows, err := s.db.Query("SELECT param_id, value FROM preset_value WHERE preset_id = ?", id)
	if err != nil {
		return Preset{}, err
	}
	defer rows.Close()

	p.Values = make(map[uint32]float64)
	for rows.Next() {
		var (
			pid uint32
			v   float64
		)
		if err := rows.Scan(&pid, &v); err != nil {
			return Preset{}, err
		}
		p.Values[pid] = v
	}
	return p, rows.Err()
}

// Apply sets every parameter in reg that the preset has a value for. It
// returns the number of parameters it touched.
func (s *Store) Apply(id string, reg *param.Registry) (int, error) {
	p, err := s.Get(id)
	if err != nil {
		return 0, err
	}

	applied := 0
	for pid, v := range p.Values {
		par := reg.ByID(pid)
		if par == nil {
			s.log.Debug("preset %s: no parameter %d", id, pid)
			continue
		}
		par.SetValue(v)
		applied++
	}
	return applied, nil
}

// Delete removes a preset.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec("DELETE FROM preset WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
