package store

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Camera is a remembered capture device. Identity is the USB serial when
// the hardware reports one, the bus position otherwise. Width, Height, FPS
// and Format hold the capture mode stored when the camera was first
// registered; a zero width means no stored mode.
type Camera struct {
	Identity  string
	Name      string
	Path      string
	Driver    string
	Width     int
	Height    int
	FPS       int
	Format    string
	FirstSeen time.Time
	LastSeen  time.Time
}

// CameraRepository provides operations on remembered cameras.
type CameraRepository struct {
	db *sql.DB
}

// Cameras returns the camera repository for this store.
func (s *Store) Cameras() *CameraRepository {
	return &CameraRepository{db: s.db}
}

// Upsert records a camera sighting. A new identity is inserted with its
// capture mode; a known one has its name, path, driver and last-seen time
// refreshed while the stored mode is kept.
func (r *CameraRepository) Upsert(c *Camera) error {
	now := time.Now()
	if c.FirstSeen.IsZero() {
		c.FirstSeen = now
	}
	c.LastSeen = now

	_, err := r.db.Exec(
		`INSERT INTO cameras (identity, name, path, driver, width, height, fps, format, first_seen, last_seen)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(identity) DO UPDATE SET
			name = excluded.name,
			path = excluded.path,
			driver = excluded.driver,
			last_seen = excluded.last_seen`,
		c.Identity, c.Name, c.Path, c.Driver, c.Width, c.Height, c.FPS, c.Format, c.FirstSeen, c.LastSeen,
	)
	return err
}

// GetByIdentity retrieves a camera by its identity key.
func (r *CameraRepository) GetByIdentity(identity string) (*Camera, error) {
	c := &Camera{}

	err := r.db.QueryRow(
		`SELECT identity, name, path, driver, width, height, fps, format, first_seen, last_seen
		 FROM cameras WHERE identity = ?`,
		identity,
	).Scan(&c.Identity, &c.Name, &c.Path, &c.Driver, &c.Width, &c.Height, &c.FPS, &c.Format, &c.FirstSeen, &c.LastSeen)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return c, nil
}

// List retrieves all remembered cameras, most recently seen first.
func (r *CameraRepository) List() ([]*Camera, error) {
	rows, err := r.db.Query(
		`SELECT identity, name, path, driver, width, height, fps, format, first_seen, last_seen
		 FROM cameras ORDER BY last_seen DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cameras []*Camera
	for rows.Next() {
		c := &Camera{}
		if err := rows.Scan(&c.Identity, &c.Name, &c.Path, &c.Driver, &c.Width, &c.Height, &c.FPS, &c.Format, &c.FirstSeen, &c.LastSeen); err != nil {
			return nil, err
		}
		cameras = append(cameras, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cameras, nil
}

// Delete removes a camera from the registry by its identity key.
func (r *CameraRepository) Delete(identity string) error {
	result, err := r.db.Exec(`DELETE FROM cameras WHERE identity = ?`, identity)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
