package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Cameras table - remembers physical cameras across runs so the
		// game can reattach to the same device wherever the kernel mounts it,
		// with the capture mode it was registered at
		`CREATE TABLE IF NOT EXISTS cameras (
			identity TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			path TEXT NOT NULL,
			driver TEXT NOT NULL DEFAULT '',
			width INTEGER NOT NULL DEFAULT 0,
			height INTEGER NOT NULL DEFAULT 0,
			fps INTEGER NOT NULL DEFAULT 0,
			format TEXT NOT NULL DEFAULT '',
			first_seen DATETIME DEFAULT CURRENT_TIMESTAMP,
			last_seen DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Results table - one row per finished game
		`CREATE TABLE IF NOT EXISTS results (
			id TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			popped INTEGER NOT NULL,
			tickets INTEGER NOT NULL,
			duration REAL NOT NULL,
			played_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Indexes for better query performance
		`CREATE INDEX IF NOT EXISTS idx_cameras_last_seen ON cameras(last_seen)`,
		`CREATE INDEX IF NOT EXISTS idx_results_played_at ON results(played_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
