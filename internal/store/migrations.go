package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Authentication (singleton row)
		`CREATE TABLE IF NOT EXISTS auth (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			athlete_id INTEGER NOT NULL,
			access_token TEXT NOT NULL,
			refresh_token TEXT NOT NULL,
			expires_at INTEGER NOT NULL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		// Activity summaries
		`CREATE TABLE IF NOT EXISTS activities (
			id INTEGER PRIMARY KEY,
			athlete_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			start_date TEXT NOT NULL,
			timezone TEXT,
			distance REAL NOT NULL,
			moving_time INTEGER NOT NULL,
			elapsed_time INTEGER NOT NULL,
			total_elevation_gain REAL,
			average_heartrate REAL,
			average_cadence REAL,
			average_power REAL,
			samples_synced INTEGER DEFAULT 0,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_activities_start_date ON activities(start_date)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_type ON activities(type)`,

		// Raw per-activity sample streams
		`CREATE TABLE IF NOT EXISTS samples (
			activity_id INTEGER NOT NULL,
			time_offset INTEGER NOT NULL,
			distance REAL,
			latlng_lat REAL,
			latlng_lng REAL,
			altitude REAL,
			heartrate INTEGER,
			cadence INTEGER,
			power INTEGER,
			PRIMARY KEY (activity_id, time_offset),
			FOREIGN KEY (activity_id) REFERENCES activities(id) ON DELETE CASCADE
		)`,

		// Best-effort segments, one per (activity, target distance)
		`CREATE TABLE IF NOT EXISTS best_efforts (
			id INTEGER PRIMARY KEY,
			activity_id INTEGER NOT NULL,
			distance_label TEXT NOT NULL,
			target_meters REAL NOT NULL,
			duration_seconds INTEGER NOT NULL,
			covered_meters REAL NOT NULL,
			start_index INTEGER NOT NULL,
			end_index INTEGER NOT NULL,
			start_offset INTEGER NOT NULL,
			end_offset INTEGER NOT NULL,
			start_lat REAL,
			start_lng REAL,
			end_lat REAL,
			end_lng REAL,
			achieved_at TEXT NOT NULL,
			UNIQUE (activity_id, distance_label),
			FOREIGN KEY (activity_id) REFERENCES activities(id) ON DELETE CASCADE
		)`,

		`CREATE INDEX IF NOT EXISTS idx_best_efforts_label ON best_efforts(distance_label)`,
		`CREATE INDEX IF NOT EXISTS idx_best_efforts_achieved ON best_efforts(achieved_at)`,

		// User-defined target distances
		`CREATE TABLE IF NOT EXISTS custom_distances (
			label TEXT PRIMARY KEY,
			meters REAL NOT NULL
		)`,

		// Sync state (key-value store for sync tracking)
		`CREATE TABLE IF NOT EXISTS sync_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
