package store

import "stride/internal/distances"

// ListCustomDistances returns the user-defined target distances,
// ordered by meter value.
func (db *DB) ListCustomDistances() ([]distances.TargetDistance, error) {
	rows, err := db.Query(`SELECT label, meters FROM custom_distances ORDER BY meters`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []distances.TargetDistance
	for rows.Next() {
		var d distances.TargetDistance
		if err := rows.Scan(&d.Label, &d.Meters); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// AddCustomDistance stores a user-defined target distance, replacing
// any existing distance with the same label.
func (db *DB) AddCustomDistance(d distances.TargetDistance) error {
	_, err := db.Exec(`
		INSERT INTO custom_distances (label, meters) VALUES (?, ?)
		ON CONFLICT(label) DO UPDATE SET meters = excluded.meters
	`, d.Label, d.Meters)
	return err
}

// RemoveCustomDistance deletes a user-defined target distance by label.
func (db *DB) RemoveCustomDistance(label string) error {
	_, err := db.Exec(`DELETE FROM custom_distances WHERE label = ?`, label)
	return err
}
