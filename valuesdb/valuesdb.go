// Package valuesdb persists estimation-state stores to SQLite. A saved
// store becomes one uuid-labelled snapshot row plus one row per keyed
// value, and loads back fully typed.
package valuesdb

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/banshee-data/slamkit/geom"
	"github.com/banshee-data/slamkit/key"
	"github.com/banshee-data/slamkit/values"
)

type DB struct {
	*sql.DB
}

// schema.sql defines the snapshot tables and their component layout.
//
//go:embed schema.sql
var schemaSQL string

// Open opens (or creates) a snapshot database at path and applies the
// schema.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, err
	}

	log.Println("initialized values snapshot schema")

	return &DB{db}, nil
}

// SnapshotInfo describes one stored snapshot. CreatedAt is the raw
// sqlite timestamp text.
type SnapshotInfo struct {
	UUID      string
	Label     string
	CreatedAt string
	Count     int
}

// SaveSnapshot stores every entry of v under a fresh snapshot and
// returns its uuid. Value types without a storage encoding are
// rejected.
func (db *DB) SaveSnapshot(label string, v *values.Values) (string, error) {
	tx, err := db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	id := uuid.NewString()
	res, err := tx.Exec(`INSERT INTO snapshots (uuid, label) VALUES (?, ?)`, id, label)
	if err != nil {
		return "", fmt.Errorf("failed to insert snapshot: %v", err)
	}
	snapshotID, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("failed to get snapshot ID: %v", err)
	}

	for _, k := range v.Keys() {
		kind, components, err := encodeEntry(v, k)
		if err != nil {
			return "", err
		}
		data, err := json.Marshal(components)
		if err != nil {
			return "", err
		}
		_, err = tx.Exec(
			`INSERT INTO snapshot_values (snapshot_id, key, kind, components) VALUES (?, ?, ?, ?)`,
			snapshotID, int64(k), kind, string(data),
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert value row: %v", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// LoadSnapshot rebuilds the store saved under the given uuid.
func (db *DB) LoadSnapshot(id string) (*values.Values, error) {
	var snapshotID int64
	err := db.QueryRow(`SELECT id FROM snapshots WHERE uuid = ?`, id).Scan(&snapshotID)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", id, err)
	}

	rows, err := db.Query(
		`SELECT key, kind, components FROM snapshot_values WHERE snapshot_id = ? ORDER BY key`,
		snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	v := values.New()
	for rows.Next() {
		var rawKey int64
		var kind, data string
		if err := rows.Scan(&rawKey, &kind, &data); err != nil {
			return nil, err
		}
		var components []float64
		if err := json.Unmarshal([]byte(data), &components); err != nil {
			return nil, fmt.Errorf("snapshot %s key %d: %v", id, rawKey, err)
		}
		val, err := decodeEntry(kind, components)
		if err != nil {
			return nil, fmt.Errorf("snapshot %s key %d: %w", id, rawKey, err)
		}
		if err := v.Insert(key.Key(uint64(rawKey)), val); err != nil {
			return nil, err
		}
	}
	return v, rows.Err()
}

// ListSnapshots returns all snapshots, newest first.
func (db *DB) ListSnapshots() ([]SnapshotInfo, error) {
	rows, err := db.Query(`
		SELECT s.uuid, COALESCE(s.label, ''), s.created_at, COUNT(sv.key)
		FROM snapshots s
		LEFT JOIN snapshot_values sv ON sv.snapshot_id = s.id
		GROUP BY s.id
		ORDER BY s.id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SnapshotInfo
	for rows.Next() {
		var info SnapshotInfo
		if err := rows.Scan(&info.UUID, &info.Label, &info.CreatedAt, &info.Count); err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

// Storage kind tags. Component layouts match the matrix extractors.
const (
	kindPoint2 = "point2"
	kindPoint3 = "point3"
	kindPose2  = "pose2"
	kindPose3  = "pose3"
)

func encodeEntry(v *values.Values, k key.Key) (string, []float64, error) {
	if p, err := values.At[geom.Point2](v, k); err == nil {
		return kindPoint2, []float64{p.X, p.Y}, nil
	}
	if p, err := values.At[geom.Point3](v, k); err == nil {
		return kindPoint3, []float64{p.X, p.Y, p.Z}, nil
	}
	if p, err := values.At[geom.Pose2](v, k); err == nil {
		return kindPose2, []float64{p.X, p.Y, p.Theta}, nil
	}
	if p, err := values.At[geom.Pose3](v, k); err == nil {
		components := make([]float64, 0, 12)
		r := p.Rotation()
		for i := 0; i < 3; i++ {
			row := r.Row(i)
			components = append(components, row[0], row[1], row[2])
		}
		t := p.Translation()
		components = append(components, t.X, t.Y, t.Z)
		return kindPose3, components, nil
	}
	return "", nil, fmt.Errorf("valuesdb: no storage encoding for key %v", k)
}

func decodeEntry(kind string, c []float64) (any, error) {
	switch kind {
	case kindPoint2:
		if len(c) != 2 {
			return nil, fmt.Errorf("valuesdb: point2 needs 2 components, got %d", len(c))
		}
		return geom.Point2{X: c[0], Y: c[1]}, nil
	case kindPoint3:
		if len(c) != 3 {
			return nil, fmt.Errorf("valuesdb: point3 needs 3 components, got %d", len(c))
		}
		return geom.Point3{X: c[0], Y: c[1], Z: c[2]}, nil
	case kindPose2:
		if len(c) != 3 {
			return nil, fmt.Errorf("valuesdb: pose2 needs 3 components, got %d", len(c))
		}
		return geom.Pose2{X: c[0], Y: c[1], Theta: c[2]}, nil
	case kindPose3:
		if len(c) != 12 {
			return nil, fmt.Errorf("valuesdb: pose3 needs 12 components, got %d", len(c))
		}
		return geom.Pose3{
			R: geom.NewRot3(c[0], c[1], c[2], c[3], c[4], c[5], c[6], c[7], c[8]),
			T: geom.Point3{X: c[9], Y: c[10], Z: c[11]},
		}, nil
	default:
		return nil, fmt.Errorf("valuesdb: unknown value kind %q", kind)
	}
}
