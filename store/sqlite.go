package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/wavescope/wavescope/model"
	_ "modernc.org/sqlite"
)

// SQLiteStore persists raw sample streams in a sqlite database and serves
// them back as per-kind range queries. One database holds one or more
// recordings; the store reads and writes the recording selected at open
// time (the most recent one, or a fresh one for an empty database).
type SQLiteStore struct {
	db        *sql.DB
	recording string
}

// OpenSQLite opens (creating if needed) a sample database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS recordings (
			recording_id TEXT PRIMARY KEY,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS samples (
			recording_id TEXT NOT NULL,
			entity TEXT NOT NULL,
			kind TEXT NOT NULL,
			time INTEGER NOT NULL,
			value REAL NOT NULL,
			FOREIGN KEY(recording_id) REFERENCES recordings(recording_id)
		);
		CREATE INDEX IF NOT EXISTS samples_by_series
			ON samples(recording_id, entity, kind, time);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}

	s := &SQLiteStore{db: db}

	row := db.QueryRow("SELECT recording_id FROM recordings ORDER BY created_at DESC, recording_id DESC LIMIT 1")
	switch err := row.Scan(&s.recording); err {
	case nil:
	case sql.ErrNoRows:
		s.recording = uuid.NewString()
		if _, err := db.Exec("INSERT INTO recordings (recording_id) VALUES (?)", s.recording); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: create recording: %w", err)
		}
	default:
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// RecordingID returns the id of the recording this store reads and writes.
func (s *SQLiteStore) RecordingID() string {
	return s.recording
}

// RecordScalar appends one analog value to the current recording.
func (s *SQLiteStore) RecordScalar(entity model.EntityPath, t model.Time, value float64) error {
	_, err := s.db.Exec(
		"INSERT INTO samples (recording_id, entity, kind, time, value) VALUES (?, ?, ?, ?, ?)",
		s.recording, string(entity), string(KindAnalog), t, value)
	return err
}

// RecordClass appends one class id to the given stream kind.
func (s *SQLiteStore) RecordClass(entity model.EntityPath, kind Kind, t model.Time, class model.ClassID) error {
	_, err := s.db.Exec(
		"INSERT INTO samples (recording_id, entity, kind, time, value) VALUES (?, ?, ?, ?, ?)",
		s.recording, string(entity), string(kind), t, int64(class))
	return err
}

// Entities lists every entity with samples in the current recording.
func (s *SQLiteStore) Entities() ([]model.EntityPath, error) {
	rows, err := s.db.Query(
		"SELECT DISTINCT entity FROM samples WHERE recording_id = ? ORDER BY entity",
		s.recording)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.EntityPath
	for rows.Next() {
		var e string
		if err := rows.Scan(&e); err != nil {
			return nil, err
		}
		out = append(out, model.EntityPath(e))
	}
	return out, rows.Err()
}

// Scalars returns the analog stream of an entity. Rows sharing a timestamp
// fold into one value bag, preserving the malformed-sample signal for the
// engine to drop.
func (s *SQLiteStore) Scalars(entity model.EntityPath) ([]Sample, error) {
	rows, err := s.db.Query(
		"SELECT time, value FROM samples WHERE recording_id = ? AND entity = ? AND kind = ? ORDER BY time",
		s.recording, string(entity), string(KindAnalog))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Sample
	for rows.Next() {
		var t model.Time
		var v float64
		if err := rows.Scan(&t, &v); err != nil {
			return nil, err
		}
		if n := len(out); n > 0 && out[n-1].Time == t {
			out[n-1].Values = append(out[n-1].Values, v)
			continue
		}
		out = append(out, Sample{Time: t, Values: []float64{v}})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNoData
	}
	return out, nil
}

// Classes returns one class-valued stream of an entity.
func (s *SQLiteStore) Classes(entity model.EntityPath, kind Kind) ([]ClassSample, error) {
	rows, err := s.db.Query(
		"SELECT time, value FROM samples WHERE recording_id = ? AND entity = ? AND kind = ? ORDER BY time",
		s.recording, string(entity), string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ClassSample
	for rows.Next() {
		var t model.Time
		var c int64
		if err := rows.Scan(&t, &c); err != nil {
			return nil, err
		}
		if n := len(out); n > 0 && out[n-1].Time == t {
			out[n-1].Classes = append(out[n-1].Classes, model.ClassID(c))
			continue
		}
		out = append(out, ClassSample{Time: t, Classes: []model.ClassID{model.ClassID(c)}})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNoData
	}
	return out, nil
}
