// Package cloudstore persists structured point clouds in a local sqlite
// database. Point data is stored as a gzip-compressed gob blob alongside
// the cloud's dimensions and header metadata, keyed by a generated UUID.
package cloudstore

import (
	"bytes"
	"compress/gzip"
	"database/sql"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/banshee-data/cloudgrid/internal/cloud"
)

// Store wraps the sqlite handle for cloud persistence.
type Store struct {
	*sql.DB
}

// CloudMeta describes a stored cloud without its point payload.
type CloudMeta struct {
	CloudID          string
	FrameID          string
	Seq              uint32
	StampUnixNanos   int64
	Width            uint32
	Height           uint32
	IsDense          bool
	CreatedUnixNanos int64
}

// Open opens (creating if needed) the database at path and applies any
// pending schema migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	s := &Store{db}
	if err := s.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// SaveCloud serialises the cloud and inserts it, returning the generated
// cloud ID.
func (s *Store) SaveCloud(c *cloud.Cloud) (string, error) {
	blob, err := serializePoints(c.Points)
	if err != nil {
		return "", fmt.Errorf("serialize points: %w", err)
	}

	id := uuid.New().String()
	stmt := `INSERT INTO clouds (cloud_id, frame_id, seq, stamp_unix_nanos, width, height, is_dense, points_blob, created_unix_nanos)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = s.Exec(stmt, id, c.Header.FrameID, c.Header.Seq, c.Header.Stamp,
		c.Width, c.Height, c.IsDense, blob, time.Now().UnixNano())
	if err != nil {
		return "", fmt.Errorf("insert cloud: %w", err)
	}
	return id, nil
}

// LoadCloud reads a stored cloud back by ID.
func (s *Store) LoadCloud(cloudID string) (*cloud.Cloud, error) {
	row := s.QueryRow(`SELECT frame_id, seq, stamp_unix_nanos, width, height, is_dense, points_blob
					   FROM clouds WHERE cloud_id = ?`, cloudID)

	var c cloud.Cloud
	var blob []byte
	if err := row.Scan(&c.Header.FrameID, &c.Header.Seq, &c.Header.Stamp,
		&c.Width, &c.Height, &c.IsDense, &blob); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("cloud %s not found", cloudID)
		}
		return nil, err
	}

	points, err := deserializePoints(blob)
	if err != nil {
		return nil, fmt.Errorf("deserialize points: %w", err)
	}
	c.Points = points
	return &c, nil
}

// ListClouds returns metadata for all stored clouds, newest first.
func (s *Store) ListClouds() ([]CloudMeta, error) {
	rows, err := s.Query(`SELECT cloud_id, frame_id, seq, stamp_unix_nanos, width, height, is_dense, created_unix_nanos
						  FROM clouds ORDER BY created_unix_nanos DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metas []CloudMeta
	for rows.Next() {
		var m CloudMeta
		if err := rows.Scan(&m.CloudID, &m.FrameID, &m.Seq, &m.StampUnixNanos,
			&m.Width, &m.Height, &m.IsDense, &m.CreatedUnixNanos); err != nil {
			return nil, err
		}
		metas = append(metas, m)
	}
	return metas, rows.Err()
}

// serializePoints compresses the point slice using gob encoding and gzip.
func serializePoints(points []cloud.Point) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	enc := gob.NewEncoder(gz)
	if err := enc.Encode(points); err != nil {
		gz.Close()
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// deserializePoints decompresses and decodes a point slice from a gob+gzip blob.
func deserializePoints(blob []byte) ([]cloud.Point, error) {
	if len(blob) == 0 {
		return nil, fmt.Errorf("empty points blob")
	}
	gz, err := gzip.NewReader(bytes.NewReader(blob))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gz.Close()

	var points []cloud.Point
	dec := gob.NewDecoder(gz)
	if err := dec.Decode(&points); err != nil {
		return nil, fmt.Errorf("failed to decode points: %w", err)
	}
	return points, nil
}
