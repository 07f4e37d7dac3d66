// Package storage persists named scenes in SQLite for the rendering
// service. The routing core itself never touches storage.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"tether/diagram"
)

const schema = `
CREATE TABLE IF NOT EXISTS scenes (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL DEFAULT '',
    data       TEXT NOT NULL,
    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`

// Store wraps the scenes table.
type Store struct {
	db *sql.DB
}

// New creates a store on an open database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Init applies the schema.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// SceneInfo is a listing entry.
type SceneInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// Save stores a scene under a fresh UUID and returns it.
func (s *Store) Save(ctx context.Context, scene *diagram.Scene) (string, error) {
	data, err := json.Marshal(scene)
	if err != nil {
		return "", fmt.Errorf("marshal scene: %w", err)
	}
	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx, `
        INSERT INTO scenes (id, name, data) VALUES (?, ?, ?)
    `, id, scene.Metadata.Name, string(data))
	if err != nil {
		return "", fmt.Errorf("insert scene: %w", err)
	}
	return id, nil
}

// Get loads a scene by ID.
func (s *Store) Get(ctx context.Context, id string) (*diagram.Scene, error) {
	row := s.db.QueryRowContext(ctx, `SELECT data FROM scenes WHERE id = ?`, id)

	var data string
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("scene %s not found", id)
		}
		return nil, err
	}

	var scene diagram.Scene
	if err := json.Unmarshal([]byte(data), &scene); err != nil {
		return nil, fmt.Errorf("unmarshal scene: %w", err)
	}
	return &scene, nil
}

// List returns all stored scenes, newest first.
func (s *Store) List(ctx context.Context) ([]SceneInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, name, created_at FROM scenes ORDER BY created_at DESC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infos []SceneInfo
	for rows.Next() {
		var info SceneInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.CreatedAt); err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Delete removes a scene by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM scenes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("scene %s not found", id)
	}
	return nil
}

// Open opens the SQLite database at the given path, creating the parent
// directory when needed.
func Open(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
