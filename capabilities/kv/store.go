// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kv

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store is the shell-side implementation of the kv capability: a SQLite
// table of key/value pairs, namespaced by key prefix so unrelated apps (or
// unrelated namespaces within one app) can share a database file without
// colliding.
type Store struct {
	db *sql.DB
}

// Open creates or attaches to a key-value store at dbPath. The schema is
// created automatically on first use.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("kv: open database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("kv: migrate: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		updated_at TEXT NOT NULL
	);`
	_, err := s.db.Exec(schema)
	return err
}

// Execute answers a single kv Operation, as performed by task.Effect.
// It is the function a shell binding calls between process_event/resolve
// to service kv effects; it never touches the kernel directly.
func (s *Store) Execute(op any) any {
	switch o := op.(type) {
	case Get:
		return s.get(o)
	case Set:
		return s.set(o)
	case Delete:
		return s.delete(o)
	case Exists:
		return s.exists(o)
	case ListKeys:
		return s.listKeys(o)
	default:
		panic(fmt.Sprintf("kv: unknown operation %T", op))
	}
}

func (s *Store) get(o Get) GetResponse {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv_store WHERE key = ?`, o.Key).Scan(&value)
	if err == sql.ErrNoRows {
		return GetResponse{}
	}
	if err != nil {
		return GetResponse{Err: ErrIO}
	}
	return GetResponse{Value: value}
}

func (s *Store) set(o Set) SetResponse {
	previous := s.get(Get{Key: o.Key})
	_, err := s.db.Exec(
		`INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		o.Key, o.Value, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return SetResponse{Err: ErrIO}
	}
	return SetResponse{Previous: previous.Value}
}

func (s *Store) delete(o Delete) SetResponse {
	previous := s.get(Get{Key: o.Key})
	if _, err := s.db.Exec(`DELETE FROM kv_store WHERE key = ?`, o.Key); err != nil {
		return SetResponse{Err: ErrIO}
	}
	return SetResponse{Previous: previous.Value}
}

func (s *Store) exists(o Exists) ExistsResponse {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM kv_store WHERE key = ?`, o.Key).Scan(&n); err != nil {
		return ExistsResponse{Err: ErrIO}
	}
	return ExistsResponse{Present: n > 0}
}

const listKeysPageSize = 100

func (s *Store) listKeys(o ListKeys) ListKeysResponse {
	rows, err := s.db.Query(
		`SELECT rowid, key FROM kv_store WHERE key LIKE ? AND rowid > ? ORDER BY rowid LIMIT ?`,
		o.Prefix+"%", o.Cursor, listKeysPageSize,
	)
	if err != nil {
		return ListKeysResponse{Err: ErrIO}
	}
	defer rows.Close()

	var keys []string
	cursor := o.Cursor
	for rows.Next() {
		var rowID uint64
		var key string
		if err := rows.Scan(&rowID, &key); err != nil {
			return ListKeysResponse{Err: ErrIO}
		}
		keys = append(keys, key)
		cursor = rowID
	}
	return ListKeysResponse{Keys: keys, Cursor: cursor}
}
