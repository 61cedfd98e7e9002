package db

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"
)

// Storage keeps normalized layouts keyed by a digest of the raw document.
type Storage interface {
	Get(digest string) ([]byte, bool, error)
	Put(digest string, normalized []byte) error
	Clear() (int64, error)
	Close()
}

type SQLiteStorage struct {
	db *sql.DB
}

func InitDBStorage(db *sql.DB) error {
	sqlStmt := `
	create table if not exists normalized(digest text primary key, payload blob not null, ts datetime);`

	_, err := db.Exec(sqlStmt)
	if err != nil {
		slog.Error("Could not create table", "error", err, "statement", sqlStmt)

		return fmt.Errorf("could not init storage: %w", err)
	}

	return nil
}

func NewStorageFromPath(path string) (*SQLiteStorage, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s as sqlite file: %w", path, err)
	}

	storage, err := NewStorageFromConnection(conn)
	if err != nil {
		conn.Close()

		return nil, err
	}

	return storage, nil
}

func NewStorageFromConnection(conn *sql.DB) (*SQLiteStorage, error) {
	// every connection to ":memory:" is a separate database
	conn.SetMaxOpenConns(1)

	if err := InitDBStorage(conn); err != nil {
		return nil, err
	}

	return &SQLiteStorage{conn}, nil
}

func (s *SQLiteStorage) Get(digest string) ([]byte, bool, error) {
	var payload []byte

	err := s.db.QueryRow(`select payload from normalized where digest = ?`, digest).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("could not read cached layout %s: %w", digest, err)
	}

	return payload, true, nil
}

func (s *SQLiteStorage) Put(digest string, normalized []byte) error {
	_, err := s.db.Exec(`insert or replace into normalized(digest, payload, ts)
	    values(?, ?, datetime('now', 'subsec'))`,
		digest, normalized)
	if err != nil {
		return fmt.Errorf("could not store cached layout %s: %w", digest, err)
	}

	return nil
}

// Clear removes all cached layouts and returns how many were dropped.
func (s *SQLiteStorage) Clear() (int64, error) {
	res, err := s.db.Exec(`delete from normalized`)
	if err != nil {
		return 0, fmt.Errorf("could not clear cache: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count cleared rows: %w", err)
	}

	return n, nil
}

func (s *SQLiteStorage) Close() {
	if err := s.db.Close(); err != nil {
		slog.Error("Could not close storage", "error", err)
	}
}
