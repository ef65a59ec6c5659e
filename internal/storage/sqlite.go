package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/hubedu/imagesearch/internal/models"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates a SQLite database at dbPath and
// initializes the schema. Parent directories are created if they do not
// exist.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS searches (
		id TEXT PRIMARY KEY,
		query TEXT NOT NULL,
		optimized_query TEXT,
		subject TEXT,
		stage TEXT NOT NULL,
		total_found INTEGER NOT NULL,
		returned INTEGER NOT NULL,
		sources_used TEXT,
		duration_ms INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_searches_created_at ON searches(created_at);
	CREATE INDEX IF NOT EXISTS idx_searches_query ON searches(query);
	`
	_, err := db.Exec(schema)
	return err
}

// RecordSearch inserts one search-log row. A missing ID or timestamp is
// filled in.
func (s *SQLiteStore) RecordSearch(ctx context.Context, rec *SearchRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	sourcesJSON, err := json.Marshal(rec.SourcesUsed)
	if err != nil {
		return fmt.Errorf("failed to marshal sources: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO searches (id, query, optimized_query, subject, stage, total_found, returned, sources_used, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Query, rec.OptimizedQuery, rec.Subject, string(rec.Stage),
		rec.TotalFound, rec.Returned, string(sourcesJSON),
		rec.Duration.Milliseconds(), rec.CreatedAt,
	)
	return err
}

// RecentSearches returns the most recent records, newest first.
func (s *SQLiteStore) RecentSearches(ctx context.Context, limit int) ([]*SearchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, query, optimized_query, subject, stage, total_found, returned, sources_used, duration_ms, created_at
		 FROM searches ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*SearchRecord
	for rows.Next() {
		var rec SearchRecord
		var stage string
		var sourcesJSON string
		var durationMS int64

		if err := rows.Scan(&rec.ID, &rec.Query, &rec.OptimizedQuery, &rec.Subject,
			&stage, &rec.TotalFound, &rec.Returned, &sourcesJSON, &durationMS, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Stage = models.Stage(stage)
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		if sourcesJSON != "" {
			if err := json.Unmarshal([]byte(sourcesJSON), &rec.SourcesUsed); err != nil {
				return nil, fmt.Errorf("failed to unmarshal sources: %w", err)
			}
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// CountSearches returns the total number of logged searches.
func (s *SQLiteStore) CountSearches(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM searches`).Scan(&count)
	return count, err
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
