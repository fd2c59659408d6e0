// Copyright 2026 The reportgen Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package store

import (
	"cmp"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore is a SQLite-based implementation of TopicStore.
//
// By default it uses an in-memory database that is lost when the
// process ends. For persistent storage, provide a file path.
type SQLiteStore struct {
	sessionID    string
	dbDSN        string
	sessionTable string
	reportsTable string
	db           *sql.DB
	mu           sync.Mutex
}

type SQLiteStoreParams struct {
	// Unique identifier for the workflow session
	SessionID string

	// Optional database data source name.
	// Defaults to an in-memory database.
	DBDataSourceName string

	// Optional name of the table to store session metadata.
	// Defaults to "workflow_sessions".
	SessionTable string

	// Optional name of the table to store report data.
	// Defaults to "workflow_reports".
	ReportsTable string
}

// NewSQLiteStore opens the database and bootstraps the schema.
func NewSQLiteStore(ctx context.Context, params SQLiteStoreParams) (_ *SQLiteStore, err error) {
	s := &SQLiteStore{
		sessionID:    params.SessionID,
		dbDSN:        cmp.Or(params.DBDataSourceName, "file::memory:?cache=shared"),
		sessionTable: cmp.Or(params.SessionTable, "workflow_sessions"),
		reportsTable: cmp.Or(params.ReportsTable, "workflow_reports"),
	}

	defer func() {
		if err != nil {
			if e := s.Close(); e != nil {
				err = errors.Join(err, e)
			}
		}
	}()

	s.db, err = sql.Open("sqlite3", s.dbDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite3 database: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `PRAGMA journal_mode=WAL`)
	if err != nil {
		return nil, fmt.Errorf("failed to set journal mode: %w", err)
	}

	err = s.initDB(ctx)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// SessionID returns the session identifier this store is scoped to.
func (s *SQLiteStore) SessionID() string {
	return s.sessionID
}

func (s *SQLiteStore) Get(ctx context.Context, topic string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var report string
	err := s.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT report_text FROM "%s"
		WHERE session_id = ? AND topic = ?
	`, s.reportsTable), s.sessionID, topic).Scan(&report)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("error reading report: %w", err)
	}
	return report, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, topic, report string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ensure session exists
	_, err := s.db.ExecContext(
		ctx,
		fmt.Sprintf(`INSERT OR IGNORE INTO "%s" (session_id) VALUES (?)`, s.sessionTable),
		s.sessionID,
	)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO "%s" (session_id, topic, report_text) VALUES (?, ?, ?)
		ON CONFLICT (session_id, topic) DO UPDATE SET
			report_text = excluded.report_text,
			updated_at = CURRENT_TIMESTAMP
	`, s.reportsTable), s.sessionID, topic, report)
	if err != nil {
		return fmt.Errorf("error inserting report: %w", err)
	}

	// Update session timestamp
	_, err = s.db.ExecContext(
		ctx,
		fmt.Sprintf(`UPDATE "%s" SET updated_at = CURRENT_TIMESTAMP WHERE session_id = ?`, s.sessionTable),
		s.sessionID,
	)
	if err != nil {
		return fmt.Errorf("error updating session timestamp: %w", err)
	}

	return nil
}

// Initialize the database schema.
func (s *SQLiteStore) initDB(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS "%s" (
			session_id TEXT PRIMARY KEY,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`, s.sessionTable))
	if err != nil {
		return fmt.Errorf("error creating session table: %w", err)
	}

	_, err = s.db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS "%s" (
			session_id TEXT NOT NULL,
			topic TEXT NOT NULL,
			report_text TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (session_id, topic),
			FOREIGN KEY (session_id) REFERENCES "%s" (session_id) ON DELETE CASCADE
		)
	`, s.reportsTable, s.sessionTable))
	if err != nil {
		return fmt.Errorf("error creating reports table: %w", err)
	}

	return nil
}

// Close the database connection.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
