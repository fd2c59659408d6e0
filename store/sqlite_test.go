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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T, sessionID string, dbFile string) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(t.Context(), SQLiteStoreParams{
		SessionID:        sessionID,
		DBDataSourceName: dbFile,
	})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, s.Close()) })
	return s
}

func TestSQLiteStore_GetSet(t *testing.T) {
	ctx := t.Context()
	s := newTestSQLiteStore(t, "session-1", filepath.Join(t.TempDir(), "test.db"))

	_, ok, err := s.Get(ctx, "Acme Corp")
	require.NoError(t, err)
	assert.False(t, ok, "missing entry is not an error")

	require.NoError(t, s.Set(ctx, "Acme Corp", "first report"))
	report, ok, err := s.Get(ctx, "Acme Corp")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "first report", report)

	// Overwrite
	require.NoError(t, s.Set(ctx, "Acme Corp", "second report"))
	report, ok, err = s.Get(ctx, "Acme Corp")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second report", report)
}

func TestSQLiteStore_TopicsAreIndependent(t *testing.T) {
	ctx := t.Context()
	s := newTestSQLiteStore(t, "session-1", filepath.Join(t.TempDir(), "test.db"))

	require.NoError(t, s.Set(ctx, "Acme Corp", "acme report"))
	require.NoError(t, s.Set(ctx, "Globex", "globex report"))

	report, ok, err := s.Get(ctx, "Acme Corp")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "acme report", report)

	report, ok, err = s.Get(ctx, "Globex")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "globex report", report)
}

func TestSQLiteStore_SessionIsolation(t *testing.T) {
	ctx := t.Context()
	dbFile := filepath.Join(t.TempDir(), "test.db")
	first := newTestSQLiteStore(t, "session-1", dbFile)
	second := newTestSQLiteStore(t, "session-2", dbFile)

	require.NoError(t, first.Set(ctx, "Acme Corp", "first session report"))

	_, ok, err := second.Get(ctx, "Acme Corp")
	require.NoError(t, err)
	assert.False(t, ok, "sessions must not share reports")
}

func TestSQLiteStore_PersistsAcrossOpens(t *testing.T) {
	ctx := t.Context()
	dbFile := filepath.Join(t.TempDir(), "test.db")

	s, err := NewSQLiteStore(ctx, SQLiteStoreParams{
		SessionID:        "session-1",
		DBDataSourceName: dbFile,
	})
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "Acme Corp", "durable report"))
	require.NoError(t, s.Close())

	reopened := newTestSQLiteStore(t, "session-1", dbFile)
	report, ok, err := reopened.Get(ctx, "Acme Corp")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "durable report", report)
	assert.Equal(t, "session-1", reopened.SessionID())
}
