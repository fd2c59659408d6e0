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
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePgConn is an in-memory PgConnInterface. It recognizes the report
// upsert by its argument shape and stores reports keyed by
// (session, topic); schema and session bookkeeping statements are
// accepted and ignored.
type fakePgConn struct {
	reports map[[2]string]string
	execs   int
	closed  bool
}

func newFakePgConn() *fakePgConn {
	return &fakePgConn{reports: make(map[[2]string]string)}
}

func (c *fakePgConn) QueryRow(_ context.Context, _ string, args ...any) PgRowInterface {
	key := [2]string{args[0].(string), args[1].(string)}
	report, ok := c.reports[key]
	return &fakePgRow{value: report, missing: !ok}
}

func (c *fakePgConn) Exec(_ context.Context, _ string, args ...any) (any, error) {
	c.execs++
	if len(args) == 3 {
		c.reports[[2]string{args[0].(string), args[1].(string)}] = args[2].(string)
	}
	return nil, nil
}

func (c *fakePgConn) Close(context.Context) error {
	c.closed = true
	return nil
}

type fakePgRow struct {
	value   string
	missing bool
}

func (r *fakePgRow) Scan(dest ...any) error {
	if r.missing {
		return pgx.ErrNoRows
	}
	*dest[0].(*string) = r.value
	return nil
}

func newTestPgStore(t *testing.T, sessionID string, conn PgConnInterface) *PgStore {
	t.Helper()
	s, err := NewPgStore(t.Context(), PgStoreParams{
		SessionID: sessionID,
		Conn:      conn,
	})
	require.NoError(t, err)
	return s
}

func TestPgStore_GetSet(t *testing.T) {
	ctx := t.Context()
	conn := newFakePgConn()
	s := newTestPgStore(t, "session-1", conn)

	_, ok, err := s.Get(ctx, "Acme Corp")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "Acme Corp", "first report"))
	report, ok, err := s.Get(ctx, "Acme Corp")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "first report", report)

	require.NoError(t, s.Set(ctx, "Acme Corp", "second report"))
	report, ok, err = s.Get(ctx, "Acme Corp")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second report", report)
}

func TestPgStore_SessionIsolation(t *testing.T) {
	ctx := t.Context()
	conn := newFakePgConn()
	first := newTestPgStore(t, "session-1", conn)
	second := newTestPgStore(t, "session-2", conn)

	require.NoError(t, first.Set(ctx, "Acme Corp", "first session report"))

	_, ok, err := second.Get(ctx, "Acme Corp")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPgStore_RequiresConnectionString(t *testing.T) {
	_, err := NewPgStore(t.Context(), PgStoreParams{SessionID: "session-1"})
	assert.Error(t, err)
}

func TestPgStore_Close(t *testing.T) {
	conn := newFakePgConn()
	s := newTestPgStore(t, "session-1", conn)

	require.NoError(t, s.Close(t.Context()))
	assert.True(t, conn.closed)
}
