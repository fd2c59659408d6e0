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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetSet(t *testing.T) {
	ctx := t.Context()
	s := NewMemoryStore()

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
