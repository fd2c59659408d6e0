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
	"sync"
)

// MemoryStore is an in-process TopicStore. Reports are lost when the
// process ends.
type MemoryStore struct {
	mu      sync.Mutex
	reports map[string]string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reports: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, topic string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	report, ok := s.reports[topic]
	return report, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, topic, report string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[topic] = report
	return nil
}
