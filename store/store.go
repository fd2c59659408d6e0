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

// Package store persists generated competitor reports keyed by topic.
//
// A store is scoped to one workflow session: two stores created with
// different session identifiers never see each other's reports, even
// when they share the same underlying database.
package store

import "context"

// TopicStore is the report cache contract used by the pipeline.
// Entries are created or overwritten by Set and never evicted.
type TopicStore interface {
	// Get returns the report stored for topic. The boolean reports
	// whether an entry exists; a missing entry is not an error.
	Get(ctx context.Context, topic string) (string, bool, error)

	// Set stores the report for topic, replacing any previous entry.
	Set(ctx context.Context, topic, report string) error
}
