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

package report

// RunEventType discriminates pipeline output events.
type RunEventType string

const (
	// RunEventContent carries one incremental chunk of report text.
	RunEventContent RunEventType = "run_content"

	// RunEventCompleted is the terminal event of a run. Its content is
	// the full report text, or a message explaining why no report was
	// produced.
	RunEventCompleted RunEventType = "run_completed"
)

// RunEvent is one output event of a pipeline run.
type RunEvent struct {
	Type    RunEventType
	Content string
}
