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

package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewHasComponent(t *testing.T) {
	var buf bytes.Buffer
	Init(false, &buf)

	New("pipeline").Info("hello")

	output := buf.String()
	if !strings.Contains(output, "component=pipeline") {
		t.Errorf("expected component attribute, got: %q", output)
	}
	if !strings.Contains(output, "msg=hello") {
		t.Errorf("expected message, got: %q", output)
	}
}

func TestInitLevels(t *testing.T) {
	var buf bytes.Buffer
	Init(false, &buf)
	New("pipeline").Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug output should be suppressed by default, got: %q", buf.String())
	}

	Init(true, &buf)
	New("pipeline").Debug("visible")
	if !strings.Contains(buf.String(), "msg=visible") {
		t.Errorf("expected debug output in verbose mode, got: %q", buf.String())
	}
}
