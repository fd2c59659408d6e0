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

import "github.com/nlpodyssey/openai-agents-go/agents"

// Writer agent brings together all prior artifacts and produces the
// final business report. It is the only agent run in streaming mode.

const writerInstructions = "Your task is to generate a comprehensive business report that " +
	"includes the following sections:\n" +
	"- A detailed SWOT analysis (Strengths, Weaknesses, Opportunities, Threats) for the " +
	"given company, based on the provided data.\n" +
	"- A comparison of the company's products or services with its competitors, highlighting " +
	"key differentiators, similarities, and potential competitive advantages.\n" +
	"- Summarize the competitor landscape, including notable strategies, market positioning, " +
	"and business features.\n" +
	"- Ensure that the report is structured, clear, and professional, with a concise " +
	"executive summary at the beginning.\n" +
	"- Use formal language and ensure that the data is presented in a logical and " +
	"easy-to-understand manner."

// NewWriterAgent builds the report-writer agent.
func NewWriterAgent(model string) *agents.Agent {
	return agents.New("ReportWriterAgent").
		WithInstructions(writerInstructions).
		WithModel(model)
}
