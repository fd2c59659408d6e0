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

const swotInstructions = "Your task is to generate a detailed SWOT analysis for the startup " +
	"and its top 5 competitors. " +
	"Carefully review the data provided by the searcher and insights agents and assess each " +
	"competitor's strengths, weaknesses, opportunities, and threats. " +
	"Synthesize the SWOT analysis into actionable insights, focusing on how the startup can " +
	"position itself in the market. " +
	"Ensure that the SWOT analysis is concise, well-structured, and highlights key strategic " +
	"recommendations for the startup."

// NewSWOTAgent builds the SWOT-analysis agent.
func NewSWOTAgent(model string) *agents.Agent {
	return agents.New("SWOTAnalysisAgent").
		WithInstructions(swotInstructions).
		WithModel(model)
}
