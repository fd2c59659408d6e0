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

// Turns the raw search output into clean, structured insights the
// comparison and SWOT agents can work from.

const insightsInstructions = "Your task is to preprocess and analyze the competitor data " +
	"retrieved by the searcher agent. " +
	"Carefully read the data and apply natural language processing techniques to extract " +
	"key insights, such as features, product descriptions, and business strategies. " +
	"Ensure the extracted data is clean, tokenized, and ready for further analysis by the " +
	"feature comparison and SWOT agents. " +
	"Provide structured outputs that clearly outline key attributes of each competitor " +
	"for subsequent tasks."

// NewInsightsAgent builds the insight-extraction agent.
func NewInsightsAgent(model string) *agents.Agent {
	return agents.New("CompetitorInsightsAgent").
		WithInstructions(insightsInstructions).
		WithModel(model)
}
