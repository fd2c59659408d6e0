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

import (
	"github.com/nlpodyssey/openai-agents-go/agents"
	"github.com/nlpodyssey/openai-agents-go/modelsettings"
)

// Given a topic, use web search to aggregate competitor data from
// multiple sources into one dataset for the downstream agents.

const searchInstructions = "Your task is to retrieve competitor data from multiple sources, " +
	"including Crunchbase, LinkedIn, Reddit, Google, and G2. " +
	"Aggregate the top 5 competitors based on a given startup website or product query. " +
	"Ensure the data is normalized and consistent across sources, resolving any missing " +
	"or conflicting data. " +
	"Provide a comprehensive summary of each competitor, including key features, market " +
	"positioning, and recent activities. " +
	"Your output should be a well-structured dataset of competitors that can be used by " +
	"the other agents for further processing."

// NewSearchAgent builds the web-search-augmented searcher.
func NewSearchAgent(model string) *agents.Agent {
	return agents.New("CompetitorSearchAgent").
		WithInstructions(searchInstructions).
		WithTools(agents.WebSearchTool{}).
		WithModelSettings(modelsettings.ModelSettings{
			ToolChoice: modelsettings.ToolChoiceString("required"),
		}).
		WithModel(model)
}
