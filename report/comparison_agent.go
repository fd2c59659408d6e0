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

// Compares the startup's offering against the retrieved competitors.
// The example output format is folded into the instructions; the
// response stays opaque text as far as the pipeline is concerned.

const comparisonInstructions = "Your task is to compare the features of the startup's " +
	"product/service with the top 5 competitors identified by the searcher agent. " +
	"Carefully analyze the data and highlight similarities and differences in product " +
	"features, pricing, and key differentiators. " +
	"Generate a structured feature comparison summary that highlights common features, " +
	"unique selling points, and potential areas of improvement. " +
	"This comparison will feed into the final competitor analysis report and help inform " +
	"strategic recommendations."

const comparisonOutputFormat = `An engaging, informative, and well-structured article in the following format:
[
    {
        "text": "Competitor A",
        "keywords": ["innovation", "expensive", "user-friendly"],
        "entities": [["Company X", "ORG"], ["New York", "GPE"], ["global growth", "ORG"]]
    },
    {
        "text": "Competitor B",
        "keywords": ["outdated", "scalable", "market leader"],
        "entities": [["Company Y", "ORG"], ["California", "GPE"], ["rising competition", "ORG"]]
    }
]`

// NewComparisonAgent builds the feature-comparison agent.
func NewComparisonAgent(model string) *agents.Agent {
	return agents.New("FeatureComparisonAgent").
		WithInstructions(comparisonInstructions + "\n\nExpected output:\n" + comparisonOutputFormat).
		WithModel(model)
}
