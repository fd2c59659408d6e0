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
	"context"
	"fmt"

	"github.com/nlpodyssey/openai-agents-go/agents"
)

// Agent is one LLM-backed stage worker: a function from a text prompt
// to generated text, optionally augmented with tool access.
type Agent interface {
	Name() string

	// Generate runs the agent to completion and returns its full
	// textual response.
	Generate(ctx context.Context, input string) (string, error)

	// GenerateStream runs the agent in streaming mode. The chunk
	// channel yields incremental text and is closed when the stream
	// ends; the error channel then yields the terminal streaming
	// error, if any. The stream is single-use.
	GenerateStream(ctx context.Context, input string) (<-chan string, <-chan error, error)
}

type llmAgent struct {
	agent *agents.Agent
}

// NewLLMAgent wraps a framework agent as a stage worker.
func NewLLMAgent(agent *agents.Agent) Agent {
	return &llmAgent{agent: agent}
}

func (a *llmAgent) Name() string {
	return a.agent.Name
}

func (a *llmAgent) Generate(ctx context.Context, input string) (string, error) {
	result, err := agents.Run(ctx, a.agent, input)
	if err != nil {
		return "", err
	}
	if result.FinalOutput == nil {
		return "", nil
	}
	return fmt.Sprintf("%s", result.FinalOutput), nil
}

func (a *llmAgent) GenerateStream(ctx context.Context, input string) (<-chan string, <-chan error, error) {
	events, errCh, err := agents.RunStreamedChan(ctx, a.agent, input)
	if err != nil {
		return nil, nil, err
	}

	chunks := make(chan string)
	go func() {
		defer close(chunks)
		for event := range events {
			e, ok := event.(agents.RawResponsesStreamEvent)
			if !ok || e.Data.Type != "response.output_text.delta" {
				continue
			}
			select {
			case chunks <- e.Data.Delta:
			case <-ctx.Done():
				return
			}
		}
	}()
	return chunks, errCh, nil
}
