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

// Package report drives a five-agent pipeline that researches a
// company, compares it to competitors, produces a SWOT analysis, and
// assembles a business report.
//
// Stages run strictly in sequence: search, insight extraction, feature
// comparison, SWOT analysis, report writing. A topic cache is checked
// before the first stage; a hit short-circuits the whole run.
package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"reportgen/store"
)

// DefaultModel is used when Config.Model is empty.
const DefaultModel = "gpt-4o"

// maxSearchAttempts bounds the search stage's retry loop.
const maxSearchAttempts = 3

// Config carries the settings needed to build a Generator.
type Config struct {
	// Model is the model ID used by every agent. Defaults to DefaultModel.
	Model string

	// Store is the topic cache. Defaults to an in-memory store.
	Store store.TopicStore

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Generator is the report pipeline. The zero value is not usable;
// construct it with New, or populate every field when substituting
// custom agents.
type Generator struct {
	Searcher   Agent
	Insights   Agent
	Comparison Agent
	SWOT       Agent
	Writer     Agent

	Store  store.TopicStore
	Logger *slog.Logger
}

// New builds a Generator with the five LLM-backed agents.
func New(cfg Config) *Generator {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	st := cfg.Store
	if st == nil {
		st = store.NewMemoryStore()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		Searcher:   NewLLMAgent(NewSearchAgent(model)),
		Insights:   NewLLMAgent(NewInsightsAgent(model)),
		Comparison: NewLLMAgent(NewComparisonAgent(model)),
		SWOT:       NewLLMAgent(NewSWOTAgent(model)),
		Writer:     NewLLMAgent(NewWriterAgent(model)),
		Store:      st,
		Logger:     logger,
	}
}

// stagePayload is the JSON document passed between stages. Artifacts
// are opaque text; the pipeline never parses them.
type stagePayload struct {
	Topic         string `json:"topic"`
	SearchResults string `json:"search_results,omitempty"`
	Comparison    string `json:"comparison,omitempty"`
	SWOTAnalysis  string `json:"swot_analysis,omitempty"`
}

func (p stagePayload) marshal() (string, error) {
	b, err := json.MarshalIndent(p, "", "    ")
	if err != nil {
		return "", fmt.Errorf("error marshaling stage payload: %w", err)
	}
	return string(b), nil
}

// Run executes the pipeline for topic and returns channels yielding
// output events and the final run error. The event channel is finite
// and single-use: it carries content chunks while the report is being
// written, then one completed event, and is closed. The error channel
// yields the run error, if any, once the event channel is closed.
//
// With useCache, an existing cache entry for topic is returned as the
// sole completed event without invoking any agent. The cache is
// written at most once per run, only after the writer stream has been
// fully consumed.
func (g *Generator) Run(ctx context.Context, topic string, useCache bool) (<-chan RunEvent, <-chan error, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, nil, errors.New("topic must not be empty")
	}

	events := make(chan RunEvent)
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		defer close(events)
		if err := g.run(ctx, topic, useCache, events); err != nil {
			errCh <- err
		}
	}()
	return events, errCh, nil
}

func (g *Generator) run(ctx context.Context, topic string, useCache bool, events chan<- RunEvent) error {
	g.log().Info("generating competitor report", "topic", topic)

	if useCache {
		if cached, ok := g.cachedReport(ctx, topic); ok {
			return g.send(ctx, events, RunEvent{Type: RunEventCompleted, Content: cached})
		}
	}

	searchResults := g.searchCompetitors(ctx, topic)
	if searchResults == "" {
		return g.send(ctx, events, RunEvent{
			Type:    RunEventCompleted,
			Content: fmt.Sprintf("Sorry, could not find any articles on the topic: %s", topic),
		})
	}

	insights, err := g.extractInsights(ctx, topic, searchResults)
	if err != nil {
		return fmt.Errorf("insight extraction: %w", err)
	}

	comparison, err := g.compareFeatures(ctx, topic, insights)
	if err != nil {
		return fmt.Errorf("feature comparison: %w", err)
	}

	swot, err := g.swotAnalysis(ctx, topic, insights, comparison)
	if err != nil {
		return fmt.Errorf("swot analysis: %w", err)
	}

	return g.writeReport(ctx, topic, insights, comparison, swot, events)
}

func (g *Generator) cachedReport(ctx context.Context, topic string) (string, bool) {
	g.log().Info("checking if cached report exists", "topic", topic)
	report, ok, err := g.Store.Get(ctx, topic)
	if err != nil {
		// A broken cache must not block report generation.
		g.log().Warn("cache lookup failed", "topic", topic, "err", err)
		return "", false
	}
	return report, ok
}

// searchCompetitors calls the searcher up to maxSearchAttempts times.
// An error and an empty response are both counted as a failed attempt.
// An empty return value after exhaustion is the "no result" signal.
func (g *Generator) searchCompetitors(ctx context.Context, topic string) string {
	for attempt := 1; attempt <= maxSearchAttempts; attempt++ {
		result, err := g.Searcher.Generate(ctx, topic)
		if err != nil {
			g.log().Warn("search attempt failed",
				"attempt", attempt, "max_attempts", maxSearchAttempts, "err", err)
			continue
		}
		if result == "" {
			g.log().Warn("empty searcher response",
				"attempt", attempt, "max_attempts", maxSearchAttempts)
			continue
		}
		return result
	}
	g.log().Error("failed to get search results", "topic", topic, "attempts", maxSearchAttempts)
	return ""
}

func (g *Generator) extractInsights(ctx context.Context, topic, searchResults string) (string, error) {
	input, err := stagePayload{Topic: topic, SearchResults: searchResults}.marshal()
	if err != nil {
		return "", err
	}
	return g.Insights.Generate(ctx, input)
}

func (g *Generator) compareFeatures(ctx context.Context, topic, insights string) (string, error) {
	input, err := stagePayload{Topic: topic, SearchResults: insights}.marshal()
	if err != nil {
		return "", err
	}
	return g.Comparison.Generate(ctx, input)
}

func (g *Generator) swotAnalysis(ctx context.Context, topic, insights, comparison string) (string, error) {
	input, err := stagePayload{Topic: topic, SearchResults: insights, Comparison: comparison}.marshal()
	if err != nil {
		return "", err
	}
	return g.SWOT.Generate(ctx, input)
}

func (g *Generator) writeReport(ctx context.Context, topic, insights, comparison, swot string, events chan<- RunEvent) error {
	input, err := stagePayload{
		Topic:         topic,
		SearchResults: insights,
		Comparison:    comparison,
		SWOTAnalysis:  swot,
	}.marshal()
	if err != nil {
		return err
	}

	chunks, errCh, err := g.Writer.GenerateStream(ctx, input)
	if err != nil {
		return fmt.Errorf("report generation: %w", err)
	}

	var report strings.Builder
	for chunk := range chunks {
		report.WriteString(chunk)
		if err := g.send(ctx, events, RunEvent{Type: RunEventContent, Content: chunk}); err != nil {
			return err
		}
	}
	if err := <-errCh; err != nil {
		return fmt.Errorf("report generation: %w", err)
	}

	g.log().Info("saving report", "topic", topic)
	if err := g.Store.Set(ctx, topic, report.String()); err != nil {
		// The report was fully generated; persistence is best-effort.
		g.log().Warn("failed to persist report", "topic", topic, "err", err)
	}
	return g.send(ctx, events, RunEvent{Type: RunEventCompleted, Content: report.String()})
}

func (g *Generator) send(ctx context.Context, events chan<- RunEvent, event RunEvent) error {
	select {
	case events <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *Generator) log() *slog.Logger {
	if g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}
