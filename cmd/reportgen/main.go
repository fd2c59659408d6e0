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

// reportgen generates a competitor-analysis business report on a topic
// by orchestrating five LLM agents, caching finished reports per topic.
//
// Usage:
//
//	reportgen [--topic=<name>] [--model=<id>] [--db=<path>] [--postgres=<conn>] [--no-cache] [--verbose]
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"reportgen/internal/logging"
	"reportgen/report"
	"reportgen/store"
)

const defaultTopic = "Dell"

var (
	flagTopic    string
	flagModel    string
	flagDBFile   string
	flagPostgres string
	flagNoCache  bool
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "reportgen",
	Short: "Generate a competitor SWOT report on a topic",
	Long: "reportgen researches a company with a web-search-augmented agent,\n" +
		"extracts insights, compares features, runs a SWOT analysis, and\n" +
		"streams a final business report. Finished reports are cached per topic.",
	Args: cobra.NoArgs,
	RunE: run,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&flagTopic, "topic", "", "topic to analyze (prompts interactively when omitted)")
	rootCmd.Flags().StringVar(&flagModel, "model", report.DefaultModel, "model ID used by every agent")
	rootCmd.Flags().StringVar(&flagDBFile, "db", filepath.Join("tmp", "reportgen.db"), "SQLite file backing the topic cache")
	rootCmd.Flags().StringVar(&flagPostgres, "postgres", "", "PostgreSQL connection string (overrides --db)")
	rootCmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "ignore cached reports")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
}

func run(cmd *cobra.Command, _ []string) error {
	logging.Init(flagVerbose, nil)
	ctx := cmd.Context()

	topic := flagTopic
	if topic == "" {
		var err error
		topic, err = promptTopic()
		if err != nil {
			return err
		}
	}

	topicStore, closeStore, err := openStore(ctx, topic)
	if err != nil {
		return err
	}
	defer closeStore()

	generator := report.New(report.Config{
		Model:  flagModel,
		Store:  topicStore,
		Logger: logging.New("report"),
	})

	events, errCh, err := generator.Run(ctx, topic, !flagNoCache)
	if err != nil {
		return err
	}

	streamed := false
	for event := range events {
		switch event.Type {
		case report.RunEventContent:
			fmt.Print(event.Content)
			_ = os.Stdout.Sync()
			streamed = true
		case report.RunEventCompleted:
			// The full text was already printed chunk by chunk on a
			// streamed run; only cache hits and terminal messages
			// arrive as a bare completed event.
			if !streamed {
				fmt.Print(event.Content)
			}
			fmt.Println()
		}
	}
	return <-errCh
}

func promptTopic() (string, error) {
	fmt.Printf("Enter a topic [%s]: ", defaultTopic)
	_ = os.Stdout.Sync()

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("error reading topic: %w", err)
	}
	topic := strings.TrimSpace(line)
	if topic == "" {
		topic = defaultTopic
	}
	return topic, nil
}

// openStore builds the durable topic cache, scoped to a session
// derived from the topic.
func openStore(ctx context.Context, topic string) (store.TopicStore, func(), error) {
	sessionID := "generate-report-on-" + urlSafe(topic)

	if flagPostgres != "" {
		s, err := store.NewPgStore(ctx, store.PgStoreParams{
			SessionID:        sessionID,
			ConnectionString: flagPostgres,
		})
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close(ctx) }, nil
	}

	if dir := filepath.Dir(flagDBFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}
	s, err := store.NewSQLiteStore(ctx, store.SQLiteStoreParams{
		SessionID:        sessionID,
		DBDataSourceName: flagDBFile,
	})
	if err != nil {
		return nil, nil, err
	}
	return s, func() { _ = s.Close() }, nil
}

func urlSafe(topic string) string {
	return strings.ReplaceAll(strings.ToLower(topic), " ", "-")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
