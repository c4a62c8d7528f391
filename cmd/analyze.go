package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/openagentic/textstat/pkg/client"
	"github.com/openagentic/textstat/pkg/textstat"
	"github.com/spf13/cobra"
)

var (
	jsonFlag  bool
	wpmFlag   int
	agentFlag string

	analyzeCmd = &cobra.Command{
		Use:   "analyze [text]",
		Short: "Analyze text from the argument or stdin",
		Long:  longAnalyze,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}

			var metrics textstat.Metrics

			if agentFlag != "" {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				agent, err := client.NewAgentClient(ctx, agentFlag)
				if err != nil {
					return err
				}

				if metrics, err = agent.Analyze(ctx, text, wpmFlag); err != nil {
					return err
				}
			} else {
				cfg := analyzerConfig()
				if wpmFlag > 0 {
					cfg.WordsPerMinute = wpmFlag
				}
				metrics = textstat.Analyze(text, cfg)
			}

			if jsonFlag {
				b, err := json.MarshalIndent(metrics, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), renderMetrics(metrics))
			return nil
		},
	}
)

// readInput takes the text from the args, or from stdin when no argument
// (or "-") is given. Piped empty input is valid and yields zero metrics.
func readInput(args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return strings.Join(args, " "), nil
	}

	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(b), nil
}

func renderMetrics(m textstat.Metrics) string {
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true).
		Width(28)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var sb strings.Builder
	row := func(label, value string) {
		sb.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}

	row("Characters", fmt.Sprintf("%d", m.CharacterCount))
	row("Characters (no spaces)", fmt.Sprintf("%d", m.CharacterCountNoSpaces))
	row("Words", fmt.Sprintf("%d", m.WordCount))
	row("Sentences", fmt.Sprintf("%d", m.SentenceCount))
	row("Paragraphs", fmt.Sprintf("%d", m.ParagraphCount))
	row("Avg word length", fmt.Sprintf("%.2f", m.AverageWordLength))
	row("Avg sentence length", fmt.Sprintf("%.2f", m.AverageSentenceLength))
	row("Readability (Flesch)", fmt.Sprintf("%.2f", m.ReadabilityScore))
	row("Reading time", fmt.Sprintf("%.1fs", m.EstimatedReadingTimeSeconds))

	return sb.String()
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the raw metrics JSON")
	analyzeCmd.Flags().IntVar(&wpmFlag, "wpm", 0, "Reading rate in words per minute (default from config)")
	analyzeCmd.Flags().StringVar(&agentFlag, "agent", "", "Analyze via a remote agent at this base URL instead of locally")
}

var longAnalyze = `
Analyze text and print its statistics.

Examples:
  # Analyze an argument
  textstat analyze "Hello world. This is a test."

  # Analyze stdin as JSON
  cat essay.txt | textstat analyze --json

  # Analyze via a running agent
  textstat analyze --agent http://localhost:3210 "Some remote text."
`
