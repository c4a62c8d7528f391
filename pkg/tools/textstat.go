package tools

// MCP surface for the statistics analyzer: one tool, analyze_statistics,
// following the same registration shape as the agent's RPC method. The
// SDK owns transport framing; this file only binds the analyzer to it.

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/openagentic/textstat/pkg/textstat"
)

// StatisticsTool bridges MCP tool calls to textstat.Analyze. The
// configured rate applies when a call carries no words_per_minute.
type StatisticsTool struct {
	cfg textstat.Config
}

func NewStatisticsTool(cfg textstat.Config) *StatisticsTool {
	return &StatisticsTool{cfg: cfg}
}

// Definition describes the tool to MCP clients.
func (tool *StatisticsTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"analyze_statistics",
		mcp.WithDescription("Computes text statistics: character, word, sentence and paragraph counts, average word and sentence length, a Flesch readability score, and an estimated reading time. Returns JSON."),
		mcp.WithString("text",
			mcp.Description("The text to analyze. May be empty; empty text yields zero metrics."),
			mcp.Required(),
		),
		mcp.WithNumber("words_per_minute",
			mcp.Description("Assumed reading rate for the reading time estimate (optional, default 200)"),
		),
	)
}

func (tool *StatisticsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		// Missing or non-string text is the single invalid-input case.
		return mcp.NewToolResultError("text must be a string"), nil
	}

	cfg := tool.cfg
	if wpm := req.GetInt("words_per_minute", 0); wpm > 0 {
		cfg.WordsPerMinute = wpm
	}

	b, err := json.Marshal(textstat.Analyze(text, cfg))
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(string(b)), nil
}

// RegisterStatisticsTool adds the analyzer tool to an MCP server.
func RegisterStatisticsTool(srv *server.MCPServer, cfg textstat.Config) {
	tool := NewStatisticsTool(cfg)
	srv.AddTool(tool.Definition(), tool.Handle)
}
