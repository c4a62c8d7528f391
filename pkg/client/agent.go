package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/openagentic/textstat/pkg/a2a"
	"github.com/openagentic/textstat/pkg/jsonrpc"
	"github.com/openagentic/textstat/pkg/textstat"
)

// AgentClient talks to a remote text-statistics agent: card discovery via
// the well-known endpoint, analysis via JSON-RPC.
type AgentClient struct {
	Card      a2a.AgentCard
	rpcClient *jsonrpc.RPCClient
}

// NewAgentClient discovers the agent behind baseURL and returns a client
// bound to its RPC endpoint.
func NewAgentClient(ctx context.Context, baseURL string) (*AgentClient, error) {
	card, err := FetchAgentCard(ctx, baseURL)
	if err != nil {
		return nil, err
	}
	return NewAgentClientFromCard(baseURL, card), nil
}

// NewAgentClientFromCard skips discovery for callers that already hold a
// card.
func NewAgentClientFromCard(baseURL string, card a2a.AgentCard) *AgentClient {
	return &AgentClient{
		Card:      card,
		rpcClient: jsonrpc.NewRPCClient(strings.TrimSuffix(baseURL, "/") + "/rpc"),
	}
}

// FetchAgentCard retrieves /.well-known/agent.json from the agent.
func FetchAgentCard(ctx context.Context, baseURL string) (a2a.AgentCard, error) {
	var card a2a.AgentCard

	url := strings.TrimSuffix(baseURL, "/") + "/.well-known/agent.json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return card, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return card, fmt.Errorf("failed to fetch agent card: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return card, fmt.Errorf("agent card request returned %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&card); err != nil {
		return card, fmt.Errorf("failed to decode agent card: %w", err)
	}

	return card, nil
}

type analyzeParams struct {
	Text           string `json:"text"`
	WordsPerMinute int    `json:"words_per_minute,omitempty"`
}

// Analyze sends text to the agent's text/analyze method. wordsPerMinute
// of 0 leaves the rate to the agent's configuration.
func (client *AgentClient) Analyze(ctx context.Context, text string, wordsPerMinute int) (textstat.Metrics, error) {
	var metrics textstat.Metrics

	log.Debug("sending analyze request", "agent", client.Card.Name, "chars", len(text))

	err := client.rpcClient.Call(ctx, "text/analyze", analyzeParams{
		Text:           text,
		WordsPerMinute: wordsPerMinute,
	}, &metrics)
	if err != nil {
		return metrics, fmt.Errorf("RPC call failed: %w", err)
	}

	return metrics, nil
}
