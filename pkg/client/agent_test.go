package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openagentic/textstat/pkg/a2a"
	"github.com/openagentic/textstat/pkg/errors"
	"github.com/openagentic/textstat/pkg/jsonrpc"
	"github.com/openagentic/textstat/pkg/textstat"
	. "github.com/smartystreets/goconvey/convey"
)

// mockAgent serves the discovery endpoint and a minimal text/analyze
// implementation backed by the real analyzer.
func mockAgent() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/.well-known/agent.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(a2a.AgentCard{
			Name:    "Text Statistics Agent",
			Version: "1.0.0",
			Skills:  []a2a.AgentSkill{{ID: "analyze_statistics", Name: "Text Statistics Tool"}},
		})
	})

	mux.HandleFunc("/rpc", func(w http.ResponseWriter, r *http.Request) {
		var req jsonrpc.RPCRequest
		json.NewDecoder(r.Body).Decode(&req)

		var params struct {
			Text           *string `json:"text"`
			WordsPerMinute int     `json:"words_per_minute"`
		}
		json.Unmarshal(req.Params, &params)

		w.Header().Set("Content-Type", "application/json")

		if req.Method != "text/analyze" {
			json.NewEncoder(w).Encode(jsonrpc.NewError(req.ID, errors.ErrMethodNotFound))
			return
		}
		if params.Text == nil {
			json.NewEncoder(w).Encode(jsonrpc.NewError(req.ID, errors.ErrInvalidInput))
			return
		}

		metrics := textstat.Analyze(*params.Text, textstat.Config{WordsPerMinute: params.WordsPerMinute})
		json.NewEncoder(w).Encode(jsonrpc.NewResult(req.ID, metrics))
	})

	return mux
}

// newTestServer wraps httptest.NewServer but converts the panic that is
// thrown when the environment forbids listening on sockets into a regular
// error so the caller can gracefully skip the test.
func newTestServer(h http.Handler) (*httptest.Server, error) {
	var srv *httptest.Server
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("listener not permitted: %v", r)
			}
		}()
		srv = httptest.NewServer(h)
	}()
	return srv, err
}

func TestAgentClientDiscoveryAndAnalyze(t *testing.T) {
	ts, errTS := newTestServer(mockAgent())
	if errTS != nil {
		t.Skip("network disabled in environment; skipping test")
	}
	defer ts.Close()

	Convey("Given a reachable agent", t, func() {
		agent, err := NewAgentClient(context.Background(), ts.URL)

		Convey("Discovery should populate the card", func() {
			So(err, ShouldBeNil)
			So(agent.Card.Name, ShouldEqual, "Text Statistics Agent")
			So(len(agent.Card.Skills), ShouldEqual, 1)
		})

		Convey("When analyzing text", func() {
			metrics, err := agent.Analyze(context.Background(), "Hello world. This is a test.", 0)

			Convey("The metrics should round-trip", func() {
				So(err, ShouldBeNil)
				So(metrics.WordCount, ShouldEqual, 6)
				So(metrics.SentenceCount, ShouldEqual, 2)
			})
		})

		Convey("When analyzing with a custom rate", func() {
			metrics, err := agent.Analyze(context.Background(), "one two three", 60)

			Convey("The rate should reach the agent", func() {
				So(err, ShouldBeNil)
				So(metrics.EstimatedReadingTimeSeconds, ShouldAlmostEqual, 3.0, 1e-9)
			})
		})
	})
}

func TestFetchAgentCardErrors(t *testing.T) {
	ts, errTS := newTestServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	if errTS != nil {
		t.Skip("network disabled in environment; skipping test")
	}
	defer ts.Close()

	Convey("Given an agent without a discovery endpoint", t, func() {
		_, err := FetchAgentCard(context.Background(), ts.URL)

		Convey("Discovery should fail with the HTTP status", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "404")
		})
	})
}
