package service

import (
	"encoding/json"
	stderrors "errors"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/openagentic/textstat/pkg/a2a"
	"github.com/openagentic/textstat/pkg/errors"
	"github.com/openagentic/textstat/pkg/jsonrpc"
	"github.com/openagentic/textstat/pkg/textstat"
)

/*
AgentServer exposes the text-statistics analyzer behind the A2A discovery
and JSON-RPC surface. All methods are synchronous request/response; the
analyzer is pure, so handlers run it directly on the request goroutine
with no coordination.
*/
type AgentServer struct {
	app      *fiber.App
	card     a2a.AgentCard
	analyzer textstat.Config
	// maxInputBytes bounds request latency upstream of the analyzer.
	// Zero means unlimited.
	maxInputBytes int
}

// Option tweaks an AgentServer at construction time.
type Option func(*AgentServer)

// WithAnalyzerConfig sets the default analyzer configuration used when a
// request does not carry its own words_per_minute.
func WithAnalyzerConfig(cfg textstat.Config) Option {
	return func(srv *AgentServer) { srv.analyzer = cfg }
}

// WithMaxInputBytes caps the accepted text size. Larger inputs are
// rejected with invalid params before the analyzer runs.
func WithMaxInputBytes(n int) Option {
	return func(srv *AgentServer) { srv.maxInputBytes = n }
}

/*
NewAgentServer constructs a server for the supplied agent card.
*/
func NewAgentServer(card a2a.AgentCard, opts ...Option) *AgentServer {
	srv := &AgentServer{
		app: fiber.New(fiber.Config{
			AppName:      card.Name,
			ServerHeader: "TextStat-Agent-Server",
		}),
		card: card,
	}

	for _, opt := range opts {
		opt(srv)
	}

	srv.app.Use(logger.New(), healthcheck.New())
	srv.app.Get("/", srv.handleRoot)
	srv.app.Get("/.well-known/agent.json", srv.handleAgentCard)
	srv.app.Post("/rpc", srv.handleRPC)

	return srv
}

func (srv *AgentServer) Start(addr string) error {
	log.Info("starting agent server", "name", srv.card.Name, "addr", addr)
	return srv.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

func (srv *AgentServer) handleRoot(ctx fiber.Ctx) error {
	return ctx.SendString("OK")
}

func (srv *AgentServer) handleAgentCard(ctx fiber.Ctx) error {
	return ctx.JSON(srv.card)
}

/*
handleRPC is the central routing for all agent RPC methods.
*/
func (srv *AgentServer) handleRPC(ctx fiber.Ctx) error {
	ctx.Set("Content-Type", "application/json")

	var request jsonrpc.RPCRequest

	if err := ctx.Bind().Body(&request); err != nil {
		log.Error("failed to parse rpc request", "error", err)
		return ctx.Status(fiber.StatusBadRequest).JSON(
			jsonrpc.NewError(nil, errors.ErrParseError),
		)
	}

	return ctx.JSON(srv.Dispatch(request))
}

// AnalyzeParams is the wire shape of the text/analyze method. Text is a
// pointer so a missing parameter can be told apart from an empty string.
type AnalyzeParams struct {
	Text           *string `json:"text"`
	WordsPerMinute int     `json:"words_per_minute,omitempty"`
}

/*
Dispatch routes a single JSON-RPC request to its method handler and wraps
the outcome in a response envelope. It is exported so transports other
than the fiber app (and tests) can reuse the routing.
*/
func (srv *AgentServer) Dispatch(req jsonrpc.RPCRequest) jsonrpc.RPCResponse {
	if req.JSONRPC != "2.0" {
		return jsonrpc.NewError(req.ID, errors.ErrInvalidRequest)
	}

	switch req.Method {
	case "text/analyze":
		return srv.handleAnalyze(req)
	case "agent/card":
		return jsonrpc.NewResult(req.ID, srv.card)
	default:
		log.Warn("unknown rpc method", "method", req.Method)
		return jsonrpc.NewError(req.ID, errors.ErrMethodNotFound)
	}
}

func (srv *AgentServer) handleAnalyze(req jsonrpc.RPCRequest) jsonrpc.RPCResponse {
	var params AnalyzeParams

	if len(req.Params) == 0 {
		return jsonrpc.NewError(req.ID, errors.ErrInvalidInput)
	}

	if err := json.Unmarshal(req.Params, &params); err != nil {
		log.Error("failed to unmarshal analyze params", "error", err)
		// A text field of the wrong type is an input error; anything else
		// about the params shape is a generic invalid-params error.
		var typeErr *json.UnmarshalTypeError
		if stderrors.As(err, &typeErr) && typeErr.Field == "text" {
			return jsonrpc.NewError(req.ID, errors.ErrInvalidInput)
		}
		return jsonrpc.NewError(req.ID, errors.ErrInvalidParams)
	}

	// Absent text is the one InvalidInput condition. An empty string is
	// valid and yields zero metrics.
	if params.Text == nil {
		return jsonrpc.NewError(req.ID, errors.ErrInvalidInput)
	}

	if srv.maxInputBytes > 0 && len(*params.Text) > srv.maxInputBytes {
		return jsonrpc.NewError(req.ID, errors.ErrInputTooLarge.WithMessagef(
			"Invalid input: text exceeds the configured size limit of %d bytes",
			srv.maxInputBytes,
		))
	}

	cfg := srv.analyzer
	if params.WordsPerMinute > 0 {
		cfg.WordsPerMinute = params.WordsPerMinute
	}

	return jsonrpc.NewResult(req.ID, textstat.Analyze(*params.Text, cfg))
}
