package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/manualfsm"
	"github.com/aretw0/manualfsm/pkg/compiler"
	"github.com/aretw0/manualfsm/pkg/domain"
	"github.com/aretw0/manualfsm/pkg/validate"
)

const (
	graphsURI        = "manualfsm://graphs"
	graphURITemplate = "manualfsm://graphs/{id}"
)

// CompileResponse is the structured result of the compile tools.
type CompileResponse struct {
	GraphID          string          `json:"graph_id" jsonschema_description:"Content hash identifying the stored graph"`
	Stats            domain.Stats    `json:"fsm_stats" jsonschema_description:"Number of states and transitions"`
	ValidationErrors []string        `json:"validation_errors" jsonschema_description:"Structural defects; empty when the graph is well formed"`
	MermaidSource    string          `json:"mermaid_source" jsonschema_description:"Mermaid flowchart of the graph"`
	FSMData          domain.Snapshot `json:"fsm_data" jsonschema_description:"The graph snapshot"`
}

// ValidateResponse is the structured result of validate_graph.
type ValidateResponse struct {
	Valid            bool                  `json:"valid" jsonschema_description:"True when no defects were found"`
	ValidationErrors []string              `json:"validation_errors"`
	Diagnostics      []validate.Diagnostic `json:"diagnostics"`
}

// RenderResponse is the structured result of render_graph.
type RenderResponse struct {
	Format string `json:"format"`
	Source string `json:"source"`
}

// Engine is the subset of manualfsm.Engine exposed to MCP clients.
type Engine interface {
	CompileAndSave(ctx context.Context, text string) (*compiler.Result, error)
	CompileManual(ctx context.Context, id string) (*compiler.Result, error)
	Graph(ctx context.Context, id string) (domain.Snapshot, error)
	Graphs(ctx context.Context) ([]string, error)
	Validate(snap domain.Snapshot) []validate.Diagnostic
	Render(snap domain.Snapshot, format string) (string, error)
}

// Server exposes the engine as an MCP server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		engine:    engine,
		logger:    logger,
		mcpServer: server.NewMCPServer("manualfsm-mcp", strings.TrimSpace(manualfsm.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves over SSE on port until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutdown signal received, stopping MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	compileTool := mcp.NewTool("compile_manual",
		mcp.WithDescription("Compile a technical manual (one instruction per line) into a finite-state machine graph and store it."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The manual text")),
		mcp.WithOutputSchema[CompileResponse](),
	)
	s.mcpServer.AddTool(compileTool, mcp.NewStructuredToolHandler(s.handleCompile))

	libraryTool := mcp.NewTool("compile_library_manual",
		mcp.WithDescription("Compile a manual from the configured library by id."),
		mcp.WithString("manual_id", mcp.Required(), mcp.Description("Manual id in the library")),
		mcp.WithOutputSchema[CompileResponse](),
	)
	s.mcpServer.AddTool(libraryTool, mcp.NewStructuredToolHandler(s.handleCompileLibrary))

	validateTool := mcp.NewTool("validate_graph",
		mcp.WithDescription("Check a graph for a missing start state, unreachable states and dead ends."),
		mcp.WithString("graph_id", mcp.Description("Id of a stored graph")),
		mcp.WithString("snapshot", mcp.Description("Graph snapshot as JSON (used when graph_id is omitted)")),
		mcp.WithOutputSchema[ValidateResponse](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))

	renderTool := mcp.NewTool("render_graph",
		mcp.WithDescription("Render a graph as Graphviz DOT or a Mermaid flowchart."),
		mcp.WithString("graph_id", mcp.Description("Id of a stored graph")),
		mcp.WithString("snapshot", mcp.Description("Graph snapshot as JSON (used when graph_id is omitted)")),
		mcp.WithString("format", mcp.Description("dot or mermaid (default mermaid)")),
		mcp.WithOutputSchema[RenderResponse](),
	)
	s.mcpServer.AddTool(renderTool, mcp.NewStructuredToolHandler(s.handleRender))

	s.mcpServer.AddTool(mcp.NewTool("list_graphs",
		mcp.WithDescription("List the ids of stored graphs."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ids, err := s.engine.Graphs(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
		}
		data, _ := json.Marshal(ids)
		return mcp.NewToolResultText(string(data)), nil
	})
}

func (s *Server) handleCompile(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (CompileResponse, error) {
	text, _ := args["text"].(string)
	res, err := s.engine.CompileAndSave(ctx, text)
	if err != nil {
		s.logger.Warn("MCP compile: input rejected", "error", err, "size", len(text))
		return CompileResponse{}, fmt.Errorf("compile failed: %w", err)
	}
	return s.compiled(res)
}

func (s *Server) handleCompileLibrary(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (CompileResponse, error) {
	id, _ := args["manual_id"].(string)
	res, err := s.engine.CompileManual(ctx, id)
	if err != nil {
		return CompileResponse{}, fmt.Errorf("compile failed: %w", err)
	}
	return s.compiled(res)
}

func (s *Server) compiled(res *compiler.Result) (CompileResponse, error) {
	mmd, err := s.engine.Render(res.Snapshot, "mermaid")
	if err != nil {
		return CompileResponse{}, err
	}
	return CompileResponse{
		GraphID:          res.ID,
		Stats:            res.Stats,
		ValidationErrors: res.Messages(),
		MermaidSource:    mmd,
		FSMData:          res.Snapshot,
	}, nil
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ValidateResponse, error) {
	snap, err := s.snapshotArg(ctx, args)
	if err != nil {
		return ValidateResponse{}, err
	}
	diags := s.engine.Validate(snap)
	msgs := make([]string, 0, len(diags))
	for _, d := range diags {
		msgs = append(msgs, d.Message)
	}
	if diags == nil {
		diags = []validate.Diagnostic{}
	}
	return ValidateResponse{Valid: len(diags) == 0, ValidationErrors: msgs, Diagnostics: diags}, nil
}

func (s *Server) handleRender(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RenderResponse, error) {
	snap, err := s.snapshotArg(ctx, args)
	if err != nil {
		return RenderResponse{}, err
	}
	format, _ := args["format"].(string)
	if format == "" {
		format = "mermaid"
	}
	out, err := s.engine.Render(snap, format)
	if err != nil {
		return RenderResponse{}, err
	}
	return RenderResponse{Format: format, Source: out}, nil
}

// snapshotArg resolves "graph_id" against the store, or decodes "snapshot".
func (s *Server) snapshotArg(ctx context.Context, args map[string]interface{}) (domain.Snapshot, error) {
	if id, _ := args["graph_id"].(string); id != "" {
		snap, err := s.engine.Graph(ctx, id)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("load graph %s: %w", id, err)
		}
		return snap, nil
	}
	raw, _ := args["snapshot"].(string)
	if raw == "" {
		return domain.Snapshot{}, errors.New("either graph_id or snapshot is required")
	}
	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("invalid snapshot: %w", err)
	}
	return snap, nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(graphsURI, "Stored graphs",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		ids, err := s.engine.Graphs(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list graphs: %w", err)
		}
		data, _ := json.Marshal(ids)
		return []mcp.ResourceContents{
			mcp.TextResourceContents{URI: graphsURI, MIMEType: "application/json", Text: string(data)},
		}, nil
	})

	s.mcpServer.AddResourceTemplate(mcp.NewResourceTemplate(graphURITemplate, "Stored graph snapshot",
		mcp.WithTemplateMIMEType("application/json"),
	), s.readGraph)
}

func (s *Server) readGraph(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	id := strings.TrimPrefix(uri, graphsURI+"/")
	snap, err := s.engine.Graph(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load graph %s: %w", id, err)
	}
	data, _ := json.Marshal(snap)
	return []mcp.ResourceContents{
		mcp.TextResourceContents{URI: uri, MIMEType: "application/json", Text: string(data)},
	}, nil
}
