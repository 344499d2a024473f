package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"

	"github.com/aretw0/manualfsm"
	"github.com/aretw0/manualfsm/pkg/compiler"
	"github.com/aretw0/manualfsm/pkg/domain"
	"github.com/aretw0/manualfsm/pkg/validate"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go openapi.yaml

// multipartOverhead is the slack allowed above the manual size for form encoding.
const multipartOverhead = 64 << 10

// Engine is the subset of manualfsm.Engine served over HTTP.
type Engine interface {
	CompileAndSave(ctx context.Context, text string) (*compiler.Result, error)
	CompileManual(ctx context.Context, id string) (*compiler.Result, error)
	Manuals(ctx context.Context) ([]string, error)
	Graph(ctx context.Context, id string) (domain.Snapshot, error)
	Graphs(ctx context.Context) ([]string, error)
	DeleteGraph(ctx context.Context, id string) error
	Validate(snap domain.Snapshot) []validate.Diagnostic
	Render(snap domain.Snapshot, format string) (string, error)
	MaxInputBytes() int
}

// Server implements the generated ServerInterface.
type Server struct {
	Engine  Engine
	Spec    *openapi3.T
	router  routers.Router
	metrics http.Handler
	logger  *slog.Logger
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

// Option configures the handler.
type Option func(*Server)

// WithMetrics mounts a metrics handler at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// LoadSpec decodes and validates the OpenAPI document the handlers were generated from.
func LoadSpec(ctx context.Context) (*openapi3.T, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi spec: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi spec: %w", err)
	}
	return doc, nil
}

// NewHandler creates the HTTP handler for the engine.
// Requests to API operations are checked against the OpenAPI document before
// they reach the handlers.
func NewHandler(engine Engine, opts ...Option) (http.Handler, error) {
	spec, err := LoadSpec(context.Background())
	if err != nil {
		return nil, err
	}
	router, err := legacy.NewRouter(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to build openapi router: %w", err)
	}

	s := &Server{Engine: engine, Spec: spec, router: router}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)
	r.Use(s.limitBody)
	r.Use(s.validateRequest)

	r.Get("/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		spec, err := rawSpec()
		if err != nil {
			s.fail(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(spec)
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	return HandlerWithOptions(s, ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			s.fail(w, badRequest(err))
		},
	}), nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// limitBody bounds request bodies to the manual size limit plus form overhead.
func (s *Server) limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limit := int64(s.Engine.MaxInputBytes()); limit > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)
		}
		next.ServeHTTP(w, r)
	})
}

// validateRequest checks path parameters and JSON bodies against the OpenAPI
// document. Routes outside the document pass through untouched.
func (s *Server) validateRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route, params, err := s.router.FindRoute(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		input := &openapi3filter.RequestValidationInput{
			Request:    r,
			PathParams: params,
			Route:      route,
			Options: &openapi3filter.Options{
				// Form and raw bodies are decoded by the handler; only JSON has a schema worth enforcing.
				ExcludeRequestBody: mediaType != "application/json",
				AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
			},
		}
		if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
			s.fail(w, badRequest(err))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetRoot handles GET /.
func (s *Server) GetRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RootMessage{Message: "FSM Compiler API is running"})
}

// Compile handles POST /compile. It accepts a multipart "file" or "text" field,
// a urlencoded "text" field, a JSON body {"text": "..."} or a raw text body.
func (s *Server) Compile(w http.ResponseWriter, r *http.Request) {
	text, err := readManual(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	if strings.TrimSpace(text) == "" {
		writeError(w, http.StatusBadRequest, "Either 'file' or 'text' must be provided.")
		return
	}

	res, err := s.Engine.CompileAndSave(r.Context(), text)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respondCompiled(w, res)
}

// CompileManual handles POST /manuals/{id}/compile.
func (s *Server) CompileManual(w http.ResponseWriter, r *http.Request, id ManualID) {
	res, err := s.Engine.CompileManual(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respondCompiled(w, res)
}

// ListManuals handles GET /manuals.
func (s *Server) ListManuals(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Engine.Manuals(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ManualList{Manuals: nonNil(ids)})
}

func (s *Server) respondCompiled(w http.ResponseWriter, res *compiler.Result) {
	dot, err := s.Engine.Render(res.Snapshot, "dot")
	if err != nil {
		s.fail(w, err)
		return
	}
	mmd, err := s.Engine.Render(res.Snapshot, "mermaid")
	if err != nil {
		s.fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, CompileResponse{
		Status:           "success",
		GraphId:          res.ID,
		Strategy:         string(res.Strategy),
		Steps:            nonNil(res.Steps),
		FsmStats:         res.Stats,
		ValidationErrors: nonNil(res.Messages()),
		Diagnostics:      nonNil(res.Diagnostics),
		DotSource:        dot,
		MermaidSource:    mmd,
		FsmData:          res.Snapshot,
	})
}

// ListGraphs handles GET /graphs.
func (s *Server) ListGraphs(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Engine.Graphs(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, GraphList{Graphs: nonNil(ids)})
}

// GetGraph handles GET /graphs/{id}.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request, id GraphID) {
	snap, err := s.Engine.Graph(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// DeleteGraph handles DELETE /graphs/{id}.
func (s *Server) DeleteGraph(w http.ResponseWriter, r *http.Request, id GraphID) {
	if err := s.Engine.DeleteGraph(r.Context(), id); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ValidateGraph handles GET /graphs/{id}/validation.
func (s *Server) ValidateGraph(w http.ResponseWriter, r *http.Request, id GraphID) {
	snap, err := s.Engine.Graph(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	diags := s.Engine.Validate(snap)
	msgs := make([]string, 0, len(diags))
	for _, d := range diags {
		msgs = append(msgs, d.Message)
	}
	writeJSON(w, http.StatusOK, ValidationReport{
		Valid:            len(diags) == 0,
		ValidationErrors: msgs,
		Diagnostics:      nonNil(diags),
	})
}

// RenderDot handles GET /graphs/{id}/dot.
func (s *Server) RenderDot(w http.ResponseWriter, r *http.Request, id GraphID) {
	s.render(w, r, id, "dot", "text/vnd.graphviz")
}

// RenderMermaid handles GET /graphs/{id}/mermaid.
func (s *Server) RenderMermaid(w http.ResponseWriter, r *http.Request, id GraphID) {
	s.render(w, r, id, "mermaid", "text/plain; charset=utf-8")
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, id, format, contentType string) {
	snap, err := s.Engine.Graph(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	out, err := s.Engine.Render(snap, format)
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = io.WriteString(w, out)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Health{Status: "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if s.Spec != nil && s.Spec.Info != nil {
		apiVersion = s.Spec.Info.Version
	}
	writeJSON(w, http.StatusOK, Info{
		App:        "manualfsm-http",
		Version:    strings.TrimSpace(manualfsm.Version),
		ApiVersion: apiVersion,
	})
}

// readManual decodes the manual text from any of the request bodies POST /compile accepts.
func readManual(r *http.Request) (string, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		mediaType = ""
	}

	switch mediaType {
	case "multipart/form-data":
		reader, err := r.MultipartReader()
		if err != nil {
			return "", badRequest(err)
		}
		var body CompileMultipartRequestBody
		if err := runtime.BindMultipart(&body, *reader); err != nil {
			return "", badRequest(err)
		}
		if body.File != nil {
			data, err := body.File.Bytes()
			if err != nil {
				return "", badRequest(err)
			}
			return string(data), nil
		}
		return deref(body.Text), nil
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return "", badRequest(err)
		}
		var body CompileFormdataRequestBody
		if err := runtime.BindForm(&body, r.PostForm, nil, nil); err != nil {
			return "", badRequest(err)
		}
		return deref(body.Text), nil
	case "application/json":
		var body CompileJSONRequestBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return "", badRequest(err)
		}
		return body.Text, nil
	default:
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return "", badRequest(err)
		}
		return string(data), nil
	}
}

type requestError struct{ err error }

func (e *requestError) Error() string { return e.err.Error() }
func (e *requestError) Unwrap() error { return e.err }

func badRequest(err error) error {
	return &requestError{err: err}
}

// fail maps domain and transport errors to HTTP status codes.
func (s *Server) fail(w http.ResponseWriter, err error) {
	var reqErr *requestError
	var maxErr *http.MaxBytesError

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &maxErr), errors.Is(err, compiler.ErrInputTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrSnapshotNotFound), errors.Is(err, domain.ErrManualNotFound),
		errors.Is(err, manualfsm.ErrNoLibrary):
		status = http.StatusNotFound
	case errors.As(err, &reqErr), errors.Is(err, compiler.ErrInvalidUTF8):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	} else {
		s.logger.Debug("request rejected", "status", status, "error", err)
	}
	writeError(w, status, err.Error())
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorResponse{Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
