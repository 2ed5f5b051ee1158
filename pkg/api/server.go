// Package api is the HTTP surface: workflow CRUD, approvals, SSE chat and
// execute streams, the agent-request receive side, health, and metrics.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/conductorhq/conductor/pkg/bus"
	"github.com/conductorhq/conductor/pkg/config"
	"github.com/conductorhq/conductor/pkg/database"
	"github.com/conductorhq/conductor/pkg/dispatch"
	"github.com/conductorhq/conductor/pkg/events"
	"github.com/conductorhq/conductor/pkg/intent"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/workflow"
)

// Orchestrator is the workflow engine surface the handlers use.
type Orchestrator interface {
	Create(ctx context.Context, templateName string, wfContext map[string]any, taskID string) (*models.Workflow, error)
	Advance(ctx context.Context, id string) (*models.Workflow, error)
	Execute(ctx context.Context, templateName string, wfContext map[string]any, taskID string) (*models.Workflow, error)
	Resume(ctx context.Context, id string, decision models.ApprovalDecision, decidedBy string) (*models.Workflow, error)
	Cancel(ctx context.Context, id string) (*models.Workflow, error)
}

// WorkflowReader loads workflow snapshots.
type WorkflowReader interface {
	GetWorkflow(ctx context.Context, id string) (*models.Workflow, error)
}

// ApprovalReader loads approval requests.
type ApprovalReader interface {
	GetApproval(ctx context.Context, id string) (*models.ApprovalRequest, error)
	GetApprovalForStep(ctx context.Context, workflowID, stepID string) (*models.ApprovalRequest, error)
}

// ChatResponder streams a conversational reply onto a session channel.
type ChatResponder interface {
	Respond(ctx context.Context, sessionID, message string, withTools bool) error
}

// SpecialistRunner dispatches one sub-task to a specialist.
type SpecialistRunner interface {
	Run(ctx context.Context, task dispatch.Task) (*dispatch.Result, error)
}

// Requester is the bus request surface serving POST /agent-request.
type Requester interface {
	Request(ctx context.Context, req *bus.Request, timeout time.Duration) (*bus.Response, error)
}

// Deps collects everything the server needs. Optional fields may be nil;
// the corresponding endpoints answer 503.
type Deps struct {
	Config     *config.Config
	DB         *database.Client
	Engine     Orchestrator
	Workflows  WorkflowReader
	Approvals  ApprovalReader
	Chat       ChatResponder
	Classifier *intent.Classifier
	Streams    *events.StreamManager
	Publisher  events.Publisher
	Runner     SpecialistRunner
	Bus        Requester
	Templates  *workflow.TemplateRegistry
}

// Server is the HTTP API server.
type Server struct {
	echo *echo.Echo
	http *http.Server

	cfg        *config.Config
	db         *database.Client
	engine     Orchestrator
	workflows  WorkflowReader
	approvals  ApprovalReader
	chat       ChatResponder
	classifier *intent.Classifier
	streams    *events.StreamManager
	publisher  events.Publisher
	runner     SpecialistRunner
	bus        Requester
	templates  *workflow.TemplateRegistry
}

// NewServer builds the server and registers all routes.
func NewServer(deps Deps) *Server {
	s := &Server{
		echo:       echo.New(),
		cfg:        deps.Config,
		db:         deps.DB,
		engine:     deps.Engine,
		workflows:  deps.Workflows,
		approvals:  deps.Approvals,
		chat:       deps.Chat,
		classifier: deps.Classifier,
		streams:    deps.Streams,
		publisher:  deps.Publisher,
		runner:     deps.Runner,
		bus:        deps.Bus,
		templates:  deps.Templates,
	}

	s.echo.Use(requestLogger())
	s.echo.Use(securityHeaders())
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	e := s.echo

	e.GET("/health", s.healthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/chat/stream", s.chatStreamHandler)
	e.POST("/execute/stream", s.executeStreamHandler)

	e.POST("/workflow/execute", s.executeWorkflowHandler)
	e.GET("/workflow/status/:id", s.workflowStatusHandler)
	e.POST("/workflow/resume/:id", s.resumeWorkflowHandler)
	e.POST("/workflow/cancel/:id", s.cancelWorkflowHandler)
	e.GET("/workflow/templates", s.listTemplatesHandler)

	e.GET("/approvals/:id", s.getApprovalHandler)
	e.POST("/approvals/:id", s.decideApprovalHandler)

	e.POST("/agent-request", s.agentRequestHandler)
}

// Echo exposes the router for tests.
func (s *Server) Echo() *echo.Echo { return s.echo }

// Start begins serving on the configured port. Blocks until the listener
// fails or Shutdown is called.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.System.Port)
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("API server listening", "addr", addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
