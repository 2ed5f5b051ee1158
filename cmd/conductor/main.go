// Conductor orchestrator server: HTTP API, workflow engine, lock manager,
// agent registry, and the inter-agent event bus.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/conductorhq/conductor/pkg/api"
	"github.com/conductorhq/conductor/pkg/bus"
	"github.com/conductorhq/conductor/pkg/chat"
	"github.com/conductorhq/conductor/pkg/cleanup"
	"github.com/conductorhq/conductor/pkg/config"
	"github.com/conductorhq/conductor/pkg/database"
	"github.com/conductorhq/conductor/pkg/dispatch"
	"github.com/conductorhq/conductor/pkg/events"
	"github.com/conductorhq/conductor/pkg/intent"
	"github.com/conductorhq/conductor/pkg/locks"
	"github.com/conductorhq/conductor/pkg/mcp"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/registry"
	"github.com/conductorhq/conductor/pkg/services"
	"github.com/conductorhq/conductor/pkg/version"
	"github.com/conductorhq/conductor/pkg/workflow"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := workflow.PodID()
	slog.Info("Starting Conductor",
		"version", version.Full(),
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	stats := cfg.Stats()
	slog.Info("Configuration loaded",
		"specialists", stats.Specialists,
		"llm_providers", stats.LLMProviders,
		"chain_length", stats.ChainLength)

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. State store services
	workflowService := services.NewWorkflowService(dbClient.Client)
	approvalService := services.NewApprovalService(dbClient.Client)
	mappingService := services.NewMappingService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)

	// 4. Workflow templates
	templates, err := workflow.LoadTemplateDir(cfg.TemplatesDir())
	if err != nil {
		slog.Error("Failed to load workflow templates", "error", err)
		os.Exit(1)
	}
	slog.Info("Workflow templates loaded", "templates", templates.Names())

	// 5. Agent registry + health evaluator
	policy := registry.HealthPolicy{
		Grace: cfg.Registry.HeartbeatGrace,
		Gone:  cfg.Registry.GoneGrace,
	}
	agentRegistry, err := registry.NewFromEnv(ctx, cfg.System.AgentRegistryURL, policy)
	if err != nil {
		slog.Error("Failed to initialize agent registry", "error", err)
		os.Exit(1)
	}
	defer agentRegistry.Close()

	// 6. Event bus
	eventBus, err := bus.NewFromEnv(cfg.System.EventBusURL, agentRegistry)
	if err != nil {
		slog.Error("Failed to initialize event bus", "error", err)
		os.Exit(1)
	}
	defer eventBus.Close()

	// Health transitions are announced on the bus so subscribed operators and
	// agents observe them without polling.
	evaluator := registry.NewEvaluator(agentRegistry, cfg.Registry.EvalInterval,
		func(agentID string, from, to models.AgentStatus) {
			_ = eventBus.Publish(ctx, "registry", &bus.Event{
				Type:        "agent.health_changed",
				SourceAgent: "orchestrator",
				Payload: map[string]any{
					"agent_id": agentID,
					"from":     string(from),
					"to":       string(to),
				},
				EmittedAt: time.Now().UTC(),
			})
		})
	evaluator.Start(ctx)
	defer evaluator.Stop()

	// The orchestrator registers itself so peer pods can route agent requests
	// to this instance over HTTP.
	if err := agentRegistry.Register(ctx, &models.AgentProfile{
		ID:      "orchestrator",
		BaseURL: cfg.System.OrchestratorURL,
		Capabilities: []models.Capability{
			{Name: "orchestrate", Tags: []string{"workflow", "routing"}},
		},
	}); err != nil {
		slog.Error("Failed to register orchestrator profile", "error", err)
		os.Exit(1)
	}

	// 7. Resource lock manager + sweeper
	lockManager := locks.NewManager(dbClient.Client, locks.Options{
		DefaultLease: cfg.Locks.Lease(),
	})
	sweeper := locks.NewSweeper(lockManager, cfg.Locks.SweepInterval)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	// 8. LLM client
	llmClient, err := cfg.BuildLLMClient()
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}
	slog.Info("LLM client initialized", "chain_length", stats.ChainLength)

	// 9. Tool catalog + selector
	var catalog *mcp.Catalog
	if cfg.System.ToolRegistryURL != "" {
		catalog, err = mcp.NewCatalogFromRegistry(ctx, cfg.System.ToolRegistryURL)
		if err != nil {
			slog.Error("Failed to load tool catalog from registry",
				"url", cfg.System.ToolRegistryURL, "error", err)
			os.Exit(1)
		}
	} else if cfg.ToolCatalog != nil {
		catalog = mcp.NewStaticCatalog(cfg.ToolCatalog.Version, cfg.ToolCatalog.Servers)
	}
	selector := mcp.NewSelector(cfg.Selector)
	if catalog != nil {
		slog.Info("Tool catalog loaded", "version", catalog.Version())
	}

	// 10. Streaming infrastructure: PG NOTIFY fan-out with catchup replay
	streamManager := events.NewStreamManager(events.NewEventServiceAdapter(eventService))
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), streamManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	streamManager.SetListener(notifyListener)
	publisher := events.NewNotifyPublisher(dbClient.DB())
	slog.Info("Streaming infrastructure initialized")

	// 11. Specialist runner and conversational handler
	runner := dispatch.NewRunner(eventBus, lockManager, selector, catalog, dispatch.Options{
		SourceAgent:    "orchestrator",
		RequestTimeout: cfg.Bus.RequestTimeout(),
		LockLease:      cfg.Locks.Lease(),
		LockWait:       cfg.Locks.Wait(),
	})
	chatHandler := chat.NewHandler(llmClient, publisher, selector, catalog, cfg.Engine.LLMTimeout())

	// 12. Workflow engine + orphan recovery
	engine := workflow.NewEngine(
		workflowService, approvalService, runner, llmClient,
		publisher, eventBus, templates, mappingService,
		workflow.Options{
			LLMTimeout:        cfg.Engine.LLMTimeout(),
			Heartbeater:       workflowService,
			HeartbeatInterval: cfg.Engine.HeartbeatInterval,
		},
	)
	recovery := workflow.NewRecovery(workflowService, engine, podID,
		cfg.Engine.OrphanScanInterval, cfg.Engine.OrphanThreshold)
	recovery.Start(ctx)
	defer recovery.Stop()

	// 13. Retention
	retention := cleanup.NewService(cfg.Retention, workflowService, eventService)
	retention.Start(ctx)
	defer retention.Stop()

	// 14. HTTP server
	server := api.NewServer(api.Deps{
		Config:     cfg,
		DB:         dbClient,
		Engine:     engine,
		Workflows:  workflowService,
		Approvals:  approvalService,
		Chat:       chatHandler,
		Classifier: intent.NewClassifier(cfg.Intent),
		Streams:    streamManager,
		Publisher:  publisher,
		Runner:     runner,
		Bus:        eventBus,
		Templates:  templates,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			errCh <- err
		}
	}()

	slog.Info("Conductor started", "pod_id", podID, "port", cfg.System.Port)

	// 15. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 16. Graceful shutdown: stop taking requests first, then stop the
	// background services via the deferred Stops. In-flight workflows left
	// running are orphan-recovered by the next pod.
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	if err := agentRegistry.Deregister(ctx, "orchestrator"); err != nil {
		slog.Warn("Failed to deregister orchestrator profile", "error", err)
	}

	slog.Info("Shutdown complete")
}
