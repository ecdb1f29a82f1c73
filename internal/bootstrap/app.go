package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"youth-policy-backend/internal/explain"
	"youth-policy-backend/internal/llm"
	"youth-policy-backend/internal/llm/openai"
	"youth-policy-backend/internal/matching"
	"youth-policy-backend/internal/orchestrator"
	"youth-policy-backend/internal/policies"
	"youth-policy-backend/internal/profiles"
	"youth-policy-backend/internal/server"
	"youth-policy-backend/internal/services/health"
	"youth-policy-backend/internal/sessions"
	"youth-policy-backend/internal/shared/config"
	"youth-policy-backend/internal/shared/storage/db"
)

// App holds the wired dependency graph.
type App struct {
	Config       config.Config
	Router       *gin.Engine
	DB           *sql.DB
	ProfilesRepo profiles.Repo
	PoliciesRepo policies.Repo
	SessionsRepo sessions.Repo
	Gateway      *policies.Gateway
	Engine       matching.Engine
	LLM          llm.Client
	Generator    *explain.Generator
	Orchestrator *orchestrator.Orchestrator
}

// Build wires repositories, services, handlers and the router. Without a
// database the app still serves: profiles and sessions fall back to
// in-memory repositories and policies to the embedded catalog.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Engine: matching.NewEngine(),
	}

	if sqlDB != nil {
		app.ProfilesRepo = &profiles.PGRepo{DB: sqlDB}
		app.PoliciesRepo = &policies.PGRepo{DB: sqlDB}
		app.SessionsRepo = &sessions.PGRepo{DB: sqlDB}
	} else {
		app.ProfilesRepo = profiles.NewMemoryRepo()
		app.SessionsRepo = sessions.NewMemoryRepo()
		// PoliciesRepo stays nil: the gateway serves the fallback
		// catalog and reports the fetch as degraded.
	}

	app.Gateway = policies.NewGateway(app.PoliciesRepo)
	app.LLM = buildLLM(cfg)
	app.Generator = explain.NewGenerator(
		app.LLM,
		cfg.ExplainConcurrency,
		time.Duration(cfg.ExplainTimeoutSeconds)*time.Second,
	)

	profilesService := &profiles.Service{Repo: app.ProfilesRepo}
	app.Orchestrator = orchestrator.New(
		profilesService,
		app.Gateway,
		app.Engine,
		app.Generator,
		app.SessionsRepo,
	)

	app.Router = server.NewEngine(cfg, server.Handlers{
		Profiles:     profiles.NewHandler(profilesService),
		Policies:     policies.NewHandler(app.Gateway),
		Matching:     matching.NewHandler(app.Gateway, app.Engine),
		Explain:      explain.NewHandler(app.Generator),
		Sessions:     sessions.NewHandler(app.SessionsRepo),
		Orchestrator: orchestrator.NewHandler(app.Orchestrator),
		Health:       health.NewService(app.Gateway),
		Gateway:      app.Gateway,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildLLM(cfg config.Config) llm.Client {
	if cfg.LLMProvider != "openai" {
		return llm.Disabled{}
	}
	client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
	if err != nil {
		log.Printf("bootstrap: llm disabled: %v", err)
		return llm.Disabled{}
	}
	return client
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
