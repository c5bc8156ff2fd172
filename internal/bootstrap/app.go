package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BoraOzcoban/sukoc/internal/analysis"
	"github.com/BoraOzcoban/sukoc/internal/analytics"
	"github.com/BoraOzcoban/sukoc/internal/catalog"
	"github.com/BoraOzcoban/sukoc/internal/engine"
	"github.com/BoraOzcoban/sukoc/internal/sessions"
	"github.com/BoraOzcoban/sukoc/internal/shared/config"
	"github.com/BoraOzcoban/sukoc/internal/shared/server"
	"github.com/BoraOzcoban/sukoc/internal/shared/storage/db"
)

// App holds shared dependencies, exposed so tests can reach into the wiring.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Catalog          *catalog.Catalog
	Calculator       *engine.Calculator
	SessionsRepo     sessions.Repo
	SessionsService  *sessions.Service
	AnalyticsService *analytics.Service
	SessionsHandler  *sessions.Handler
	AnalysisHandler  *analysis.Handler
	AnalyticsHandler *analytics.Handler
}

// Build prepares dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	cat, err := catalog.Load()
	if err != nil {
		return nil, err
	}
	calc := engine.New(cat)

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var sessionsRepo sessions.Repo
	if sqlDB != nil {
		sessionsRepo = &sessions.PGRepo{DB: sqlDB}
	} else {
		sessionsRepo = sessions.NewMemoryRepo()
	}

	sessionsSvc := &sessions.Service{Repo: sessionsRepo}
	analyticsSvc := &analytics.Service{Sessions: sessionsRepo, Calc: calc}

	app := &App{
		Config:           cfg,
		DB:               sqlDB,
		Catalog:          cat,
		Calculator:       calc,
		SessionsRepo:     sessionsRepo,
		SessionsService:  sessionsSvc,
		AnalyticsService: analyticsSvc,
		SessionsHandler:  &sessions.Handler{Service: sessionsSvc},
		AnalysisHandler:  &analysis.Handler{Calc: calc},
		AnalyticsHandler: &analytics.Handler{Service: analyticsSvc},
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config: cfg,
		Handlers: []server.RouteRegistrar{
			app.SessionsHandler,
			app.AnalysisHandler,
			app.AnalyticsHandler,
		},
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

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			_ = sqlDB.Close()
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
