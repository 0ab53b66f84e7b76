package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/devsprint/devsprint-api/internal/config"
	"github.com/devsprint/devsprint-api/internal/platform/postgres"
	"github.com/devsprint/devsprint-api/internal/service"
	"github.com/devsprint/devsprint-api/internal/service/auth"
	"github.com/devsprint/devsprint-api/internal/store"
)

// application holds all the dependencies for our application.
// This approach centralizes dependency management and makes testing easier.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	userStore       store.UserStore
	projectStore    store.ProjectStore
	membershipStore store.MembershipStore
	taskStore       store.TaskStore

	// Services
	userService    service.UserService
	projectService service.ProjectService
	taskService    service.TaskService
	jwtService     auth.JWTService
	hasher         auth.PasswordHasher
}

// newApplication wires stores, services and auth components around db.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if db == nil {
		return nil, fmt.Errorf("database connection cannot be nil")
	}

	userStore := postgres.NewPostgresUserStore(db, logger)
	projectStore := postgres.NewPostgresProjectStore(db, logger)
	membershipStore := postgres.NewPostgresMembershipStore(db, logger)
	taskStore := postgres.NewPostgresTaskStore(db, logger)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	userService, err := service.NewUserService(userStore, hasher, db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	projectService, err := service.NewProjectService(
		db, userStore, projectStore, membershipStore, taskStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create project service: %w", err)
	}

	taskService, err := service.NewTaskService(
		db, userStore, projectStore, membershipStore, taskStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	return &application{
		config:          cfg,
		logger:          logger,
		db:              db,
		userStore:       userStore,
		projectStore:    projectStore,
		membershipStore: membershipStore,
		taskStore:       taskStore,
		userService:     userService,
		projectService:  projectService,
		taskService:     taskService,
		jwtService:      jwtService,
		hasher:          hasher,
	}, nil
}

// Run builds the router and serves HTTP until ctx is canceled.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()
	return app.startHTTPServer(ctx, router)
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", slog.Any("error", err))
		}
	}
}
