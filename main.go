package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/postboard/internal/config"
	"github.com/msomdec/postboard/internal/domain"
	"github.com/msomdec/postboard/internal/handler"
	"github.com/msomdec/postboard/internal/repository/postgres"
	"github.com/msomdec/postboard/internal/repository/sqlite"
	"github.com/msomdec/postboard/internal/service"
)

func main() {
	logOpts := &slog.HandlerOptions{Level: slog.LevelInfo}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := openStore(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	authService := service.NewAuthService(store.Users(), service.NewBcryptHasher(cfg.BcryptCost))

	if len(os.Args) > 1 && os.Args[1] == "promote" {
		if err := runPromote(context.Background(), authService, os.Args[2:]); err != nil {
			slog.Error("promote", "error", err)
			store.Close()
			os.Exit(1)
		}
		return
	}

	authz := service.NewAuthorizer()
	svc := handler.Services{
		Auth:    authService,
		Tokens:  service.NewTokenService(cfg.JWTSecret),
		Content: service.NewContentService(store.Posts(), store.Comments(), store.Users(), authz),
		Authz:   authz,
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, svc)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.Wrap(mux),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openStore picks Postgres when DATABASE_URL is set and SQLite otherwise.
func openStore(ctx context.Context, cfg config.Config) (domain.Store, error) {
	if cfg.UsePostgres() {
		slog.Info("using postgres backend")
		db, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return db, nil
	}
	slog.Info("using sqlite backend", "path", cfg.DatabasePath)
	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// runPromote implements `postboard promote -username NAME -role ROLE`.
func runPromote(ctx context.Context, auth *service.AuthService, args []string) error {
	fs := flag.NewFlagSet("promote", flag.ContinueOnError)
	username := fs.String("username", "", "user to update")
	role := fs.String("role", string(domain.RoleAdmin), "new role: reader, author or admin")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		return fmt.Errorf("-username is required")
	}

	user, err := auth.AssignRoleByUsername(ctx, *username, *role)
	if err != nil {
		return err
	}
	slog.Info("role updated", "user_id", user.ID, "username", user.Username, "role", user.Role)
	return nil
}
