package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/pantrypal/pantrypal-go/internal/config"
	"github.com/pantrypal/pantrypal-go/internal/handler"
	"github.com/pantrypal/pantrypal-go/internal/middleware"
	"github.com/pantrypal/pantrypal-go/internal/repository"
	"github.com/pantrypal/pantrypal-go/internal/service"
	"github.com/pantrypal/pantrypal-go/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.Migrate(context.Background(), db); err != nil {
		slog.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	guestRepo := repository.NewGuestSessionRepository(db)
	pantryRepo := repository.NewPantryRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	codec := session.NewCodec(cfg.SessionSecret, cfg.SessionTTL)
	resolver := session.NewResolver(codec, userRepo, guestRepo)

	authService := service.NewAuthService(userRepo, guestRepo, cfg.GuestTTL)
	pantryService := service.NewPantryService(pantryRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo)

	authHandler := handler.NewAuthHandler(authService, codec, cfg.SessionTTL)
	pantryHandler := handler.NewPantryHandler(pantryService, cfg.SessionTTL)
	favoritesHandler := handler.NewFavoritesHandler(favoriteService, cfg.SessionTTL)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(resolver))

		r.Post("/api/v1/auth/signup", authHandler.HandleSignup)
		r.Post("/api/v1/auth/login", authHandler.HandleLogin)
		r.Post("/api/v1/auth/guest", authHandler.HandleGuestLogin)
		r.Post("/api/v1/auth/logout", authHandler.HandleLogout)
		r.Get("/api/v1/auth/me", authHandler.HandleMe)

		r.Put("/api/v1/account", authHandler.HandleUpdateAccount)
		r.Delete("/api/v1/account", authHandler.HandleDeleteAccount)

		r.Get("/api/v1/pantry", pantryHandler.HandleList)
		r.Post("/api/v1/pantry", pantryHandler.HandleAdd)
		r.Delete("/api/v1/pantry/{item_id}", pantryHandler.HandleRemove)

		r.Get("/api/v1/favorites", favoritesHandler.HandleList)
		r.Post("/api/v1/favorites", favoritesHandler.HandleSet)
	})

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sweepGuestSessions(sweepCtx, authService, cfg.SweepInterval)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// sweepGuestSessions periodically removes expired guest sessions until ctx is
// cancelled.
func sweepGuestSessions(ctx context.Context, svc *service.AuthService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := svc.SweepExpiredSessions(ctx)
			if err != nil {
				slog.Error("guest session sweep failed", "error", err)
				continue
			}
			if removed > 0 {
				slog.Info("guest session sweep", "removed", removed)
			}
		}
	}
}
