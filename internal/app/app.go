package app

import (
	"context"
	"net/http"
	"time"

	"github.com/dxbsouq/souq-backend/internal/auth/password"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	authdb "github.com/dxbsouq/souq-backend/internal/auth/db"
	authhandler "github.com/dxbsouq/souq-backend/internal/auth/handler"
	jwtauth "github.com/dxbsouq/souq-backend/internal/auth/jwt"
	authservice "github.com/dxbsouq/souq-backend/internal/auth/service"
	catalogcache "github.com/dxbsouq/souq-backend/internal/catalog/cache"
	catalogdb "github.com/dxbsouq/souq-backend/internal/catalog/db"
	cataloghandler "github.com/dxbsouq/souq-backend/internal/catalog/handler"
	catalogservice "github.com/dxbsouq/souq-backend/internal/catalog/service"
	"github.com/dxbsouq/souq-backend/internal/config"
	draftdb "github.com/dxbsouq/souq-backend/internal/draft/db"
	drafthandler "github.com/dxbsouq/souq-backend/internal/draft/handler"
	draftservice "github.com/dxbsouq/souq-backend/internal/draft/service"
	"github.com/dxbsouq/souq-backend/internal/location"
	locationhandler "github.com/dxbsouq/souq-backend/internal/location/handler"
	publishpg "github.com/dxbsouq/souq-backend/internal/publish/postgresql"
	pgclient "github.com/dxbsouq/souq-backend/pkg/client/postgresql"
	redisclient "github.com/dxbsouq/souq-backend/pkg/client/redis"

	_ "github.com/dxbsouq/souq-backend/docs"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type App struct {
	HTTPServer *http.Server
}

func NewApp(log *zap.Logger, cfg config.Config) *App {
	pgClient, err := pgclient.NewClient(
		context.TODO(),
		pgclient.Config{
			Username: cfg.PostgreSQL.Username,
			Password: cfg.PostgreSQL.Password,
			Host:     cfg.PostgreSQL.Host,
			Port:     cfg.PostgreSQL.Port,
			Database: cfg.PostgreSQL.Database,
		},
	)
	if err != nil {
		log.Fatal(err.Error())
	}

	redisClient, err := redisclient.New(
		context.TODO(),
		redisclient.Config{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
	)
	if err != nil {
		log.Fatal(err.Error())
	}

	router := chi.NewRouter()

	router.Use(
		LoggingMiddleware(log),
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.HTTPServer.AllowedOrigins,
			AllowCredentials: true,
		}),
		middleware.Recoverer,
	)

	router.Get("/swagger/*", httpSwagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", PingHandler)

		catalogRepository := catalogdb.New(pgClient, log)

		store, err := catalogservice.LoadStore(context.TODO(), catalogRepository)
		if err != nil {
			log.Fatal("failed to load catalog", zap.Error(err))
		}

		listingCache := catalogcache.New(redisClient)

		catalogService := catalogservice.New(store, catalogRepository, listingCache, log)

		tokenManager := jwtauth.NewManager(cfg.JWT)

		passwordManager := password.New(log)

		authRepository := authdb.New(pgClient, log)

		authService := authservice.New(authRepository, passwordManager, tokenManager, log)

		authMiddleware := jwtauth.NewMiddleware(log, tokenManager)

		locationStore := location.NewStore()

		draftRepository := draftdb.New(pgClient, log)

		publishGateway := publishpg.New(pgClient, log)

		draftService := draftservice.New(draftRepository, publishGateway, log)

		log.Info("register auth handlers")

		authhandler.New(authService, log).Register(r)

		log.Info("register catalog handlers")

		cataloghandler.New(catalogService, log).Register(r)

		log.Info("register location handlers")

		locationhandler.New(locationStore, authMiddleware, log).Register(r)

		log.Info("register draft handlers")

		drafthandler.New(draftService, authMiddleware, log).Register(r)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		HTTPServer: srv,
	}
}

func (a *App) MustRun() {
	if err := a.HTTPServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		panic("failed to start server")
	}
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.HTTPServer.Shutdown(ctx)
}

func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote", r.RemoteAddr),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// @Tags		other
// @Success	200		{string}	string
// @Failure	400,500	{object}	apperror.AppError
// @Router		/ping [get]
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}
