package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/cache"
	"github.com/fhuszti/portfolio-ms-go/internal/config"
	"github.com/fhuszti/portfolio-ms-go/internal/db"
	"github.com/fhuszti/portfolio-ms-go/internal/filestore"
	"github.com/fhuszti/portfolio-ms-go/internal/handler/api"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	cMiddleware "github.com/fhuszti/portfolio-ms-go/internal/middleware"
	"github.com/fhuszti/portfolio-ms-go/internal/optimiser"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/renderer"
	"github.com/fhuszti/portfolio-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/portfolio-ms-go/internal/storage"
	"github.com/fhuszti/portfolio-ms-go/internal/task"
	aboutSvc "github.com/fhuszti/portfolio-ms-go/internal/usecase/about"
	catalogSvc "github.com/fhuszti/portfolio-ms-go/internal/usecase/catalog"
	portfolioSvc "github.com/fhuszti/portfolio-ms-go/internal/usecase/portfolio"
	projectSvc "github.com/fhuszti/portfolio-ms-go/internal/usecase/project"
	"github.com/fhuszti/portfolio-ms-go/internal/usecase/reconcile"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)
	strg := initStorage(ctx, cfg)

	var ca port.Cache
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured, caching and deferred purges are disabled")
	}

	var opt port.FileOptimiser
	if cfg.ImageOptimise {
		opt = optimiser.NewFileOptimiser(optimiser.NewWebPEncoder(), optimiser.DefaultQuality, optimiser.DefaultMaxWidth)
	}
	files := filestore.New(strg, opt, cfg.MaxUploadSize)

	sqlDB := database.DB.DB
	skillRepo := mariadb.NewSkillRepository(sqlDB)
	sosmedRepo := mariadb.NewSosmedRepository(sqlDB)
	workRepo := mariadb.NewWorkExperienceRepository(sqlDB)
	projectRepo := mariadb.NewProjectRepository(sqlDB)
	aboutRepo := mariadb.NewAboutRepository(sqlDB)

	projectMedia := projectSvc.NewReconciler(files, dispatcher)
	aboutMedia := aboutSvc.NewReconciler(files, dispatcher)

	skills := catalogSvc.NewSkillManager(skillRepo, ca)
	sosmed := catalogSvc.NewSosmedManager(sosmedRepo, ca)
	works := catalogSvc.NewWorkExperienceManager(workRepo, ca)
	projectCreator := projectSvc.NewProjectCreator(projectRepo, projectMedia, ca)
	projectUpdater := projectSvc.NewProjectUpdater(projectRepo, projectMedia, ca)
	projectDeleter := projectSvc.NewProjectDeleter(projectRepo, projectMedia, ca)
	projectGetter := projectSvc.NewProjectGetter(projectRepo)
	abouts := aboutSvc.NewAboutManager(aboutRepo, aboutMedia, ca)
	portfolio := portfolioSvc.NewPortfolioGetter(aboutRepo, projectRepo)
	rendererSvc := renderer.NewHTTPRenderer(ca, cfg.PortfolioCacheTTL)

	r := initRouter(ctx)
	withID := cMiddleware.WithEntityID()

	// public
	r.Get("/portfolio", api.GetPortfolioHandler(rendererSvc, portfolio))
	r.Get("/skills", api.ListSkillsHandler(skills))
	r.Get("/sosmed", api.ListSosmedHandler(sosmed))
	r.Get("/work-experiences", api.ListWorkExperiencesHandler(works))
	r.Get("/projects", api.ListProjectsHandler(projectGetter))
	r.With(withID).Get("/projects/{id}", api.GetProjectHandler(projectGetter))
	r.Get("/projects/slug/{slug}", api.GetProjectBySlugHandler(projectGetter))
	r.Get("/about", api.ListAboutsHandler(abouts))
	for _, folder := range []string{reconcile.FolderThumbnails, reconcile.FolderGallery, reconcile.FolderProfile} {
		h := api.ServeMediaHandler(strg, folder)
		r.Get("/media/"+folder+"/*", h)
		r.Head("/media/"+folder+"/*", h)
	}
	r.Handle("/metrics", promhttp.Handler())

	// admin
	r.Group(func(r chi.Router) {
		r.Use(cMiddleware.WithAdminAuth(cfg.JWTPublicKey, cfg.JWTIssuer, cfg.JWTAudience))

		r.Post("/skills", api.CreateSkillHandler(skills))
		r.With(withID).Put("/skills/{id}", api.UpdateSkillHandler(skills))
		r.With(withID).Delete("/skills/{id}", api.DeleteSkillHandler(skills))

		r.Post("/sosmed", api.CreateSosmedHandler(sosmed))
		r.With(withID).Put("/sosmed/{id}", api.UpdateSosmedHandler(sosmed))
		r.With(withID).Delete("/sosmed/{id}", api.DeleteSosmedHandler(sosmed))

		r.Post("/work-experiences", api.CreateWorkExperienceHandler(works))
		r.With(withID).Put("/work-experiences/{id}", api.UpdateWorkExperienceHandler(works))
		r.With(withID).Delete("/work-experiences/{id}", api.DeleteWorkExperienceHandler(works))

		r.Post("/projects", api.CreateProjectHandler(projectCreator, requestLimit(cfg)))
		r.With(withID).Put("/projects/{id}", api.UpdateProjectHandler(projectUpdater, requestLimit(cfg)))
		r.With(withID).Delete("/projects/{id}", api.DeleteProjectHandler(projectDeleter))

		r.Post("/about", api.CreateAboutHandler(abouts, requestLimit(cfg)))
		r.With(withID).Put("/about/{id}", api.UpdateAboutHandler(abouts, requestLimit(cfg)))
		r.With(withID).Delete("/about/{id}", api.DeleteAboutHandler(abouts))
	})

	listenRouter(ctx, r, cfg, database, dispatcher)
}

// requestLimit bounds a whole multipart body: a project may carry a
// thumbnail and a full gallery.
func requestLimit(cfg *config.Settings) int64 {
	return cfg.MaxUploadSize * 20
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(ctx, cfg.MariaDB())
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cMiddleware.WithMetrics)

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	var strg port.Storage
	switch cfg.StorageDriver {
	case config.StorageLocal:
		logger.Infof(ctx, "initialising local storage in %q...", cfg.LocalStorageRoot)
		strg = storage.NewLocalStorage(cfg.LocalStorageRoot)
	default:
		logger.Infof(ctx, "initialising MinIO storage, bucket %q...", cfg.MinioBucket)
		m, err := storage.NewMinioStorage(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL, cfg.MinioBucket)
		if err != nil {
			logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
			os.Exit(1)
		}
		strg = m
	}

	if err := strg.Init(ctx); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize storage: %v", err)
		os.Exit(1)
	}
	return strg
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database, dispatcher port.TaskDispatcher) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if c, ok := dispatcher.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			logger.Warnf(ctx, "Task client close error: %v", err)
		}
	}
	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
