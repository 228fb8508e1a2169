package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/dontforgetsemicologne/task-flow/internal/adapter/db"
	httpadapter "github.com/dontforgetsemicologne/task-flow/internal/adapter/http"
	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/handlers"
	httpmiddleware "github.com/dontforgetsemicologne/task-flow/internal/adapter/http/middleware"
	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/routers"
	"github.com/dontforgetsemicologne/task-flow/internal/app/service"
	"github.com/dontforgetsemicologne/task-flow/internal/config"
	"github.com/dontforgetsemicologne/task-flow/pkg/translator"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}
	defer func() {
		if err := dbadapter.Close(db); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	sqlxDB, err := dbadapter.NewSQLX(db, cfg.DbDriver)
	if err != nil {
		logger.Fatal("failed to wrap database handle", zap.Error(err))
	}

	userRepository := dbadapter.NewUserRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	commentRepository := dbadapter.NewCommentRepository(db)
	teamRepository := dbadapter.NewTeamRepository(db)
	tagRepository := dbadapter.NewTagRepository(db)

	appRouter := routers.NewAppRouter(
		service.NewUserService(userRepository, taskRepository, teamRepository),
		service.NewTaskService(taskRepository, commentRepository),
		service.NewTeamService(teamRepository),
		service.NewTagService(tagRepository, taskRepository),
	)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}
	r.Use(gin.Recovery(), httpmiddleware.RequestIDMiddleware(), httpmiddleware.GinZapMiddleware(logger))

	healthHandler := handlers.NewHealthHandler(sqlxDB, len(appRouter.Procedures()))
	procedureHandler := handlers.NewProcedureHandler(appRouter)
	httpadapter.RegisterRoutes(r, healthHandler, procedureHandler)

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr), zap.Int("procedures", len(appRouter.Procedures())))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
