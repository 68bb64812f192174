package main

import (
	"context"
	"log"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/assignment-board/api/handler"
	"github.com/fastygo/assignment-board/api/view"
	"github.com/fastygo/assignment-board/internal/config"
	"github.com/fastygo/assignment-board/internal/infrastructure/journal"
	"github.com/fastygo/assignment-board/internal/infrastructure/monitor"
	redisInfra "github.com/fastygo/assignment-board/internal/infrastructure/redis"
	upstreamInfra "github.com/fastygo/assignment-board/internal/infrastructure/upstream"
	"github.com/fastygo/assignment-board/internal/middleware"
	"github.com/fastygo/assignment-board/internal/router"
	"github.com/fastygo/assignment-board/internal/services"
	"github.com/fastygo/assignment-board/internal/services/lifecycle"
	"github.com/fastygo/assignment-board/pkg/httpcontext"
	"github.com/fastygo/assignment-board/pkg/logger"
	"github.com/fastygo/assignment-board/repository"
	boltRepo "github.com/fastygo/assignment-board/repository/bolt"
	memoryRepo "github.com/fastygo/assignment-board/repository/memory"
	redisRepo "github.com/fastygo/assignment-board/repository/redis"
	upstreamRepo "github.com/fastygo/assignment-board/repository/upstream"
	boardUC "github.com/fastygo/assignment-board/usecase/board"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	redisClient, err := redisInfra.NewClient(appCtx, cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}

	var flashes repository.FlashRepository
	if redisClient != nil {
		manager.Register("redis", func(ctx context.Context) error {
			return redisClient.Close()
		})
		flashes = redisRepo.NewFlashRepository(redisClient, cfg.Flash.TTL)
		zapLogger.Info("flash notices stored in redis")
	} else {
		flashes = memoryRepo.NewFlashRepository(cfg.Flash.TTL)
		zapLogger.Info("flash notices stored in memory")
	}

	journalStore, err := journal.Open(cfg.Journal.Path, "activity")
	if err != nil {
		zapLogger.Fatal("failed to open activity journal", zap.Error(err))
	}
	manager.Register("journal", func(ctx context.Context) error {
		return journalStore.Close()
	})
	activityRepo := boltRepo.NewActivityRepository(journalStore)

	pruner := services.NewJournalPruner(activityRepo, zapLogger, services.PrunerConfig{
		Interval:  cfg.Journal.PruneInterval,
		Retention: cfg.JournalRetention(),
	})
	pruner.Start()
	manager.Register("journal_pruner", func(ctx context.Context) error {
		pruner.Stop(ctx)
		return nil
	})

	httpClient := upstreamInfra.NewClient(cfg.Upstream)
	manager.Register("upstream_client", func(ctx context.Context) error {
		httpClient.CloseIdleConnections()
		return nil
	})
	assignmentRepo := upstreamRepo.NewAssignmentRepository(
		httpClient,
		cfg.Upstream.URL,
		upstreamInfra.NewTokenSource(cfg.Upstream),
		cfg.Upstream.Timeout,
	)

	probeURL := strings.TrimRight(cfg.Upstream.URL, "/") + "/api/assignments"
	mon := monitor.New(func(ctx context.Context) bool {
		return upstreamInfra.Ping(ctx, httpClient, probeURL)
	}, redisClient, journalStore, cfg.Monitor.Interval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	boardUseCase := boardUC.New(assignmentRepo, activityRepo, zapLogger, cfg.View.LabelLayout)

	viewOpts := view.Options{
		Title:        cfg.View.Title,
		DateLayout:   cfg.View.DateLayout,
		DeleteStyle:  view.DeleteStyle(cfg.View.DeleteStyle),
		DeferredLoad: cfg.View.DeferredLoad,
		AddURL:       cfg.View.AddURL,
		HelpURL:      cfg.View.HelpURL,
	}

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Board:    apiHandler.NewBoardHandler(boardUseCase, flashes, viewOpts, ctxAdapter, zapLogger),
		Pages:    apiHandler.NewPagesHandler(viewOpts, ctxAdapter, zapLogger),
		Activity: apiHandler.NewActivityHandler(boardUseCase, ctxAdapter, zapLogger),
		Health:   apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	r := router.New(handlers, middleware.AccessLog(zapLogger))

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started",
			zap.String("address", cfg.Address()),
			zap.String("upstream", cfg.Upstream.URL),
		)
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.ShutdownWithContext(ctx)
	})

	zapLogger.Info("shutdown hooks registered", zap.Strings("components", manager.Components()))

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
