package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/task-management/internal/config"
	"github.com/adanyl0v/task-management/internal/delivery/http/v1"
	"github.com/adanyl0v/task-management/internal/services"
	"github.com/adanyl0v/task-management/internal/storage"
)

func MustListenAndServeHTTP() {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: newRouter(newTaskService()),
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Wait for the interrupt signal to gracefully shut down the server.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	globalLogger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}

// newTaskService wires the storages to the connected pool. Without a
// pool the service answers every call with services.ErrNotConfigured.
func newTaskService() services.TaskService {
	if globalPostgresPool == nil {
		return services.NewTaskService(globalLogger, nil, nil, nil)
	}

	return services.NewTaskService(
		globalLogger,
		storage.NewTaskStorage(globalPostgresPool),
		storage.NewArchiveStorage(globalPostgresPool),
		storage.NewLookupStorage(globalPostgresPool),
	)
}

func newRouter(taskService services.TaskService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	v1.RegisterRoutes(router, v1.New(globalLogger, taskService))
	return router
}
