package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/DishForge_Go/internal/database"
	"github.com/osse101/DishForge_Go/internal/server"
)

// ShutdownComponents holds the components that need graceful shutdown
type ShutdownComponents struct {
	Server *server.Server
	Jobs   *BackgroundJobs // nil when no background jobs run
	Pool   database.Pool
}

// GracefulShutdown stops the HTTP server, letting in-flight requests finish, then stops
// background jobs and closes the pool.
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Jobs != nil {
		slog.Info(LogMsgStoppingBackgroundJobs)
		components.Jobs.Stop()
	}

	if components.Pool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.Pool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
