package main

import (
	"go.uber.org/zap"

	"github.com/psylines/psy-lines-backend/internal/api"
	"github.com/psylines/psy-lines-backend/internal/config"
	"github.com/psylines/psy-lines-backend/internal/server"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync() //nolint:errcheck

	mustRun(config.Default(), logger)
}

// mustRun exits the process with status 1 when run fails; the error is
// written to stderr by the production logger.
func mustRun(cfg *config.Config, logger *zap.Logger) {
	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// run binds cfg.BindAddr and serves until the listener fails.
// There is no signal-driven drain.
func run(cfg *config.Config, logger *zap.Logger) error {
	srv, err := server.Listen(cfg, api.NewRouter(logger), logger)
	if err != nil {
		return err
	}
	return srv.Serve()
}
