// Package cmd - serve command
package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpadapter "interest-calc/adapters/http"
	"interest-calc/core/engine"
	"interest-calc/internal/config"
	"interest-calc/internal/logging"
)

var serveAddr string

// serveCmd runs the JSON API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculator over HTTP",
	Long: `Serve POST /api/calculate with {"principal","rate","period"} bodies.

Examples:
  interest-calc serve
  interest-calc serve --addr 127.0.0.1:9090`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address; default from config")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	if err := cfg.Validate(); err != nil {
		return err
	}

	httpCfg := HTTPConfig(cfg)
	if serveAddr != "" {
		httpCfg.Address = serveAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info("starting interest-calc server",
		zap.String("version", Version),
		zap.String("addr", httpCfg.Address),
	)

	logger := logging.Named("http")
	a := httpadapter.New(engine.New(logging.Named("engine")), httpCfg, logger)
	return a.Run(ctx)
}

// HTTPConfig maps the file configuration onto the HTTP adapter settings
func HTTPConfig(cfg *config.Config) *httpadapter.Config {
	read, write, shutdown := cfg.Server.Timeouts()
	httpCfg := httpadapter.DefaultConfig()
	httpCfg.Address = cfg.Server.Address
	httpCfg.ReadTimeout = read
	httpCfg.WriteTimeout = write
	httpCfg.ShutdownTimeout = shutdown
	httpCfg.AllowedOrigins = cfg.Server.AllowedOrigins
	httpCfg.Version = Version
	return httpCfg
}
