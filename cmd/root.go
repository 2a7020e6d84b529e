// Package cmd provides the command-line interface for choicefetch.
// It wires configuration, logging and the choices client together and exposes
// them as cobra subcommands.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"choicefetch/src/infra/actor"
	"choicefetch/src/infra/config"
	"choicefetch/src/infra/logger"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "choicefetch",
	Short:         "Serve (identifier, description) choices from a SQL database",
	Long:          `choicefetch runs choices queries through a single database worker that owns the connection pool. The connection string is read from DSN.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(choicesCmd)
}

// bootstrap loads configuration, builds the logger and starts the client.
// Any failure here is fatal for the process.
func bootstrap(ctx context.Context) (*config.Config, *slog.Logger, *actor.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	log := logger.New(cfg.Log)
	log.Debug("running", "dsn", redact(cfg.Database.DSN))

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
	defer cancel()

	client, err := actor.New(connectCtx, cfg.Database.DSN, actor.Options{
		QueueCapacity: cfg.Client.QueueCapacity,
		Log:           log,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, log, client, nil
}

// closeClient drains the worker within the configured shutdown timeout.
func closeClient(cfg *config.Config, log *slog.Logger, client *actor.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := client.Close(ctx); err != nil {
		log.Warn("client did not drain cleanly", "error", err)
	}
	log.Debug("done")
}

// redact hides the password of URL-shaped connection strings.
func redact(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	return u.Redacted()
}
