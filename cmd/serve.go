package cmd

import (
	"github.com/spf13/cobra"

	"choicefetch/src/app/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `The serve command starts the HTTP API. GET /v1/choices runs the query from
APP_CHOICES_QUERY through the database worker; /health and /health/detailed report liveness.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, log, client, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer closeClient(cfg, log, client)

		log.Info("starting application",
			"port", cfg.Server.Port,
			"log_level", cfg.Log.Level,
		)

		srv := server.New(cfg, log, client, client)

		// Run blocks until shutdown signal is received
		return srv.Run(ctx)
	},
}
