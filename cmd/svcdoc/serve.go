package main

import (
	"github.com/fedpa/svcdoc-go/internal/server"
	"github.com/fedpa/svcdoc-go/pkg/svcdoc"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the conversion API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = cfg.Server.Addr
			}
			h := server.NewHandler(server.Config{
				Options: svcdoc.Options{
					Template:    cfg.Convert.Template,
					Concurrency: cfg.Convert.Concurrency,
				},
				MaxUploadBytes: int64(cfg.Server.MaxUploadMB) << 20,
				AllowedOrigin:  cfg.Server.AllowedOrigin,
				Logger:         log,
			})
			return server.Run(cmd.Context(), addr, h, log)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return cmd
}
