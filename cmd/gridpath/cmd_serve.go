package main

import (
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/runlog"
	"github.com/katalvlaran/gridpath/server"
)

func newServeCmd() *cobra.Command {
	var (
		addr   string
		dbPath string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and websocket API",
		Long:  "Run the HTTP and websocket API. Settings come from GRIDPATH_* variables; flags override them.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("db") {
				cfg.DBPath = dbPath
			}
			log := cfg.Logger()
			if cmd.Flags().Changed("log-level") || cmd.Flags().Changed("log-format") {
				log = logger
			}

			var runs *runlog.Store
			if cfg.DBPath != "" {
				runs, err = runlog.Open(cfg.DBPath)
				if err != nil {
					return err
				}
				defer runs.Close()
			}

			srv, err := server.New(server.Deps{
				Log:         log,
				Runs:        runs,
				CacheSize:   cfg.CacheSize,
				StreamDelay: cfg.StreamDelay,
				Workers:     cfg.Workers,
			})
			if err != nil {
				return err
			}

			listen := cfg.Addr()
			if addr != "" {
				listen = addr
			}
			log.WithFields(logrus.Fields{
				"cache_size": cfg.CacheSize,
				"db":         cfg.DBPath,
				"workers":    cfg.Workers,
			}).Info("starting gridpath server")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx, listen)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address host:port (default from GRIDPATH_LISTEN_HOST and GRIDPATH_PORT)")
	cmd.Flags().StringVar(&dbPath, "db", "", "History database path; empty disables recording")
	return cmd
}
