package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/openmediastation/mediaserver/pkg/logger"
	"github.com/openmediastation/mediaserver/server"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the media server",
	Long:  `start the media server, watching the media root and serving the inventory api`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		ctx, stop := signal.NotifyContext(logger.WithCtx(context.Background(), log), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx)
		if err != nil {
			log.Fatal("failed to start", zap.Error(err))
		}
		defer a.Close()

		cfg := a.cfg
		g, ctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			return a.scanner.Run(ctx)
		})

		if cfg.Scanner.Watch {
			g.Go(func() error {
				return a.scanner.Watch(ctx, cfg.Scanner.Debounce)
			})
		}

		if cfg.Scanner.Schedule != "" {
			g.Go(func() error {
				return a.scanner.Schedule(ctx, cfg.Scanner.Schedule)
			})
		}

		srv := server.New(log, a.inventory, a.bin, a.metadata, a.scanner, cfg.Library.MediaDir)
		g.Go(func() error {
			return srv.Serve(ctx, cfg.Server.Port)
		})

		if cfg.Scanner.ScanOnStart {
			a.scanner.Trigger()
		}

		if err := g.Wait(); err != nil {
			log.Error("server stopped", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
