package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/openmediastation/mediaserver/pkg/logger"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "scan the media root once",
	Long:  `enumerate the media root, move deleted items to the bin and discover every media file`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx, stop := signal.NotifyContext(logger.WithCtx(context.Background(), log), os.Interrupt)
		defer stop()

		a, err := newApp(ctx)
		if err != nil {
			log.Fatal("failed to start", zap.Error(err))
		}
		defer a.Close()

		result, err := a.scanner.ActiveScan(ctx)
		if err != nil {
			pterm.Error.Println(err.Error())
			return
		}

		pterm.Success.Printf("Scan finished %s\n", humanize.Time(result.StartedAt))
		pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
			{"Discovered", "Failed", "Skipped", "Duration"},
			{
				humanize.Comma(int64(result.Discovered)),
				humanize.Comma(int64(result.Failed)),
				humanize.Comma(int64(result.Skipped)),
				result.Duration.String(),
			},
		}).Render()
	},
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "move items whose files are gone to the bin",
	Long:  `compare the inventory with the media root and bin items that have no version left`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx, stop := signal.NotifyContext(logger.WithCtx(context.Background(), log), os.Interrupt)
		defer stop()

		a, err := newApp(ctx)
		if err != nil {
			log.Fatal("failed to start", zap.Error(err))
		}
		defer a.Close()

		present, err := a.library.FindMedia(ctx)
		if err != nil {
			log.Fatal("failed to enumerate media", zap.Error(err))
		}

		if err := a.discoverer.MoveToBinIfDeleted(ctx, present); err != nil {
			pterm.Error.Println(err.Error())
			return
		}
		pterm.Success.Printf("Reconciled against %s media files\n", humanize.Comma(int64(present.Len())))
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(reconcileCmd)
}
