package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/openmediastation/mediaserver/pkg/inventory"
	"github.com/openmediastation/mediaserver/pkg/logger"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "inspect the inventory",
}

var binCmd = &cobra.Command{
	Use:   "bin",
	Short: "inspect items whose files disappeared",
}

func kindArg(arg string) (inventory.Kind, error) {
	kind, ok := inventory.ParseKind(arg)
	if !ok {
		return "", fmt.Errorf("unknown category %q", arg)
	}
	return kind, nil
}

func renderItems(items []inventory.Item) {
	table := pterm.TableData{{"ID", "Title", "Versions", "Addons", "Metadata"}}
	for _, item := range items {
		meta := ""
		if item.MetadataID != nil {
			meta = item.MetadataID.String()
		}
		table = append(table, []string{
			item.ID.String(),
			item.Title,
			strconv.Itoa(len(item.Versions)),
			strconv.Itoa(len(item.Addons)),
			meta,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(table).Render()
}

var inventoryListCmd = &cobra.Command{
	Use:   "list <category>",
	Short: "list the items of a category",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		kind, err := kindArg(args[0])
		if err != nil {
			log.Fatal(err.Error())
		}

		a, err := newApp(ctx)
		if err != nil {
			log.Fatal("failed to start", zap.Error(err))
		}
		defer a.Close()

		items, err := a.inventory.ListItems(ctx, kind)
		if err != nil {
			log.Fatal("failed to list items", zap.Error(err))
		}
		renderItems(items)
	},
}

var inventoryGetCmd = &cobra.Command{
	Use:   "get <category> <id>",
	Short: "print one item as json",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		kind, err := kindArg(args[0])
		if err != nil {
			log.Fatal(err.Error())
		}
		id, err := uuid.Parse(args[1])
		if err != nil {
			log.Fatal("invalid item id", zap.Error(err))
		}

		a, err := newApp(ctx)
		if err != nil {
			log.Fatal("failed to start", zap.Error(err))
		}
		defer a.Close()

		item, err := a.inventory.GetItem(ctx, kind, id)
		if err != nil {
			log.Fatal("failed to get item", zap.Error(err))
		}

		b, err := json.MarshalIndent(item, "", "  ")
		if err != nil {
			log.Fatal("failed to encode item", zap.Error(err))
		}
		fmt.Println(string(b))
	},
}

var binListCmd = &cobra.Command{
	Use:   "list <category>",
	Short: "list the binned items of a category",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		kind, err := kindArg(args[0])
		if err != nil {
			log.Fatal(err.Error())
		}

		a, err := newApp(ctx)
		if err != nil {
			log.Fatal("failed to start", zap.Error(err))
		}
		defer a.Close()

		items, err := a.bin.ListItems(ctx, kind)
		if err != nil {
			log.Fatal("failed to list binned items", zap.Error(err))
		}
		renderItems(items)
	},
}

func init() {
	inventoryCmd.AddCommand(inventoryListCmd)
	inventoryCmd.AddCommand(inventoryGetCmd)
	binCmd.AddCommand(binListCmd)
	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(binCmd)
}
