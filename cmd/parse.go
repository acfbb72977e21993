package cmd

import (
	"path/filepath"
	"strconv"

	"github.com/openmediastation/mediaserver/pkg/library"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var parseCmd = &cobra.Command{
	Use:   "parse <path>...",
	Short: "show how paths are read without touching the inventory",
	Long: `parse classifies each path by its category folder and prints the title, year,
season and episode discovery would use. Relative paths are taken from the media root.

Example:
  mediaserver parse "Movies/Heat (1995)/Heat (1995).mkv"
  mediaserver parse --root /srv/media /srv/media/Shows/Lost/Season\ 1/Lost.S01E01.mkv`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root, _ := cmd.Flags().GetString("root")
		if root == "" {
			root = viper.GetString("library.mediaDir")
		}

		table := pterm.TableData{{"Path", "Category", "Title", "Year", "Season", "Episode", "Version"}}
		failed := 0
		for _, arg := range args {
			path := arg
			if !filepath.IsAbs(path) {
				path = filepath.Join(root, path)
			}

			p, err := library.Parse(path, root)
			if err != nil {
				failed++
				pterm.Warning.Printf("%s: %s\n", arg, err)
				continue
			}
			table = append(table, parsedRow(arg, p))
		}

		if len(table) > 1 {
			pterm.DefaultTable.WithHasHeader().WithData(table).Render()
		}
		if failed > 0 {
			pterm.Error.Printf("%d of %d paths could not be parsed\n", failed, len(args))
		}
	},
}

func parsedRow(arg string, p library.Parsed) []string {
	row := []string{arg, string(p.Category), p.Title, optionalInt(p.Year), "", "", p.Version}
	if p.Show != nil {
		row[2] = p.Show.Title
		row[3] = optionalInt(p.Show.Year)
		row[4] = strconv.Itoa(p.Show.Season)
		row[5] = strconv.Itoa(p.Show.Episode)
	}
	return row
}

func optionalInt(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().String("root", "", "media root (default: library.mediaDir)")
}
