package cmd

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/openmediastation/mediaserver/pkg/logger"
	"github.com/openmediastation/mediaserver/pkg/scanner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	envFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mediaserver",
	Short: "mediaserver cli",
	Long:  `mediaserver keeps an inventory of the movies, shows and books below a media root`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional file of environment overrides")
}

const (
	defaultMetadataBackoff = time.Second
	defaultMaxRetries      = 3
)

func initConfig() {
	// values already in the environment win over the file
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Get().Warn("failed to load env file", zap.String("path", envFile), zap.Error(err))
	}

	if _, err := os.Stat(cfgFile); err == nil {
		viper.SetConfigFile(cfgFile)
	}

	viper.SetEnvPrefix("MEDIASERVER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("library.mediaDir", "/media")
	viper.SetDefault("library.configDir", "/config")

	viper.SetDefault("storage.driver", "json")
	viper.SetDefault("storage.filePath", "")

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("scanner.watch", true)
	viper.SetDefault("scanner.debounce", scanner.DefaultDebounce)
	viper.SetDefault("scanner.schedule", "")
	viper.SetDefault("scanner.scanOnStart", true)

	viper.SetDefault("metadata.omdb.scheme", "https")
	viper.SetDefault("metadata.omdb.host", "www.omdbapi.com")
	viper.SetDefault("metadata.omdb.apiKey", "")
	viper.SetDefault("metadata.omdb.backoff", defaultMetadataBackoff)
	viper.SetDefault("metadata.omdb.maxRetries", defaultMaxRetries)

	viper.SetDefault("metadata.googleBooks.scheme", "https")
	viper.SetDefault("metadata.googleBooks.host", "www.googleapis.com")
	viper.SetDefault("metadata.googleBooks.apiKey", "")
}
