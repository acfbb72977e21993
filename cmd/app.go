package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/openmediastation/mediaserver/config"
	"github.com/openmediastation/mediaserver/pkg/addon"
	"github.com/openmediastation/mediaserver/pkg/discovery"
	"github.com/openmediastation/mediaserver/pkg/fileinfo"
	mhttp "github.com/openmediastation/mediaserver/pkg/http"
	mio "github.com/openmediastation/mediaserver/pkg/io"
	"github.com/openmediastation/mediaserver/pkg/library"
	"github.com/openmediastation/mediaserver/pkg/metadata"
	"github.com/openmediastation/mediaserver/pkg/scanner"
	"github.com/openmediastation/mediaserver/pkg/storage"
	"github.com/openmediastation/mediaserver/pkg/storage/jsonfile"
	"github.com/openmediastation/mediaserver/pkg/storage/sqlite"
	"github.com/spf13/viper"
)

// app holds the wired components every command builds on
type app struct {
	cfg        config.Config
	docs       storage.DocumentStore
	inventory  *storage.ItemStore
	bin        *storage.ItemStore
	metadata   *metadata.Service
	library    library.Library
	discoverer *discovery.Discoverer
	scanner    *scanner.Scanner
}

func loadConfig() (config.Config, error) {
	cfg, err := config.New(viper.GetViper())
	if err != nil {
		return cfg, fmt.Errorf("failed to read configurations: %w", err)
	}
	return cfg, cfg.Validate()
}

func openStore(ctx context.Context, cfg config.Storage, configDir string) (storage.DocumentStore, error) {
	switch cfg.Driver {
	case "sqlite":
		return sqlite.New(ctx, cfg.FilePath)
	case "json":
		return jsonfile.New(configDir, &mio.MediaFileSystem{}), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	docs, err := openStore(ctx, cfg.Storage, cfg.Library.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	fileIO := &mio.MediaFileSystem{}
	omdbCfg := cfg.Metadata.OMDb
	omdbClient := mhttp.NewRateLimitedHTTPClient(
		mhttp.WithMaxRetries(omdbCfg.MaxRetries),
		mhttp.WithBaseBackoff(omdbCfg.BaseBackoff),
	)
	booksCfg := cfg.Metadata.GoogleBooks
	meta := metadata.New(docs,
		metadata.NewOMDb(omdbClient, omdbCfg.Scheme, omdbCfg.Host, omdbCfg.APIKey),
		metadata.NewGoogleBooks(mhttp.NewRateLimitedHTTPClient(), booksCfg.Scheme, booksCfg.Host, booksCfg.APIKey),
	)

	a := &app{
		cfg:       cfg,
		docs:      docs,
		inventory: storage.NewInventory(docs),
		bin:       storage.NewBin(docs),
		metadata:  meta,
		library: library.New(library.FileSystem{
			Path: cfg.Library.MediaDir,
			FS:   os.DirFS(cfg.Library.MediaDir),
		}),
	}
	a.discoverer = discovery.New(cfg.Library.MediaDir, a.inventory, a.bin, a.metadata,
		fileinfo.New(docs, fileIO), addon.New(fileIO))
	a.scanner = scanner.New(cfg.Library.MediaDir, a.library, a.discoverer)

	return a, nil
}

func (a *app) Close() error {
	return a.docs.Close()
}
