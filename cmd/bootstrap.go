package cmd

import (
	"context"
	"fmt"
	"strings"

	"notes-importer/core/config"
	"notes-importer/core/database"
	"notes-importer/core/hoststore"
	"notes-importer/core/logger"
	"notes-importer/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app bundles the dependencies shared by the commands.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	store  *hoststore.Store
	client storage.Client
}

// bootstrap loads configuration, connects to the host database and, when
// prepareStore is set, migrates or verifies the host tables. The storage client
// is only created for s3:// notes directories.
func bootstrap(ctx context.Context, prepareStore bool) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to host database: %w", err)
	}
	logg.Debug("Connected to host database", zap.String("driver", cfg.Database.Driver))

	store := hoststore.New(db, cfg.HostStore)
	if prepareStore {
		if err := store.Prepare(ctx, cfg.HostStore.AutoMigrate); err != nil {
			return nil, err
		}
	}

	var client storage.Client
	if strings.HasPrefix(cfg.Importer.NotesDirectory, storage.Scheme) {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	return &app{cfg: cfg, logger: logg, db: db, store: store, client: client}, nil
}
