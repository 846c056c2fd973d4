package integrity

import (
	"context"
	"fmt"

	"notes-importer/core/hoststore"
	"notes-importer/core/source"
	"notes-importer/core/storage"
	"notes-importer/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	notesDirectory string
	client         storage.Client
	db             *gorm.DB
	logger         *zap.Logger
}

// NewService creates a new integrity service.
func NewService(notesDirectory string, client storage.Client, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		notesDirectory: notesDirectory,
		client:         client,
		db:             db,
		logger:         logger,
	}
}

// CheckIndex fetches and lints every adventure of the notes directory.
func (s *Service) CheckIndex(ctx context.Context) (*checks.IndexReport, error) {
	fetcher, err := source.NewFetcher(s.notesDirectory, s.client)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", source.ErrFetch, err)
	}
	return checks.CheckIndex(ctx, source.NewLoader(fetcher))
}

// CheckSchema verifies the host tables the importer reads and writes.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, hoststore.Folder{}, hoststore.JournalEntry{}, hoststore.ExternalTag{})
}
