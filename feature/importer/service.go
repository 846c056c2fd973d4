package importer

import (
	"context"
	"errors"
	"fmt"

	"notes-importer/core/reconcile"
	"notes-importer/core/source"
	"notes-importer/core/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrActionNotFound is returned when no menu entry has the requested name.
	ErrActionNotFound = errors.New("menu action not found")
	// ErrActionNotAllowed is returned when a menu entry's condition rejects the user or folder.
	ErrActionNotAllowed = errors.New("menu action not allowed")
)

// HostStore is the host persistence the importer works against.
type HostStore interface {
	reconcile.Store
	GetFolder(ctx context.Context, id string) (reconcile.HostFolder, error)
}

// Service wires import sessions to the host store and the folder menu.
type Service struct {
	cfg    Config
	client storage.Client
	store  HostStore
	logger *zap.Logger
	menu   *Menu
	group  singleflight.Group
}

// NewService creates a new importer service with the import entry registered.
func NewService(cfg Config, client storage.Client, store HostStore, logger *zap.Logger) *Service {
	s := &Service{
		cfg:    cfg,
		client: client,
		store:  store,
		logger: logger,
		menu:   &Menu{},
	}
	s.menu.Register(ImportNotesAction(s))
	return s
}

// Menu returns the folder context menu.
func (s *Service) Menu() *Menu {
	return s.menu
}

// ListAdventures returns the adventures in the notes directory.
// Concurrent callers share one index fetch.
func (s *Service) ListAdventures(ctx context.Context) ([]source.Option, error) {
	v, err, shared := s.group.Do("index", func() (any, error) {
		fetcher, err := source.NewFetcher(s.cfg.NotesDirectory, s.client)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", source.ErrFetch, err)
		}
		index, err := source.NewLoader(fetcher).Index(ctx)
		if err != nil {
			return nil, err
		}
		return index.Options(), nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("Shared adventure index fetch")
	}
	return v.([]source.Option), nil
}

// Actions returns the menu entries available to user on a folder.
func (s *Service) Actions(ctx context.Context, folderID string, user User) ([]MenuAction, error) {
	folder, err := s.store.GetFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}
	return s.menu.Available(user, folder), nil
}

// Trigger runs the named menu entry on a folder on behalf of user.
func (s *Service) Trigger(ctx context.Context, folderID string, user User, name string, selector Selector, notifier Notifier) (*Result, error) {
	action, ok := s.menu.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrActionNotFound, name)
	}
	folder, err := s.store.GetFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}
	if action.Condition != nil && !action.Condition(user, folder) {
		return nil, fmt.Errorf("%w: %s on folder %s", ErrActionNotAllowed, name, folderID)
	}
	return action.Callback(ctx, folder, selector, notifier)
}

// Import runs a fresh session importing into root.
func (s *Service) Import(ctx context.Context, root reconcile.HostFolder, selector Selector, notifier Notifier) (*Result, error) {
	s.logger.Info("Import started",
		zap.String("root", root.ID),
		zap.String("notes_directory", s.cfg.NotesDirectory),
	)
	session := NewSession(s.cfg, s.client, s.store, selector, notifier, s.logger)
	return session.Run(ctx, root)
}
