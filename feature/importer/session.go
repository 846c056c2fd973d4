package importer

import (
	"context"
	"errors"
	"fmt"

	"notes-importer/core/reconcile"
	"notes-importer/core/source"
	"notes-importer/core/storage"

	"go.uber.org/zap"
)

// SuccessMessage is sent to the notifier when an import completes.
const SuccessMessage = "Notes imported successfully"

// ErrSessionUsed is returned when Run is called on a session that already ran.
var ErrSessionUsed = errors.New("import session already used")

// State is the phase an import session is in.
type State string

const (
	StateIdle                 State = "idle"
	StateFetchingIndex        State = "fetching_index"
	StateAwaitingSelection    State = "awaiting_selection"
	StateFetchingBundle       State = "fetching_bundle"
	StateReconcilingFolders   State = "reconciling_folders"
	StateReconcilingDocuments State = "reconciling_documents"
	StateDone                 State = "done"
	StateFailed               State = "failed"
)

// Selector asks for the adventure to import.
// An empty id means the selection was dismissed.
type Selector interface {
	Select(ctx context.Context, options []source.Option, defaultID string) (string, error)
}

// SelectorFunc adapts a function to the Selector interface.
type SelectorFunc func(ctx context.Context, options []source.Option, defaultID string) (string, error)

// Select calls f.
func (f SelectorFunc) Select(ctx context.Context, options []source.Option, defaultID string) (string, error) {
	return f(ctx, options, defaultID)
}

// Fixed returns a selector that always picks id.
func Fixed(id string) Selector {
	return SelectorFunc(func(context.Context, []source.Option, string) (string, error) {
		return id, nil
	})
}

// Notifier receives the user-facing message of a finished import.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, message string)

// Notify calls f.
func (f NotifierFunc) Notify(ctx context.Context, message string) {
	f(ctx, message)
}

// LogNotifier returns a notifier writing messages to the logger.
func LogNotifier(logger *zap.Logger) Notifier {
	return NotifierFunc(func(_ context.Context, message string) {
		logger.Info(message)
	})
}

// Result reports the outcome of an import session.
type Result struct {
	State     State             `json:"state"`
	Adventure string            `json:"adventure,omitempty"`
	Cancelled bool              `json:"cancelled"`
	Folders   reconcile.Summary `json:"folders"`
	Documents reconcile.Summary `json:"documents"`
}

// Session drives one import from index fetch to reconciled documents.
// A session is single use and runs strictly sequentially.
type Session struct {
	cfg      Config
	client   storage.Client
	store    reconcile.Store
	selector Selector
	notifier Notifier
	logger   *zap.Logger

	state State
}

// NewSession creates an idle session. client is only needed when the notes
// directory is an s3:// location.
func NewSession(cfg Config, client storage.Client, store reconcile.Store, selector Selector, notifier Notifier, logger *zap.Logger) *Session {
	return &Session{
		cfg:      cfg,
		client:   client,
		store:    store,
		selector: selector,
		notifier: notifier,
		logger:   logger,
		state:    StateIdle,
	}
}

// State returns the current phase of the session.
func (s *Session) State() State {
	return s.state
}

// Run imports the selected adventure under root.
//
// The selector is offered the index options with the adventure tagged on root
// as default. A dismissed selection ends the session in StateDone with no host
// writes. Any failure moves the session to StateFailed; batches persisted
// before the failure stay applied.
func (s *Session) Run(ctx context.Context, root reconcile.HostFolder) (*Result, error) {
	if s.state != StateIdle {
		return nil, ErrSessionUsed
	}
	result := &Result{}
	log := s.logger.With(zap.String("root", root.ID))

	s.transition(log, StateFetchingIndex)
	fetcher, err := source.NewFetcher(s.cfg.NotesDirectory, s.client)
	if err != nil {
		return s.fail(log, result, fmt.Errorf("%w: %w", source.ErrFetch, err))
	}
	loader := source.NewLoader(fetcher)
	index, err := loader.Index(ctx)
	if err != nil {
		return s.fail(log, result, err)
	}

	s.transition(log, StateAwaitingSelection)
	id, err := s.selector.Select(ctx, index.Options(), root.ExternalID)
	if err != nil {
		return s.fail(log, result, fmt.Errorf("selection failed: %w", err))
	}
	if id == "" {
		log.Info("Import cancelled")
		result.Cancelled = true
		s.transition(log, StateDone)
		result.State = s.state
		return result, nil
	}
	result.Adventure = id
	log = log.With(zap.String("adventure", id))

	s.transition(log, StateFetchingBundle)
	bundle, err := loader.Bundle(ctx, id)
	if err != nil {
		return s.fail(log, result, err)
	}
	if err := ctx.Err(); err != nil {
		return s.fail(log, result, err)
	}

	s.transition(log, StateReconcilingFolders)
	folders, summary, err := reconcile.ReconcileFolders(ctx, s.store, root, bundle.Folders)
	result.Folders = summary
	if err != nil {
		return s.fail(log, result, err)
	}

	s.transition(log, StateReconcilingDocuments)
	result.Documents, err = reconcile.ReconcileDocuments(ctx, s.store, folders, bundle.Journals)
	if err != nil {
		return s.fail(log, result, err)
	}

	s.transition(log, StateDone)
	result.State = s.state
	log.Info("Import finished",
		zap.Int("folders_created", result.Folders.Created),
		zap.Int("folders_updated", result.Folders.Updated),
		zap.Int("documents_created", result.Documents.Created),
		zap.Int("documents_updated", result.Documents.Updated),
	)
	if s.notifier != nil {
		s.notifier.Notify(ctx, SuccessMessage)
	}
	return result, nil
}

func (s *Session) transition(log *zap.Logger, next State) {
	log.Debug("Import session transition",
		zap.String("from", string(s.state)),
		zap.String("to", string(next)),
	)
	s.state = next
}

func (s *Session) fail(log *zap.Logger, result *Result, err error) (*Result, error) {
	log.Error("Import failed", zap.String("state", string(s.state)), zap.Error(err))
	s.transition(log, StateFailed)
	result.State = s.state
	return result, err
}
