package reconcile

import (
	"context"
	"errors"
)

// NotesKind is the host document kind that imported folders hold.
const NotesKind = "JournalEntry"

// ErrBatchPersist marks a failed create or update batch against the host store.
// Batches applied before the failure stay applied.
var ErrBatchPersist = errors.New("batch persist failed")

// FolderRecord is a folder as exported in an adventure bundle.
type FolderRecord struct {
	// ID is the external id, unique within the bundle.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// ParentID is the external id of the parent folder.
	// Nil marks the bundle's root folder.
	ParentID *string `json:"parentFolderId"`
}

// IsRoot reports whether the record is the bundle's root folder.
func (r FolderRecord) IsRoot() bool {
	return r.ParentID == nil
}

// DocumentRecord is a journal entry as exported in an adventure bundle.
type DocumentRecord struct {
	// ID is the external id, unique within the bundle.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Content is the entry body. It may embed other records' external ids.
	Content string `json:"content"`

	// FolderID is the external id of the folder holding the entry.
	FolderID string `json:"idFolder"`
}

// ExternalIDMap maps bundle external ids to host-assigned ids.
type ExternalIDMap map[string]string

// Resolve returns the host id for an optional external id.
// It returns nil when id is nil or not mapped.
func (m ExternalIDMap) Resolve(id *string) *string {
	if id == nil {
		return nil
	}
	hostID, ok := m[*id]
	if !ok {
		return nil
	}
	return &hostID
}

// HostFolder is a folder as stored by the host.
type HostFolder struct {
	ID       string
	Name     string
	Kind     string
	ParentID *string
	// ExternalID is the tag written by a previous import, empty when untagged.
	ExternalID string
}

// HostDocument is a journal entry as stored by the host.
type HostDocument struct {
	ID         string
	Name       string
	Content    string
	FolderID   *string
	ExternalID string
}

// FolderWrite carries the fields of a folder create or update.
// ID is empty for creations.
type FolderWrite struct {
	ID         string
	Name       string
	Kind       string
	ExternalID string
	// ParentID nil leaves the parent unchanged on update and unset on create.
	ParentID *string
	// ParentExternalID names a parent created earlier in the same create batch.
	// It is only read when ParentID is nil.
	ParentExternalID string
}

// DocumentWrite carries the fields of a journal entry create or update.
// ID is empty for creations.
type DocumentWrite struct {
	ID      string
	Name    string
	Content string
	// FolderID nil leaves the folder unchanged on update and unset on create.
	FolderID   *string
	ExternalID string
}

// FolderStore is the host collaborator used by the folder reconciler.
type FolderStore interface {
	// ListFolders returns every host folder of the given kind with its tag.
	ListFolders(ctx context.Context, kind string) ([]HostFolder, error)

	// UpdateFolders applies all updates as one batch.
	UpdateFolders(ctx context.Context, writes []FolderWrite) error

	// CreateFolders creates all folders as one batch and returns them with their
	// assigned ids, in input order. A ParentExternalID resolves to the folder
	// created for an earlier write of the batch.
	CreateFolders(ctx context.Context, writes []FolderWrite) ([]HostFolder, error)
}

// DocumentStore is the host collaborator used by the document reconciler.
type DocumentStore interface {
	// ListDocuments returns every host journal entry with its tag.
	ListDocuments(ctx context.Context) ([]HostDocument, error)

	// CreateDocuments creates all entries as one batch and returns them with their
	// assigned ids, in input order.
	CreateDocuments(ctx context.Context, writes []DocumentWrite) ([]HostDocument, error)

	// UpdateDocuments applies all updates as one batch.
	UpdateDocuments(ctx context.Context, writes []DocumentWrite) error
}

// Store combines both host collaborators.
type Store interface {
	FolderStore
	DocumentStore
}

// Summary provides aggregate counts for one reconciled record set.
type Summary struct {
	// Total is the number of records in the bundle.
	Total int `json:"total"`

	// Created counts records that had no tagged host entity.
	Created int `json:"created"`

	// Updated counts records matched to an existing host entity.
	Updated int `json:"updated"`
}
