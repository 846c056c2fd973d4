package hoststore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"notes-importer/core/database"
	"notes-importer/core/reconcile"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a requested host entity does not exist.
var ErrNotFound = errors.New("host entity not found")

// Store implements the reconcile host collaborators on top of GORM.
// Every batch runs in its own transaction.
type Store struct {
	db        *gorm.DB
	namespace string
	newID     func() string
}

// New creates a store writing tags under cfg.Namespace.
func New(db *gorm.DB, cfg Config) *Store {
	return &Store{
		db:        db,
		namespace: cfg.Namespace,
		newID:     uuid.NewString,
	}
}

// Namespace returns the namespace external tags are written under.
func (s *Store) Namespace() string {
	return s.namespace
}

// Migrate creates or updates the host tables.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Folder{}, &JournalEntry{}, &ExternalTag{}); err != nil {
		return fmt.Errorf("failed to migrate host store: %w", err)
	}
	return nil
}

// Prepare migrates the host tables when autoMigrate is set. Otherwise it
// verifies that every column the store uses exists.
func (s *Store) Prepare(ctx context.Context, autoMigrate bool) error {
	if autoMigrate {
		return s.Migrate(ctx)
	}
	missing, err := database.MissingColumns(s.db.WithContext(ctx), RequiredColumns)
	if err != nil {
		return fmt.Errorf("failed to inspect host schema: %w", err)
	}
	if len(missing) > 0 {
		return fmt.Errorf("host schema is missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// GetFolder returns a single folder with its tag.
func (s *Store) GetFolder(ctx context.Context, id string) (reconcile.HostFolder, error) {
	var rows []folderRow
	err := s.folderQuery(ctx).
		Where("folders.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return reconcile.HostFolder{}, fmt.Errorf("failed to get folder %s: %w", id, err)
	}
	if len(rows) == 0 {
		return reconcile.HostFolder{}, fmt.Errorf("folder %s: %w", id, ErrNotFound)
	}
	return rows[0].toHost(), nil
}

// ListFolders returns all folders of the given kind with their tags.
func (s *Store) ListFolders(ctx context.Context, kind string) ([]reconcile.HostFolder, error) {
	var rows []folderRow
	err := s.folderQuery(ctx).
		Where("folders.type = ?", kind).
		Order("folders.name").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}

	folders := make([]reconcile.HostFolder, 0, len(rows))
	for _, row := range rows {
		folders = append(folders, row.toHost())
	}
	return folders, nil
}

// UpdateFolders renames, re-parents and re-tags folders in one transaction.
// A nil ParentID leaves the stored parent unchanged.
func (s *Store) UpdateFolders(ctx context.Context, writes []reconcile.FolderWrite) error {
	if len(writes) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags := make([]ExternalTag, 0, len(writes))
		for _, w := range writes {
			fields := map[string]any{"name": w.Name}
			if w.ParentID != nil {
				fields["parent_id"] = *w.ParentID
			}
			if err := tx.Model(&Folder{}).Where("id = ?", w.ID).Updates(fields).Error; err != nil {
				return fmt.Errorf("failed to update folder %s: %w", w.ID, err)
			}
			tags = append(tags, s.tag(KindFolder, w.ID, w.ExternalID))
		}
		return s.upsertTags(tx, tags)
	})
}

// CreateFolders inserts folders with fresh ids in one transaction.
// ParentExternalID links a folder to one created earlier in the batch.
func (s *Store) CreateFolders(ctx context.Context, writes []reconcile.FolderWrite) ([]reconcile.HostFolder, error) {
	if len(writes) == 0 {
		return nil, nil
	}

	rows := make([]Folder, 0, len(writes))
	tags := make([]ExternalTag, 0, len(writes))
	created := make([]reconcile.HostFolder, 0, len(writes))
	batch := make(map[string]string, len(writes))
	for _, w := range writes {
		row := Folder{
			ID:       s.newID(),
			Name:     w.Name,
			Type:     w.Kind,
			ParentID: w.ParentID,
		}
		if row.ParentID == nil && w.ParentExternalID != "" {
			if id, ok := batch[w.ParentExternalID]; ok {
				row.ParentID = &id
			}
		}
		batch[w.ExternalID] = row.ID
		rows = append(rows, row)
		tags = append(tags, s.tag(KindFolder, row.ID, w.ExternalID))
		created = append(created, reconcile.HostFolder{
			ID:         row.ID,
			Name:       row.Name,
			Kind:       row.Type,
			ParentID:   row.ParentID,
			ExternalID: w.ExternalID,
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to insert folders: %w", err)
		}
		return s.upsertTags(tx, tags)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListDocuments returns all journal entries with their tags.
func (s *Store) ListDocuments(ctx context.Context) ([]reconcile.HostDocument, error) {
	var rows []journalRow
	err := s.db.WithContext(ctx).
		Table(JournalEntry{}.TableName()).
		Select("journal_entries.id, journal_entries.name, journal_entries.content, journal_entries.folder_id, external_tags.external_id").
		Joins("LEFT JOIN external_tags ON external_tags.entity_id = journal_entries.id AND external_tags.entity_kind = ? AND external_tags.namespace = ?", KindJournalEntry, s.namespace).
		Order("journal_entries.name").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}

	docs := make([]reconcile.HostDocument, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, row.toHost())
	}
	return docs, nil
}

// CreateDocuments inserts journal entries with fresh ids in one transaction.
func (s *Store) CreateDocuments(ctx context.Context, writes []reconcile.DocumentWrite) ([]reconcile.HostDocument, error) {
	if len(writes) == 0 {
		return nil, nil
	}

	rows := make([]JournalEntry, 0, len(writes))
	tags := make([]ExternalTag, 0, len(writes))
	created := make([]reconcile.HostDocument, 0, len(writes))
	for _, w := range writes {
		row := JournalEntry{
			ID:       s.newID(),
			Name:     w.Name,
			Content:  w.Content,
			FolderID: w.FolderID,
		}
		rows = append(rows, row)
		tags = append(tags, s.tag(KindJournalEntry, row.ID, w.ExternalID))
		created = append(created, reconcile.HostDocument{
			ID:         row.ID,
			Name:       row.Name,
			Content:    row.Content,
			FolderID:   row.FolderID,
			ExternalID: w.ExternalID,
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to insert journal entries: %w", err)
		}
		return s.upsertTags(tx, tags)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateDocuments rewrites journal entries and their tags in one transaction.
// A nil FolderID leaves the stored folder unchanged.
func (s *Store) UpdateDocuments(ctx context.Context, writes []reconcile.DocumentWrite) error {
	if len(writes) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags := make([]ExternalTag, 0, len(writes))
		for _, w := range writes {
			fields := map[string]any{
				"name":    w.Name,
				"content": w.Content,
			}
			if w.FolderID != nil {
				fields["folder_id"] = *w.FolderID
			}
			if err := tx.Model(&JournalEntry{}).Where("id = ?", w.ID).Updates(fields).Error; err != nil {
				return fmt.Errorf("failed to update journal entry %s: %w", w.ID, err)
			}
			tags = append(tags, s.tag(KindJournalEntry, w.ID, w.ExternalID))
		}
		return s.upsertTags(tx, tags)
	})
}

func (s *Store) folderQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table(Folder{}.TableName()).
		Select("folders.id, folders.name, folders.type, folders.parent_id, external_tags.external_id").
		Joins("LEFT JOIN external_tags ON external_tags.entity_id = folders.id AND external_tags.entity_kind = ? AND external_tags.namespace = ?", KindFolder, s.namespace)
}

func (s *Store) tag(kind, entityID, externalID string) ExternalTag {
	return ExternalTag{
		Namespace:  s.namespace,
		EntityKind: kind,
		EntityID:   entityID,
		ExternalID: externalID,
	}
}

// upsertTags writes tags, skipping entities created without an external id.
func (s *Store) upsertTags(tx *gorm.DB, tags []ExternalTag) error {
	kept := tags[:0]
	for _, t := range tags {
		if t.ExternalID != "" {
			kept = append(kept, t)
		}
	}
	tags = kept
	if len(tags) == 0 {
		return nil
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}, {Name: "entity_kind"}, {Name: "entity_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"external_id"}),
	}).Create(&tags).Error
	if err != nil {
		return fmt.Errorf("failed to write external tags: %w", err)
	}
	return nil
}

func (r folderRow) toHost() reconcile.HostFolder {
	f := reconcile.HostFolder{
		ID:       r.ID,
		Name:     r.Name,
		Kind:     r.Type,
		ParentID: r.ParentID,
	}
	if r.ExternalID != nil {
		f.ExternalID = *r.ExternalID
	}
	return f
}

func (r journalRow) toHost() reconcile.HostDocument {
	d := reconcile.HostDocument{
		ID:       r.ID,
		Name:     r.Name,
		Content:  r.Content,
		FolderID: r.FolderID,
	}
	if r.ExternalID != nil {
		d.ExternalID = *r.ExternalID
	}
	return d
}
