package reconcile

import (
	"context"
	"fmt"
)

// ReconcileFolders maps the bundle's folder records onto host folders.
//
// The null-parent record maps to root, which is never searched or created.
// Every other record is matched by its external id tag against host folders of
// NotesKind. Matches are updated in one batch, then the rest are created in one
// batch. Records must be ordered so that parents come before children. A new
// folder under a parent created in the same batch references it through
// ParentExternalID; a parent listed after its child leaves the parent unset.
func ReconcileFolders(ctx context.Context, store FolderStore, root HostFolder, records []FolderRecord) (ExternalIDMap, Summary, error) {
	summary := Summary{Total: len(records)}
	idMap := make(ExternalIDMap, len(records))
	for _, record := range records {
		if record.IsRoot() {
			idMap[record.ID] = root.ID
			break
		}
	}

	existing, err := store.ListFolders(ctx, NotesKind)
	if err != nil {
		return nil, summary, fmt.Errorf("failed to list host folders: %w", err)
	}
	byTag := make(map[string]HostFolder, len(existing))
	for _, folder := range existing {
		if folder.ExternalID != "" {
			byTag[folder.ExternalID] = folder
		}
	}

	var (
		updates []FolderWrite
		creates []FolderWrite
		pending = make(map[string]bool)
	)
	for _, record := range records {
		var (
			match HostFolder
			found bool
		)
		if record.IsRoot() {
			match, found = root, true
		} else {
			match, found = byTag[record.ID]
		}

		if found {
			idMap[record.ID] = match.ID
			updates = append(updates, FolderWrite{
				ID:         match.ID,
				Name:       record.Name,
				Kind:       NotesKind,
				ExternalID: record.ID,
				ParentID:   idMap.Resolve(record.ParentID),
			})
			continue
		}

		write := FolderWrite{
			Name:       record.Name,
			Kind:       NotesKind,
			ExternalID: record.ID,
			ParentID:   idMap.Resolve(record.ParentID),
		}
		if write.ParentID == nil && record.ParentID != nil && pending[*record.ParentID] {
			write.ParentExternalID = *record.ParentID
		}
		pending[record.ID] = true
		creates = append(creates, write)
	}

	// Updates are applied before creations.
	if len(updates) > 0 {
		if err := store.UpdateFolders(ctx, updates); err != nil {
			return nil, summary, fmt.Errorf("%w: update %d folders: %w", ErrBatchPersist, len(updates), err)
		}
	}
	summary.Updated = len(updates)

	if len(creates) > 0 {
		created, err := store.CreateFolders(ctx, creates)
		if err != nil {
			return nil, summary, fmt.Errorf("%w: create %d folders: %w", ErrBatchPersist, len(creates), err)
		}
		for _, folder := range created {
			idMap[folder.ExternalID] = folder.ID
		}
	}
	summary.Created = len(creates)

	return idMap, summary, nil
}
