package reconcile

import (
	"context"
	"fmt"
)

// ReconcileDocuments maps the bundle's document records onto host journal entries.
//
// Entries are matched by external id tag. Unmatched records are created first so
// that every record has a host id; then every entry, old or new, is updated once
// with its content rewritten against the complete id map. The final update is a
// single batch. If it fails, entries created earlier keep their raw content.
func ReconcileDocuments(ctx context.Context, store DocumentStore, folders ExternalIDMap, records []DocumentRecord) (Summary, error) {
	summary := Summary{Total: len(records)}

	existing, err := store.ListDocuments(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to list host documents: %w", err)
	}
	byTag := make(map[string]HostDocument, len(existing))
	for _, doc := range existing {
		if doc.ExternalID != "" {
			byTag[doc.ExternalID] = doc
		}
	}

	idMap := make(ExternalIDMap, len(records))
	var (
		updates []DocumentWrite
		creates []DocumentWrite
	)
	for _, record := range records {
		write := DocumentWrite{
			Name:       record.Name,
			Content:    record.Content,
			FolderID:   folders.Resolve(&record.FolderID),
			ExternalID: record.ID,
		}
		if match, ok := byTag[record.ID]; ok {
			write.ID = match.ID
			idMap[record.ID] = match.ID
			updates = append(updates, write)
			continue
		}
		creates = append(creates, write)
	}
	summary.Updated = len(updates)

	if len(creates) > 0 {
		created, err := store.CreateDocuments(ctx, creates)
		if err != nil {
			return summary, fmt.Errorf("%w: create %d documents: %w", ErrBatchPersist, len(creates), err)
		}
		for _, doc := range created {
			idMap[doc.ExternalID] = doc.ID
			updates = append(updates, DocumentWrite{
				ID:         doc.ID,
				Name:       doc.Name,
				Content:    doc.Content,
				FolderID:   doc.FolderID,
				ExternalID: doc.ExternalID,
			})
		}
	}
	summary.Created = len(creates)

	rewriter := NewRewriter(idMap)
	for i := range updates {
		updates[i].Content = rewriter.Rewrite(updates[i].Content)
	}

	if len(updates) > 0 {
		if err := store.UpdateDocuments(ctx, updates); err != nil {
			return summary, fmt.Errorf("%w: update %d documents: %w", ErrBatchPersist, len(updates), err)
		}
	}

	return summary, nil
}
