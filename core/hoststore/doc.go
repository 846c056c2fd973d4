// Package hoststore is the GORM-backed document store imports write into.
//
// It holds three tables:
//   - folders: the host folder tree, each folder typed by the document kind it holds.
//   - journal_entries: the notes themselves.
//   - external_tags: a side mapping from a host entity to the external id of the
//     adventure record it was imported from, scoped by namespace.
//
// Keeping the tag in its own table means the host rows never carry importer
// fields, and a second importer with another namespace cannot collide with ours.
//
// # Batches
//
// Every create or update batch runs inside a single transaction, so a batch is
// either fully applied or not at all. Nothing spans batches.
//
// # Usage
//
//	store := hoststore.New(db, cfg.HostStore)
//	if err := store.Migrate(ctx); err != nil {
//	    return err
//	}
//	folders, err := store.ListFolders(ctx, reconcile.NotesKind)
package hoststore
