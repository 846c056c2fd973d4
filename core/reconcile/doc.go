// Package reconcile merges an exported adventure into the host's document store.
//
// An adventure bundle carries folders and journal entries identified by external
// ids chosen by the exporter. The host assigns its own ids. This package keeps the
// two in step across repeated imports by tagging every host entity it writes with
// the external id of the record it came from.
//
// # Folders
//
// ReconcileFolders walks the folder records in bundle order. The record without a
// parent is the bundle root and always maps to the folder the user imported into.
// Other records match a host folder carrying the same tag, or are created. Updates
// are applied as one batch, creations as a second batch, and the resulting
// ExternalIDMap resolves every folder record to a host id.
//
// # Journal entries
//
// ReconcileDocuments places entries into folders through that map. New entries are
// created first so that every entry has a host id; then all entries are updated in
// one batch with their content rewritten so that embedded external ids point at
// host ids.
//
// # Failure model
//
// There is no rollback across batches. A failing batch returns an error wrapping
// ErrBatchPersist and leaves earlier batches applied. Re-running the import repairs
// the state because every written entity is tagged.
//
// # Usage
//
//	folders, folderSummary, err := reconcile.ReconcileFolders(ctx, store, root, bundle.Folders)
//	if err != nil {
//	    return err
//	}
//	docSummary, err := reconcile.ReconcileDocuments(ctx, store, folders, bundle.Journals)
package reconcile
