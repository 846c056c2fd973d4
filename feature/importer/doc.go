// Package importer imports adventure notes into the host's journal folders.
//
// An import is driven by a Session, a single-use state machine:
//
//	idle -> fetching_index -> awaiting_selection -> fetching_bundle
//	     -> reconciling_folders -> reconciling_documents -> done
//
// Any failure ends the session in the failed state. The adventure to import
// is chosen by a Selector: a fixed id from an HTTP body or CLI flag, or the
// interactive picker in the picker subpackage. A dismissed selection is not an
// error; the session ends in done with Result.Cancelled set.
//
// The feature contributes the "Import Notes" entry to the folder context
// menu. It is shown to game masters on journal entry folders and starts an
// import with the folder as root.
//
// # Routes
//
//	GET  /adventures
//	GET  /folders/:id/actions?user=<role>
//	POST /folders/:id/import   {"adventure": "<id>"}
//
// # Concurrency
//
// Concurrent GET /adventures requests share one index fetch. Import sessions
// are not coordinated with each other: two imports into the same root at the
// same time may both create the same folders.
package importer
