// Package integrity provides health checks for the notes importer.
//
// Imports never validate their input; problems surface as orphaned folders or
// unfiled journal entries. These checks report them up front.
//
// # Checks Provided
//
//   - Index: Fetches every bundle listed in adv_index.json and lints it for
//     duplicate ids, missing or multiple roots, parents listed after their
//     children and references to undefined folders.
//   - Schema: Validates that the host tables (folders, journal_entries,
//     external_tags) have the columns and types the host store models declare.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/index : Runs the index check.
//   - GET /integrity/schema : Runs the schema check.
package integrity
