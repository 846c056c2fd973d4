// Package source loads adventure exports from a notes directory.
//
// A notes directory holds an index file and one bundle per adventure:
//
//	{notesDirectory}/adv_index.json
//	{notesDirectory}/adventures/{id}.json
//
// The directory may be a local path, an http(s) URL prefix, or an
// "s3://bucket/prefix" location in object storage. NewFetcher picks the
// matching Fetcher and Loader decodes the JSON. Every failure to reach or
// decode a file wraps ErrFetch.
package source
