package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"notes-importer/core/storage"

	"github.com/minio/minio-go/v7"
)

// Fetcher opens files relative to the notes directory.
type Fetcher interface {
	// Fetch opens name, a slash-separated path relative to the notes directory.
	Fetch(ctx context.Context, name string) (io.ReadCloser, error)
	// Location returns the notes directory the fetcher reads from.
	Location() string
}

// NewFetcher picks a fetcher for notesDirectory:
//   - "http://" or "https://" prefixes are fetched over HTTP,
//   - "s3://bucket/prefix" is read through client,
//   - anything else is a local directory.
func NewFetcher(notesDirectory string, client storage.Client) (Fetcher, error) {
	switch {
	case strings.HasPrefix(notesDirectory, "http://"), strings.HasPrefix(notesDirectory, "https://"):
		return NewHTTPFetcher(notesDirectory, &http.Client{Timeout: 30 * time.Second}), nil
	case strings.HasPrefix(notesDirectory, storage.Scheme):
		bucket, prefix, ok := storage.ParseLocation(notesDirectory)
		if !ok {
			return nil, fmt.Errorf("invalid storage location %q", notesDirectory)
		}
		if client == nil {
			return nil, fmt.Errorf("notes directory %q needs a storage client", notesDirectory)
		}
		return &StorageFetcher{client: client, bucket: bucket, prefix: prefix, location: notesDirectory}, nil
	default:
		return &FileFetcher{root: notesDirectory}, nil
	}
}

// FileFetcher reads from a local directory.
type FileFetcher struct {
	root string
}

// Fetch opens name under the root directory.
func (f *FileFetcher) Fetch(ctx context.Context, name string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(f.root, filepath.FromSlash(name)))
	if err != nil {
		return nil, err
	}
	return file, nil
}

// Location returns the root directory.
func (f *FileFetcher) Location() string {
	return f.root
}

// HTTPFetcher reads from a base URL.
type HTTPFetcher struct {
	base   string
	client *http.Client
}

// NewHTTPFetcher creates a fetcher for files below base.
func NewHTTPFetcher(base string, client *http.Client) *HTTPFetcher {
	return &HTTPFetcher{base: strings.TrimRight(base, "/"), client: client}
}

// Fetch issues a GET for base/name and fails on any non-200 status.
func (f *HTTPFetcher) Fetch(ctx context.Context, name string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.base+"/"+name, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: unexpected status %s", req.URL, resp.Status)
	}
	return resp.Body, nil
}

// Location returns the base URL.
func (f *HTTPFetcher) Location() string {
	return f.base
}

// StorageFetcher reads objects below a bucket prefix.
type StorageFetcher struct {
	client   storage.Client
	bucket   string
	prefix   string
	location string
}

// Fetch downloads prefix/name from the bucket.
func (f *StorageFetcher) Fetch(ctx context.Context, name string) (io.ReadCloser, error) {
	return f.client.GetObject(ctx, f.bucket, path.Join(f.prefix, name), minio.GetObjectOptions{})
}

// Location returns the s3:// location.
func (f *StorageFetcher) Location() string {
	return f.location
}
