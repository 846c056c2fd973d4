package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"notes-importer/core/reconcile"
)

// ErrFetch marks an index or bundle that could not be fetched or decoded.
var ErrFetch = errors.New("fetch failed")

// IndexFile is the index path relative to the notes directory.
const IndexFile = "adv_index.json"

// BundleFile returns the bundle path of an adventure relative to the notes directory.
func BundleFile(id string) string {
	return "adventures/" + id + ".json"
}

// AdventureIndex lists the adventures available in a notes directory.
type AdventureIndex struct {
	// NamePaths maps display name to relative path.
	NamePaths map[string]string `json:"adventureNamePath"`
	// IDPaths maps adventure id to relative path.
	IDPaths map[string]string `json:"adventureIdPath"`
}

// Option is one selectable adventure.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Options returns the selectable adventures sorted by display name.
// The id of an entry is the adventure id sharing its path, or the path itself
// when the index has no id for it.
func (i AdventureIndex) Options() []Option {
	idByPath := make(map[string]string, len(i.IDPaths))
	for id, p := range i.IDPaths {
		idByPath[p] = id
	}

	options := make([]Option, 0, len(i.NamePaths))
	for name, p := range i.NamePaths {
		id, ok := idByPath[p]
		if !ok {
			id = p
		}
		options = append(options, Option{ID: id, Name: name})
	}
	sort.Slice(options, func(a, b int) bool {
		if options[a].Name != options[b].Name {
			return options[a].Name < options[b].Name
		}
		return options[a].ID < options[b].ID
	})
	return options
}

// Has reports whether id is one of the index's options.
func (i AdventureIndex) Has(id string) bool {
	for _, opt := range i.Options() {
		if opt.ID == id {
			return true
		}
	}
	return false
}

// AdventureBundle is one adventure's full export.
type AdventureBundle struct {
	ID       string                     `json:"id"`
	Name     string                     `json:"name"`
	Folders  []reconcile.FolderRecord   `json:"folders"`
	Journals []reconcile.DocumentRecord `json:"journals"`
}

// Loader reads the index and bundles through a Fetcher.
type Loader struct {
	fetcher Fetcher
}

// NewLoader creates a loader over fetcher.
func NewLoader(fetcher Fetcher) *Loader {
	return &Loader{fetcher: fetcher}
}

// Location returns the notes directory being read.
func (l *Loader) Location() string {
	return l.fetcher.Location()
}

// Index loads the adventure index.
func (l *Loader) Index(ctx context.Context) (*AdventureIndex, error) {
	var index AdventureIndex
	if err := l.decode(ctx, IndexFile, &index); err != nil {
		return nil, err
	}
	return &index, nil
}

// Bundle loads the bundle of adventure id.
func (l *Loader) Bundle(ctx context.Context, id string) (*AdventureBundle, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return nil, fmt.Errorf("%w: invalid adventure id %q", ErrFetch, id)
	}
	var bundle AdventureBundle
	if err := l.decode(ctx, BundleFile(id), &bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}

func (l *Loader) decode(ctx context.Context, name string, v any) error {
	rc, err := l.fetcher.Fetch(ctx, name)
	if err != nil {
		return fmt.Errorf("%w: %s/%s: %w", ErrFetch, l.fetcher.Location(), name, err)
	}
	defer rc.Close()

	if err := json.NewDecoder(rc).Decode(v); err != nil {
		return fmt.Errorf("%w: %s/%s is not valid JSON: %w", ErrFetch, l.fetcher.Location(), name, err)
	}
	return nil
}
