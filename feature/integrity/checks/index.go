package checks

import (
	"context"
	"fmt"

	"notes-importer/core/source"

	"golang.org/x/sync/errgroup"
)

// bundleFetchLimit bounds concurrent bundle fetches.
const bundleFetchLimit = 4

// IndexReport is the result of checking every adventure in a notes directory.
type IndexReport struct {
	Location   string         `json:"location"`
	Matched    bool           `json:"matched"`
	Adventures []BundleReport `json:"adventures"`
}

// BundleReport is the result of one adventure bundle.
type BundleReport struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Folders  int       `json:"folders"`
	Journals int       `json:"journals"`
	Error    string    `json:"error,omitempty"`
	Findings []Finding `json:"findings"`
}

// CheckIndex fetches the index and every bundle it lists, and lints each bundle.
// An unreachable index is an error; unreachable bundles are reported.
func CheckIndex(ctx context.Context, loader *source.Loader) (*IndexReport, error) {
	index, err := loader.Index(ctx)
	if err != nil {
		return nil, err
	}

	options := index.Options()
	report := &IndexReport{
		Location:   loader.Location(),
		Matched:    true,
		Adventures: make([]BundleReport, len(options)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bundleFetchLimit)
	for i, opt := range options {
		g.Go(func() error {
			br := BundleReport{ID: opt.ID, Name: opt.Name, Findings: []Finding{}}
			bundle, err := loader.Bundle(gctx, opt.ID)
			if err != nil {
				br.Error = err.Error()
			} else {
				br.Folders = len(bundle.Folders)
				br.Journals = len(bundle.Journals)
				br.Findings = LintBundle(bundle)
			}
			report.Adventures[i] = br
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("index check failed: %w", err)
	}

	for _, br := range report.Adventures {
		if br.Error != "" || len(br.Findings) > 0 {
			report.Matched = false
		}
	}
	return report, nil
}
