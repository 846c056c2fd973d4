package checks

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"notes-importer/core/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func TestCheckIndex(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "adv_index.json", `{
	  "adventureNamePath": {"Clean": "clean", "Broken": "broken", "Missing": "missing", "Orphans": "orphans"},
	  "adventureIdPath": {"clean": "clean", "broken": "broken", "missing": "missing", "orphans": "orphans"}
	}`)
	writeFile(t, dir, "adventures/clean.json", `{"id":"clean","folders":[{"id":"F0","parentFolderId":null}],"journals":[{"id":"J1","idFolder":"F0"}]}`)
	writeFile(t, dir, "adventures/broken.json", `not json`)
	writeFile(t, dir, "adventures/orphans.json", `{"id":"orphans","folders":[{"id":"F0","parentFolderId":null}],"journals":[{"id":"J1","idFolder":"F7"}]}`)

	fetcher, err := source.NewFetcher(dir, nil)
	require.NoError(t, err)

	report, err := CheckIndex(context.Background(), source.NewLoader(fetcher))
	require.NoError(t, err)
	assert.Equal(t, dir, report.Location)
	assert.False(t, report.Matched)
	require.Len(t, report.Adventures, 4)

	byID := map[string]BundleReport{}
	for _, a := range report.Adventures {
		byID[a.ID] = a
	}
	assert.Empty(t, byID["clean"].Error)
	assert.Empty(t, byID["clean"].Findings)
	assert.Equal(t, 1, byID["clean"].Folders)
	assert.Equal(t, 1, byID["clean"].Journals)
	assert.Contains(t, byID["broken"].Error, "not valid JSON")
	assert.NotEmpty(t, byID["missing"].Error)
	assert.Equal(t, []string{FindingUnknownFolder}, kinds(byID["orphans"].Findings))

	// Adventures keep the index's display order.
	assert.Equal(t, "Broken", report.Adventures[0].Name)
	assert.Equal(t, "Orphans", report.Adventures[3].Name)
}

func TestCheckIndex_MissingIndex(t *testing.T) {
	fetcher, err := source.NewFetcher(t.TempDir(), nil)
	require.NoError(t, err)

	_, err = CheckIndex(context.Background(), source.NewLoader(fetcher))
	assert.ErrorIs(t, err, source.ErrFetch)
}
