package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"notes-importer/core/hoststore"
	"notes-importer/core/reconcile"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const indexJSON = `{
  "adventureNamePath": {"Lost Mine of Phandelver": "lmop", "Curse of Strahd": "cos"},
  "adventureIdPath": {"lmop": "lmop", "cos": "cos"}
}`

const bundleJSON = `{
  "name": "Lost Mine of Phandelver",
  "id": "lmop",
  "folders": [
    {"id": "F0", "name": "Lost Mine", "parentFolderId": null},
    {"id": "F1", "name": "Part 1", "parentFolderId": "F0"},
    {"id": "F2", "name": "Cragmaw Hideout", "parentFolderId": "F1"}
  ],
  "journals": [
    {"id": "J1", "name": "Goblin Arrows", "content": "<p>Continue in J2</p>", "idFolder": "F1"},
    {"id": "J2", "name": "Goblin Blind", "content": "<p>Back to J1</p>", "idFolder": "F2"}
  ]
}`

// writeNotes creates a notes directory holding the lmop bundle.
func writeNotes(t *testing.T) string {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "adventures"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "adv_index.json"), []byte(indexJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "adventures", "lmop.json"), []byte(bundleJSON), 0o644))
	return dir
}

// setupStore creates a migrated host store with a notes root and an actor folder.
func setupStore(t *testing.T) (*hoststore.Store, *gorm.DB) {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	store := hoststore.New(db, hoststore.Config{Namespace: "adventure-importer"})
	require.NoError(t, store.Migrate(context.Background()))
	require.NoError(t, db.Create(&[]hoststore.Folder{
		{ID: "root", Name: "Adventures", Type: reconcile.NotesKind},
		{ID: "actors", Name: "Actors", Type: "Actor"},
	}).Error)
	return store, db
}

func rootFolder(t *testing.T, store *hoststore.Store) reconcile.HostFolder {
	root, err := store.GetFolder(context.Background(), "root")
	require.NoError(t, err)
	return root
}

func newTestService(t *testing.T, dir string) (*Service, *hoststore.Store, *gorm.DB) {
	store, db := setupStore(t)
	return NewService(Config{NotesDirectory: dir}, nil, store, zap.NewNop()), store, db
}

// failingStore fails the journal entry update batch.
type failingStore struct {
	*hoststore.Store
	err error
}

func (f failingStore) UpdateDocuments(ctx context.Context, writes []reconcile.DocumentWrite) error {
	return f.err
}
