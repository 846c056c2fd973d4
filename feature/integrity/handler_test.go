package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"notes-importer/core/database"
	"notes-importer/core/hoststore"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupNotes(t *testing.T) string {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "adventures"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "adv_index.json"),
		[]byte(`{"adventureNamePath":{"Lost Mine":"lmop"},"adventureIdPath":{"lmop":"lmop"}}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "adventures", "lmop.json"),
		[]byte(`{"id":"lmop","folders":[{"id":"F0","parentFolderId":null}],"journals":[]}`), 0o644))
	return dir
}

func setupDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	store := hoststore.New(db, hoststore.Config{Namespace: "adventure-importer"})
	require.NoError(t, store.Migrate(t.Context()))
	return db
}

func setupTestApp(t *testing.T, notesDirectory string, db *gorm.DB) *fiber.App {
	app := fiber.New()
	NewHandler(NewService(notesDirectory, nil, db, zap.NewNop())).RegisterRoutes(app)
	return app
}

func TestHandleIndexCheck(t *testing.T) {
	app := setupTestApp(t, setupNotes(t), nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/index", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["matched"])
	assert.Len(t, body["adventures"], 1)
}

func TestHandleIndexCheck_Unreachable(t *testing.T) {
	app := setupTestApp(t, t.TempDir(), nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/index", nil))
	require.NoError(t, err)
	assert.Equal(t, 502, resp.StatusCode)
}

func TestHandleSchemaCheck(t *testing.T) {
	app := setupTestApp(t, setupNotes(t), setupDB(t))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["matched"])
}

func TestHandleSchemaCheck_NoDatabase(t *testing.T) {
	app := setupTestApp(t, setupNotes(t), nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleIntegrityCheck(t *testing.T) {
	app := setupTestApp(t, t.TempDir(), nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "error", body["index"]["status"])
	assert.Equal(t, "error", body["schema"]["status"])
}
