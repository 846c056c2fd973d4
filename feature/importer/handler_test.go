package importer

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"notes-importer/core/reconcile"
	"notes-importer/core/source"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T, dir string) *fiber.App {
	app := fiber.New()
	svc, _, _ := newTestService(t, dir)
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func TestHandleListAdventures(t *testing.T) {
	app := setupTestApp(t, writeNotes(t))

	resp, err := app.Test(httptest.NewRequest("GET", "/adventures", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body []source.Option
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []source.Option{
		{ID: "cos", Name: "Curse of Strahd"},
		{ID: "lmop", Name: "Lost Mine of Phandelver"},
	}, body)
}

func TestHandleListAdventures_Unreachable(t *testing.T) {
	app := setupTestApp(t, t.TempDir())

	resp, err := app.Test(httptest.NewRequest("GET", "/adventures", nil))
	require.NoError(t, err)
	assert.Equal(t, 502, resp.StatusCode)
}

func TestHandleFolderActions(t *testing.T) {
	app := setupTestApp(t, writeNotes(t))

	tests := []struct {
		name   string
		target string
		status int
		want   []string
	}{
		{"gm on notes folder", "/folders/root/actions?user=gamemaster", 200, []string{ImportActionName}},
		{"assistant on notes folder", "/folders/root/actions?user=assistant", 200, []string{ImportActionName}},
		{"player on notes folder", "/folders/root/actions?user=player", 200, []string{}},
		{"default user", "/folders/root/actions", 200, []string{}},
		{"gm on actor folder", "/folders/actors/actions?user=gamemaster", 200, []string{}},
		{"unknown folder", "/folders/missing/actions?user=gamemaster", 404, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.status != 200 {
				return
			}

			var body []MenuAction
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			names := []string{}
			for _, a := range body {
				names = append(names, a.Name)
				assert.Equal(t, "fas fa-file-import", a.Icon)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestHandleImport(t *testing.T) {
	app := setupTestApp(t, writeNotes(t))

	req := httptest.NewRequest("POST", "/folders/root/import", strings.NewReader(`{"adventure":"lmop"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body ImportResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, StateDone, body.State)
	assert.Equal(t, "lmop", body.Adventure)
	assert.Equal(t, reconcile.Summary{Total: 3, Created: 2, Updated: 1}, body.Folders)
	assert.Equal(t, reconcile.Summary{Total: 2, Created: 2}, body.Documents)
	assert.Equal(t, []string{SuccessMessage}, body.Notifications)
}

func TestHandleImport_Cancelled(t *testing.T) {
	app := setupTestApp(t, writeNotes(t))

	req := httptest.NewRequest("POST", "/folders/root/import", strings.NewReader(`{"adventure":""}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body ImportResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Cancelled)
	assert.Empty(t, body.Notifications)
}

func TestHandleImport_Errors(t *testing.T) {
	app := setupTestApp(t, writeNotes(t))

	tests := []struct {
		name   string
		target string
		body   string
		status int
	}{
		{"invalid body", "/folders/root/import", `{`, 400},
		{"unknown folder", "/folders/missing/import", `{"adventure":"lmop"}`, 404},
		{"player not allowed", "/folders/root/import?user=player", `{"adventure":"lmop"}`, 403},
		{"actor folder not allowed", "/folders/actors/import", `{"adventure":"lmop"}`, 403},
		{"missing bundle", "/folders/root/import", `{"adventure":"cos"}`, 502},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", tt.target, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestService_ListAdventuresConcurrent(t *testing.T) {
	svc, _, _ := newTestService(t, writeNotes(t))

	var wg sync.WaitGroup
	results := make([][]source.Option, 8)
	errs := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.ListAdventures(t.Context())
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Len(t, results[i], 2)
	}
}
