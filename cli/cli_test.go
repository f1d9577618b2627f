package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"todolist/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI serves the subset of the JSON API the CLI uses.
type fakeAPI struct {
	mu    sync.Mutex
	items []models.Item
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.URL.Path == "/api/health":
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "healthy", "db_healthy": true, "items": len(f.items)})
	case r.URL.Path == "/api/items" && r.Method == http.MethodGet:
		_ = json.NewEncoder(w).Encode(map[string]any{"code": "OK", "message": "OK", "data": f.items})
	case r.URL.Path == "/api/items" && r.Method == http.MethodPost:
		var req models.ItemCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{"code": "INVALID_REQUEST", "message": "Invalid request"})
			return
		}
		item := models.Item{ID: uint(len(f.items) + 1), Text: req.Text}
		f.items = append(f.items, item)
		_ = json.NewEncoder(w).Encode(map[string]any{"code": "OK", "message": "OK", "data": map[string]any{"id": item.ID}})
	default:
		http.NotFound(w, r)
	}
}

func newTestCLI(t *testing.T) (*CLIHttp, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(&fakeAPI{})
	t.Cleanup(srv.Close)

	out := &bytes.Buffer{}
	return &CLIHttp{running: true, client: NewClient(srv.URL + "/"), out: out}, out
}

func TestClient_CreateAndList(t *testing.T) {
	srv := httptest.NewServer(&fakeAPI{})
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL)

	require.NoError(t, client.HealthCheck())

	id, err := client.CreateItem("Buy dorayaki")
	require.NoError(t, err)
	assert.EqualValues(t, 1, id)

	items, err := client.ListItems()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Buy dorayaki", items[0].Text)
}

func TestClient_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"code":"INTERNAL_ERROR","message":"Failed to list items","data":{}}`))
	}))
	t.Cleanup(srv.Close)

	_, err := NewClient(srv.URL).ListItems()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INTERNAL_ERROR")
}

func TestCLI_AddKeepsSpacesAndListsRows(t *testing.T) {
	c, out := newTestCLI(t)

	c.handleCommand("list")
	assert.Contains(t, out.String(), "Your to-do list is empty.")

	c.handleCommand("add Buy dorayaki")
	c.handleCommand("add Demand payment for the dorayaki")
	out.Reset()

	c.handleCommand("ls")
	assert.Equal(t, "1: Buy dorayaki\n2: Demand payment for the dorayaki\n", out.String())
}

func TestCLI_StatusUnknownAndExit(t *testing.T) {
	c, out := newTestCLI(t)

	c.handleCommand("status")
	assert.Contains(t, out.String(), "healthy")

	c.handleCommand("frobnicate")
	assert.Contains(t, out.String(), "Unknown command: frobnicate")

	c.handleCommand("quit")
	assert.False(t, c.running)
}

func TestLoadConfigFrom_WritesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)

	url, err := cfg.resolve("")
	require.NoError(t, err)
	assert.Equal(t, defaultServerURL, url)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestConfig_ProfilesRoundTripThroughYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)
	require.NoError(t, cfg.AddServer("staging", "http://staging:8000", "Staging"))
	assert.Error(t, cfg.AddServer("", "http://x", ""))

	reloaded, err := LoadConfigFrom(path)
	require.NoError(t, err)

	url, err := reloaded.resolve("staging")
	require.NoError(t, err)
	assert.Equal(t, "http://staging:8000", url)

	_, err = reloaded.resolve("nowhere")
	assert.Error(t, err)
}

func TestResolveServer_ExplicitURLWins(t *testing.T) {
	url, err := ResolveServer("http://example.invalid:8000", "ignored")
	require.NoError(t, err)
	assert.Equal(t, "http://example.invalid:8000", url)
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBannerWidth(&buf, "To-Do", 12)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "║  To-Do   ║", lines[1])
}
