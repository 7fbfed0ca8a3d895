package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/drill/internal/config"
	"github.com/dkoosis/drill/internal/drills"
	"github.com/dkoosis/drill/internal/logging"
	"github.com/dkoosis/drill/internal/notes"
	"github.com/dkoosis/drill/internal/registry"
	"github.com/dkoosis/drill/internal/runner"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	reg := registry.NewDrillRegistry()
	drills.RegisterAll(reg)

	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.LevelError,
		Format: "text",
		Output: io.Discard,
	})

	catalog, err := notes.NewCatalog()
	require.NoError(t, err)

	return New(config.Default(), logger, reg, runner.New(reg, logger), catalog)
}

func TestIndex(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Study notes")
	assert.Contains(t, string(body), "/drills/overdraft")
	assert.Contains(t, string(body), "/notes/value-objects")
}

func TestNote(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/notes/value-objects")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Validated value objects")
}

func TestNote_Missing(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/notes/ghost")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDrillList(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/drills")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	assert.NotEmpty(t, items)

	names := make(map[string]bool)
	for _, item := range items {
		names[item["name"]] = true
	}
	assert.True(t, names["overdraft"])
	assert.True(t, names["fail-fast"])
}

func TestDrillRun(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/drills/overdraft")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "=== overdraft protection ===")
}

func TestDrillRun_Missing(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/drills/ghost")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
