package functests

import (
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"
	"todolist/browser"
	"todolist/config"
	"todolist/database"
	"todolist/handlers"
	"todolist/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	maxWait      = 10 * time.Second
	pollInterval = 500 * time.Millisecond
)

// startLiveServer serves the app on a random port backed by a fresh database.
func startLiveServer(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	oldURL := config.Settings.DatabaseURL
	oldServices := service.GlobalServices
	t.Cleanup(func() {
		config.Settings.DatabaseURL = oldURL
		service.GlobalServices = oldServices
	})
	config.Settings.DatabaseURL = filepath.Join(t.TempDir(), "functional.db")

	require.NoError(t, database.InitDB())
	t.Cleanup(func() { _ = database.CloseDB() })
	service.InitServices(database.DB)

	r, err := handlers.NewRouter()
	require.NoError(t, err)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv.URL
}

func newBrowser(t *testing.T) *browser.Browser {
	t.Helper()
	b, err := browser.New(browser.WithTimeout(maxWait))
	require.NoError(t, err)
	return b
}

// listTableRows returns the text of every row in the list table.
func listTableRows(b *browser.Browser) ([]string, error) {
	table, err := b.FindElementByID("id_list_table")
	if err != nil {
		return nil, err
	}
	rows := table.FindElementsByTagName("tr")
	texts := make([]string, 0, len(rows))
	for _, row := range rows {
		texts = append(texts, row.Text())
	}
	return texts, nil
}

func rowInListTable(b *browser.Browser, rowText string) error {
	rows, err := listTableRows(b)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if row == rowText {
			return nil
		}
	}
	return fmt.Errorf("%q not found in list table rows %q", rowText, rows)
}

func waitForRowInListTable(t *testing.T, b *browser.Browser, rowText string) {
	t.Helper()
	err := browser.NewPoller(maxWait, pollInterval).Until(func() error {
		return rowInListTable(b, rowText)
	})
	require.NoError(t, err)
}
