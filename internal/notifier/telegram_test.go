package notifier

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegramNotifier_Send(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/sendMessage", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	n := NewTelegramNotifier("test-token", "12345", "")
	n.BaseURL = srv.URL

	require.NoError(t, n.Send("<b>hello</b>"))
	assert.Equal(t, "12345", got["chat_id"])
	assert.Equal(t, "<b>hello</b>", got["text"])
	assert.Equal(t, "HTML", got["parse_mode"])
}

func TestTelegramNotifier_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
	}))
	defer srv.Close()

	n := NewTelegramNotifier("test-token", "0", "")
	n.BaseURL = srv.URL

	err := n.Send("hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "chat not found")
}

func TestFormatScanReport(t *testing.T) {
	msg := FormatScanReport(&ScanRunSummary{
		AssetClass:     "stocks",
		Tickers:        3,
		Failed:         []string{"BAD"},
		EntriesWritten: 18,
		Cells:          9,
		Duration:       3200 * time.Millisecond,
	})
	assert.Contains(t, msg, "Asset class: stocks")
	assert.Contains(t, msg, "Tickers: 3 (1 failed)")
	assert.Contains(t, msg, "18 across 9 cells")
	assert.Contains(t, msg, "failed: BAD")

	ok := FormatScanReport(&ScanRunSummary{AssetClass: "etfs", Tickers: 2, Cells: 9})
	assert.Contains(t, ok, "all tickers processed")
	assert.NotContains(t, ok, "failed:")
}
