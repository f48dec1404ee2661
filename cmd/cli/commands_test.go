package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithQuery(t *testing.T) {
	assert.Equal(t, "/standings", withQuery("/standings", url.Values{"player": {""}}))
	assert.Equal(t, "/recompute?dry_run=true", withQuery("/recompute", url.Values{"dry_run": boolParam(true)}))
	assert.Equal(t, "/recompute", withQuery("/recompute", url.Values{"dry_run": boolParam(false)}))
}

func TestImportCommandPostsFile(t *testing.T) {
	var gotBody, gotQuery, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody, gotQuery, gotMethod = string(b), r.URL.RawQuery, r.Method
		w.Write([]byte(`{"imported":1}`))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, os.WriteFile(path, []byte("event_id\n"), 0o600))

	host = server.URL
	recompute, dryRun = true, false
	defer func() { recompute = false }()

	require.NoError(t, importCmd.RunE(importCmd, []string{path}))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "event_id\n", gotBody)
	assert.Equal(t, "recompute=true", gotQuery)
}

func TestPerformRequestFailsOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	host = server.URL
	assert.Error(t, performGetRequest("/recompute"))
}
