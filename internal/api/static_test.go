// Copyright (c) 2026 SSBackend. All rights reserved.
// Author: sri.raksha.dev@gmail.com

package api_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sri-Raksha/SSBackend/internal/api"
)

/*
TestSPAHandler verifies static file serving and the index.html fallback for
client-side routes.
*/
func TestSPAHandler(t *testing.T) {
	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "app.js"), []byte("console.log('hi')"), 0o644))

	handler := api.SPAHandler(staticDir)

	t.Run("serves_existing_file", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/app.js", nil)
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "console.log")
	})

	t.Run("falls_back_to_index", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/some/client/route", nil)
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "app")
	})

	t.Run("rejects_non_get_methods", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/app.js", nil)
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
