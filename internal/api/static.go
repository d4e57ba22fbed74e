// Copyright (c) 2026 SSBackend. All rights reserved.
// Author: sri.raksha.dev@gmail.com

package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// SPAHandler serves the compiled frontend bundle from staticDir.
//
// # Behavior
//
//   - An existing file under staticDir is served as-is.
//   - Anything else falls back to index.html so client-side routing works
//     on hard refresh.
//   - Path traversal outside staticDir is rejected with 404.
func SPAHandler(staticDir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(staticDir))
	indexPath := filepath.Join(staticDir, "index.html")

	return func(writer http.ResponseWriter, request *http.Request) {
		if request.Method != http.MethodGet && request.Method != http.MethodHead {
			http.NotFound(writer, request)
			return
		}

		requested := filepath.Join(staticDir, filepath.Clean("/"+request.URL.Path))
		if !strings.HasPrefix(requested, filepath.Clean(staticDir)) {
			http.NotFound(writer, request)
			return
		}

		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(writer, request)
			return
		}

		http.ServeFile(writer, request, indexPath)
	}
}
