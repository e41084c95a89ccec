package rest

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// FrontendHandler serves the static marketing site. Extensionless paths fall
// back to the matching .html file, so /shop serves shop.html.
type FrontendHandler struct {
	dir   string
	index string
}

func NewFrontendHandler(dir string, index string) *FrontendHandler {
	return &FrontendHandler{dir: dir, index: index}
}

func (h *FrontendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := strings.TrimPrefix(filepath.Clean(r.URL.Path), "/")
	if p == "" || p == "." {
		http.ServeFile(w, r, filepath.Join(h.dir, h.index))
		return
	}

	full := filepath.Join(h.dir, p)
	if !strings.HasPrefix(full, filepath.Clean(h.dir)) {
		http.NotFound(w, r)
		return
	}

	if info, err := os.Stat(full); err == nil && !info.IsDir() {
		http.ServeFile(w, r, full)
		return
	}
	if filepath.Ext(p) == "" {
		if _, err := os.Stat(full + ".html"); err == nil {
			http.ServeFile(w, r, full+".html")
			return
		}
	}

	http.NotFound(w, r)
}
