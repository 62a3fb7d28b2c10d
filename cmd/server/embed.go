//go:build embed
// +build embed

package main

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed web/dist
var webDist embed.FS

// setupStaticFiles serves the embedded marketing site. staticDir is ignored
// in embedded builds.
func setupStaticFiles(router *gin.Engine, _ string, logger *zap.Logger) {
	logger.Info("Using embedded frontend assets")

	distFS, err := fs.Sub(webDist, "web/dist")
	if err != nil {
		logger.Fatal("Failed to get dist subdirectory", zap.Error(err))
	}

	router.NoRoute(spaHandler(distFS))
}

// spaHandler serves files from dist and falls back to index.html so client
// side routes resolve. Unknown /api paths stay JSON 404s.
func spaHandler(dist fs.FS) gin.HandlerFunc {
	return func(c *gin.Context) {
		urlPath := c.Request.URL.Path
		if strings.HasPrefix(urlPath, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}

		name := strings.TrimPrefix(path.Clean(urlPath), "/")
		if name == "" {
			name = "index.html"
		}
		if stat, err := fs.Stat(dist, name); err != nil || stat.IsDir() {
			name = "index.html"
		}

		content, err := fs.ReadFile(dist, name)
		if err != nil {
			c.String(http.StatusNotFound, "404 page not found")
			return
		}
		c.Data(http.StatusOK, contentType(name), content)
	}
}
