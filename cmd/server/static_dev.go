//go:build !embed
// +build !embed

package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// setupStaticFiles serves the marketing site from staticDir on disk.
func setupStaticFiles(router *gin.Engine, staticDir string, logger *zap.Logger) {
	index := filepath.Join(staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		logger.Warn("Frontend assets not found, serving API only", zap.String("dir", staticDir))
		router.NoRoute(func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		})
		return
	}

	logger.Info("Using local filesystem for frontend assets", zap.String("dir", staticDir))
	router.NoRoute(func(c *gin.Context) {
		urlPath := c.Request.URL.Path
		if strings.HasPrefix(urlPath, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}

		file := filepath.Join(staticDir, filepath.FromSlash(filepath.Clean("/"+urlPath)))
		if stat, err := os.Stat(file); err == nil && !stat.IsDir() {
			c.Header("Content-Type", contentType(file))
			c.File(file)
			return
		}
		c.File(index)
	})
}
