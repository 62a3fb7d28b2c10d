package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jimmy00415/ChefWeb-sub000/internal/pricing"
)

// CatalogHandler serves the package and add-on menus
type CatalogHandler struct {
	addons *pricing.AddonCatalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(addons *pricing.AddonCatalog) *CatalogHandler {
	return &CatalogHandler{addons: addons}
}

// Packages handles GET /api/v1/packages
func (h *CatalogHandler) Packages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"packages":       pricing.Packages(),
		"defaultPackage": pricing.DefaultPackage,
	})
}

// Addons handles GET /api/v1/addons
func (h *CatalogHandler) Addons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"addons": h.addons.All()})
}
