package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rajender1411/canteen-savor-hub/catalog"
	"github.com/Rajender1411/canteen-savor-hub/models"
)

// MenuHandler serves the read-only catalog endpoints.
type MenuHandler struct {
	Catalog *catalog.Provider
}

func NewMenuHandler(p *catalog.Provider) *MenuHandler {
	return &MenuHandler{Catalog: p}
}

// loaded guards every menu endpoint: before the catalog load completes
// (or after a failed load) clients get a retryable 503.
func (h *MenuHandler) loaded(c *gin.Context) bool {
	if h.Catalog.Loaded() {
		return true
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to load menu items"})
	return false
}

// GetMenu returns the full menu, optionally filtered by category
func (h *MenuHandler) GetMenu(c *gin.Context) {
	if !h.loaded(c) {
		return
	}

	items := h.Catalog.Items()
	if category := c.Query("category"); category != "" {
		items = h.Catalog.ByCategory(models.MenuCategory(category))
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(items),
		"menu":  items,
	})
}

// GetSpecials returns the items flagged for promotional display
func (h *MenuHandler) GetSpecials(c *gin.Context) {
	if !h.loaded(c) {
		return
	}
	specials := h.Catalog.Specials()
	c.JSON(http.StatusOK, gin.H{
		"count":    len(specials),
		"specials": specials,
	})
}

// GetCategories returns the fixed menu sections in display order
func (h *MenuHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.AllCategories})
}

// GetMenuItem returns a single menu item by id
func (h *MenuHandler) GetMenuItem(c *gin.Context) {
	if !h.loaded(c) {
		return
	}
	item, ok := h.Catalog.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// ReloadMenu re-runs the simulated catalog fetch — admin only
func (h *MenuHandler) ReloadMenu(c *gin.Context) {
	if err := h.Catalog.Load(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to load menu items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Menu reloaded",
		"count":   len(h.Catalog.Items()),
	})
}
