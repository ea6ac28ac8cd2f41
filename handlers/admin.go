package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rajender1411/canteen-savor-hub/cart"
)

// AdminHandler serves the administrator dashboard endpoints.
type AdminHandler struct {
	Carts *cart.Registry
}

func NewAdminHandler(carts *cart.Registry) *AdminHandler {
	return &AdminHandler{Carts: carts}
}

// GetCartsOverview aggregates every active cart — admin only
func (h *AdminHandler) GetCartsOverview(c *gin.Context) {
	owners := h.Carts.Owners()

	carts := make([]gin.H, 0, len(owners))
	var totalItems int
	var totalValue float64
	for _, owner := range owners {
		m := h.Carts.For(owner)
		items := m.TotalItems()
		value := m.Subtotal()
		totalItems += items
		totalValue += value
		carts = append(carts, gin.H{
			"owner":       owner,
			"lines":       len(m.Lines()),
			"total_items": items,
			"subtotal":    value,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"count":       len(carts),
		"total_items": totalItems,
		"total_value": totalValue,
		"carts":       carts,
	})
}
