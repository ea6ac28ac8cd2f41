package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rajender1411/canteen-savor-hub/cart"
	"github.com/Rajender1411/canteen-savor-hub/catalog"
	"github.com/Rajender1411/canteen-savor-hub/middleware"
)

// CartHandler serves the cart endpoints. Every operation resolves the
// caller's own cart first; carts are never shared between owners.
type CartHandler struct {
	Carts   *cart.Registry
	Catalog *catalog.Provider
}

func NewCartHandler(carts *cart.Registry, cat *catalog.Provider) *CartHandler {
	return &CartHandler{Carts: carts, Catalog: cat}
}

// cartOwner resolves whose cart a request addresses: the authenticated
// identity when present, otherwise a client-supplied guest token.
func cartOwner(c *gin.Context) string {
	if id := middleware.GetIdentityID(c); id != "" {
		return id
	}
	if tok := c.GetHeader("X-Cart-Token"); tok != "" {
		return tok
	}
	return "guest"
}

func cartBody(m *cart.Manager) gin.H {
	return gin.H{
		"items":       m.Lines(),
		"total_items": m.TotalItems(),
		"subtotal":    m.Subtotal(),
		"is_open":     m.Open(),
	}
}

type AddToCartRequest struct {
	ItemID         string   `json:"item_id" binding:"required"`
	Quantity       int      `json:"quantity" binding:"required,min=1"`
	Customizations []string `json:"customizations"`
}

type SetQuantityRequest struct {
	// Pointer so clients can legitimately send zero to remove the line
	Quantity *int `json:"quantity" binding:"required"`
}

type SetOpenRequest struct {
	Open *bool `json:"open" binding:"required"`
}

// GetCart returns the caller's cart with derived totals
func (h *CartHandler) GetCart(c *gin.Context) {
	m := h.Carts.For(cartOwner(c))
	c.JSON(http.StatusOK, gin.H{"cart": cartBody(m)})
}

// AddItem puts a menu item in the caller's cart; re-adding an item
// merges quantities into the existing line
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, ok := h.Catalog.ByID(req.ItemID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	m := h.Carts.For(cartOwner(c))
	outcome := m.Add(c.Request.Context(), item, req.Quantity, req.Customizations)

	message := "Added " + item.Name + " to cart"
	status := http.StatusCreated
	if outcome == cart.LineUpdated {
		message = "Updated " + item.Name + " quantity in cart"
		status = http.StatusOK
	}
	c.JSON(status, gin.H{
		"message": message,
		"cart":    cartBody(m),
	})
}

// RemoveItem drops one line from the caller's cart; unknown ids are a no-op
func (h *CartHandler) RemoveItem(c *gin.Context) {
	m := h.Carts.For(cartOwner(c))
	m.Remove(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"cart": cartBody(m)})
}

// UpdateQuantity replaces a line's quantity; zero or below removes the line
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m := h.Carts.For(cartOwner(c))
	m.SetQuantity(c.Request.Context(), c.Param("id"), *req.Quantity)
	c.JSON(http.StatusOK, gin.H{"cart": cartBody(m)})
}

// ClearCart empties the caller's cart unconditionally
func (h *CartHandler) ClearCart(c *gin.Context) {
	m := h.Carts.For(cartOwner(c))
	m.Clear(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
		"cart":    cartBody(m),
	})
}

// SetOpen toggles the cart panel visibility flag
func (h *CartHandler) SetOpen(c *gin.Context) {
	var req SetOpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m := h.Carts.For(cartOwner(c))
	m.SetOpen(*req.Open)
	c.JSON(http.StatusOK, gin.H{"is_open": m.Open()})
}
