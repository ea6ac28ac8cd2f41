package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Rajender1411/canteen-savor-hub/handlers"
	"github.com/Rajender1411/canteen-savor-hub/middleware"
)

// Deps carries the constructed handlers; nothing here reaches for
// package-level state.
type Deps struct {
	Menu   *handlers.MenuHandler
	Cart   *handlers.CartHandler
	Auth   *handlers.AuthHandler
	Admin  *handlers.AdminHandler
	Secret []byte
}

func SetupRoutes(r *gin.Engine, d Deps) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/login", d.Auth.Login)
		public.POST("/auth/admin-login", d.Auth.AdminLogin)

		// Menu (no auth needed)
		public.GET("/menu", d.Menu.GetMenu)
		public.GET("/menu/specials", d.Menu.GetSpecials)
		public.GET("/menu/categories", d.Menu.GetCategories)
		public.GET("/menu/:id", d.Menu.GetMenuItem)

		// Session lifecycle info (great for docs/Postman)
		public.GET("/state-machine", d.Auth.GetStateMachineInfo)
	}

	// ── Session routes (work signed-in or anonymous) ───────────────
	sess := r.Group("/api")
	sess.Use(middleware.OptionalAuth(d.Secret))
	{
		sess.GET("/session", d.Auth.GetSession)
		sess.PUT("/session/panel", d.Auth.SetSignInOpen)
	}

	// ── Cart routes (guests shop too, via X-Cart-Token) ────────────
	cartGroup := r.Group("/api/cart")
	cartGroup.Use(middleware.OptionalAuth(d.Secret))
	{
		cartGroup.GET("", d.Cart.GetCart)
		cartGroup.POST("/items", d.Cart.AddItem)
		cartGroup.PUT("/items/:id", d.Cart.UpdateQuantity)
		cartGroup.DELETE("/items/:id", d.Cart.RemoveItem)
		cartGroup.DELETE("", d.Cart.ClearCart)
		cartGroup.PUT("/open", d.Cart.SetOpen)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(d.Secret))
	{
		auth.GET("/profile", d.Auth.GetProfile)
		auth.POST("/auth/logout", d.Auth.Logout)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(d.Secret), middleware.AdminRequired())
	{
		admin.GET("/carts", d.Admin.GetCartsOverview)
		admin.POST("/menu/reload", d.Menu.ReloadMenu)
	}
}
