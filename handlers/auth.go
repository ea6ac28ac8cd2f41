package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rajender1411/canteen-savor-hub/middleware"
	"github.com/Rajender1411/canteen-savor-hub/session"
)

// AuthHandler serves the sign-in endpoints backed by the session manager.
type AuthHandler struct {
	Sessions *session.Manager
	Secret   []byte
}

func NewAuthHandler(sessions *session.Manager, secret []byte) *AuthHandler {
	return &AuthHandler{Sessions: sessions, Secret: secret}
}

type UserLoginRequest struct {
	Name   string `json:"name" binding:"required"`
	Mobile string `json:"mobile" binding:"required"`
}

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type PanelRequest struct {
	Open *bool `json:"open" binding:"required"`
}

// Login signs in a regular user with a name and 10-digit mobile number
func (h *AuthHandler) Login(c *gin.Context) {
	var req UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity, err := h.Sessions.LoginAsUser(c.Request.Context(), req.Name, req.Mobile)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := middleware.GenerateToken(identity, h.Secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome, " + identity.Name + "!",
		"token":   token,
		"user":    identity,
	})
}

// AdminLogin signs in the administrator with the fixed credentials
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity, ok := h.Sessions.LoginAsAdmin(c.Request.Context(), req.Username, req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin credentials"})
		return
	}

	token, err := middleware.GenerateToken(identity, h.Secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Admin login successful",
		"token":   token,
		"user":    identity,
	})
}

// Logout clears the current session
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Sessions.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GetProfile returns the authenticated caller's identity
func (h *AuthHandler) GetProfile(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": identity})
}

// GetSession reports the current session container state
func (h *AuthHandler) GetSession(c *gin.Context) {
	body := gin.H{
		"authenticated": h.Sessions.IsAuthenticated(),
		"state":         h.Sessions.State(),
		"sign_in_open":  h.Sessions.SignInOpen(),
	}
	if identity, ok := h.Sessions.Current(); ok {
		body["user"] = identity
	}
	c.JSON(http.StatusOK, body)
}

// SetSignInOpen toggles the sign-in panel visibility flag
func (h *AuthHandler) SetSignInOpen(c *gin.Context) {
	var req PanelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.Sessions.SetSignInOpen(*req.Open)
	c.JSON(http.StatusOK, gin.H{"sign_in_open": h.Sessions.SignInOpen()})
}

// GetStateMachineInfo returns the sign-in lifecycle for informational purposes
func (h *AuthHandler) GetStateMachineInfo(c *gin.Context) {
	info := make([]gin.H, 0)
	for _, t := range session.AllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To, "action": t.Action})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine": info,
		"description":   "Sign-in Session Lifecycle State Machine",
	})
}
