package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Rajender1411/canteen-savor-hub/models"
)

type Claims struct {
	Name    string `json:"name"`
	Mobile  string `json:"mobile,omitempty"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT carrying the given identity
func GenerateToken(identity models.Identity, secret []byte) (string, error) {
	claims := Claims{
		Name:    identity.Name,
		Mobile:  identity.Mobile,
		IsAdmin: identity.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func parseToken(tokenStr string, secret []byte) (*Claims, bool) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	return claims, true
}

func setIdentity(c *gin.Context, claims *Claims) {
	c.Set("identityID", claims.Subject)
	c.Set("name", claims.Name)
	c.Set("mobile", claims.Mobile)
	c.Set("isAdmin", claims.IsAdmin)
}

// AuthRequired validates the bearer token and injects the identity
// into the request context
func AuthRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		claims, ok := parseToken(strings.TrimPrefix(authHeader, "Bearer "), secret)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth injects the identity when a valid bearer token is
// present and lets the request through either way. Cart endpoints use
// it so guests can shop before signing in.
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			if claims, ok := parseToken(strings.TrimPrefix(authHeader, "Bearer "), secret); ok {
				setIdentity(c, claims)
			}
		}
		c.Next()
	}
}

// AdminRequired enforces that the caller is the administrator
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Administrator only"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetIdentityID extracts the caller's identity id, empty when anonymous
func GetIdentityID(c *gin.Context) string {
	val, ok := c.Get("identityID")
	if !ok {
		return ""
	}
	return val.(string)
}

// GetIdentity rebuilds the caller's identity from the claims in context
func GetIdentity(c *gin.Context) (models.Identity, bool) {
	id := GetIdentityID(c)
	if id == "" {
		return models.Identity{}, false
	}
	name, _ := c.Get("name")
	mobile, _ := c.Get("mobile")
	return models.Identity{
		ID:      id,
		Name:    name.(string),
		Mobile:  mobile.(string),
		IsAdmin: IsAdmin(c),
	}, true
}

// IsAdmin reports whether the caller holds the administrator flag
func IsAdmin(c *gin.Context) bool {
	val, ok := c.Get("isAdmin")
	return ok && val.(bool)
}
