package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ascent-cms/dto"
	"github.com/ascent-cms/middleware"
	"github.com/ascent-cms/services"
)

// AuthController handles the admin session endpoints
type AuthController struct {
	authService  *services.AuthService
	cookieSecure bool
}

// NewAuthController creates a new auth controller
func NewAuthController(authService *services.AuthService, cookieSecure bool) *AuthController {
	return &AuthController{authService: authService, cookieSecure: cookieSecure}
}

// RegisterRoutes registers auth routes
func (ctl *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", ctl.Login)
		auth.POST("/logout", ctl.Logout)
		// Use auth middleware here only for the /me endpoint
		auth.GET("/me", middleware.AuthMiddleware(ctl.authService), ctl.Me)
	}
}

// Login checks the admin key and starts a session
func (ctl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest

	// Parse request body
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
		})
		return
	}

	authResponse, err := ctl.authService.Login(req)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidKey) {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Authentication failed",
		})
		return
	}

	// Set token as HttpOnly cookie
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		middleware.SessionCookie,
		authResponse.Token,
		int(ctl.authService.TTL().Seconds()),
		"/",
		"",
		ctl.cookieSecure,
		true,
	)

	// Also return token in response body for clients that prefer Bearer auth
	respondOK(c, authResponse)
}

// Logout clears the session cookie
func (ctl *AuthController) Logout(c *gin.Context) {
	// Clear the cookie by setting max-age to -1 (expired)
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", ctl.cookieSecure, true)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Logged out successfully",
	})
}

// Me reports the current session
func (ctl *AuthController) Me(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Not authenticated",
		})
		return
	}
	respondOK(c, dto.SessionResponse{Role: session.Role, ExpiresAt: session.ExpiresAt})
}
