package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/ventes-dashboard/internal/application/service"
	"github.com/sangkips/ventes-dashboard/internal/presentation/http/dto/request"
	"github.com/sangkips/ventes-dashboard/internal/presentation/http/dto/response"
	"github.com/sangkips/ventes-dashboard/internal/presentation/http/middleware"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService  *service.AuthService
	secureCookie bool
}

// NewAuthHandler creates a new auth handler. secureCookie marks the session
// cookie as HTTPS only.
func NewAuthHandler(authService *service.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookie: secureCookie}
}

// Login handles the login form
// @Summary Login
// @Description Check the dashboard credentials and open a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login credentials"
// @Success 200 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	output, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookie, output.AccessToken, int(h.authService.TokenTTL().Seconds()), "/", "", h.secureCookie, true)

	response.OK(c, "Login successful", gin.H{
		"session":      output.Session,
		"access_token": output.AccessToken,
		"token_type":   "Bearer",
		"expires_at":   output.ExpiresAt,
	})
}

// Logout handles user logout
// @Summary Logout
// @Description Clear the session cookie (bearer clients discard their token)
// @Tags auth
// @Success 200 {object} response.APIResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := middleware.GetSession(c)
	sess.Logout()
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secureCookie, true)
	response.OK(c, "Logout successful", sess)
}

// Session returns the current session
// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	response.OK(c, "Session retrieved", middleware.GetSession(c))
}
