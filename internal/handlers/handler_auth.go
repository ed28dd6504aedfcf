package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/SscSPs/taxi_coop_backoffice/internal/apperrors"
	portssvc "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/taxi_coop_backoffice/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// loginRate bounds login attempts per client IP.
var loginRate = limiter.Rate{Period: time.Minute, Limit: 5}

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService portssvc.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

// registerAuthRoutes sets up the public login route behind its own per-IP limiter.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthService) {
	h := NewAuthHandler(authService)

	limitMiddleware := limitergin.NewMiddleware(limiter.New(memory.NewStore(), loginRate))

	auth := r.Group("/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
	}
}

// Login godoc
// @Summary Operator login
// @Description Authenticates the back-office operator and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse "Too many attempts"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	res, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
			return
		}
		respondError(c, err, "Failed to generate token")
		return
	}
	c.JSON(http.StatusOK, res)
}
