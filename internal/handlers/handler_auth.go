package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	portssvc "github.com/vantage-fin/vantage/internal/core/ports/services"
	"github.com/vantage-fin/vantage/internal/dto"
	"github.com/vantage-fin/vantage/internal/middleware"
	"github.com/vantage-fin/vantage/internal/utils"
	"github.com/vantage-fin/vantage/pkg/config"
)

// authHandler handles registration and login.
type authHandler struct {
	cfg     *config.Config
	authSvc portssvc.AuthSvcFacade
}

func registerAuthRoutes(r *gin.Engine, cfg *config.Config, authSvc portssvc.AuthSvcFacade, authLimiter *limiter.Limiter) {
	h := &authHandler{cfg: cfg, authSvc: authSvc}

	auth := r.Group("/api/v1/auth", middleware.RateLimit(authLimiter))
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}
}

func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateJWT(user.UserID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.AuthResponse{
		Token:  token,
		UserID: user.UserID,
		Email:  user.Email,
		Name:   user.Name,
	}))
}

func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.authSvc.Authenticate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateJWT(user.UserID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.AuthResponse{
		Token:  token,
		UserID: user.UserID,
		Email:  user.Email,
		Name:   user.Name,
	}))
}
