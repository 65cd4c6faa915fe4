package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kvnhng/quizmint/internal/dto"
	"github.com/kvnhng/quizmint/internal/middleware"
	"github.com/kvnhng/quizmint/internal/service"
	"github.com/kvnhng/quizmint/internal/util"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authSvc service.AuthService
}

func NewAuthController(authSvc service.AuthService) *AuthController {
	return &AuthController{authSvc: authSvc}
}

// Register godoc
// @Summary Register a new user
// @Description Create an account and receive a bearer token valid for 7 days
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.RegisterRequest true "Name, email and password"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse "Missing field or email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "All fields required"})
		return
	}

	resp, err := ctrl.authSvc.Register(req)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Email already registered"})
			return
		}
		log.Error().Err(err).Msg("Registration failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to register"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Login godoc
// @Summary Log in
// @Description Exchange email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Email and password"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse "Missing field or invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "All fields required"})
		return
	}

	resp, err := ctrl.authSvc.Login(req)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			// Deliberately identical for unknown email and wrong password.
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid credentials"})
			return
		}
		log.Error().Err(err).Msg("Login failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to log in"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me godoc
// @Summary Get the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := ctrl.authSvc.CurrentUser(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, user)
}
