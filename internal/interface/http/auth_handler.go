package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/empdesk/employee-api/internal/application"
	"github.com/empdesk/employee-api/internal/domain/repository"
	"github.com/empdesk/employee-api/pkg/helpers"
	"github.com/empdesk/employee-api/pkg/response"
	"github.com/empdesk/employee-api/pkg/validation"
)

type AuthHandler struct {
	Svc     *application.AuthService
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, cookies *helpers.CookieManager) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cookies: cookies}
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.WithField("details", validation.ToDetails(err)).Debug("login payload rejected")
		response.Message(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, token, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Message(c, http.StatusUnauthorized, "Invalid credentials")
		return
	case errors.Is(err, helpers.ErrMissingSecret):
		response.Message(c, http.StatusInternalServerError, "Server misconfiguration")
		return
	case err != nil:
		h.Logger.WithError(err).Error("login failed")
		response.Message(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.Cookies.SetToken(c, token)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// Register POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.WithField("details", validation.ToDetails(err)).Debug("register payload rejected")
		response.Message(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.Svc.Register(c.Request.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, repository.ErrDuplicateUsername):
		response.Message(c, http.StatusConflict, "Username already exists")
		return
	case err != nil:
		response.Message(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered",
		"user":    user,
	})
}

// Logout POST /auth/logout. Always succeeds, with or without a cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Message(c, http.StatusOK, "Logged out")
}
