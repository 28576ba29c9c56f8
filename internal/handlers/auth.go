package handlers

import (
	"errors"
	"net/http"

	"github.com/ClarkAshida/Kanban-API/internal/auth"
	dom "github.com/ClarkAshida/Kanban-API/internal/domain"
	"github.com/ClarkAshida/Kanban-API/internal/dto"
	"github.com/ClarkAshida/Kanban-API/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, token issuance, refresh and revocation.
type AuthHandler struct {
	tokens  *auth.Manager
	userSvc *service.UserService
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(tokens *auth.Manager, userSvc *service.UserService) *AuthHandler {
	return &AuthHandler{tokens: tokens, userSvc: userSvc}
}

// Token godoc
// @Summary      Issue an access/refresh token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TokenRequest  true  "Credentials"
// @Success      200   {object}  dto.TokenResponse
// @Failure      401   {object}  map[string]string
// @Router       /auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.userSvc.ValidateCredentials(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid login or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	h.issue(c, user, http.StatusOK)
}

// Register godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "New account"
// @Success      201   {object}  dto.TokenResponse
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.userSvc.Register(c.Request.Context(), req.Login, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "login, name and password required"})
			return
		}
		if errors.Is(err, service.ErrLoginTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "login already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}
	h.issue(c, user, http.StatusCreated)
}

// Refresh godoc
// @Summary      Rotate a refresh token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RefreshRequest  true  "Refresh token"
// @Success      200   {object}  dto.TokenResponse
// @Failure      401   {object}  map[string]string
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	access, refresh, err := h.tokens.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "refresh failed"})
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: access, RefreshToken: refresh})
}

// Logout godoc
// @Summary      Revoke a refresh token
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_ = h.tokens.Revoke(c.Request.Context(), req.RefreshToken)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) issue(c *gin.Context, user dom.User, status int) {
	p := auth.Principal{UserID: user.ID, IsStaff: user.IsStaff, IsSuperuser: user.IsSuperuser}
	access, refresh, err := h.tokens.IssuePair(c.Request.Context(), p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue tokens"})
		return
	}
	c.JSON(status, gin.H{
		"access_token":  access,
		"refresh_token": refresh,
		"user":          userToResponse(user),
	})
}

func userToResponse(u dom.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Login:    u.Login,
		Name:     u.Name,
		IsActive: u.IsActive,
		IsStaff:  u.IsStaff,
	}
}
