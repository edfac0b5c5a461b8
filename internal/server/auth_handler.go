package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cravio-admin/internal/common/auth"
	"cravio-admin/internal/common/web"
)

// AuthHandler exposes login, logout, and session introspection.
type AuthHandler struct {
	sessions *auth.SessionManager
}

func NewAuthHandler(sessions *auth.SessionManager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, web.ErrorBody{Code: "VALIDATION_FAILED", Message: "email and password are required"})
		return
	}

	session, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":      session.Token,
		"user_id":    session.UserID,
		"email":      session.Email,
		"expires_at": session.ExpiresAt,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := bearerToken(c.GetHeader("Authorization"))
	if err := h.sessions.Logout(c.Request.Context(), token); err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logged_out": true})
}

func (h *AuthHandler) Session(c *gin.Context) {
	session := SessionFromContext(c)
	c.JSON(http.StatusOK, gin.H{"session": session})
}
