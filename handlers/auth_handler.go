package handlers

import (
	"net/http"

	"event-ease/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	session *services.Session
}

func NewAuthHandler(session *services.Session) *AuthHandler {
	return &AuthHandler{session: session}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login - simulated sign in, derives the account from the email
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.session.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"account": account,
		"state":   h.session.State(),
	})
}

// Logout - clears the stored account and resets the workflow
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.session.Logout(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": h.session.State()})
}

// Current - the active account, if any
func (h *AuthHandler) Current(c *gin.Context) {
	account := h.session.Account()
	if account == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": account, "state": h.session.State()})
}
