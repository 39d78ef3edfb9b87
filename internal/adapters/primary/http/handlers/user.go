package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"farmventure-api/internal/adapters/primary/http/dto"
	"farmventure-api/internal/adapters/primary/http/middleware"
)

func (h *Handler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.userSvc.Signup(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		log.WithError(err).Error("signup failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TokenResponse{
		Token:   token,
		Role:    string(user.Role),
		Message: "account created",
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.userSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		Token:   token,
		Role:    string(user.Role),
		Message: "login successful",
	})
}

func (h *Handler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
