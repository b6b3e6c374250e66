package handler

import (
	"net/http"

	"github.com/cuongbtq/jobboard/internal/api/dto"
	"github.com/cuongbtq/jobboard/internal/api/service"
	"github.com/gin-gonic/gin"
)

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, h.logger, err)
		return
	}

	session, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Success: true,
		Message: "User registered successfully",
		Token:   session.Token,
		User:    dto.NewUserResponse(session.Account),
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, h.logger, err)
		return
	}

	session, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Token:   session.Token,
		User:    dto.NewUserResponse(session.Account),
	})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	account, err := h.auth.Me(c.Request.Context(), Caller(c))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{Success: true, User: account})
}
