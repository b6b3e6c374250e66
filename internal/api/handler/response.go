package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cuongbtq/jobboard/internal/api/domain"
	"github.com/cuongbtq/jobboard/internal/api/dto"
	"github.com/gin-gonic/gin"
)

const callerKey = "caller"

// SetCaller stores the authenticated account on the request
func SetCaller(c *gin.Context, account *domain.Account) {
	c.Set(callerKey, account)
}

// Caller returns the account stored by SetCaller, or nil
func Caller(c *gin.Context) *domain.Account {
	if v, ok := c.Get(callerKey); ok {
		if account, ok := v.(*domain.Account); ok {
			return account
		}
	}
	return nil
}

// StatusOf maps an error to its HTTP status
func StatusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondError aborts the request with the error's status. Internal errors
// are logged and reported with a generic message.
func RespondError(c *gin.Context, logger *slog.Logger, err error) {
	status := StatusOf(err)

	var derr *domain.Error
	if status == http.StatusInternalServerError || !errors.As(err, &derr) {
		logger.Error("Request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Any("error", err),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
			Success: false,
			Message: "Server error",
		})
		return
	}

	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Success: false,
		Message: derr.Message,
		Fields:  derr.Fields,
	})
}

func respondInvalidBody(c *gin.Context, logger *slog.Logger, err error) {
	logger.Debug("Invalid request body", slog.String("error", err.Error()))
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
		Success: false,
		Message: "Invalid request body",
	})
}
