package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vantage-fin/vantage/internal/apperrors"
	"github.com/vantage-fin/vantage/internal/dto"
	"github.com/vantage-fin/vantage/internal/middleware"
)

// respondError maps a service error onto an HTTP status and writes the
// failure envelope. Unrecognized errors never leak their message.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrUnsupportedCurrencyPair),
		errors.Is(err, apperrors.ErrMissingExchangeRate),
		errors.Is(err, apperrors.ErrInvalidExchangeRate):
		c.JSON(http.StatusUnprocessableEntity, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrBalanceUpdateFailed):
		logger.Error("Balance update failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.Fail(apperrors.ErrBalanceUpdateFailed.Error()))
	default:
		logger.Error("Unhandled service error", "error", err)
		c.JSON(http.StatusInternalServerError, dto.Fail("internal server error"))
	}
}

// respondBindError writes the failure envelope for a request that did not
// bind or validate.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", "error", err)
	c.JSON(http.StatusBadRequest, dto.Fail("Invalid request format: "+err.Error()))
}

// userIDOrAbort pulls the authenticated user from the context, writing the
// 401 envelope when it is missing.
func userIDOrAbort(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
	}
	return userID, ok
}
