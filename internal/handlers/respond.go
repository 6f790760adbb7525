package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skogge/CountryCurrencyPicker/internal/apperrors"
	"github.com/skogge/CountryCurrencyPicker/internal/parcel"
)

// respond writes body as JSON, or the parcel frame produced by encode when the
// client prefers msgpack.
func respond(c *gin.Context, logger *slog.Logger, body any, encode func() ([]byte, error)) {
	switch c.NegotiateFormat(gin.MIMEJSON, parcel.MIMEType) {
	case parcel.MIMEType:
		data, err := encode()
		if err != nil {
			logger.Error("Failed to encode parcel", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode response"})
			return
		}
		c.Data(http.StatusOK, parcel.MIMEType, data)
	default:
		c.JSON(http.StatusOK, body)
	}
}

// writeServiceError maps catalog errors onto HTTP statuses.
func writeServiceError(c *gin.Context, logger *slog.Logger, err error, failure string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrNoCurrency),
		errors.Is(err, apperrors.ErrNoCountries):
		logger.Warn(failure, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn(failure, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(failure, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failure})
	}
}
