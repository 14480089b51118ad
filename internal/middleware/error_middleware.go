package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/selim/placemate/internal/app/models/dto"
	"github.com/selim/placemate/internal/pkg/apperrors"
	"github.com/selim/placemate/internal/pkg/logger"
)

// HandleAPIError maps service errors onto the standard error envelope.
// Controllers call this for every error a service returns.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrCompanyNotFound):
		respond(c, 404, dto.ErrorCodeResourceNotFound, "Company not found")
	case errors.Is(err, apperrors.ErrStudentNotFound):
		respond(c, 404, dto.ErrorCodeResourceNotFound, "Student not found")
	case errors.Is(err, apperrors.ErrSlotNotFound):
		respond(c, 404, dto.ErrorCodeResourceNotFound, "Interview slot not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, 404, dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrSlotBooked):
		respond(c, 409, dto.ErrorCodeResourceConflict, "Interview slot is booked")
	case errors.Is(err, apperrors.ErrSlotNotAvailable):
		respond(c, 409, dto.ErrorCodeResourceConflict, "Interview slot is not available")
	case errors.Is(err, apperrors.ErrSlotNotBooked):
		respond(c, 409, dto.ErrorCodeResourceConflict, "Interview slot is not booked")
	case errors.Is(err, apperrors.ErrConflict):
		respond(c, 409, dto.ErrorCodeResourceConflict, "Resource conflict")
	case errors.Is(err, apperrors.ErrInvalidDate):
		respond(c, 400, dto.ErrorCodeValidationFailed, "Invalid date, expected YYYY-MM-DD")
	case errors.Is(err, apperrors.ErrInvalidTime):
		respond(c, 400, dto.ErrorCodeValidationFailed, "Invalid time, expected 3-4 digit 24-hour time")
	case errors.Is(err, apperrors.ErrInvalidOfferStatus):
		respond(c, 400, dto.ErrorCodeValidationFailed, "Invalid offer status")
	case errors.Is(err, apperrors.ErrEmptyImport):
		respond(c, 400, dto.ErrorCodeValidationFailed, "Import batch is empty")
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		respond(c, 400, dto.ErrorCodeValidationFailed, "Validation failed")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, 401, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, 401, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(c, 401, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrStorage):
		logger.Error().Err(err).Msg("Storage failure")
		respond(c, 502, dto.ErrorCodeStorageError, "Storage backend unavailable")
	default:
		logger.Error().Err(err).Msg("Unhandled API error")
		respond(c, 500, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
