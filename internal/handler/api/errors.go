package api

import (
	"errors"
	"net/http"

	"hotel-folio/internal/domain/audit"
	"hotel-folio/internal/domain/booking"
	"hotel-folio/internal/domain/folio"
	reqdto "hotel-folio/internal/handler/dto/request"
	"hotel-folio/internal/handler/httperr"
	"hotel-folio/internal/usecase/commands"
	"hotel-folio/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

// first match wins
var errorMappings = []errorMapping{
	{commands.ErrOperatorNotPermitted, http.StatusForbidden, "Insufficient permissions"},
	{commands.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{queries.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{commands.ErrDuplicateBooking, http.StatusConflict, "Booking already added"},
	{commands.ErrUnknownChargeSource, http.StatusNotFound, "Unknown charge source"},
	{commands.ErrInvalidGuest, http.StatusUnprocessableEntity, "Invalid guest details"},
	{booking.ErrUnknownField, http.StatusUnprocessableEntity, "Unknown booking field"},
	{booking.ErrInvalidFieldValue, http.StatusUnprocessableEntity, "Invalid field value"},
	{folio.ErrInvalidChargeRecord, http.StatusUnprocessableEntity, "Invalid charge record"},
	{audit.ErrEmptyAction, http.StatusUnprocessableEntity, "Audit action is required"},
}

// abortWithUseCaseError writes the mapped status for err. detail is attached only to 422 responses.
func abortWithUseCaseError(c *gin.Context, err error, detail any) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			if m.status == http.StatusUnprocessableEntity {
				httperr.AbortWithError(c, m.status, err, m.msg+": "+err.Error(), detail)
				return
			}
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

// abortInvalidBooking rejects a booking payload that could not be rebuilt.
func abortInvalidBooking(c *gin.Context, err error) {
	if errors.Is(err, reqdto.ErrAmountOutOfRange) {
		abortBadRequest(c, err, "Amount out of range")
		return
	}
	abortBadRequest(c, err, "Invalid date format")
}
