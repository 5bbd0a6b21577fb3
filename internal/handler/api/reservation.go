package api

import (
	"net/http"

	"hotel-folio/internal/domain/booking"
	reqdto "hotel-folio/internal/handler/dto/request"
	resdto "hotel-folio/internal/handler/dto/response"
	"hotel-folio/internal/handler/httperr"
	"hotel-folio/internal/handler/middleware"
	"hotel-folio/internal/pkg/patch"
	"hotel-folio/internal/usecase/commands"
	"hotel-folio/internal/usecase/queries"
	"hotel-folio/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.FolioQueries
}

func NewReservationHandler(cmd commands.ReservationCommands, q queries.FolioQueries) *ReservationHandler {
	return &ReservationHandler{
		commands: cmd,
		queries:  q,
	}
}

// @Summary Create reservation
// @Description Open a reservation for a guest
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	op, ok := middleware.GetOperator(c)
	if !ok {
		internalError(c)
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortBadRequest(c, err, "Invalid date format")
		return
	}

	id, err := h.commands.CreateReservation(c.Request.Context(), in, op)
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetReservation(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	res, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Draft room booking
// @Description Default booking for the reservation's stay
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/bookings/draft [post]
func (h *ReservationHandler) DraftBooking(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	b, err := h.commands.DraftBooking(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Recompute room booking
// @Description Apply one field edit and recompute the total
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecomputeBookingRequest true "Booking and edit"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response "detail holds the unchanged booking"
// @Router /bookings/recompute [post]
func (h *ReservationHandler) RecomputeBooking(c *gin.Context) {
	var req reqdto.RecomputeBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	b, err := req.Booking.ToDomain()
	if err != nil {
		abortInvalidBooking(c, err)
		return
	}

	field, err := booking.ParseField(req.Field)
	if err != nil {
		abortWithUseCaseError(c, err, resdto.FromBooking(b))
		return
	}

	next, err := h.commands.RecomputeBooking(c.Request.Context(), b, field, req.Value)
	if err != nil {
		abortWithUseCaseError(c, err, resdto.FromBooking(next))
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(next))
}

// @Summary Add room booking
// @Tags bookings
// @Accept json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.AddBookingRequest true "Finalized booking"
// @Success 201 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/bookings [post]
func (h *ReservationHandler) AddBooking(c *gin.Context) {
	op, ok := middleware.GetOperator(c)
	if !ok {
		internalError(c)
		return
	}
	id, ok := reservationID(c)
	if !ok {
		return
	}

	var req reqdto.AddBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	b, err := req.Booking.ToDomain()
	if err != nil {
		abortInvalidBooking(c, err)
		return
	}

	if err := h.commands.AddBooking(c.Request.Context(), id, b, op); err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBooking(b))
}

// @Summary Post external charge
// @Description Hand over an F&B or service charge to the folio
// @Tags charges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param source path string true "fnb or service"
// @Param request body reqdto.PostChargeRequest true "Charge record"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/charges/{source} [post]
func (h *ReservationHandler) PostCharge(c *gin.Context) {
	op, ok := middleware.GetOperator(c)
	if !ok {
		internalError(c)
		return
	}
	id, ok := reservationID(c)
	if !ok {
		return
	}

	var req reqdto.PostChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	chargeID, err := h.commands.PostCharge(c.Request.Context(), id, shared.ChargeSource(c.Param("source")), req.ToDomain(), op)
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: chargeID})
}

// @Summary Record audit entry
// @Tags audit
// @Accept json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.RecordAuditRequest true "Audit entry"
// @Success 201
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/audit [post]
func (h *ReservationHandler) RecordAudit(c *gin.Context) {
	op, ok := middleware.GetOperator(c)
	if !ok {
		internalError(c)
		return
	}
	id, ok := reservationID(c)
	if !ok {
		return
	}

	var req reqdto.RecordAuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	if err := h.commands.RecordAudit(c.Request.Context(), id, req.Action, patch.TrimmedString(req.Note), op); err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	c.Status(http.StatusCreated)
}

func reservationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid reservation ID format")
		return uuid.Nil, false
	}
	return id, true
}

func internalError(c *gin.Context) {
	httperr.Abort(c, http.StatusInternalServerError, "Internal server error")
}
