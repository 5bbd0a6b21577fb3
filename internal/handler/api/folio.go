package api

import (
	"net/http"

	resdto "hotel-folio/internal/handler/dto/response"
	"hotel-folio/internal/handler/httperr"
	"hotel-folio/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FolioHandler struct {
	queries queries.FolioQueries
}

func NewFolioHandler(q queries.FolioQueries) *FolioHandler {
	return &FolioHandler{queries: q}
}

// @Summary Get folio
// @Description Consolidated bill: charges in date order, subtotals, grand total and audit trail
// @Tags folio
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.FolioResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/folio [get]
func (h *FolioHandler) GetFolio(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetFolio(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	res, err := resdto.FromFolioView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List room types
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.RoomTypeResponse
// @Router /catalog/room-types [get]
func (h *FolioHandler) RoomTypes(c *gin.Context) {
	res, err := resdto.FromRoomTypes(h.queries.RoomTypes())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List meal plans
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.MealPlanResponse
// @Router /catalog/meal-plans [get]
func (h *FolioHandler) MealPlans(c *gin.Context) {
	res, err := resdto.FromMealPlans(h.queries.MealPlans())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
