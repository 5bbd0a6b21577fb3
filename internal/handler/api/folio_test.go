//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-folio/internal/domain/audit"
	"hotel-folio/internal/domain/catalog"
	"hotel-folio/internal/domain/folio"
	"hotel-folio/internal/handler/api"
	resdto "hotel-folio/internal/handler/dto/response"
	"hotel-folio/internal/usecase/queries"
	"hotel-folio/tests/common/builder"
	"hotel-folio/tests/common/httptest"
	queriesmock "hotel-folio/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FolioHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockFolioQueries
	handler     *api.FolioHandler
}

func (s *FolioHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockFolioQueries(s.mockCtrl)
	s.handler = api.NewFolioHandler(s.mockQueries)

	s.router.GET("/reservations/:id/folio", s.handler.GetFolio)
	s.router.GET("/catalog/room-types", s.handler.RoomTypes)
	s.router.GET("/catalog/meal-plans", s.handler.MealPlans)
}

func (s *FolioHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFolioHandlerSuite(t *testing.T) {
	suite.Run(t, new(FolioHandlerTestSuite))
}

func (s *FolioHandlerTestSuite) folioView() *queries.FolioView {
	bb := builder.NewBookingBuilder()
	room := folio.ProjectBooking(bb.BuildDomain(), "Standard Room", "996311", bb.SavedAt)
	dinner := builder.NewChargeBuilder().BuildRecord()
	spa := builder.NewChargeBuilder().AsService().
		WithDate(time.Date(2024, 1, 3, 11, 0, 0, 0, time.UTC)).WithDescription("Spa").WithAmount("1471.10").BuildRecord()

	ledger, err := folio.Aggregate([]folio.ChargeRecord{room}, []folio.ChargeRecord{dinner}, []folio.ChargeRecord{spa})
	s.Require().NoError(err)

	created, err := audit.NewEntry("Reservation Created", "Asha", time.Date(2023, 12, 28, 10, 0, 0, 0, time.UTC), "Guest: Priya Raman")
	s.Require().NoError(err)

	return &queries.FolioView{
		Reservation: builder.NewReservationBuilder().BuildView(bb.BuildView("Standard Room", "Breakfast Included")),
		Items:       ledger.Items(),
		Subtotals:   ledger.Subtotals(),
		GrandTotal:  ledger.GrandTotal(),
		AuditTrail:  audit.Render([]audit.Entry{created}),
	}
}

// ================================================================================
// TestGetFolio
// ================================================================================

func (s *FolioHandlerTestSuite) TestGetFolio() {
	view := s.folioView()
	url := "/reservations/" + view.Reservation.ID.String() + "/folio"

	s.Run("success: returns the consolidated bill", func() {
		s.mockQueries.EXPECT().GetFolio(gomock.Any(), view.Reservation.ID).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.FolioResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)

		type line struct {
			Date                                time.Time
			Description, Classification, Outlet string
		}
		got := make([]line, len(body.Items))
		for i, it := range body.Items {
			got[i] = line{it.Date, it.Description, it.Classification, it.Outlet}
		}
		want := []line{
			{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "Room Charges - Standard Room (3 nights)", "ROOM", "Front Desk"},
			{time.Date(2024, 1, 2, 20, 30, 0, 0, time.UTC), "Dinner", "F&B", "Restaurant"},
			{time.Date(2024, 1, 3, 11, 0, 0, 0, time.UTC), "Spa", "SERVICE", "Various"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			s.T().Errorf("folio lines mismatch (-want +got):\n%s", diff)
		}

		s.True(body.GrandTotal.Equal(decimal.RequireFromString("6471.10")))
		s.Require().Len(body.Subtotals, 3)
		s.Equal("ROOM", body.Subtotals[0].Classification)
		s.Require().Len(body.AuditTrail, 1)
		s.Equal("created", body.AuditTrail[0].Category)
		s.Equal("Asha", body.AuditTrail[0].By)
		s.Equal("Priya Raman", body.Reservation.GuestName)
	})

	s.Run("grand total is a decimal string and dates are RFC3339", func() {
		s.mockQueries.EXPECT().GetFolio(gomock.Any(), view.Reservation.ID).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var raw map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &raw)
		s.Equal("6471.1", raw["grandTotal"])

		items, ok := raw["items"].([]any)
		s.Require().True(ok)
		dinner, ok := items[1].(map[string]any)
		s.Require().True(ok)
		s.Equal("2024-01-02T20:30:00Z", dinner["date"], "charge time survives serialization")
	})

	s.Run("error: 422 on a corrupt charge", func() {
		s.mockQueries.EXPECT().GetFolio(gomock.Any(), gomock.Any()).
			Return(nil, folio.ErrInvalidChargeRecord).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid charge record")
	})

	s.Run("error: 404 when missing", func() {
		missing := uuid.New()
		s.mockQueries.EXPECT().GetFolio(gomock.Any(), missing).
			Return(nil, queries.ErrReservationNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+missing.String()+"/folio", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/123/folio", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})
}

// ================================================================================
// TestCatalog
// ================================================================================

func (s *FolioHandlerTestSuite) TestCatalog() {
	cat := catalog.Default()

	s.Run("room types", func() {
		s.mockQueries.EXPECT().RoomTypes().Return(cat.RoomTypes()).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog/room-types", nil, "")

		var body []resdto.RoomTypeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 4)
		s.Equal(resdto.RoomTypeResponse{Code: "STD", Name: "Standard Room", MaxOccupancy: 2}, body[0])
	})

	s.Run("meal plans", func() {
		s.mockQueries.EXPECT().MealPlans().Return(cat.MealPlans()).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog/meal-plans", nil, "")

		var body []resdto.MealPlanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 4)
		s.Equal("CP", body[1].Code)
	})
}
