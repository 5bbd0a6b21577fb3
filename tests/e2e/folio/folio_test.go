//go:build e2e

package folio_test

import (
	"fmt"
	"net/http"
	"testing"

	"hotel-folio/internal/domain/operator"
	"hotel-folio/internal/handler/dto/request"
	"hotel-folio/internal/handler/dto/response"
	"hotel-folio/tests/common/authtest"
	"hotel-folio/tests/common/builder"
	"hotel-folio/tests/common/httptest"
	"hotel-folio/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	draftURL        = "/api/reservations/%s/bookings/draft"
	recomputeURL    = "/api/bookings/recompute"
	bookingsURL     = "/api/reservations/%s/bookings"
	chargesURL      = "/api/reservations/%s/charges/%s"
	auditURL        = "/api/reservations/%s/audit"
	folioURL        = "/api/reservations/%s/folio"
)

type FolioSuite struct {
	e2e.SharedSuite
}

func TestFolioSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(FolioSuite))
}

func (s *FolioSuite) createReservation(token string) uuid.UUID {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
		builder.NewReservationBuilder().BuildCreateRequestDTO(), token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.CreatedResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created.ID
}

// =============================================================================
// TestFolioLifecycle - booking editor through the final bill
// =============================================================================

func (s *FolioSuite) TestFolioLifecycle() {
	s.Run("Normal case: front desk builds a folio from all three sources", func() {
		t := s.T()
		token := s.Token("Asha", operator.RoleFrontDesk)
		id := s.createReservation(token)

		// draft seeded from the stay
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(draftURL, id), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var draft response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &draft))
		require.Equal(t, 3, draft.Nights)

		// nights 3 -> 2 recomputes the total
		payload := request.BookingPayload{
			ID: draft.ID, RoomType: draft.RoomType, CheckIn: draft.CheckIn, CheckOut: draft.CheckOut,
			Nights: draft.Nights, MealPlan: draft.MealPlan, Adults: draft.Adults, Children: draft.Children,
			Rate: draft.Rate, Total: draft.Total,
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, recomputeURL,
			request.RecomputeBookingRequest{Booking: payload, Field: "nights", Value: "2"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var edited response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &edited))
		require.True(t, edited.Total.Equal(decimal.NewFromInt(3000)), "total = %s", edited.Total)

		payload.Nights = edited.Nights
		payload.Total = edited.Total
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookingsURL, id),
			request.AddBookingRequest{Booking: payload}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(chargesURL, id, "fnb"),
			builder.NewChargeBuilder().BuildRequestDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(chargesURL, id, "service"),
			builder.NewChargeBuilder().AsService().WithAmount("250").BuildRequestDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(auditURL, id),
			map[string]any{"action": "Payment Received", "note": "UPI"}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// an auditor can read the final bill
		auditor := s.Token("Ravi", operator.RoleAuditor)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(folioURL, id), nil, auditor)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var bill response.FolioResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &bill))

		gotClasses := make([]string, len(bill.Items))
		for i, it := range bill.Items {
			gotClasses[i] = it.Classification
		}
		if diff := cmp.Diff([]string{"ROOM", "F&B", "SERVICE"}, gotClasses); diff != "" {
			t.Errorf("item order mismatch (-want +got):\n%s", diff)
		}
		require.True(t, bill.GrandTotal.Equal(decimal.NewFromInt(3750)), "grand total = %s", bill.GrandTotal)

		gotTrail := make([]string, len(bill.AuditTrail))
		for i, e := range bill.AuditTrail {
			gotTrail[i] = e.Category + ":" + e.Action
		}
		wantTrail := []string{
			"created:Reservation Created",
			"created:Room Booking Created",
			"other:F&B Charge Posted",
			"other:Service Charge Posted",
			"payment:Payment Received",
		}
		if diff := cmp.Diff(wantTrail, gotTrail); diff != "" {
			t.Errorf("audit trail mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: auditor cannot post charges", func() {
		t := s.T()
		id := s.createReservation(s.Token("Asha", operator.RoleFrontDesk))

		auditor := s.Token("Ravi", operator.RoleAuditor)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(chargesURL, id, "fnb"),
			builder.NewChargeBuilder().BuildRequestDTO(), auditor)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("Error case: tampered total is rejected on save", func() {
		t := s.T()
		token := s.Token("Asha", operator.RoleFrontDesk)
		id := s.createReservation(token)

		payload := builder.NewBookingBuilder().WithTotal("99").BuildPayload()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookingsURL, id),
			request.AddBookingRequest{Booking: payload}, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Invalid field value")
	})

	s.Run("Error case: expired token", func() {
		t := s.T()
		expired := s.JWT.CreateExpiredToken(t, authtest.NewOperator(t, "Asha", operator.RoleFrontDesk))
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(folioURL, uuid.New()), nil, expired)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

// =============================================================================
// TestCatalog - public selector tables
// =============================================================================

func (s *FolioSuite) TestCatalog() {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/catalog/room-types", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var rooms []response.RoomTypeResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rooms))
	require.NotEmpty(t, rooms)
}
