package response

import (
	"time"

	"hotel-folio/internal/domain/booking"
	"hotel-folio/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type BookingResponse struct {
	ID       uuid.UUID       `json:"id"`
	RoomType string          `json:"roomType"`
	CheckIn  string          `json:"checkIn,omitempty"`
	CheckOut string          `json:"checkOut,omitempty"`
	Nights   int             `json:"nights"`
	MealPlan string          `json:"mealPlan"`
	Adults   int             `json:"adults"`
	Children int             `json:"children"`
	Rate     decimal.Decimal `json:"rate"`
	Total    decimal.Decimal `json:"total"`
}

func FromBooking(b booking.RoomBooking) *BookingResponse {
	return &BookingResponse{
		ID:       b.ID(),
		RoomType: b.RoomType(),
		CheckIn:  formatDate(b.CheckIn()),
		CheckOut: formatDate(b.CheckOut()),
		Nights:   b.Nights(),
		MealPlan: b.MealPlan(),
		Adults:   b.Adults(),
		Children: b.Children(),
		Rate:     b.Rate(),
		Total:    b.Total(),
	}
}

type SavedBookingResponse struct {
	BookingResponse
	RoomTypeName string    `json:"roomTypeName"`
	MealPlanName string    `json:"mealPlanName"`
	SavedAt      time.Time `json:"savedAt"`
	SavedBy      string    `json:"savedBy"`
}

type ReservationResponse struct {
	ID            uuid.UUID              `json:"id"`
	GuestName     string                 `json:"guestName"`
	GuestEmail    string                 `json:"guestEmail,omitempty"`
	GuestPhone    string                 `json:"guestPhone,omitempty"`
	ArrivalDate   string                 `json:"arrival,omitempty"`
	DepartureDate string                 `json:"departure,omitempty"`
	Note          string                 `json:"note,omitempty"`
	CreatedBy     string                 `json:"createdBy"`
	CreatedAt     time.Time              `json:"createdAt"`
	Bookings      []SavedBookingResponse `json:"bookings" copier:"-"`
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	res := &ReservationResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	if v.Arrival != nil {
		res.ArrivalDate = formatDate(*v.Arrival)
	}
	if v.Departure != nil {
		res.DepartureDate = formatDate(*v.Departure)
	}

	res.Bookings = make([]SavedBookingResponse, len(v.Bookings))
	for i, bv := range v.Bookings {
		res.Bookings[i] = SavedBookingResponse{
			BookingResponse: *FromBooking(bv.Booking),
			RoomTypeName:    bv.RoomTypeName,
			MealPlanName:    bv.MealPlanName,
			SavedAt:         bv.SavedAt,
			SavedBy:         bv.SavedBy,
		}
	}
	return res, nil
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(booking.DateLayout)
}
