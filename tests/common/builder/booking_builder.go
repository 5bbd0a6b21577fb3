//go:build unit || e2e

package builder

import (
	"time"

	"hotel-folio/internal/domain/booking"
	reqdto "hotel-folio/internal/handler/dto/request"
	"hotel-folio/internal/usecase/queries"
	"hotel-folio/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ID       uuid.UUID
	RoomType string
	CheckIn  time.Time
	CheckOut time.Time
	Nights   int
	MealPlan string
	Adults   int
	Children int
	Rate     decimal.Decimal
	// nil means rate x nights
	Total   *decimal.Decimal
	SavedAt time.Time
	SavedBy string
}

func NewBookingBuilder() *BookingBuilder {
	checkIn := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:       uuid.New(),
		RoomType: "STD",
		CheckIn:  checkIn,
		CheckOut: checkIn.AddDate(0, 0, 3),
		Nights:   3,
		MealPlan: "CP",
		Adults:   2,
		Children: 0,
		Rate:     decimal.NewFromInt(1500),
		SavedAt:  checkIn.Add(-48 * time.Hour),
		SavedBy:  "Front Desk Agent",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() booking.RoomBooking {
	return booking.Reconstruct(
		b.ID, b.RoomType, b.CheckIn, b.CheckOut, b.Nights, b.MealPlan,
		b.Adults, b.Children, b.Rate, b.total(),
	)
}

func (b *BookingBuilder) BuildPayload() reqdto.BookingPayload {
	return reqdto.BookingPayload{
		ID:       b.ID,
		RoomType: b.RoomType,
		CheckIn:  formatDate(b.CheckIn),
		CheckOut: formatDate(b.CheckOut),
		Nights:   b.Nights,
		MealPlan: b.MealPlan,
		Adults:   b.Adults,
		Children: b.Children,
		Rate:     b.Rate,
		Total:    b.total(),
	}
}

func (b *BookingBuilder) BuildStored() shared.StoredBooking {
	return shared.StoredBooking{
		Booking: b.BuildDomain(),
		SavedAt: b.SavedAt,
		SavedBy: b.SavedBy,
	}
}

func (b *BookingBuilder) BuildView(roomTypeName, mealPlanName string) queries.BookingView {
	return queries.BookingView{
		Booking:      b.BuildDomain(),
		RoomTypeName: roomTypeName,
		MealPlanName: mealPlanName,
		SavedAt:      b.SavedAt,
		SavedBy:      b.SavedBy,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithRoomType(code string) *BookingBuilder {
	b.RoomType = code
	return b
}

func (b *BookingBuilder) WithMealPlan(code string) *BookingBuilder {
	b.MealPlan = code
	return b
}

func (b *BookingBuilder) WithStay(checkIn time.Time, nights int) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkIn.AddDate(0, 0, nights)
	b.Nights = nights
	return b
}

func (b *BookingBuilder) WithoutDates() *BookingBuilder {
	b.CheckIn = time.Time{}
	b.CheckOut = time.Time{}
	return b
}

func (b *BookingBuilder) WithNights(n int) *BookingBuilder {
	b.Nights = n
	return b
}

func (b *BookingBuilder) WithGuests(adults, children int) *BookingBuilder {
	b.Adults = adults
	b.Children = children
	return b
}

func (b *BookingBuilder) WithRate(rate string) *BookingBuilder {
	b.Rate = decimal.RequireFromString(rate)
	return b
}

func (b *BookingBuilder) WithTotal(total string) *BookingBuilder {
	t := decimal.RequireFromString(total)
	b.Total = &t
	return b
}

func (b *BookingBuilder) total() decimal.Decimal {
	if b.Total != nil {
		return *b.Total
	}
	return b.Rate.Mul(decimal.NewFromInt(int64(b.Nights))).Round(2)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(booking.DateLayout)
}
