package bootstrap

import (
	"hotel-folio/internal/domain/booking"
	"hotel-folio/internal/domain/catalog"
	"hotel-folio/internal/pkg/config"
	"hotel-folio/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var DomainModule = fx.Module("domain",
	fx.Provide(
		catalog.Default,
		NewPriceCalculator,
		NewBookingEngine,
		NewBookingDefaults,
	),
)

func NewPriceCalculator(cfg config.Config) booking.PriceCalculator {
	return booking.NewNightlyPriceCalculator(cfg.Folio.CurrencyPlaces)
}

func NewBookingEngine(cfg config.Config, calc booking.PriceCalculator) *booking.Engine {
	return booking.NewEngine(calc, cfg.Folio.CurrencyPlaces)
}

// NewBookingDefaults fails startup when the configured defaults would produce drafts
// that can never be saved.
func NewBookingDefaults(cfg config.Config, cat *catalog.Catalog) (booking.Defaults, error) {
	rate, err := decimal.NewFromString(cfg.Folio.DefaultRate)
	if err != nil {
		return booking.Defaults{}, errs.Wrap(err, "invalid FOLIO_DEFAULT_RATE")
	}
	if rate.IsNegative() || !rate.Equal(rate.Round(cfg.Folio.CurrencyPlaces)) {
		return booking.Defaults{}, errs.Newf("FOLIO_DEFAULT_RATE %s does not fit the currency", rate)
	}
	if _, err := cat.RoomType(cfg.Folio.DefaultRoomType); err != nil {
		return booking.Defaults{}, errs.Wrap(err, "invalid FOLIO_DEFAULT_ROOM_TYPE")
	}
	if _, err := cat.MealPlan(cfg.Folio.DefaultMealPlan); err != nil {
		return booking.Defaults{}, errs.Wrap(err, "invalid FOLIO_DEFAULT_MEAL_PLAN")
	}
	return booking.Defaults{
		RoomType: cfg.Folio.DefaultRoomType,
		MealPlan: cfg.Folio.DefaultMealPlan,
		Rate:     rate,
	}, nil
}
