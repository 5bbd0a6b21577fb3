package bootstrap

import (
	"log/slog"

	"hotel-folio/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logFolioSettings),
)

// secrets are never logged
func logFolioSettings(cfg config.Config, logger *slog.Logger) {
	logger.Info("設定を読み込みました",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
		"default_room_type", cfg.Folio.DefaultRoomType,
		"default_meal_plan", cfg.Folio.DefaultMealPlan,
		"default_rate", cfg.Folio.DefaultRate,
		"currency_places", cfg.Folio.CurrencyPlaces,
	)
}
