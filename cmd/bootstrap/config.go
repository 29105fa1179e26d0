package bootstrap

import (
	"time"

	"shuttlebook/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewBookingConfig,
		NewBookingLocation,
	),
)

func NewBookingConfig(cfg config.Config) config.BookingConfig {
	return cfg.Booking
}

func NewBookingLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Booking.Location()
}
