package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (booking window, timeouts, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Booking BookingConfig
	AMQP    AMQPConfig
	Redis   RedisConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	// Single-node deployments without transaction support run the booking
	// sequence best-effort and lean on the bookings exclusion constraint.
	Transactions bool `envconfig:"DB_TRANSACTIONS" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

// BookingConfig pins the facility calendar: rule matching, coach windows and
// the availability grid all evaluate start times in this timezone.
type BookingConfig struct {
	Timezone  string `envconfig:"BOOKING_TIMEZONE" default:"UTC"`
	OpenHour  int    `envconfig:"BOOKING_OPEN_HOUR" default:"6"`
	CloseHour int    `envconfig:"BOOKING_CLOSE_HOUR" default:"22"`
}

type AMQPConfig struct {
	// Empty URL disables the broker; waitlist notifications fall back to logs.
	URL      string `envconfig:"AMQP_URL" default:""`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"shuttlebook.events"`
}

type RedisConfig struct {
	// Empty address disables the availability cache.
	Addr     string        `envconfig:"REDIS_ADDR" default:""`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"30s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func (c *BookingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid booking timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Booking.OpenHour < 0 || cfg.Booking.CloseHour > 24 || cfg.Booking.OpenHour >= cfg.Booking.CloseHour {
		return Config{}, fmt.Errorf("invalid booking window %d-%d", cfg.Booking.OpenHour, cfg.Booking.CloseHour)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:         "localhost",
			Port:         "15433", // Test DB port
			User:         "test",
			Password:     "test",
			DBName:       "test_db",
			SSLMode:      "disable",
			Transactions: true,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Booking: BookingConfig{
			Timezone:  "UTC",
			OpenHour:  6,
			CloseHour: 22,
		},
	}
}
