package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Booking   BookingConfig   `yaml:"booking"   validate:"required"`
	Pricing   PricingConfig   `yaml:"pricing"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Archive   ArchiveConfig   `yaml:"archive"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Demo      DemoConfig      `yaml:"demo"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

// LogLevel maps the string level onto logger.Level from wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine maps the string engine onto logger.Engine from wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type BookingConfig struct {
	GracePeriod   time.Duration `yaml:"grace_period"   env:"BOOKING_GRACE_PERIOD"   env-default:"5m"    validate:"gt=0"`
	Retention     time.Duration `yaml:"retention"      env:"BOOKING_RETENTION"      env-default:"24h"   validate:"gt=0"`
	DailyLength   time.Duration `yaml:"daily_length"   env:"BOOKING_DAILY_LENGTH"   env-default:"24h"   validate:"gt=0"`
	WeeklyLength  time.Duration `yaml:"weekly_length"  env:"BOOKING_WEEKLY_LENGTH"  env-default:"168h"  validate:"gt=0"`
	MonthlyLength time.Duration `yaml:"monthly_length" env:"BOOKING_MONTHLY_LENGTH" env-default:"720h"  validate:"gt=0"`
	YearlyLength  time.Duration `yaml:"yearly_length"  env:"BOOKING_YEARLY_LENGTH"  env-default:"8760h" validate:"gt=0"`
}

type PricingConfig struct {
	HourlyRate int64 `yaml:"hourly_rate" env:"PRICE_HOURLY_RATE" env-default:"20"    validate:"min=0"`
	Daily      int64 `yaml:"daily"       env:"PRICE_DAILY"       env-default:"100"   validate:"min=0"`
	Weekly     int64 `yaml:"weekly"      env:"PRICE_WEEKLY"      env-default:"900"   validate:"min=0"`
	Monthly    int64 `yaml:"monthly"     env:"PRICE_MONTHLY"     env-default:"2500"  validate:"min=0"`
	Yearly     int64 `yaml:"yearly"      env:"PRICE_YEARLY"      env-default:"10000" validate:"min=0"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"30s" validate:"required,gt=0"`
}

// ArchiveConfig toggles the write-behind postgres archive. The engine keeps
// all live state in memory either way.
type ArchiveConfig struct {
	Enabled bool `yaml:"enabled" env:"ARCHIVE_ENABLED" env-default:"false"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"  validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"  validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"parkx"     validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"        validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type TelegramConfig struct {
	BotToken  string `yaml:"bot_token"   env:"TELEGRAM_BOT_TOKEN"   env-default:""`
	OpsChatID int64  `yaml:"ops_chat_id" env:"TELEGRAM_OPS_CHAT_ID" env-default:"0"`
}

// DemoConfig seeds a couple of plots on startup for local exploration.
type DemoConfig struct {
	SeedPlots bool `yaml:"seed_plots" env:"DEMO_SEED_PLOTS" env-default:"false"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
