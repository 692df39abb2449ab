package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/myphysiotime/PhysioTime-BookingService/pkg/types"
)

// Переменные окружения, переопределяющие значения из config.toml
const (
	envDBHost     = "DB_HOST"
	envDBPassword = "DB_PASSWORD"
	envJWTSecret  = "JWT_SECRET"
	envHTTPPort   = "HTTP_PORT"
)

var (
	ErrReadConfig     = errors.New("config: failed to read config file")
	ErrValidateConfig = errors.New("config: validation failed")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	JWT      JWTConfig      `toml:"jwt"`
	Clinic   ClinicConfig   `toml:"clinic"`
}

// ServerConfig таймауты указаны в секундах
type ServerConfig struct {
	HTTPPort        int      `toml:"http_port" validate:"required,min=1,max=65535"`
	ReadTimeout     int      `toml:"read_timeout" validate:"min=0"`
	WriteTimeout    int      `toml:"write_timeout" validate:"min=0"`
	IdleTimeout     int      `toml:"idle_timeout" validate:"min=0"`
	ShutdownTimeout int      `toml:"shutdown_timeout" validate:"min=0"`
	AllowedOrigins  []string `toml:"allowed_origins"`
}

type DatabaseConfig struct {
	Host            string `toml:"host" validate:"required"`
	Port            int    `toml:"port" validate:"required,min=1,max=65535"`
	User            string `toml:"user" validate:"required"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" validate:"required"`
	SSLMode         string `toml:"sslmode" validate:"omitempty,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int    `toml:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int    `toml:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" validate:"min=0"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.DBName, sslMode)
	if c.Password != "" {
		dsn += fmt.Sprintf(" password='%s'", strings.ReplaceAll(c.Password, "'", `\'`))
	}
	return dsn
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn error"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
}

type JWTConfig struct {
	Secret   string `toml:"secret" validate:"required,min=16"`
	Issuer   string `toml:"issuer" validate:"required"`
	Audience string `toml:"audience" validate:"required"`
	TTLHours int    `toml:"ttl_hours" validate:"required,min=1"`
}

// TTL время жизни токена
func (c JWTConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// ClinicConfig часы работы клиники, по которым считаются слоты
type ClinicConfig struct {
	OpenTime        types.TimeOfDay `toml:"open_time"`
	CloseTime       types.TimeOfDay `toml:"close_time"`
	SlotStepMinutes int             `toml:"slot_step_minutes" validate:"min=0,max=480"` // 0 = шаг равен длительности услуги
	ClosedDays      []string        `toml:"closed_days" validate:"dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Timezone        string          `toml:"timezone" validate:"required"`
}

// Location загружает часовой пояс клиники
func (c ClinicConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// ClosedWeekdays дни недели, в которые клиника не работает
func (c ClinicConfig) ClosedWeekdays() []time.Weekday {
	weekdays := make([]time.Weekday, 0, len(c.ClosedDays))
	for _, day := range c.ClosedDays {
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			if strings.EqualFold(wd.String(), day) {
				weekdays = append(weekdays, wd)
			}
		}
	}
	return weekdays
}

// Load читает config.toml, применяет переменные окружения (.env подхватывается, если есть) и валидирует результат
func Load(path string) (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrValidateConfig, err)
	}

	if !c.Clinic.OpenTime.IsBefore(c.Clinic.CloseTime) {
		return fmt.Errorf("%w: clinic.open_time must be before clinic.close_time", ErrValidateConfig)
	}

	if _, err := c.Clinic.Location(); err != nil {
		return fmt.Errorf("%w: clinic.timezone: %v", ErrValidateConfig, err)
	}

	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(envDBHost); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv(envDBPassword); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv(envJWTSecret); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv(envHTTPPort); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil {
			cfg.Server.HTTPPort = port
		}
	}
}
