package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("invalid config")

// Переменные окружения для секретов (перекрывают значения из файла)
const (
	EnvDBPassword     = "STUDIO_DB_PASSWORD"
	EnvJWTSecret      = "STUDIO_JWT_SECRET"
	EnvNotifierAPIKey = "STUDIO_NOTIFIER_API_KEY"
	EnvS3AccessKey    = "STUDIO_S3_ACCESS_KEY"
	EnvS3SecretKey    = "STUDIO_S3_SECRET_KEY"
	EnvRedisPassword  = "STUDIO_REDIS_PASSWORD"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig    `toml:"server"`
	Database DatabaseConfig  `toml:"database"`
	Logs     LogsConfig      `toml:"logs"`
	Metrics  MetricsConfig   `toml:"metrics"`
	Notifier NotifierConfig  `toml:"notifier"`
	Redis    RedisConfig     `toml:"redis"`
	Media    MediaConfig     `toml:"media"`
	Auth     AuthConfig      `toml:"auth"`
	Booking  BookingConfig   `toml:"booking"`
	Services []ServiceConfig `toml:"services"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
	RequestTimeout  int `toml:"request_timeout"`
	// Origins сайта для CORS, пусто - любой
	AllowedOrigins []string `toml:"allowed_origins"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// NotifierConfig настройки релея уведомлений (email/WhatsApp)
type NotifierConfig struct {
	Enabled   bool   `toml:"enabled"`
	URL       string `toml:"url"`
	APIKey    string `toml:"api_key"`
	Timeout   int    `toml:"timeout"`
	QueueSize int    `toml:"queue_size"`
	To        string `toml:"to"` // Адрес владельца студии
}

// RedisConfig настройки Redis (сессии корзины)
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	CartTTL  int    `toml:"cart_ttl"` // Время жизни корзины в минутах
}

// MediaConfig настройки объектного хранилища
type MediaConfig struct {
	Enabled       bool   `toml:"enabled"`
	Endpoint      string `toml:"endpoint"`
	Region        string `toml:"region"`
	Bucket        string `toml:"bucket"`
	AccessKey     string `toml:"access_key"`
	SecretKey     string `toml:"secret_key"`
	PublicBaseURL string `toml:"public_base_url"`
	MaxDimension  int    `toml:"max_dimension"`
	Quality       int    `toml:"quality"`
	MaxUploadMB   int    `toml:"max_upload_mb"`
}

// AuthConfig проверка токенов внешнего провайдера идентификации
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	AdminRole string `toml:"admin_role"`
	Issuer    string `toml:"issuer"`
}

// BookingConfig настройки записи
type BookingConfig struct {
	Slots           []string `toml:"slots"`
	HorizonMonths   int      `toml:"horizon_months"`
	MinLeadDays     int      `toml:"min_lead_days"`
	StrictSlotCheck bool     `toml:"strict_slot_check"`
	StoreTimeout    int      `toml:"store_timeout"` // Таймаут чтения бронирований, секунды
	Timezone        string   `toml:"timezone"`
}

// ServiceConfig услуга каталога
type ServiceConfig struct {
	ID            string `toml:"id"`
	Name          string `toml:"name"`
	DurationHours int    `toml:"duration_hours"`
}

// Load читает конфигурацию из TOML файла
// Перед чтением подгружает .env (если есть), секреты из окружения перекрывают файл
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	overrides := map[string]*string{
		EnvDBPassword:     &c.Database.Password,
		EnvJWTSecret:      &c.Auth.JWTSecret,
		EnvNotifierAPIKey: &c.Notifier.APIKey,
		EnvS3AccessKey:    &c.Media.AccessKey,
		EnvS3SecretKey:    &c.Media.SecretKey,
		EnvRedisPassword:  &c.Redis.Password,
	}
	for key, target := range overrides {
		if v := os.Getenv(key); v != "" {
			*target = v
		}
	}
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 10)
	setDefault(&c.Server.WriteTimeout, 30)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 15)
	setDefault(&c.Server.RequestTimeout, 15)

	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.MaxOpenConns, 10)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 1800)
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "studio_booking"
	}

	setDefault(&c.Notifier.Timeout, 10)
	setDefault(&c.Notifier.QueueSize, 100)
	setDefault(&c.Redis.CartTTL, 24*60)
	setDefault(&c.Media.MaxDimension, 1920)
	setDefault(&c.Media.Quality, 80)
	setDefault(&c.Media.MaxUploadMB, 20)

	if c.Auth.AdminRole == "" {
		c.Auth.AdminRole = "admin"
	}

	if len(c.Booking.Slots) == 0 {
		c.Booking.Slots = append([]string(nil), domain.DefaultSlotGrid...)
	}
	setDefault(&c.Booking.HorizonMonths, domain.DefaultHorizonMonths)
	setDefault(&c.Booking.MinLeadDays, domain.DefaultMinLeadDays)
	setDefault(&c.Booking.StoreTimeout, 5)
	if c.Booking.Timezone == "" {
		c.Booking.Timezone = "UTC"
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required (or %s)", ErrInvalidConfig, EnvJWTSecret)
	}
	if c.Notifier.Enabled && c.Notifier.URL == "" {
		return fmt.Errorf("%w: notifier.url is required when notifier is enabled", ErrInvalidConfig)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}
	if c.Media.Enabled && (c.Media.Bucket == "" || c.Media.PublicBaseURL == "") {
		return fmt.Errorf("%w: media.bucket and media.public_base_url are required when media is enabled", ErrInvalidConfig)
	}
	if c.Booking.HorizonMonths <= 0 {
		return fmt.Errorf("%w: booking.horizon_months must be positive", ErrInvalidConfig)
	}
	if _, err := time.LoadLocation(c.Booking.Timezone); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}
	if len(c.Services) == 0 {
		return fmt.Errorf("%w: at least one [[services]] entry is required", ErrInvalidConfig)
	}
	return nil
}

// Location возвращает часовой пояс студии
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Booking.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func setDefault(target *int, value int) {
	if *target == 0 {
		*target = value
	}
}

// CatalogServices конвертирует [[services]] в услуги каталога
func (c *Config) CatalogServices() []domain.Service {
	out := make([]domain.Service, 0, len(c.Services))
	for _, s := range c.Services {
		out = append(out, domain.Service{ID: s.ID, Name: s.Name, DurationHours: s.DurationHours})
	}
	return out
}
