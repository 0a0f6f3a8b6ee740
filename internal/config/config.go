package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	// ErrNoSlots возвращается, когда в конфигурации не задан каталог слотов
	ErrNoSlots = errors.New("config: schedule.slots must not be empty")

	// ErrNoAuthSecrets возвращается, когда не заданы секреты админского доступа
	ErrNoAuthSecrets = errors.New("config: auth.password_hash and auth.jwt_secret are required")
)

// Config корневая конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Schedule ScheduleConfig `toml:"schedule"`
	WhatsApp WhatsAppConfig `toml:"whatsapp"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	MigrationsPath  string `toml:"migrations_path"`   // при пустой строке миграции не запускаются
}

// DSN собирает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AuthConfig настройки админского доступа.
// PasswordHash хранит bcrypt hash пароля администратора, JWTSecret служит ключом подписи токенов.
type AuthConfig struct {
	PasswordHash    string `toml:"password_hash"`
	JWTSecret       string `toml:"jwt_secret"`
	TokenTTLMinutes int    `toml:"token_ttl_minutes"`
}

// ScheduleConfig каталог слотов. Каталог задаётся внешней конфигурацией, а не константой кода:
// упорядоченный конечный список меток времени, одинаковый для всех дней.
// Поддерживаются 12-часовые ("09:00 AM") и 24-часовые ("09:00") метки.
type ScheduleConfig struct {
	Slots []string `toml:"slots"`
}

// WhatsAppConfig настройки исходящего WhatsApp-сообщения барберу.
// BarberPhone участвует в wa.me ссылке всегда; Twilio-отправка включается отдельно.
type WhatsAppConfig struct {
	BarberPhone      string `toml:"barber_phone"`
	TwilioEnabled    bool   `toml:"twilio_enabled"`
	TwilioAccountSID string `toml:"twilio_account_sid"`
	TwilioAuthToken  string `toml:"twilio_auth_token"`
	TwilioFrom       string `toml:"twilio_from"` // номер отправителя, формат "whatsapp:+1415..."
}

// Load читает конфигурацию из TOML файла и накладывает переменные окружения
// поверх секретов. .env файл подхватывается, если существует.
func Load(path string) (*Config, error) {
	// .env опционален, его отсутствие не считается ошибкой
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnvOverrides секреты из окружения имеют приоритет над TOML
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("ADMIN_PASSWORD_HASH"); v != "" {
		cfg.Auth.PasswordHash = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("TWILIO_ACCOUNT_SID"); v != "" {
		cfg.WhatsApp.TwilioAccountSID = v
	}
	if v := os.Getenv("TWILIO_AUTH_TOKEN"); v != "" {
		cfg.WhatsApp.TwilioAuthToken = v
	}
}

func (c *Config) validate() error {
	if len(c.Schedule.Slots) == 0 {
		return ErrNoSlots
	}
	if c.Auth.PasswordHash == "" || c.Auth.JWTSecret == "" {
		return ErrNoAuthSecrets
	}
	if c.Auth.TokenTTLMinutes <= 0 {
		c.Auth.TokenTTLMinutes = 60
	}
	return nil
}
