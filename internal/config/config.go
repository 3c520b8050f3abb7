package config

import (
	"aero-lite/internal/routing"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTP    HTTPConfig
	Log     LogConfig
	OpenAI  OpenAIConfig
	Breaker BreakerConfig
	Pricing PricingConfig
	Kafka   KafkaConfig
	DB      DBConfig
}

type HTTPConfig struct {
	Port           string   `envconfig:"APP_PORT" default:"8080"`
	PublicHost     string   `envconfig:"PUBLIC_HOST" default:"localhost:8080"`
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

type LogConfig struct {
	File  string `envconfig:"LOG_FILE" default:"aero.log"`
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type OpenAIConfig struct {
	APIKey       string        `envconfig:"OPENAI_API_KEY"`
	BaseURL      string        `envconfig:"OPENAI_BASE_URL"`
	RoutingModel string        `envconfig:"OPENAI_ROUTING_MODEL" default:"gpt-4.1-mini"`
	VisionModel  string        `envconfig:"OPENAI_VISION_MODEL" default:"gpt-4.1-mini"`
	Temperature  float32       `envconfig:"OPENAI_TEMPERATURE" default:"0.4"`
	Timeout      time.Duration `envconfig:"OPENAI_TIMEOUT" default:"20s"`
}

type BreakerConfig struct {
	Interval            time.Duration `envconfig:"BREAKER_INTERVAL" default:"60s"`
	OpenTimeout         time.Duration `envconfig:"BREAKER_OPEN_TIMEOUT" default:"30s"`
	ConsecutiveFailures uint32        `envconfig:"BREAKER_CONSECUTIVE_FAILURES" default:"3"`
	MinRequests         uint32        `envconfig:"BREAKER_MIN_REQUESTS" default:"10"`
	FailureRatio        float64       `envconfig:"BREAKER_FAILURE_RATIO" default:"0.5"`
}

// PricingConfig переопределения тарифов из окружения. Не заданные поля
// оставляют значения по умолчанию из routing.DefaultConfig.
type PricingConfig struct {
	FlagshipRatePercent       *float64 `envconfig:"PRICING_FLAGSHIP_RATE_PERCENT"`
	SmallTransferThresholdUsd *float64 `envconfig:"PRICING_SMALL_TRANSFER_THRESHOLD_USD"`
	SmallTransferBufferUsd    *float64 `envconfig:"PRICING_SMALL_TRANSFER_BUFFER_USD"`
	NetworkRoutingPercent     *float64 `envconfig:"PRICING_NETWORK_ROUTING_PERCENT"`
	NetworkRoutingVisible     *bool    `envconfig:"PRICING_NETWORK_ROUTING_VISIBLE"`
	MaxProposals              *int     `envconfig:"PRICING_MAX_PROPOSALS"`
}

type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"aero-simulations"`
	Enabled bool     `envconfig:"KAFKA_ENABLED" default:"false"`
}

type DBConfig struct {
	Enabled        bool   `envconfig:"FEE_SCHEDULE_DB_ENABLED" default:"false"`
	MigrationsPath string `envconfig:"MIGRATIONS_PATH" default:"migrations"`
	Host           string `envconfig:"POSTGRES_HOST"     default:"localhost"`
	Port           string `envconfig:"POSTGRES_PORT"     default:"5432"`
	User           string `envconfig:"POSTGRES_USER"     default:"postgres"`
	Password       string `envconfig:"POSTGRES_PASSWORD"`
	DBName         string `envconfig:"POSTGRES_DB"       default:"aero"`
	SSLMode        string `envconfig:"POSTGRES_SSLMODE"  default:"disable"`
}

func NewConfig() (*Config, error) {
	envFile := "config.env"

	if err := godotenv.Load(envFile); err != nil {
		log.Printf("warning: не удалось загрузить файл %s, используются только системные переменные окружения: %v", envFile, err)
	}

	return FromEnv()
}

// FromEnv читает конфигурацию только из переменных окружения
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга конфигурации: %w", err)
	}
	return &cfg, nil
}

// RoutingConfig собирает таблицу тарифов: значения по умолчанию, затем окружение
func (c *Config) RoutingConfig() routing.Config {
	rc := routing.DefaultConfig()
	p := c.Pricing

	if p.FlagshipRatePercent != nil {
		rc.HouseRails.Flagship.RatePercent = *p.FlagshipRatePercent
	}
	if p.SmallTransferThresholdUsd != nil {
		rc.HouseRails.Flagship.SmallTransferThresholdUsd = *p.SmallTransferThresholdUsd
	}
	if p.SmallTransferBufferUsd != nil {
		rc.HouseRails.Flagship.SmallTransferBufferUsd = *p.SmallTransferBufferUsd
	}
	if p.NetworkRoutingPercent != nil {
		rc.HouseRails.Network.Percent = *p.NetworkRoutingPercent
	}
	if p.NetworkRoutingVisible != nil {
		rc.HouseRails.Network.Visible = *p.NetworkRoutingVisible
	}
	if p.MaxProposals != nil && *p.MaxProposals > 0 && *p.MaxProposals <= routing.ProposalLimit {
		rc.MaxProposals = *p.MaxProposals
	}
	return rc
}

func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

func (d *DBConfig) MigrationURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}
