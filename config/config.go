package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Database  DatabaseConfig
	Redis     RedisConfig
	Server    ServerConfig
	Booking   BookingConfig
	Auth      AuthConfig
	Payment   PaymentConfig
	Broker    BrokerConfig
	RateLimit RateLimitConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type ServerConfig struct {
	Addr            string        `envconfig:"SERVER_ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	AutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

// BookingConfig 訂位流程相關的時間與上限
type BookingConfig struct {
	HoldDuration        time.Duration `envconfig:"BOOKING_HOLD_DURATION" default:"5m"`
	MaxSeatsPerRequest  int           `envconfig:"BOOKING_MAX_SEATS" default:"10"`
	SweepInterval       time.Duration `envconfig:"BOOKING_SWEEP_INTERVAL" default:"30s"`
	ShowtimeJobSchedule string        `envconfig:"SHOWTIME_JOB_SCHEDULE" default:"@every 1m"`
	CatalogCacheTTL     time.Duration `envconfig:"SEAT_CATALOG_CACHE_TTL" default:"10m"`
}

type AuthConfig struct {
	JWTSecret string `envconfig:"JWT_SECRET" default:"dev-secret-change-me"`
}

type PaymentConfig struct {
	WebhookSecret   string `envconfig:"PAYMENT_WEBHOOK_SECRET" default:"dev-webhook-secret"`
	SignatureHeader string `envconfig:"PAYMENT_SIGNATURE_HEADER" default:"X-Signature"`
	// false 時使用記憶體 queue
	UseRedisStream bool   `envconfig:"PAYMENT_QUEUE_REDIS" default:"true"`
	ConsumerID     string `envconfig:"PAYMENT_CONSUMER_ID" default:""`
}

// BrokerConfig RabbitMQ；URL 為空時不發送事件
type BrokerConfig struct {
	URL      string `envconfig:"RABBIT_URL" default:""`
	Exchange string `envconfig:"BOOKING_EXCHANGE" default:"booking.exchange"`
}

type RateLimitConfig struct {
	Enabled  bool          `envconfig:"HOLD_RATE_LIMIT_ENABLED" default:"true"`
	Capacity int           `envconfig:"HOLD_RATE_LIMIT_CAPACITY" default:"10"`
	Refill   time.Duration `envconfig:"HOLD_RATE_LIMIT_REFILL" default:"6s"`
}

var AppConfig *Config

func LoadConfig() (*Config, error) {
	// .env 不存在時忽略
	_ = godotenv.Load()

	AppConfig = &Config{
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
	}

	sections := []interface{}{
		&AppConfig.Server,
		&AppConfig.Booking,
		&AppConfig.Auth,
		&AppConfig.Payment,
		&AppConfig.Broker,
		&AppConfig.RateLimit,
	}
	for _, s := range sections {
		if err := envconfig.Process("", s); err != nil {
			return nil, err
		}
	}

	return AppConfig, nil
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     getEnv("TEST_DB_PORT", "5433"), // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Host:     getEnv("TEST_REDIS_HOST", "localhost"),
		Port:     getEnv("TEST_REDIS_PORT", "6380"), // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}

	return &Config{
		Database: *testConfig,
		Redis:    testRedisConfig,
		Booking: BookingConfig{
			HoldDuration:       5 * time.Minute,
			MaxSeatsPerRequest: 10,
			SweepInterval:      time.Second,
			CatalogCacheTTL:    time.Minute,
		},
		Auth:    AuthConfig{JWTSecret: "test-secret"},
		Payment: PaymentConfig{WebhookSecret: "test-webhook-secret", SignatureHeader: "X-Signature"},
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
