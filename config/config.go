package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// External clinic backend.
	BackendBaseURL string `mapstructure:"BACKEND_BASE_URL"`
	BackendTimeout int    `mapstructure:"BACKEND_TIMEOUT_SECONDS"`

	// MongoDB (per-date appointment records, read for slot counts).
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisReceiptDB int    `mapstructure:"REDIS_RECEIPT_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Admin auth.
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// Booking policy.
	DailySlotCapacity  int `mapstructure:"DAILY_SLOT_CAPACITY"`
	AdvanceBookingDays int `mapstructure:"ADVANCE_BOOKING_DAYS"`
	SameDayCutoffHour  int `mapstructure:"SAME_DAY_CUTOFF_HOUR"`
	ConsultationFee    int `mapstructure:"CONSULTATION_FEE"`

	// Webhook proxy targets.
	PaymentHookURL string `mapstructure:"PAYMENT_HOOK_URL"`
	NotifyHookURL  string `mapstructure:"NOTIFY_HOOK_URL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:5000")
	viper.SetDefault("BACKEND_TIMEOUT_SECONDS", 30)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "arogya")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_RECEIPT_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DAILY_SLOT_CAPACITY", 10)
	viper.SetDefault("ADVANCE_BOOKING_DAYS", 10)
	viper.SetDefault("SAME_DAY_CUTOFF_HOUR", 19)
	viper.SetDefault("CONSULTATION_FEE", 500)
	viper.SetDefault("PAYMENT_HOOK_URL", "")
	viper.SetDefault("NOTIFY_HOOK_URL", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
