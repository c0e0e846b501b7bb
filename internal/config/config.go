package config

import (
	"os"
	"strings"

	"github.com/Kilat-Pet-Delivery/service-voucher/internal/database"
	"github.com/spf13/viper"
)

// KafkaConfig holds Kafka producer configuration.
type KafkaConfig struct {
	Brokers      []string
	VoucherTopic string
}

// ServiceConfig holds all configuration for the voucher service.
type ServiceConfig struct {
	Port             string
	AppEnv           string
	DBConfig         database.PostgresConfig
	KafkaConfig      KafkaConfig
	VoucherMinAmount float64
}

// Load reads configuration from environment variables and an optional .env file.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		// A missing .env is fine; the environment is the primary source.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, err
		}
	}
	v.AutomaticEnv()

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SERVICE_PORT", ":8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "voucher")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("KAFKA_VOUCHER_TOPIC", "voucher.events")
	v.SetDefault("VOUCHER_MIN_AMOUNT", 100.0)
}

func fromViper(v *viper.Viper) *ServiceConfig {
	port := v.GetString("SERVICE_PORT")
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	return &ServiceConfig{
		Port:   port,
		AppEnv: v.GetString("APP_ENV"),
		DBConfig: database.PostgresConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		KafkaConfig:      loadKafkaConfig(v),
		VoucherMinAmount: v.GetFloat64("VOUCHER_MIN_AMOUNT"),
	}
}

// loadKafkaConfig extracts Kafka configuration from Viper.
func loadKafkaConfig(v *viper.Viper) KafkaConfig {
	var brokers []string
	for _, b := range strings.Split(v.GetString("KAFKA_BROKERS"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return KafkaConfig{
		Brokers:      brokers,
		VoucherTopic: v.GetString("KAFKA_VOUCHER_TOPIC"),
	}
}
