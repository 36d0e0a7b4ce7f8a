package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Storage   StorageConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Documents DocumentsConfig
	Archive   ArchiveConfig
	Metrics   MetricsConfig
}

type ServerConfig struct {
	AppEnv          string
	GRPCPort        string
	HTTPAddr        string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type StorageConfig struct {
	Driver      string // postgres | sqlite
	SQLitePath  string
	AutoMigrate bool
}

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type RedisConfig struct {
	Enabled         bool
	Addr            string
	Password        string
	DB              int
	AvailabilityTTL time.Duration
}

type KafkaConfig struct {
	Enabled    bool
	Brokers    []string
	LotTopic   string
	AlertTopic string
	GroupID    string
}

type DocumentsConfig struct {
	Driver          string // memory | s3
	BaseURL         string
	S3Bucket        string
	S3Region        string
	S3Endpoint      string
	S3PathStyle     bool
	AccessKeyID     string
	SecretAccessKey string
	PresignExpiry   time.Duration
}

type ArchiveConfig struct {
	Interval  time.Duration
	Retention time.Duration
	BatchSize int
}

type MetricsConfig struct {
	Enabled bool
}

var defaults = map[string]any{
	"APP_ENV":          "dev",
	"GRPC_PORT":        ":8082",
	"HTTP_ADDR":        ":8080",
	"SHUTDOWN_TIMEOUT": "10s",

	"LOGGER_LEVEL":              "debug",
	"LOGGER_ENCODING":           "console",
	"LOGGER_DISABLE_CALLER":     false,
	"LOGGER_DISABLE_STACKTRACE": true,

	"STORAGE_DRIVER":       "postgres",
	"STORAGE_SQLITE_PATH":  "data/brewops.db",
	"STORAGE_AUTO_MIGRATE": true,

	"POSTGRES_HOST":               "localhost",
	"POSTGRES_PORT":               "5433",
	"POSTGRES_USER":               "brewops",
	"POSTGRES_PASSWORD":           "brewops",
	"POSTGRES_DB":                 "brewops_lots",
	"POSTGRES_SSLMODE":            "disable",
	"POSTGRES_MAX_OPEN_CONNS":     10,
	"POSTGRES_MAX_IDLE_CONNS":     5,
	"POSTGRES_CONN_MAX_LIFETIME":  300,
	"POSTGRES_CONN_MAX_IDLE_TIME": 60,

	"REDIS_ENABLED":          true,
	"REDIS_ADDR":             "localhost:6379",
	"REDIS_PASSWORD":         "",
	"REDIS_DB":               0,
	"REDIS_AVAILABILITY_TTL": "5s",

	"KAFKA_ENABLED":      true,
	"KAFKA_BROKERS":      "localhost:9092",
	"KAFKA_TOPIC_LOTS":   "lots.events",
	"KAFKA_TOPIC_ALERTS": "lot-alerts.events",
	"KAFKA_GROUP_ID":     "brewops-lot-service",

	"DOCUMENTS_DRIVER":            "memory",
	"DOCUMENTS_BASE_URL":          "",
	"DOCUMENTS_S3_BUCKET":         "",
	"DOCUMENTS_S3_REGION":         "us-east-1",
	"DOCUMENTS_S3_ENDPOINT":       "",
	"DOCUMENTS_S3_PATH_STYLE":     false,
	"DOCUMENTS_ACCESS_KEY_ID":     "",
	"DOCUMENTS_SECRET_ACCESS_KEY": "",
	"DOCUMENTS_PRESIGN_EXPIRY":    "15m",

	"ARCHIVE_INTERVAL":   "1h",
	"ARCHIVE_RETENTION":  "2160h",
	"ARCHIVE_BATCH_SIZE": 100,

	"METRICS_ENABLED": true,
}

// LoadEnv reads configuration from the process environment, after loading
// an optional .env file. CONFIG_FILE may point at a yaml/json/toml file
// whose keys use the same names as the environment variables.
func LoadEnv() (*Config, error) {
	_ = godotenv.Load()
	return load(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return v
}

func load(v *viper.Viper) (*Config, error) {
	if path := v.GetString("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	return &Config{
		Server: ServerConfig{
			AppEnv:          v.GetString("APP_ENV"),
			GRPCPort:        v.GetString("GRPC_PORT"),
			HTTPAddr:        v.GetString("HTTP_ADDR"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Logger: LoggerConfig{
			Level:             v.GetString("LOGGER_LEVEL"),
			Encoding:          v.GetString("LOGGER_ENCODING"),
			DisableCaller:     v.GetBool("LOGGER_DISABLE_CALLER"),
			DisableStacktrace: v.GetBool("LOGGER_DISABLE_STACKTRACE"),
		},
		Storage: StorageConfig{
			Driver:      strings.ToLower(v.GetString("STORAGE_DRIVER")),
			SQLitePath:  v.GetString("STORAGE_SQLITE_PATH"),
			AutoMigrate: v.GetBool("STORAGE_AUTO_MIGRATE"),
		},
		Postgres: PostgresConfig{
			Host:            v.GetString("POSTGRES_HOST"),
			Port:            v.GetString("POSTGRES_PORT"),
			User:            v.GetString("POSTGRES_USER"),
			Password:        v.GetString("POSTGRES_PASSWORD"),
			DBName:          v.GetString("POSTGRES_DB"),
			SSLMode:         v.GetString("POSTGRES_SSLMODE"),
			MaxOpenConns:    v.GetInt("POSTGRES_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("POSTGRES_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetInt("POSTGRES_CONN_MAX_LIFETIME"),
			ConnMaxIdleTime: v.GetInt("POSTGRES_CONN_MAX_IDLE_TIME"),
		},
		Redis: RedisConfig{
			Enabled:         v.GetBool("REDIS_ENABLED"),
			Addr:            v.GetString("REDIS_ADDR"),
			Password:        v.GetString("REDIS_PASSWORD"),
			DB:              v.GetInt("REDIS_DB"),
			AvailabilityTTL: v.GetDuration("REDIS_AVAILABILITY_TTL"),
		},
		Kafka: KafkaConfig{
			Enabled:    v.GetBool("KAFKA_ENABLED"),
			Brokers:    splitList(v.GetString("KAFKA_BROKERS")),
			LotTopic:   v.GetString("KAFKA_TOPIC_LOTS"),
			AlertTopic: v.GetString("KAFKA_TOPIC_ALERTS"),
			GroupID:    v.GetString("KAFKA_GROUP_ID"),
		},
		Documents: DocumentsConfig{
			Driver:          strings.ToLower(v.GetString("DOCUMENTS_DRIVER")),
			BaseURL:         v.GetString("DOCUMENTS_BASE_URL"),
			S3Bucket:        v.GetString("DOCUMENTS_S3_BUCKET"),
			S3Region:        v.GetString("DOCUMENTS_S3_REGION"),
			S3Endpoint:      v.GetString("DOCUMENTS_S3_ENDPOINT"),
			S3PathStyle:     v.GetBool("DOCUMENTS_S3_PATH_STYLE"),
			AccessKeyID:     v.GetString("DOCUMENTS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("DOCUMENTS_SECRET_ACCESS_KEY"),
			PresignExpiry:   v.GetDuration("DOCUMENTS_PRESIGN_EXPIRY"),
		},
		Archive: ArchiveConfig{
			Interval:  v.GetDuration("ARCHIVE_INTERVAL"),
			Retention: v.GetDuration("ARCHIVE_RETENTION"),
			BatchSize: v.GetInt("ARCHIVE_BATCH_SIZE"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
	}, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
