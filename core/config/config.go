package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	S3       S3Config
	Booking  BookingConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	PresignTTL      int // minutes
}

type BookingConfig struct {
	// DemoFixturesEnabled allows the ?demo=true fixture fallback on the
	// public catalog when the live catalog is empty
	DemoFixturesEnabled bool
}

var (
	instance    *Config
	initialized bool
	mu          sync.RWMutex
)

// Load reads .env (if present) and environment variables into the config
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	// .env is optional, environment variables win
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 7070)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "pickleball")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("s3.region", "ap-southeast-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_ttl", 15)
	v.SetDefault("booking.demo_fixtures_enabled", true)

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("server.host"),
			Port: v.GetInt("server.port"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("database.host"),
			Port:     v.GetInt("database.port"),
			User:     v.GetString("database.user"),
			Password: v.GetString("database.password"),
			DBName:   v.GetString("database.dbname"),
			SSLMode:  v.GetString("database.sslmode"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("jwt.secret"),
		},
		S3: S3Config{
			Region:          v.GetString("s3.region"),
			Bucket:          v.GetString("s3.bucket"),
			AccessKeyID:     v.GetString("s3.access_key_id"),
			SecretAccessKey: v.GetString("s3.secret_access_key"),
			Endpoint:        v.GetString("s3.endpoint"),
			PresignTTL:      v.GetInt("s3.presign_ttl"),
		},
		Booking: BookingConfig{
			DemoFixturesEnabled: v.GetBool("booking.demo_fixtures_enabled"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	instance = cfg
	initialized = true
	return cfg, nil
}

// Get returns the loaded config, panicking when called before Load
func Get() *Config {
	cfg, ok := GetSafe()
	if !ok {
		panic("config accessed before Load")
	}
	return cfg
}

// GetSafe returns the loaded config and whether Load has completed
func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return instance, initialized
}
