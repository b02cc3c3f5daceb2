package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ServerAddr string `yaml:"server_addr"`

	DBDriver   string `yaml:"db_driver"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBName     string `yaml:"db_name"`
	DBPath     string `yaml:"db_path"`

	JWTSecret                string `yaml:"jwt_secret"`
	AccessTokenExpireMinutes int    `yaml:"access_token_expire_minutes"`
	BcryptCost               int    `yaml:"bcrypt_cost"`

	StorageBackend string `yaml:"storage_backend"`
	UploadDir      string `yaml:"upload_dir"`
	MinIOEndpoint  string `yaml:"minio_endpoint"`
	MinIOAccessKey string `yaml:"minio_access_key"`
	MinIOSecretKey string `yaml:"minio_secret_key"`
	MinIOBucket    string `yaml:"minio_bucket"`
	MinIOUseSSL    bool   `yaml:"minio_use_ssl"`

	LogDir string `yaml:"log_dir"`
}

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"

	BackendFS    = "fs"
	BackendMinIO = "minio"
)

var ErrMissingSecret = errors.New("JWT_SECRET is not set")

func Default() Config {
	return Config{
		ServerAddr:               ":8000",
		DBDriver:                 DriverPostgres,
		DBHost:                   "localhost",
		DBPort:                   "5432",
		DBPath:                   "./data/nostalgic.db",
		AccessTokenExpireMinutes: 60 * 24,
		BcryptCost:               bcrypt.DefaultCost,
		StorageBackend:           BackendFS,
		UploadDir:                "./uploads",
		MinIOBucket:              "nostalgic-images",
		LogDir:                   "./logs",
	}
}

// LoadConfig builds the process configuration: defaults, then the optional
// YAML file named by CONFIG_FILE, then environment variables (a .env file in
// the working directory is loaded first when present).
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.ServerAddr = getEnv("SERVER_ADDR", c.ServerAddr)
	c.DBDriver = getEnv("DB_DRIVER", c.DBDriver)
	c.DBUser = getEnv("DB_USER", c.DBUser)
	c.DBPassword = getEnv("DB_PASSWORD", c.DBPassword)
	c.DBHost = getEnv("DB_HOST", c.DBHost)
	c.DBPort = getEnv("DB_PORT", c.DBPort)
	c.DBName = getEnv("DB_NAME", c.DBName)
	c.DBPath = getEnv("DB_PATH", c.DBPath)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.StorageBackend = getEnv("STORAGE_BACKEND", c.StorageBackend)
	c.UploadDir = getEnv("UPLOAD_DIR", c.UploadDir)
	c.MinIOEndpoint = getEnv("MINIO_ENDPOINT", c.MinIOEndpoint)
	c.MinIOAccessKey = getEnv("MINIO_ACCESS_KEY", c.MinIOAccessKey)
	c.MinIOSecretKey = getEnv("MINIO_SECRET_KEY", c.MinIOSecretKey)
	c.MinIOBucket = getEnv("MINIO_BUCKET", c.MinIOBucket)
	c.LogDir = getEnv("LOG_DIR", c.LogDir)

	var err error
	if c.AccessTokenExpireMinutes, err = getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", c.AccessTokenExpireMinutes); err != nil {
		return err
	}
	if c.BcryptCost, err = getEnvInt("BCRYPT_COST", c.BcryptCost); err != nil {
		return err
	}
	if v := os.Getenv("MINIO_USE_SSL"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("MINIO_USE_SSL: %w", err)
		}
		c.MinIOUseSSL = b
	}
	return nil
}

func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingSecret
	}
	switch c.DBDriver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.StorageBackend {
	case BackendFS, BackendMinIO:
	default:
		return fmt.Errorf("unsupported STORAGE_BACKEND %q", c.StorageBackend)
	}
	if c.AccessTokenExpireMinutes <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive, got %d", c.AccessTokenExpireMinutes)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST out of range: %d", c.BcryptCost)
	}
	return nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
