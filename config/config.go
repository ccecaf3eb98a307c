package config

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/Jordo960/VibePulse/models"
	"github.com/Jordo960/VibePulse/storage"
	"github.com/Jordo960/VibePulse/utils"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Store backends.
const (
	StoreBolt     = "bolt"
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
	StoreS3       = "s3"
	StoreMemory   = "memory"
)

type Config struct {
	Addr  string `env:"VIBEPULSE_ADDR" envDefault:":8080"`
	Store string `env:"VIBEPULSE_STORE" envDefault:"bolt"`

	BoltPath string `env:"VIBEPULSE_BOLT_PATH" envDefault:"vibepulse.db"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`

	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"vibepulse"`

	S3Bucket  string `env:"S3_BUCKET"`
	S3Prefix  string `env:"S3_PREFIX" envDefault:"vibepulse"`
	AWSRegion string `env:"AWS_REGION"`

	JWTSecret string `env:"JWT_SECRET"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`

	SyncDelay       time.Duration `env:"VIBEPULSE_SYNC_DELAY" envDefault:"1500ms"`
	SyncFailureRate float64       `env:"VIBEPULSE_SYNC_FAILURE_RATE" envDefault:"0"`
	AuthDelay       time.Duration `env:"VIBEPULSE_AUTH_DELAY" envDefault:"1200ms"`
	PersistLog      bool          `env:"VIBEPULSE_PERSIST_LOG" envDefault:"false"`
	DefaultTheme    string        `env:"VIBEPULSE_DEFAULT_THEME" envDefault:"dark"`
	ToastTTL        time.Duration `env:"VIBEPULSE_TOAST_TTL" envDefault:"3s"`
}

// Load reads .env when present, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("could not load .env file: %v", err)
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	switch c.Store {
	case StoreBolt, StorePostgres, StoreMongo, StoreS3, StoreMemory:
	default:
		return fmt.Errorf("VIBEPULSE_STORE must be one of bolt, postgres, mongo, s3, memory; got %q", c.Store)
	}
	if c.SyncFailureRate < 0 || c.SyncFailureRate > 1 {
		return fmt.Errorf("VIBEPULSE_SYNC_FAILURE_RATE must be between 0 and 1")
	}
	if !models.Theme(c.DefaultTheme).Valid() {
		return fmt.Errorf("VIBEPULSE_DEFAULT_THEME must be light or dark")
	}
	return nil
}

// PostgresDSN builds the DSN from the DB_* variables.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// OpenStore opens the backend selected by Store.
func OpenStore(ctx context.Context, cfg Config) (storage.KV, error) {
	switch strings.ToLower(cfg.Store) {
	case StoreMemory:
		return storage.NewMemory(), nil
	case StoreBolt:
		return kv(storage.OpenBolt(cfg.BoltPath))
	case StorePostgres:
		db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		return kv(storage.NewGorm(db))
	case StoreMongo:
		return kv(storage.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase))
	case StoreS3:
		awsCfg, err := utils.LoadAWSConfig(ctx, cfg.AWSRegion)
		if err != nil {
			return nil, err
		}
		return kv(storage.NewS3(s3.NewFromConfig(awsCfg), cfg.S3Bucket, cfg.S3Prefix))
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// kv keeps a failed open from leaking a typed nil through the interface.
func kv[T storage.KV](store T, err error) (storage.KV, error) {
	if err != nil {
		return nil, err
	}
	return store, nil
}
