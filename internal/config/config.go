package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Catalog sources.
const (
	CatalogSourceFile  = "file"
	CatalogSourceS3    = "s3"
	CatalogSourceMongo = "mongo"
)

// Storage drivers for sessions, programs and profiles.
const (
	StorageDriverMongo  = "mongo"
	StorageDriverMemory = "memory"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	S3        S3Config        `mapstructure:"s3"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Coach     CoachConfig     `mapstructure:"coach"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Log       LogConfig       `mapstructure:"log"`
	Generator GeneratorConfig `mapstructure:"generator"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// CatalogConfig says where the exercise index is loaded from.
type CatalogConfig struct {
	Source      string        `mapstructure:"source"`     // file, s3 or mongo
	Path        string        `mapstructure:"path"`       // local index file (source=file)
	ObjectKey   string        `mapstructure:"object_key"` // index object in the bucket (source=s3)
	LoadTimeout time.Duration `mapstructure:"load_timeout"`
}

type CoachConfig struct {
	BaseURL   string        `mapstructure:"base_url"` // empty disables coaching text
	Timeout   time.Duration `mapstructure:"timeout"`
	CacheSize int           `mapstructure:"cache_size"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"` // mongo or memory
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	File   string `mapstructure:"file"` // empty logs to stderr only
	Stdout bool   `mapstructure:"stdout"`
	JSON   bool   `mapstructure:"json"`
}

// GeneratorConfig is the default workout selection policy.
type GeneratorConfig struct {
	Equipment []string `mapstructure:"equipment"` // empty means the built-in list
	Seed      uint64   `mapstructure:"seed"`      // 0 picks a fresh random sequence
}

// LoadConfig reads configuration from path/config.yaml, environment
// variables and an optional path/.env file, in increasing precedence of
// environment over file.
func LoadConfig(path string) (Config, error) {
	var config Config

	// .env only fills variables that are not already set
	if err := godotenv.Load(filepath.Join(path, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config, err
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Nested keys map to env vars, e.g. catalog.source -> CATALOG_SOURCE
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, err
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, err
	}
	config.Catalog.Source = strings.ToLower(strings.TrimSpace(config.Catalog.Source))
	config.Storage.Driver = strings.ToLower(strings.TrimSpace(config.Storage.Driver))
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "fitness_brain")

	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("s3.use_ssl", true)

	v.SetDefault("catalog.source", CatalogSourceFile)
	v.SetDefault("catalog.path", "data/exercise_index.json")
	v.SetDefault("catalog.object_key", "exercise_index.json")
	v.SetDefault("catalog.load_timeout", "10s")

	v.SetDefault("coach.base_url", "")
	v.SetDefault("coach.timeout", "20s")
	v.SetDefault("coach.cache_size", 4*1024*1024)
	v.SetDefault("coach.cache_ttl", "10m")

	v.SetDefault("storage.driver", StorageDriverMongo)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.stdout", false)
	v.SetDefault("log.json", false)

	v.SetDefault("generator.equipment", []string{})
	v.SetDefault("generator.seed", 0)
}
