package config

import (
	"flag"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseDSN string `env:"DATABASE_URI"`
	BaseURL     string `env:"BASE_URL"`

	// Blob-хранилище
	StorageDriver string `env:"STORAGE_DRIVER"` // "s3" | "memory"
	S3Bucket      string `env:"S3_BUCKET"`
	S3Region      string `env:"S3_REGION"`
	S3Endpoint    string `env:"S3_ENDPOINT"`

	// Буферизация загрузок и бюджет исходящих вызовов
	UploadDir      string `env:"UPLOAD_DIR"`
	CallTimeoutSec int    `env:"CALL_TIMEOUT_SEC"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "адрес сервера host:port")
	flag.StringVar(&cfg.StorageDriver, "storage", cfg.StorageDriver, "драйвер blob-хранилища: s3 или memory")
	flag.StringVar(&cfg.S3Bucket, "s3-bucket", cfg.S3Bucket, "имя S3-бакета для картинок")
	flag.StringVar(&cfg.S3Region, "s3-region", cfg.S3Region, "регион S3")
	flag.StringVar(&cfg.S3Endpoint, "s3-endpoint", cfg.S3Endpoint, "endpoint S3-совместимого хранилища")
	flag.StringVar(&cfg.UploadDir, "upload-dir", cfg.UploadDir, "каталог временных файлов загрузок")
	flag.IntVar(&cfg.CallTimeoutSec, "call-timeout", cfg.CallTimeoutSec, "таймаут одного исходящего вызова, сек")

	flag.Parse()

	// Defaults
	// валидный BaseURL — "host:port" без схемы и пути, иначе дефолт
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8080"
	}
	if cfg.StorageDriver == "" {
		cfg.StorageDriver = "s3"
	}
	if cfg.S3Bucket == "" {
		cfg.S3Bucket = "items-images"
	}
	if cfg.S3Region == "" {
		cfg.S3Region = "us-east-1"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.CallTimeoutSec <= 0 {
		cfg.CallTimeoutSec = 10
	}

	return cfg
}

// CallTimeout возвращает бюджет одного исходящего вызова.
func (c *Config) CallTimeout() time.Duration {
	return time.Duration(c.CallTimeoutSec) * time.Second
}
