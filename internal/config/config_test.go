package config

import (
	"flag"
	"os"
	"testing"
	"time"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	// подавляем вывод парсера флагов в тестах
	flag.CommandLine.SetOutput(os.Stderr)
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("DATABASE_URI", "")
	t.Setenv("BASE_URL", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("S3_BUCKET", "")
	t.Setenv("S3_REGION", "")
	t.Setenv("S3_ENDPOINT", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("CALL_TIMEOUT_SEC", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8080" {
		t.Fatalf("BaseURL default expected 'localhost:8080', got %q", cfg.BaseURL)
	}
	if cfg.StorageDriver != "s3" {
		t.Fatalf("StorageDriver default expected 's3', got %q", cfg.StorageDriver)
	}
	if cfg.S3Bucket != "items-images" {
		t.Fatalf("S3Bucket default expected 'items-images', got %q", cfg.S3Bucket)
	}
	if cfg.UploadDir != "uploads" {
		t.Fatalf("UploadDir default expected 'uploads', got %q", cfg.UploadDir)
	}
	if cfg.CallTimeout() != 10*time.Second {
		t.Fatalf("CallTimeout default expected 10s, got %v", cfg.CallTimeout())
	}
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("BASE_URL", "example.com:9090")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("S3_BUCKET", "my-bucket")
	t.Setenv("CALL_TIMEOUT_SEC", "3")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "example.com:9090" {
		t.Fatalf("BaseURL expected 'example.com:9090', got %q", cfg.BaseURL)
	}
	if cfg.StorageDriver != "memory" {
		t.Fatalf("StorageDriver expected 'memory', got %q", cfg.StorageDriver)
	}
	if cfg.S3Bucket != "my-bucket" {
		t.Fatalf("S3Bucket expected 'my-bucket', got %q", cfg.S3Bucket)
	}
	if cfg.CallTimeout() != 3*time.Second {
		t.Fatalf("CallTimeout expected 3s, got %v", cfg.CallTimeout())
	}
}

func TestNewConfig_InvalidBaseURLFallback(t *testing.T) {
	// Невалидный BASE_URL (со схемой) должен откатиться на localhost:8080
	t.Setenv("BASE_URL", "http://bad:8080")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8080" {
		t.Fatalf("invalid BASE_URL must fallback to 'localhost:8080', got %q", cfg.BaseURL)
	}
}
