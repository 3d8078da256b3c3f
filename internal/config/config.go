package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the API server and supporting services.
type Config struct {
	ListenAddr          string
	Environment         string
	MySQLDSN            string
	SessionTTL          time.Duration
	AIGenAPIKey         string
	AIGenBaseURL        string
	AIGenGeneratePath   string
	AIGenModel          string
	KakaoAPIKey         string
	KakaoAPISecret      string
	KakaoBaseURL        string
	KakaoSendPath       string
	RequestTimeout      time.Duration
	BootstrapAdminEmail string
	BootstrapAdminPass  string
	S3Endpoint          string
	S3Region            string
	S3AccessKey         string
	S3SecretKey         string
	S3Bucket            string
	S3PublicBaseURL     string
	S3UsePathStyle      bool
	S3Prefix            string
}

// Load reads configuration from environment variables, applying sane defaults.
func Load() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return Config{}, err
	}

	const defaultAIGenBaseURL = "https://api.aigen.kr"

	cfg := Config{
		ListenAddr:          getEnv("HTTP_LISTEN_ADDR", ":8080"),
		Environment:         strings.ToLower(getEnv("ENVIRONMENT", "production")),
		SessionTTL:          time.Hour * time.Duration(getInt("SESSION_TTL_HOURS", 72)),
		AIGenBaseURL:        normalizeBaseURL(getEnv("AIGEN_BASE_URL", defaultAIGenBaseURL), defaultAIGenBaseURL),
		AIGenGeneratePath:   getEnv("AIGEN_GENERATE_PATH", "/api/v1/generate"),
		AIGenModel:          getEnv("AIGEN_MODEL", "hagwon-writer-1"),
		KakaoBaseURL:        normalizeBaseURL(getEnv("KAKAO_BASE_URL", "https://api.bizmessage.kr"), "https://api.bizmessage.kr"),
		KakaoSendPath:       getEnv("KAKAO_SEND_PATH", "/v2/messages"),
		RequestTimeout:      time.Second * time.Duration(getInt("HTTP_TIMEOUT_SECONDS", 30)),
		BootstrapAdminEmail: getEnv("BOOTSTRAP_ADMIN_EMAIL", ""),
		BootstrapAdminPass:  getEnv("BOOTSTRAP_ADMIN_PASSWORD", ""),
		S3Endpoint:          getEnv("S3_ENDPOINT", ""),
		S3Region:            os.Getenv("S3_REGION"),
		S3AccessKey:         os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:         os.Getenv("S3_SECRET_KEY"),
		S3Bucket:            os.Getenv("S3_BUCKET"),
		S3PublicBaseURL:     os.Getenv("S3_PUBLIC_BASE_URL"),
		S3UsePathStyle:      getBool("S3_USE_PATH_STYLE", false),
		S3Prefix:            getEnv("S3_PREFIX", "homework"),
	}

	cfg.MySQLDSN = os.Getenv("MYSQL_DSN")
	cfg.AIGenAPIKey = os.Getenv("AIGEN_API_KEY")
	cfg.KakaoAPIKey = os.Getenv("KAKAO_API_KEY")
	cfg.KakaoAPISecret = os.Getenv("KAKAO_API_SECRET")

	var missing []string
	if cfg.MySQLDSN == "" {
		missing = append(missing, "MYSQL_DSN")
	}
	if cfg.AIGenAPIKey == "" {
		missing = append(missing, "AIGEN_API_KEY")
	}
	if cfg.KakaoAPIKey == "" {
		missing = append(missing, "KAKAO_API_KEY")
	}
	if cfg.KakaoAPISecret == "" {
		missing = append(missing, "KAKAO_API_SECRET")
	}
	if cfg.S3Region == "" {
		missing = append(missing, "S3_REGION")
	}
	if cfg.S3AccessKey == "" {
		missing = append(missing, "S3_ACCESS_KEY")
	}
	if cfg.S3SecretKey == "" {
		missing = append(missing, "S3_SECRET_KEY")
	}
	if cfg.S3Bucket == "" {
		missing = append(missing, "S3_BUCKET")
	}
	if cfg.S3PublicBaseURL == "" {
		missing = append(missing, "S3_PUBLIC_BASE_URL")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %v", missing)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server runs in a non-production context.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development" || c.Environment == "dev"
}

// normalizeBaseURL ensures outbound clients always hit a well-formed host.
func normalizeBaseURL(raw string, fallback string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fallback
	}

	if parsed.Scheme == "" {
		parsed.Scheme = "https"
	}
	if parsed.Host == "" {
		parsed.Host = parsed.Path
		parsed.Path = ""
	}

	return strings.TrimRight(parsed.String(), "/")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func loadEnvFile() error {
	candidates := []string{}
	if custom, ok := os.LookupEnv("CONFIG_ENV_PATH"); ok && custom != "" {
		candidates = append(candidates, custom)
	}
	candidates = append(candidates,
		filepath.Join("configs", ".env"),
		".env",
	)

	for _, path := range candidates {
		if path == "" {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("access env file %s: %w", path, err)
		}
		if info.IsDir() {
			continue
		}
		if err := godotenv.Overload(path); err != nil {
			return fmt.Errorf("load env file %s: %w", path, err)
		}
		return nil
	}
	// Running without an env file is fine when the environment is already populated.
	return nil
}
