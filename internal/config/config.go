package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultPort           = "8080"
	defaultMaxUploadBytes = 32 << 20
)

type Config struct {
	Port           string
	DatabaseURL    string // 비어 있으면 in-memory repo
	MaxUploadBytes int64
}

// Load 는 환경변수에서 설정을 읽어요. 잘못된 숫자는 기본값으로 두고 에러를 같이 돌려줘요.
func Load() (Config, error) {
	cfg := Config{
		Port:           getenv("PORT", defaultPort),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MaxUploadBytes: defaultMaxUploadBytes,
	}
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("MAX_UPLOAD_BYTES=%q: want a positive integer", v)
		}
		cfg.MaxUploadBytes = n
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
