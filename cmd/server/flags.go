package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"
)

const (
	// Порт по умолчанию (за реверс-прокси, без TLS на самом сервисе).
	defaultServerPort = "8080"

	// Переменные окружения.
	envServerPort     = "SERVER_PORT"
	envDatabaseDSN    = "DATABASE_DSN"
	envJWTSecret      = "JWT_SECRET" //nolint:gosec // Это имя переменной окружения, а не секрет
	envMinioEndpoint  = "MINIO_ENDPOINT"
	envMinioUser      = "MINIO_USER"
	envMinioPassword  = "MINIO_PASSWORD"
	envMinioBucket    = "MINIO_BUCKET"
	envMinioPublicURL = "MINIO_PUBLIC_URL"

	// Значения по умолчанию для MinIO (из docker-compose).
	defaultMinioEndpoint = "localhost:9000"
	defaultMinioUser     = "minioadmin"
	defaultMinioPassword = "minioadmin"
	defaultMinioBucket   = "cracked-media"

	// TTL горячего кеша по умолчанию.
	defaultCacheTTL = 10 * time.Minute
)

// config хранит конфигурацию сервера.
type config struct {
	Port           string
	DatabaseDSN    string
	JWTSecret      string
	MinioEndpoint  string
	MinioUser      string
	MinioPassword  string
	MinioBucket    string
	MinioPublicURL string
	CacheTTL       time.Duration
}

// parseFlags разбирает флаги и переменные окружения, возвращает config или ошибку.
// Флаг имеет приоритет над переменной окружения, переменная — над значением по умолчанию.
func parseFlags() (*config, error) {
	cfg := &config{}

	flag.StringVar(&cfg.Port, "port", "",
		fmt.Sprintf("Порт HTTP-сервера (env: %s, default: %s)", envServerPort, defaultServerPort))
	flag.StringVar(&cfg.DatabaseDSN, "database-dsn", "",
		fmt.Sprintf("Строка подключения к PostgreSQL (env: %s)", envDatabaseDSN))
	flag.StringVar(&cfg.JWTSecret, "jwt-secret", "",
		fmt.Sprintf("Секретный ключ подписи JWT (env: %s)", envJWTSecret))
	flag.StringVar(&cfg.MinioEndpoint, "minio-endpoint", "",
		fmt.Sprintf("Адрес MinIO (env: %s, default: %s)", envMinioEndpoint, defaultMinioEndpoint))
	flag.StringVar(&cfg.MinioUser, "minio-user", "",
		fmt.Sprintf("Логин MinIO (env: %s)", envMinioUser))
	flag.StringVar(&cfg.MinioPassword, "minio-password", "",
		fmt.Sprintf("Пароль MinIO (env: %s)", envMinioPassword))
	flag.StringVar(&cfg.MinioBucket, "minio-bucket", "",
		fmt.Sprintf("Бакет MinIO для медиафайлов (env: %s, default: %s)", envMinioBucket, defaultMinioBucket))
	flag.StringVar(&cfg.MinioPublicURL, "minio-public-url", "",
		fmt.Sprintf("База публичных URL медиафайлов, например CDN (env: %s)", envMinioPublicURL))
	flag.DurationVar(&cfg.CacheTTL, "cache-ttl", defaultCacheTTL,
		"TTL горячего кеша публичной выдачи")

	flag.Parse()

	// Применяем переменные окружения и значения по умолчанию, если флаги не заданы
	applyEnv(&cfg.Port, envServerPort, defaultServerPort)
	applyEnv(&cfg.DatabaseDSN, envDatabaseDSN, "")
	applyEnv(&cfg.JWTSecret, envJWTSecret, "")
	applyEnv(&cfg.MinioEndpoint, envMinioEndpoint, defaultMinioEndpoint)
	applyEnv(&cfg.MinioUser, envMinioUser, defaultMinioUser)
	applyEnv(&cfg.MinioPassword, envMinioPassword, defaultMinioPassword)
	applyEnv(&cfg.MinioBucket, envMinioBucket, defaultMinioBucket)
	applyEnv(&cfg.MinioPublicURL, envMinioPublicURL, "")

	// Проверяем обязательные параметры
	if cfg.DatabaseDSN == "" {
		return nil, errors.New("не указана строка подключения к БД (--database-dsn или " + envDatabaseDSN + ")")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("не указан секретный ключ JWT (--jwt-secret или " + envJWTSecret + ")")
	}

	return cfg, nil
}

// applyEnv подставляет переменную окружения или значение по умолчанию,
// если флаг остался пустым.
func applyEnv(dst *string, envKey, fallback string) {
	if *dst != "" {
		return
	}
	if value, ok := os.LookupEnv(envKey); ok {
		*dst = value
		return
	}
	*dst = fallback
}
