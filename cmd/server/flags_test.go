package main

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Вспомогательная функция для сброса флагов между тестами.
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags(t *testing.T) {
	originalArgs := os.Args

	// Сохраняем и очищаем переменные окружения
	envKeys := []string{
		envServerPort, envDatabaseDSN, envJWTSecret,
		envMinioEndpoint, envMinioUser, envMinioPassword, envMinioBucket, envMinioPublicURL,
	}
	originalEnv := map[string]string{}
	for _, key := range envKeys {
		originalEnv[key] = os.Getenv(key)
		os.Unsetenv(key)
	}
	defer func() {
		for k, v := range originalEnv {
			if v != "" {
				os.Setenv(k, v)
			}
		}
	}()

	t.Run("Все параметры из флагов", func(t *testing.T) {
		resetFlags()
		defer func() { os.Args = originalArgs }()

		os.Args = []string{
			"cmd",
			"-port=9000",
			"-database-dsn=postgres://...",
			"-jwt-secret=secret",
			"-minio-endpoint=minio:9000",
			"-cache-ttl=5m",
		}
		cfg, err := parseFlags()
		require.NoError(t, err)
		assert.Equal(t, "9000", cfg.Port)
		assert.Equal(t, "postgres://...", cfg.DatabaseDSN)
		assert.Equal(t, "secret", cfg.JWTSecret)
		assert.Equal(t, "minio:9000", cfg.MinioEndpoint)
		assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	})

	t.Run("Параметры из переменных окружения", func(t *testing.T) {
		resetFlags()
		defer func() { os.Args = originalArgs }()
		os.Args = []string{"cmd"}

		os.Setenv(envDatabaseDSN, "env_postgres://...")
		os.Setenv(envJWTSecret, "env_secret")
		os.Setenv(envServerPort, "9090")
		defer func() {
			os.Unsetenv(envDatabaseDSN)
			os.Unsetenv(envJWTSecret)
			os.Unsetenv(envServerPort)
		}()

		cfg, err := parseFlags()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "env_postgres://...", cfg.DatabaseDSN)
		assert.Equal(t, "env_secret", cfg.JWTSecret)
	})

	t.Run("Значения по умолчанию", func(t *testing.T) {
		resetFlags()
		defer func() { os.Args = originalArgs }()
		os.Args = []string{"cmd", "-database-dsn=postgres://...", "-jwt-secret=secret"}

		cfg, err := parseFlags()
		require.NoError(t, err)
		assert.Equal(t, defaultServerPort, cfg.Port)
		assert.Equal(t, defaultMinioEndpoint, cfg.MinioEndpoint)
		assert.Equal(t, defaultMinioBucket, cfg.MinioBucket)
		assert.Equal(t, defaultCacheTTL, cfg.CacheTTL)
	})

	t.Run("Отсутствует обязательный параметр database-dsn", func(t *testing.T) {
		resetFlags()
		defer func() { os.Args = originalArgs }()
		os.Args = []string{"cmd", "-jwt-secret=secret"}

		_, err := parseFlags()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "не указана строка подключения к БД")
	})

	t.Run("Отсутствует обязательный параметр jwt-secret", func(t *testing.T) {
		resetFlags()
		defer func() { os.Args = originalArgs }()
		os.Args = []string{"cmd", "-database-dsn=postgres://..."}

		_, err := parseFlags()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "не указан секретный ключ JWT")
	})

	t.Run("Флаги переопределяют переменные окружения", func(t *testing.T) {
		resetFlags()
		defer func() { os.Args = originalArgs }()

		os.Setenv(envDatabaseDSN, "env_postgres://...")
		os.Setenv(envJWTSecret, "env_secret")
		defer func() {
			os.Unsetenv(envDatabaseDSN)
			os.Unsetenv(envJWTSecret)
		}()

		os.Args = []string{"cmd", "-database-dsn=flag_postgres://...", "-jwt-secret=flag_secret"}
		cfg, err := parseFlags()
		require.NoError(t, err)
		assert.Equal(t, "flag_postgres://...", cfg.DatabaseDSN)
		assert.Equal(t, "flag_secret", cfg.JWTSecret)
	})
}
