package client_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/client"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
)

func TestFileCache_SaveLoad(t *testing.T) {
	cache, err := client.NewFileCache(t.TempDir())
	require.NoError(t, err)

	payload := &client.CachedPayload{
		VersionID: "v1-aaaa",
		Timestamp: time.Now().UTC(),
		Data: &models.AggregateData{
			Events:   []models.Event{{ID: 1, Title: "Hack Night"}},
			Settings: models.DefaultSettings(),
		},
	}
	require.NoError(t, cache.Save(payload))

	loaded, err := cache.Load()
	require.NoError(t, err)
	assert.Equal(t, "v1-aaaa", loaded.VersionID)
	assert.Len(t, loaded.Data.Events, 1)
}

func TestFileCache_LoadEmpty(t *testing.T) {
	cache, err := client.NewFileCache(t.TempDir())
	require.NoError(t, err)

	_, err = cache.Load()
	assert.ErrorIs(t, err, client.ErrCacheMiss)
}

func TestFileCache_CorruptFileCleared(t *testing.T) {
	dir := t.TempDir()
	cache, err := client.NewFileCache(dir)
	require.NoError(t, err)

	// Битый JSON на диске.
	cachePath := filepath.Join(dir, "cache.json")
	require.NoError(t, os.WriteFile(cachePath, []byte("{broken"), 0o600))

	_, err = cache.Load()
	assert.ErrorIs(t, err, client.ErrCacheMiss)

	// Поврежденный файл удален, а не оставлен гнить.
	_, statErr := os.Stat(cachePath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileCache_PayloadWithoutVersionRejected(t *testing.T) {
	dir := t.TempDir()
	cache, err := client.NewFileCache(dir)
	require.NoError(t, err)

	// Валидный JSON, но без versionId: такой кеш бесполезен для сверки.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cache.json"),
		[]byte(`{"timestamp":"2025-01-01T00:00:00Z","data":null}`), 0o600))

	_, err = cache.Load()
	assert.ErrorIs(t, err, client.ErrCacheMiss)
}

func TestFileCache_Clear(t *testing.T) {
	cache, err := client.NewFileCache(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, cache.Save(&client.CachedPayload{
		VersionID: "v1-aaaa",
		Timestamp: time.Now(),
		Data:      &models.AggregateData{Settings: models.DefaultSettings()},
	}))

	cache.Clear()

	_, err = cache.Load()
	assert.ErrorIs(t, err, client.ErrCacheMiss)
}

func TestFileCache_Meta(t *testing.T) {
	cache, err := client.NewFileCache(t.TempDir())
	require.NoError(t, err)

	// Отсутствующий файл счетчиков дает нули.
	meta := cache.LoadMeta()
	assert.Zero(t, meta.Hits)
	assert.Zero(t, meta.Misses)

	meta.Hits = 3
	meta.Misses = 1
	meta.LastCheck = time.Now().UTC()
	require.NoError(t, cache.SaveMeta(meta))

	reloaded := cache.LoadMeta()
	assert.EqualValues(t, 3, reloaded.Hits)
	assert.EqualValues(t, 1, reloaded.Misses)
}

func TestFallbackData(t *testing.T) {
	data := client.FallbackData()

	require.NotNil(t, data)
	// Встроенная выдача всегда несет настройки по умолчанию.
	assert.Equal(t, models.DefaultSettings().HeroTitle1, data.Settings.HeroTitle1)
	assert.NotEmpty(t, data.Stats)
	// Коллекции без данных — пустые срезы, фронтенд не должен видеть null.
	assert.NotNil(t, data.Events)
}
