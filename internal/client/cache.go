package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
)

// Имена файлов локального кеша внутри каталога кеша клиента.
const (
	cacheFileName = "cache.json"
	metaFileName  = "cache_meta.json"
)

// ErrCacheMiss возвращается, когда локальный кеш пуст или непригоден.
var ErrCacheMiss = errors.New("локальный кеш отсутствует")

// CachedPayload представляет сохраненную на диске копию выдачи вместе с
// версией, под которой она была получена.
type CachedPayload struct {
	VersionID string                `json:"versionId"`
	Timestamp time.Time             `json:"timestamp"`
	Data      *models.AggregateData `json:"data"`
}

// CacheMeta хранит счетчики попаданий и промахов локального кеша.
type CacheMeta struct {
	Hits      int64     `json:"hits"`
	Misses    int64     `json:"misses"`
	LastCheck time.Time `json:"lastCheck"`
}

// FileCache хранит выдачу в JSON-файле в каталоге кеша пользователя.
// Аналог localStorage браузера: переживает перезапуск клиента.
type FileCache struct {
	dir string
}

// NewFileCache создает кеш в указанном каталоге. Пустой путь означает
// подкаталог в стандартном каталоге кеша пользователя.
func NewFileCache(dir string) (*FileCache, error) {
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("ошибка определения каталога кеша: %w", err)
		}
		dir = filepath.Join(base, "cracked-digital")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("ошибка создания каталога кеша: %w", err)
	}
	return &FileCache{dir: dir}, nil
}

// Load читает сохраненную выдачу. Поврежденный файл удаляется, и
// возвращается ErrCacheMiss, чтобы вызывающий выполнил полную загрузку.
func (c *FileCache) Load() (*CachedPayload, error) {
	raw, err := os.ReadFile(filepath.Join(c.dir, cacheFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("ошибка чтения файла кеша: %w", err)
	}

	var payload CachedPayload
	if err = json.Unmarshal(raw, &payload); err != nil || payload.VersionID == "" || payload.Data == nil {
		// Поврежденный кеш очищаем, а не пытаемся использовать.
		c.Clear()
		return nil, ErrCacheMiss
	}

	return &payload, nil
}

// Save записывает выдачу на диск. Запись идет через временный файл, чтобы
// при сбое не остался наполовину записанный кеш.
func (c *FileCache) Save(payload *CachedPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("ошибка сериализации кеша: %w", err)
	}

	tmpPath := filepath.Join(c.dir, cacheFileName+".tmp")
	if err = os.WriteFile(tmpPath, raw, 0o600); err != nil {
		return fmt.Errorf("ошибка записи файла кеша: %w", err)
	}
	if err = os.Rename(tmpPath, filepath.Join(c.dir, cacheFileName)); err != nil {
		return fmt.Errorf("ошибка замены файла кеша: %w", err)
	}
	return nil
}

// Clear удаляет сохраненную выдачу.
func (c *FileCache) Clear() {
	_ = os.Remove(filepath.Join(c.dir, cacheFileName))
}

// LoadMeta читает счетчики кеша. Отсутствующий или поврежденный файл
// означает нулевые счетчики.
func (c *FileCache) LoadMeta() CacheMeta {
	raw, err := os.ReadFile(filepath.Join(c.dir, metaFileName))
	if err != nil {
		return CacheMeta{}
	}
	var meta CacheMeta
	if err = json.Unmarshal(raw, &meta); err != nil {
		return CacheMeta{}
	}
	return meta
}

// SaveMeta записывает счетчики кеша. Ошибки записи не критичны для
// работы клиента и поэтому игнорируются вызывающим.
func (c *FileCache) SaveMeta(meta CacheMeta) error {
	raw, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("ошибка сериализации счетчиков кеша: %w", err)
	}
	if err = os.WriteFile(filepath.Join(c.dir, metaFileName), raw, 0o600); err != nil {
		return fmt.Errorf("ошибка записи счетчиков кеша: %w", err)
	}
	return nil
}
