// Package cache содержит горячий внутрипроцессный кеш публичной выдачи.
package cache

import (
	"encoding/json"
	"log"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
)

const (
	// Единственный ключ: кешируется ровно одна собранная выдача.
	hotCacheKey = "public:all"

	// MaxPayloadBytes — потолок размера сериализованной выдачи.
	// Больший пейлоад не кешируется: гарантированный промах лучше
	// неограниченного потребления памяти.
	MaxPayloadBytes = 50 << 20 // 50 МБ

	// DefaultTTL — подстраховка на случай пропущенной инвалидации
	// (например, bump другого инстанса при горизонтальном масштабировании).
	DefaultTTL = 10 * time.Minute
)

// Entry представляет закешированную выдачу вместе с версией,
// актуальной на момент сборки.
type Entry struct {
	Data      *models.AggregateData
	VersionID string
	Timestamp time.Time // Локальное время сборки, не персистится
}

// HotCache хранит последнюю собранную публичную выдачу.
// Один экземпляр на процесс, создается при старте и передается явно
// (агрегирующему обработчику и cache-bump middleware), без глобального состояния.
type HotCache struct {
	entries *ttlcache.Cache[string, Entry]
}

// NewHotCache создает горячий кеш с заданным TTL и запускает фоновую очистку.
// Кеш живет все время жизни процесса, поэтому очистка не останавливается.
func NewHotCache(ttl time.Duration) *HotCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &HotCache{
		entries: ttlcache.New(
			ttlcache.WithTTL[string, Entry](ttl),
			ttlcache.WithDisableTouchOnHit[string, Entry](), // чтение не продлевает TTL
		),
	}
	go c.entries.Start()
	return c
}

// Get возвращает текущую запись кеша.
// Запись считается присутствующей только при непустых данных.
func (c *HotCache) Get() (Entry, bool) {
	item := c.entries.Get(hotCacheKey)
	if item == nil {
		return Entry{}, false
	}
	entry := item.Value()
	if entry.Data == nil {
		return Entry{}, false
	}
	return entry, true
}

// Set сохраняет собранную выдачу вместе с версией, актуальной на момент сборки.
// Сериализует данные для замера размера; при превышении потолка или ошибке
// сериализации кеш очищается вместо сохранения. Ошибки наружу не выходят —
// кеширование это оптимизация, а не обязательство.
func (c *HotCache) Set(versionID string, data *models.AggregateData) {
	if data == nil {
		c.Clear()
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		log.Printf("[HotCache] Ошибка сериализации выдачи, кеш очищен: %v", err)
		c.Clear()
		return
	}
	if len(payload) > MaxPayloadBytes {
		log.Printf("[HotCache] Выдача превышает потолок (%d > %d байт), кеш очищен", len(payload), MaxPayloadBytes)
		c.Clear()
		return
	}

	c.entries.Set(hotCacheKey, Entry{
		Data:      data,
		VersionID: versionID,
		Timestamp: time.Now(),
	}, ttlcache.DefaultTTL)

	log.Printf("[HotCache] Выдача закеширована (версия %s, %d байт)", versionID, len(payload))
}

// Clear безусловно сбрасывает кеш в отсутствующее состояние.
func (c *HotCache) Clear() {
	c.entries.Delete(hotCacheKey)
}
