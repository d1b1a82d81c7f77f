package client

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
)

// Источники данных, возвращаемые Sync.
const (
	SourceLocalCache = "local-cache" // Версия совпала, данные из локального кеша
	SourceServer     = "server"      // Полная загрузка с сервера
	SourceFallback   = "fallback"    // Сервер недоступен, встроенные данные
	SourceStale      = "stale-cache" // Сервер недоступен, устаревший локальный кеш
)

// Result представляет итог синхронизации: данные для отрисовки и то,
// откуда они взялись.
type Result struct {
	Data      *models.AggregateData
	VersionID string
	Source    string
}

// Reconciler сверяет локальный кеш с версией на сервере и обновляет его
// только при реальном изменении контента. Это клиентская половина
// протокола версионирования: дешевая проверка версии на каждый показ,
// полная загрузка только при несовпадении.
type Reconciler struct {
	api   API
	cache *FileCache
}

// NewReconciler создает новый синхронизатор локального кеша.
func NewReconciler(api API, cache *FileCache) *Reconciler {
	return &Reconciler{api: api, cache: cache}
}

// Sync возвращает актуальную выдачу для отрисовки.
//
// Порядок: читаем локальный кеш, запрашиваем у сервера текущую версию,
// сравниваем токены только на равенство. Совпадение — отдаем кеш без
// полной загрузки. Несовпадение или пустой кеш — одна полная загрузка
// и перезапись кеша. Недоступный сервер — устаревший кеш, если он есть,
// иначе встроенные данные.
func (r *Reconciler) Sync(ctx context.Context) (*Result, error) {
	cached, cacheErr := r.cache.Load()
	if cacheErr != nil && !errors.Is(cacheErr, ErrCacheMiss) {
		return nil, cacheErr
	}

	meta := r.cache.LoadMeta()
	meta.LastCheck = time.Now()

	version, err := r.api.GetVersion(ctx)
	if err != nil {
		// Сервер недоступен: показываем то, что есть, а не ошибку.
		log.Printf("[Client] Проверка версии не удалась: %v", err)
		if cached != nil {
			return &Result{Data: cached.Data, VersionID: cached.VersionID, Source: SourceStale}, nil
		}
		return &Result{Data: FallbackData(), Source: SourceFallback}, nil
	}

	if cached != nil && cached.VersionID == version.VersionID {
		meta.Hits++
		if metaErr := r.cache.SaveMeta(meta); metaErr != nil {
			log.Printf("[Client] Не удалось сохранить счетчики кеша: %v", metaErr)
		}
		return &Result{Data: cached.Data, VersionID: cached.VersionID, Source: SourceLocalCache}, nil
	}

	// Промах: версия изменилась или кеша нет, нужна полная загрузка.
	meta.Misses++
	if metaErr := r.cache.SaveMeta(meta); metaErr != nil {
		log.Printf("[Client] Не удалось сохранить счетчики кеша: %v", metaErr)
	}

	aggregate, err := r.api.GetAll(ctx)
	if err != nil {
		log.Printf("[Client] Полная загрузка не удалась: %v", err)
		if cached != nil {
			return &Result{Data: cached.Data, VersionID: cached.VersionID, Source: SourceStale}, nil
		}
		return &Result{Data: FallbackData(), Source: SourceFallback}, nil
	}

	payload := &CachedPayload{
		VersionID: aggregate.VersionID,
		Timestamp: time.Now(),
		Data:      aggregate.Data,
	}
	if saveErr := r.cache.Save(payload); saveErr != nil {
		// Не сохранившийся кеш не мешает отрисовке, просто следующий запуск
		// снова сделает полную загрузку.
		log.Printf("[Client] Не удалось сохранить локальный кеш: %v", saveErr)
	}

	return &Result{Data: aggregate.Data, VersionID: aggregate.VersionID, Source: SourceServer}, nil
}
