package services

import (
	"context"
	"errors"
	"log"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/cache"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/repository"
)

// VersionService определяет интерфейс для работы с версией кеша.
type VersionService interface {
	// GetVersion возвращает текущую запись о версии,
	// инициализируя ее при отсутствии.
	GetVersion(ctx context.Context) (*models.VersionRecord, error)
	// Bump перезаписывает версию и очищает горячий кеш.
	// Используется ручной инвалидацией; возвращает новую запись.
	Bump(ctx context.Context, changeType, description, actor string) (*models.VersionRecord, error)
	// BumpBestEffort — вариант для пост-обработки успешных мутаций:
	// ошибка логируется и глотается, кеш очищается в любом случае.
	BumpBestEffort(ctx context.Context, changeType, description, actor string)
}

var _ VersionService = (*versionService)(nil)

type versionService struct {
	versionRepo repository.VersionRepository
	hotCache    *cache.HotCache
}

// NewVersionService создает новый экземпляр сервиса версий.
func NewVersionService(versionRepo repository.VersionRepository, hotCache *cache.HotCache) VersionService {
	return &versionService{versionRepo: versionRepo, hotCache: hotCache}
}

// GetVersion возвращает текущую запись о версии.
func (s *versionService) GetVersion(ctx context.Context) (*models.VersionRecord, error) {
	record, err := s.versionRepo.GetVersion(ctx)
	if err != nil {
		log.Printf("[VersionService] Ошибка получения версии: %v", err)
		return nil, errors.New("внутренняя ошибка сервера при получении версии")
	}
	return record, nil
}

// Bump перезаписывает версию и очищает горячий кеш.
func (s *versionService) Bump(
	ctx context.Context,
	changeType, description, actor string,
) (*models.VersionRecord, error) {
	record, err := s.versionRepo.BumpVersion(ctx, changeType, description, actor)
	if err != nil {
		log.Printf("[VersionService] Ошибка смены версии (%s): %v", changeType, err)
		return nil, errors.New("внутренняя ошибка сервера при смене версии")
	}
	s.hotCache.Clear()
	return record, nil
}

// BumpBestEffort выполняет bump после успешной мутации контента.
// Смена версии — вторичный side-effect: ее отказ не должен превратить
// успешную запись контента в ошибку, поэтому здесь любые ошибки глотаются.
// Горячий кеш очищается безусловно, даже если запись версии не удалась.
func (s *versionService) BumpBestEffort(ctx context.Context, changeType, description, actor string) {
	if _, err := s.versionRepo.BumpVersion(ctx, changeType, description, actor); err != nil {
		log.Printf("[VersionService] Bump после мутации '%s' не удался (игнорируется): %v", changeType, err)
	}
	s.hotCache.Clear()
}
