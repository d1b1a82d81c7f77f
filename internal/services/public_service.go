package services

import (
	"context"
	"errors"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/cache"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/repository"
)

// PublicService собирает агрегированную публичную выдачу.
type PublicService interface {
	// GetAggregate возвращает публичную выдачу: из горячего кеша при попадании,
	// иначе собирает из БД и кеширует.
	GetAggregate(ctx context.Context) (*models.AggregateResponse, error)
	// GetSettings возвращает настройки сайта, подставляя значения по умолчанию
	// при отсутствии записи. Оба пути чтения настроек (этот и агрегат)
	// обязаны отдавать одинаковые значения по умолчанию.
	GetSettings(ctx context.Context) (*models.Settings, error)
}

var _ PublicService = (*publicService)(nil)

type publicService struct {
	events       repository.EventRepository
	stats        repository.StatRepository
	testimonials repository.TestimonialRepository
	faqs         repository.FAQRepository
	milestones   repository.MilestoneRepository
	team         repository.TeamRepository
	settings     repository.SettingsRepository
	version      repository.VersionRepository
	hotCache     *cache.HotCache
}

// PublicServiceDeps перечисляет зависимости сервиса публичной выдачи.
type PublicServiceDeps struct {
	Events       repository.EventRepository
	Stats        repository.StatRepository
	Testimonials repository.TestimonialRepository
	FAQs         repository.FAQRepository
	Milestones   repository.MilestoneRepository
	Team         repository.TeamRepository
	Settings     repository.SettingsRepository
	Version      repository.VersionRepository
	HotCache     *cache.HotCache
}

// NewPublicService создает новый экземпляр сервиса публичной выдачи.
func NewPublicService(deps PublicServiceDeps) PublicService {
	return &publicService{
		events:       deps.Events,
		stats:        deps.Stats,
		testimonials: deps.Testimonials,
		faqs:         deps.FAQs,
		milestones:   deps.Milestones,
		team:         deps.Team,
		settings:     deps.Settings,
		version:      deps.Version,
		hotCache:     deps.HotCache,
	}
}

// GetAggregate возвращает агрегированную публичную выдачу.
func (s *publicService) GetAggregate(ctx context.Context) (*models.AggregateResponse, error) {
	// Сначала горячий кеш: при попадании ни одного чтения коллекций не делается.
	// Версия в записи кеша — та, что была актуальна на момент сборки, поэтому
	// несоответствия данных и версии здесь быть не может.
	if entry, ok := s.hotCache.Get(); ok {
		log.Printf("[PublicService] Выдача из горячего кеша (версия %s)", entry.VersionID)
		return &models.AggregateResponse{
			Success:   true,
			VersionID: entry.VersionID,
			Data:      entry.Data,
			Source:    models.SourceCache,
		}, nil
	}

	data, versionID, err := s.assemble(ctx)
	if err != nil {
		return nil, err
	}

	s.hotCache.Set(versionID, data)

	return &models.AggregateResponse{
		Success:   true,
		VersionID: versionID,
		Data:      data,
		Source:    models.SourceDB,
	}, nil
}

// assemble конкурентно читает все публичные коллекции и собирает выдачу.
// Соединение по принципу "все или ничего": отказ любого чтения коллекции
// валит весь запрос. Исключения — настройки (подставляются значения по
// умолчанию) и версия (инициализируется при отсутствии), они защищены
// внутри своих репозиториев и здесь не падают на отсутствии записи.
func (s *publicService) assemble(ctx context.Context) (*models.AggregateData, string, error) {
	var (
		data    models.AggregateData
		version *models.VersionRecord
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		events, err := s.events.ListEvents(gctx)
		data.Events = events
		return err
	})
	g.Go(func() error {
		stats, err := s.stats.ListStats(gctx)
		data.Stats = stats
		return err
	})
	g.Go(func() error {
		testimonials, err := s.testimonials.ListActiveTestimonials(gctx)
		data.Testimonials = testimonials
		return err
	})
	g.Go(func() error {
		faqs, err := s.faqs.ListActiveFAQs(gctx)
		data.FAQs = faqs
		return err
	})
	g.Go(func() error {
		milestones, err := s.milestones.ListMilestones(gctx)
		data.Milestones = milestones
		return err
	})
	g.Go(func() error {
		team, err := s.team.ListTeamMembers(gctx)
		data.Team = team
		return err
	})
	g.Go(func() error {
		settings, err := s.querySettings(gctx)
		if err != nil {
			return err
		}
		data.Settings = *settings
		return nil
	})
	g.Go(func() error {
		record, err := s.version.GetVersion(gctx)
		version = record
		return err
	})

	if err := g.Wait(); err != nil {
		log.Printf("[PublicService] Ошибка сборки выдачи: %v", err)
		return nil, "", errors.New("внутренняя ошибка сервера при сборке публичной выдачи")
	}

	log.Printf("[PublicService] Выдача собрана из БД (версия %s)", version.VersionID)
	return &data, version.VersionID, nil
}

// GetSettings возвращает настройки сайта или значения по умолчанию.
func (s *publicService) GetSettings(ctx context.Context) (*models.Settings, error) {
	settings, err := s.querySettings(ctx)
	if err != nil {
		return nil, errors.New("внутренняя ошибка сервера при получении настроек")
	}
	return settings, nil
}

func (s *publicService) querySettings(ctx context.Context) (*models.Settings, error) {
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			defaults := models.DefaultSettings()
			return &defaults, nil
		}
		return nil, err
	}
	return settings, nil
}
