package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // Драйвер PostgreSQL

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/cache"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/handlers"
	appmiddleware "github.com/K-Daksh/NewWebsiteCracked-sub000/internal/middleware"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/repository"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/repository/migrations"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/services"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/storage"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 30 * time.Second

	// Лимиты публичных эндпоинтов: общий token bucket.
	publicRateLimitRPS   = 50
	publicRateLimitBurst = 100
)

// Структура для хранения инициализированных зависимостей.
type dependencies struct {
	db       *sqlx.DB
	versions services.VersionService

	authHandler        *handlers.AuthHandler
	publicHandler      *handlers.PublicHandler
	cacheHandler       *handlers.CacheHandler
	eventHandler       *handlers.EventHandler
	statHandler        *handlers.StatHandler
	testimonialHandler *handlers.TestimonialHandler
	faqHandler         *handlers.FAQHandler
	milestoneHandler   *handlers.MilestoneHandler
	teamHandler        *handlers.TeamHandler
	blogHandler        *handlers.BlogHandler
	settingsHandler    *handlers.SettingsHandler
	uploadHandler      *handlers.UploadHandler
}

// main - точка входа. Вызывает run и обрабатывает ошибку.
func main() {
	if err := run(); err != nil {
		log.Printf("Ошибка выполнения сервера: %v", err)
		os.Exit(1)
	}
}

// run содержит основную логику запуска сервера и возвращает ошибку.
func run() error {
	log.Println("Запуск сервера Cracked Digital...")

	cfg, err := parseFlags()
	if err != nil {
		return fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	deps, err := setupDependencies(cfg)
	if err != nil {
		return fmt.Errorf("ошибка инициализации зависимостей: %w", err)
	}
	defer func() {
		if deps.db != nil {
			if closeErr := deps.db.Close(); closeErr != nil {
				log.Printf("Ошибка закрытия соединения с БД: %v", closeErr)
			}
		}
	}()

	r := setupRouter(cfg, deps)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	log.Printf("Запуск HTTP-сервера на порту %s...", cfg.Port)
	if err = server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ошибка запуска HTTP-сервера: %w", err)
	}
	return nil
}

// setupDependencies инициализирует и возвращает все необходимые зависимости сервера.
func setupDependencies(cfg *config) (*dependencies, error) {
	deps := &dependencies{}
	var err error

	// 1. Подключение к БД и миграции
	deps.db, err = repository.NewPostgresDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации БД: %w", err)
	}
	if err = migrations.Up(deps.db); err != nil {
		closeDB(deps.db, "после ошибки миграций")
		return nil, fmt.Errorf("ошибка миграций БД: %w", err)
	}

	// 2. Инициализация клиента MinIO
	fileStorage, err := storage.NewMinioClient(storage.MinioConfig{
		Endpoint:        cfg.MinioEndpoint,
		AccessKeyID:     cfg.MinioUser,
		SecretAccessKey: cfg.MinioPassword,
		UseSSL:          false, // За реверс-прокси; TLS терминируется снаружи
		BucketName:      cfg.MinioBucket,
		PublicBaseURL:   cfg.MinioPublicURL,
	})
	if err != nil {
		closeDB(deps.db, "после ошибки MinIO")
		return nil, fmt.Errorf("ошибка инициализации клиента MinIO: %w", err)
	}

	// 3. Горячий кеш: один экземпляр на процесс, передается явно
	hotCache := cache.NewHotCache(cfg.CacheTTL)

	// 4. Репозитории
	adminRepo := repository.NewPostgresAdminRepository(deps.db)
	versionRepo := repository.NewPostgresVersionRepository(deps.db)
	settingsRepo := repository.NewPostgresSettingsRepository(deps.db)
	eventRepo := repository.NewPostgresEventRepository(deps.db)
	statRepo := repository.NewPostgresStatRepository(deps.db)
	testimonialRepo := repository.NewPostgresTestimonialRepository(deps.db)
	faqRepo := repository.NewPostgresFAQRepository(deps.db)
	milestoneRepo := repository.NewPostgresMilestoneRepository(deps.db)
	teamRepo := repository.NewPostgresTeamRepository(deps.db)
	blogRepo := repository.NewPostgresBlogRepository(deps.db)

	// 5. Сервисы
	authService := services.NewAuthService(adminRepo, []byte(cfg.JWTSecret))
	deps.versions = services.NewVersionService(versionRepo, hotCache)
	publicService := services.NewPublicService(services.PublicServiceDeps{
		Events:       eventRepo,
		Stats:        statRepo,
		Testimonials: testimonialRepo,
		FAQs:         faqRepo,
		Milestones:   milestoneRepo,
		Team:         teamRepo,
		Settings:     settingsRepo,
		Version:      versionRepo,
		HotCache:     hotCache,
	})

	// 6. Обработчики
	deps.authHandler = handlers.NewAuthHandler(authService)
	deps.publicHandler = handlers.NewPublicHandler(publicService, deps.versions, blogRepo)
	deps.cacheHandler = handlers.NewCacheHandler(deps.versions)
	deps.eventHandler = handlers.NewEventHandler(eventRepo)
	deps.statHandler = handlers.NewStatHandler(statRepo)
	deps.testimonialHandler = handlers.NewTestimonialHandler(testimonialRepo)
	deps.faqHandler = handlers.NewFAQHandler(faqRepo)
	deps.milestoneHandler = handlers.NewMilestoneHandler(milestoneRepo)
	deps.teamHandler = handlers.NewTeamHandler(teamRepo)
	deps.blogHandler = handlers.NewBlogHandler(blogRepo)
	deps.settingsHandler = handlers.NewSettingsHandler(settingsRepo, publicService)
	deps.uploadHandler = handlers.NewUploadHandler(fileStorage)

	return deps, nil
}

// crudHandler описывает единообразный набор CRUD-обработчиков коллекции.
type crudHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// setupRouter настраивает и возвращает роутер chi.
func setupRouter(cfg *config, deps *dependencies) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong\n"))
	})

	r.Route("/api", func(r chi.Router) {
		// Публичные маршруты (с общим лимитером)
		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.RateLimit(publicRateLimitRPS, publicRateLimitBurst))
			r.Get("/public/all", deps.publicHandler.GetAll)
			r.Get("/public/version", deps.publicHandler.GetVersion)
			r.Get("/public/blog", deps.publicHandler.ListBlog)
			r.Get("/public/blog/{slug}", deps.publicHandler.GetBlogBySlug)
		})

		// Аутентификация
		r.Post("/auth/register", deps.authHandler.Register)
		r.Post("/auth/login", deps.authHandler.Login)

		// Приватные маршруты админки
		r.Route("/admin", func(r chi.Router) {
			r.Use(appmiddleware.Authenticator([]byte(cfg.JWTSecret)))

			// Каждый мутирующий маршрут каждой коллекции оборачивается
			// в cache-bump со своим именем коллекции — без исключений.
			mountCRUD(r, "/events", "events", deps.eventHandler, deps.versions)
			mountCRUD(r, "/stats", "stats", deps.statHandler, deps.versions)
			mountCRUD(r, "/testimonials", "testimonials", deps.testimonialHandler, deps.versions)
			mountCRUD(r, "/faqs", "faqs", deps.faqHandler, deps.versions)
			mountCRUD(r, "/milestones", "milestones", deps.milestoneHandler, deps.versions)
			mountCRUD(r, "/team", "team", deps.teamHandler, deps.versions)
			mountCRUD(r, "/blog", "blog", deps.blogHandler, deps.versions)

			// Настройки: синглтон, только GET/PUT
			settingsBump := appmiddleware.CacheBump(deps.versions, "settings")
			r.Get("/settings", deps.settingsHandler.Get)
			r.With(settingsBump).Put("/settings", deps.settingsHandler.Update)

			// Версия кеша: ручная инвалидация сама является bump-операцией,
			// поэтому в middleware не оборачивается
			r.Post("/cache/bump", deps.cacheHandler.Bump)
			r.Get("/cache/version", deps.cacheHandler.GetVersion)

			// Медиафайлы: загрузка не меняет публичный контент и версию не трогает
			r.Post("/upload", deps.uploadHandler.Upload)
			r.Delete("/upload/*", deps.uploadHandler.Delete)
		})
	})

	return r
}

// mountCRUD монтирует единообразные CRUD-маршруты коллекции,
// оборачивая мутации в cache-bump с именем коллекции.
func mountCRUD(r chi.Router, path, collection string, h crudHandler, versions services.VersionService) {
	bump := appmiddleware.CacheBump(versions, collection)
	r.Route(path, func(r chi.Router) {
		r.Get("/", h.List)
		r.With(bump).Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.With(bump).Put("/{id}", h.Update)
		r.With(bump).Delete("/{id}", h.Delete)
	})
}

// closeDB закрывает соединение с БД при ошибке инициализации.
func closeDB(db *sqlx.DB, reason string) {
	if closeErr := db.Close(); closeErr != nil {
		log.Printf("Ошибка закрытия соединения с БД %s: %v", reason, closeErr)
	}
}
