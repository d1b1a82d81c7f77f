package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
)

// SettingsRepository определяет методы для работы с настройками сайта (синглтон).
type SettingsRepository interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	UpsertSettings(ctx context.Context, s *models.Settings) error
	DeleteSettings(ctx context.Context) error
}

// postgresSettingsRepository реализует SettingsRepository для PostgreSQL.
type postgresSettingsRepository struct {
	db *sqlx.DB
}

// NewPostgresSettingsRepository создает новый экземпляр репозитория настроек.
func NewPostgresSettingsRepository(db *sqlx.DB) SettingsRepository {
	return &postgresSettingsRepository{db: db}
}

// GetSettings читает запись настроек.
// Отсутствие записи — штатная ситуация (ErrSettingsNotFound), слой сервиса
// подставляет настройки по умолчанию.
func (r *postgresSettingsRepository) GetSettings(ctx context.Context) (*models.Settings, error) {
	query := `SELECT key, hero_tagline, hero_title1, hero_title2, hero_description,
	                 whatsapp_link, instagram_link, linkedin_link, email, phone, address,
	                 footer_tagline, join_cta
	          FROM site_settings WHERE key=$1`
	var s models.Settings

	err := r.db.GetContext(ctx, &s, query, models.SettingsKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		log.Printf("[SettingsRepo] Ошибка при чтении настроек: %v", err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение настроек: %w", err)
	}

	return &s, nil
}

// UpsertSettings создает или целиком перезаписывает запись настроек.
func (r *postgresSettingsRepository) UpsertSettings(ctx context.Context, s *models.Settings) error {
	query := `INSERT INTO site_settings (key, hero_tagline, hero_title1, hero_title2, hero_description,
	              whatsapp_link, instagram_link, linkedin_link, email, phone, address,
	              footer_tagline, join_cta)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	          ON CONFLICT (key) DO UPDATE SET
	            hero_tagline=EXCLUDED.hero_tagline,
	            hero_title1=EXCLUDED.hero_title1,
	            hero_title2=EXCLUDED.hero_title2,
	            hero_description=EXCLUDED.hero_description,
	            whatsapp_link=EXCLUDED.whatsapp_link,
	            instagram_link=EXCLUDED.instagram_link,
	            linkedin_link=EXCLUDED.linkedin_link,
	            email=EXCLUDED.email,
	            phone=EXCLUDED.phone,
	            address=EXCLUDED.address,
	            footer_tagline=EXCLUDED.footer_tagline,
	            join_cta=EXCLUDED.join_cta`

	if _, err := r.db.ExecContext(ctx, query,
		models.SettingsKey, s.HeroTagline, s.HeroTitle1, s.HeroTitle2, s.HeroDescription,
		s.WhatsappLink, s.InstagramLink, s.LinkedinLink, s.Email, s.Phone, s.Address,
		s.FooterTagline, s.JoinCta,
	); err != nil {
		log.Printf("[SettingsRepo] Ошибка сохранения настроек: %v", err)
		return fmt.Errorf("ошибка выполнения запроса на сохранение настроек: %w", err)
	}

	log.Printf("[SettingsRepo] Настройки сайта сохранены")
	return nil
}

// DeleteSettings удаляет запись настроек (возврат к значениям по умолчанию).
func (r *postgresSettingsRepository) DeleteSettings(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM site_settings WHERE key=$1`, models.SettingsKey); err != nil {
		log.Printf("[SettingsRepo] Ошибка удаления настроек: %v", err)
		return fmt.Errorf("ошибка выполнения запроса на удаление настроек: %w", err)
	}
	return nil
}

// Кастомные ошибки репозитория настроек.
var (
	ErrSettingsNotFound = errors.New("настройки сайта не найдены")
)
