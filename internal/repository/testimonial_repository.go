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

// TestimonialRepository определяет методы для работы с отзывами.
type TestimonialRepository interface {
	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
	// ListActiveTestimonials возвращает только отзывы с is_active=true —
	// публичная выдача не показывает скрытые отзывы.
	ListActiveTestimonials(ctx context.Context) ([]models.Testimonial, error)
	GetTestimonialByID(ctx context.Context, id int64) (*models.Testimonial, error)
	CreateTestimonial(ctx context.Context, t *models.Testimonial) (int64, error)
	UpdateTestimonial(ctx context.Context, t *models.Testimonial) error
	DeleteTestimonial(ctx context.Context, id int64) error
}

type postgresTestimonialRepository struct {
	db *sqlx.DB
}

// NewPostgresTestimonialRepository создает новый экземпляр репозитория отзывов.
func NewPostgresTestimonialRepository(db *sqlx.DB) TestimonialRepository {
	return &postgresTestimonialRepository{db: db}
}

const testimonialColumns = `id, name, role, company, quote, avatar_url, is_active, ord, created_at, updated_at`

func (r *postgresTestimonialRepository) list(ctx context.Context, onlyActive bool) ([]models.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials`
	if onlyActive {
		query += ` WHERE is_active=TRUE`
	}
	query += ` ORDER BY ord ASC, id ASC`

	testimonials := make([]models.Testimonial, 0)
	if err := r.db.SelectContext(ctx, &testimonials, query); err != nil {
		log.Printf("[TestimonialRepo] Ошибка при получении списка отзывов: %v", err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение отзывов: %w", err)
	}
	return testimonials, nil
}

// ListTestimonials возвращает все отзывы, включая скрытые (для админки).
func (r *postgresTestimonialRepository) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return r.list(ctx, false)
}

// ListActiveTestimonials возвращает только активные отзывы.
func (r *postgresTestimonialRepository) ListActiveTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return r.list(ctx, true)
}

// GetTestimonialByID находит отзыв по ID.
func (r *postgresTestimonialRepository) GetTestimonialByID(ctx context.Context, id int64) (*models.Testimonial, error) {
	var t models.Testimonial
	if err := r.db.GetContext(ctx, &t, `SELECT `+testimonialColumns+` FROM testimonials WHERE id=$1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		log.Printf("[TestimonialRepo] Ошибка при поиске отзыва ID %d: %v", id, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение отзыва: %w", err)
	}
	return &t, nil
}

// CreateTestimonial создает новый отзыв и возвращает его ID.
func (r *postgresTestimonialRepository) CreateTestimonial(ctx context.Context, t *models.Testimonial) (int64, error) {
	query := `INSERT INTO testimonials (name, role, company, quote, avatar_url, is_active, ord)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	var id int64

	err := r.db.QueryRowxContext(ctx, query,
		t.Name, t.Role, t.Company, t.Quote, t.AvatarURL, t.IsActive, t.Order,
	).Scan(&id)
	if err != nil {
		log.Printf("[TestimonialRepo] Ошибка при создании отзыва от '%s': %v", t.Name, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на создание отзыва: %w", err)
	}

	log.Printf("[TestimonialRepo] Отзыв от '%s' создан с ID %d", t.Name, id)
	return id, nil
}

// UpdateTestimonial обновляет отзыв целиком.
func (r *postgresTestimonialRepository) UpdateTestimonial(ctx context.Context, t *models.Testimonial) error {
	query := `UPDATE testimonials SET name=$1, role=$2, company=$3, quote=$4, avatar_url=$5,
	          is_active=$6, ord=$7, updated_at=NOW() WHERE id=$8`

	res, err := r.db.ExecContext(ctx, query,
		t.Name, t.Role, t.Company, t.Quote, t.AvatarURL, t.IsActive, t.Order, t.ID,
	)
	if err != nil {
		log.Printf("[TestimonialRepo] Ошибка при обновлении отзыва ID %d: %v", t.ID, err)
		return fmt.Errorf("ошибка выполнения запроса на обновление отзыва: %w", err)
	}
	return checkAffected(res)
}

// DeleteTestimonial удаляет отзыв по ID.
func (r *postgresTestimonialRepository) DeleteTestimonial(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id=$1`, id)
	if err != nil {
		log.Printf("[TestimonialRepo] Ошибка при удалении отзыва ID %d: %v", id, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление отзыва: %w", err)
	}
	return checkAffected(res)
}
