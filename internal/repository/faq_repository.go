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

// FAQRepository определяет методы для работы с вопросами-ответами.
type FAQRepository interface {
	ListFAQs(ctx context.Context) ([]models.FAQ, error)
	ListActiveFAQs(ctx context.Context) ([]models.FAQ, error)
	GetFAQByID(ctx context.Context, id int64) (*models.FAQ, error)
	CreateFAQ(ctx context.Context, f *models.FAQ) (int64, error)
	UpdateFAQ(ctx context.Context, f *models.FAQ) error
	DeleteFAQ(ctx context.Context, id int64) error
}

type postgresFAQRepository struct {
	db *sqlx.DB
}

// NewPostgresFAQRepository создает новый экземпляр репозитория вопросов-ответов.
func NewPostgresFAQRepository(db *sqlx.DB) FAQRepository {
	return &postgresFAQRepository{db: db}
}

const faqColumns = `id, question, answer, is_active, ord, created_at, updated_at`

func (r *postgresFAQRepository) list(ctx context.Context, onlyActive bool) ([]models.FAQ, error) {
	query := `SELECT ` + faqColumns + ` FROM faqs`
	if onlyActive {
		query += ` WHERE is_active=TRUE`
	}
	query += ` ORDER BY ord ASC, id ASC`

	faqs := make([]models.FAQ, 0)
	if err := r.db.SelectContext(ctx, &faqs, query); err != nil {
		log.Printf("[FAQRepo] Ошибка при получении списка вопросов: %v", err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение вопросов: %w", err)
	}
	return faqs, nil
}

// ListFAQs возвращает все вопросы, включая скрытые (для админки).
func (r *postgresFAQRepository) ListFAQs(ctx context.Context) ([]models.FAQ, error) {
	return r.list(ctx, false)
}

// ListActiveFAQs возвращает только активные вопросы (для публичной выдачи).
func (r *postgresFAQRepository) ListActiveFAQs(ctx context.Context) ([]models.FAQ, error) {
	return r.list(ctx, true)
}

// GetFAQByID находит вопрос по ID.
func (r *postgresFAQRepository) GetFAQByID(ctx context.Context, id int64) (*models.FAQ, error) {
	var f models.FAQ
	if err := r.db.GetContext(ctx, &f, `SELECT `+faqColumns+` FROM faqs WHERE id=$1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		log.Printf("[FAQRepo] Ошибка при поиске вопроса ID %d: %v", id, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение вопроса: %w", err)
	}
	return &f, nil
}

// CreateFAQ создает новый вопрос и возвращает его ID.
func (r *postgresFAQRepository) CreateFAQ(ctx context.Context, f *models.FAQ) (int64, error) {
	query := `INSERT INTO faqs (question, answer, is_active, ord) VALUES ($1, $2, $3, $4) RETURNING id`
	var id int64

	if err := r.db.QueryRowxContext(ctx, query, f.Question, f.Answer, f.IsActive, f.Order).Scan(&id); err != nil {
		log.Printf("[FAQRepo] Ошибка при создании вопроса: %v", err)
		return 0, fmt.Errorf("ошибка выполнения запроса на создание вопроса: %w", err)
	}

	log.Printf("[FAQRepo] Вопрос создан с ID %d", id)
	return id, nil
}

// UpdateFAQ обновляет вопрос целиком.
func (r *postgresFAQRepository) UpdateFAQ(ctx context.Context, f *models.FAQ) error {
	query := `UPDATE faqs SET question=$1, answer=$2, is_active=$3, ord=$4, updated_at=NOW() WHERE id=$5`

	res, err := r.db.ExecContext(ctx, query, f.Question, f.Answer, f.IsActive, f.Order, f.ID)
	if err != nil {
		log.Printf("[FAQRepo] Ошибка при обновлении вопроса ID %d: %v", f.ID, err)
		return fmt.Errorf("ошибка выполнения запроса на обновление вопроса: %w", err)
	}
	return checkAffected(res)
}

// DeleteFAQ удаляет вопрос по ID.
func (r *postgresFAQRepository) DeleteFAQ(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM faqs WHERE id=$1`, id)
	if err != nil {
		log.Printf("[FAQRepo] Ошибка при удалении вопроса ID %d: %v", id, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление вопроса: %w", err)
	}
	return checkAffected(res)
}
