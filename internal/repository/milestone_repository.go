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

// MilestoneRepository определяет методы для работы с вехами истории сообщества.
type MilestoneRepository interface {
	ListMilestones(ctx context.Context) ([]models.Milestone, error)
	GetMilestoneByID(ctx context.Context, id int64) (*models.Milestone, error)
	CreateMilestone(ctx context.Context, m *models.Milestone) (int64, error)
	UpdateMilestone(ctx context.Context, m *models.Milestone) error
	DeleteMilestone(ctx context.Context, id int64) error
}

type postgresMilestoneRepository struct {
	db *sqlx.DB
}

// NewPostgresMilestoneRepository создает новый экземпляр репозитория вех.
func NewPostgresMilestoneRepository(db *sqlx.DB) MilestoneRepository {
	return &postgresMilestoneRepository{db: db}
}

const milestoneColumns = `id, year, title, description, ord, created_at, updated_at`

// ListMilestones возвращает все вехи, отсортированные по полю ord.
func (r *postgresMilestoneRepository) ListMilestones(ctx context.Context) ([]models.Milestone, error) {
	query := `SELECT ` + milestoneColumns + ` FROM milestones ORDER BY ord ASC, id ASC`

	milestones := make([]models.Milestone, 0)
	if err := r.db.SelectContext(ctx, &milestones, query); err != nil {
		log.Printf("[MilestoneRepo] Ошибка при получении списка вех: %v", err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение вех: %w", err)
	}
	return milestones, nil
}

// GetMilestoneByID находит веху по ID.
func (r *postgresMilestoneRepository) GetMilestoneByID(ctx context.Context, id int64) (*models.Milestone, error) {
	var m models.Milestone
	if err := r.db.GetContext(ctx, &m, `SELECT `+milestoneColumns+` FROM milestones WHERE id=$1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		log.Printf("[MilestoneRepo] Ошибка при поиске вехи ID %d: %v", id, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение вехи: %w", err)
	}
	return &m, nil
}

// CreateMilestone создает новую веху и возвращает ее ID.
func (r *postgresMilestoneRepository) CreateMilestone(ctx context.Context, m *models.Milestone) (int64, error) {
	query := `INSERT INTO milestones (year, title, description, ord) VALUES ($1, $2, $3, $4) RETURNING id`
	var id int64

	if err := r.db.QueryRowxContext(ctx, query, m.Year, m.Title, m.Description, m.Order).Scan(&id); err != nil {
		log.Printf("[MilestoneRepo] Ошибка при создании вехи '%s': %v", m.Title, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на создание вехи: %w", err)
	}

	log.Printf("[MilestoneRepo] Веха '%s' создана с ID %d", m.Title, id)
	return id, nil
}

// UpdateMilestone обновляет веху целиком.
func (r *postgresMilestoneRepository) UpdateMilestone(ctx context.Context, m *models.Milestone) error {
	query := `UPDATE milestones SET year=$1, title=$2, description=$3, ord=$4, updated_at=NOW() WHERE id=$5`

	res, err := r.db.ExecContext(ctx, query, m.Year, m.Title, m.Description, m.Order, m.ID)
	if err != nil {
		log.Printf("[MilestoneRepo] Ошибка при обновлении вехи ID %d: %v", m.ID, err)
		return fmt.Errorf("ошибка выполнения запроса на обновление вехи: %w", err)
	}
	return checkAffected(res)
}

// DeleteMilestone удаляет веху по ID.
func (r *postgresMilestoneRepository) DeleteMilestone(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM milestones WHERE id=$1`, id)
	if err != nil {
		log.Printf("[MilestoneRepo] Ошибка при удалении вехи ID %d: %v", id, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление вехи: %w", err)
	}
	return checkAffected(res)
}
