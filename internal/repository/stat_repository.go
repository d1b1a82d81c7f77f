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

// StatRepository определяет методы для работы с показателями сообщества.
type StatRepository interface {
	ListStats(ctx context.Context) ([]models.Stat, error)
	GetStatByID(ctx context.Context, id int64) (*models.Stat, error)
	CreateStat(ctx context.Context, s *models.Stat) (int64, error)
	UpdateStat(ctx context.Context, s *models.Stat) error
	DeleteStat(ctx context.Context, id int64) error
}

type postgresStatRepository struct {
	db *sqlx.DB
}

// NewPostgresStatRepository создает новый экземпляр репозитория показателей.
func NewPostgresStatRepository(db *sqlx.DB) StatRepository {
	return &postgresStatRepository{db: db}
}

const statColumns = `id, label, value, icon, ord, created_at, updated_at`

// ListStats возвращает все показатели, отсортированные по полю ord.
func (r *postgresStatRepository) ListStats(ctx context.Context) ([]models.Stat, error) {
	query := `SELECT ` + statColumns + ` FROM stats ORDER BY ord ASC, id ASC`

	stats := make([]models.Stat, 0)
	if err := r.db.SelectContext(ctx, &stats, query); err != nil {
		log.Printf("[StatRepo] Ошибка при получении списка показателей: %v", err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение показателей: %w", err)
	}
	return stats, nil
}

// GetStatByID находит показатель по ID.
func (r *postgresStatRepository) GetStatByID(ctx context.Context, id int64) (*models.Stat, error) {
	var s models.Stat
	if err := r.db.GetContext(ctx, &s, `SELECT `+statColumns+` FROM stats WHERE id=$1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		log.Printf("[StatRepo] Ошибка при поиске показателя ID %d: %v", id, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение показателя: %w", err)
	}
	return &s, nil
}

// CreateStat создает новый показатель и возвращает его ID.
func (r *postgresStatRepository) CreateStat(ctx context.Context, s *models.Stat) (int64, error) {
	query := `INSERT INTO stats (label, value, icon, ord) VALUES ($1, $2, $3, $4) RETURNING id`
	var id int64

	if err := r.db.QueryRowxContext(ctx, query, s.Label, s.Value, s.Icon, s.Order).Scan(&id); err != nil {
		log.Printf("[StatRepo] Ошибка при создании показателя '%s': %v", s.Label, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на создание показателя: %w", err)
	}

	log.Printf("[StatRepo] Показатель '%s' создан с ID %d", s.Label, id)
	return id, nil
}

// UpdateStat обновляет показатель целиком.
func (r *postgresStatRepository) UpdateStat(ctx context.Context, s *models.Stat) error {
	query := `UPDATE stats SET label=$1, value=$2, icon=$3, ord=$4, updated_at=NOW() WHERE id=$5`

	res, err := r.db.ExecContext(ctx, query, s.Label, s.Value, s.Icon, s.Order, s.ID)
	if err != nil {
		log.Printf("[StatRepo] Ошибка при обновлении показателя ID %d: %v", s.ID, err)
		return fmt.Errorf("ошибка выполнения запроса на обновление показателя: %w", err)
	}
	return checkAffected(res)
}

// DeleteStat удаляет показатель по ID.
func (r *postgresStatRepository) DeleteStat(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stats WHERE id=$1`, id)
	if err != nil {
		log.Printf("[StatRepo] Ошибка при удалении показателя ID %d: %v", id, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление показателя: %w", err)
	}
	return checkAffected(res)
}
