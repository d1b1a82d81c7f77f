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

// EventRepository определяет методы для работы с мероприятиями.
type EventRepository interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEventByID(ctx context.Context, id int64) (*models.Event, error)
	CreateEvent(ctx context.Context, e *models.Event) (int64, error)
	UpdateEvent(ctx context.Context, e *models.Event) error
	DeleteEvent(ctx context.Context, id int64) error
}

// postgresEventRepository реализует EventRepository для PostgreSQL.
type postgresEventRepository struct {
	db *sqlx.DB
}

// NewPostgresEventRepository создает новый экземпляр репозитория мероприятий.
func NewPostgresEventRepository(db *sqlx.DB) EventRepository {
	return &postgresEventRepository{db: db}
}

const eventColumns = `id, title, description, date, location, image_url, registration_link,
	is_published, ord, created_at, updated_at`

// ListEvents возвращает все мероприятия.
// Особый случай среди коллекций: сортировка по дате проведения по убыванию,
// а не по полю ord.
func (r *postgresEventRepository) ListEvents(ctx context.Context) ([]models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY date DESC, id ASC`

	events := make([]models.Event, 0)
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		log.Printf("[EventRepo] Ошибка при получении списка мероприятий: %v", err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение мероприятий: %w", err)
	}
	return events, nil
}

// GetEventByID находит мероприятие по ID.
func (r *postgresEventRepository) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id=$1`
	var e models.Event

	if err := r.db.GetContext(ctx, &e, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		log.Printf("[EventRepo] Ошибка при поиске мероприятия ID %d: %v", id, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение мероприятия: %w", err)
	}
	return &e, nil
}

// CreateEvent создает новое мероприятие и возвращает его ID.
func (r *postgresEventRepository) CreateEvent(ctx context.Context, e *models.Event) (int64, error) {
	query := `INSERT INTO events (title, description, date, location, image_url, registration_link, is_published, ord)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	var id int64

	err := r.db.QueryRowxContext(ctx, query,
		e.Title, e.Description, e.Date, e.Location, e.ImageURL, e.RegistrationLink, e.IsPublished, e.Order,
	).Scan(&id)
	if err != nil {
		log.Printf("[EventRepo] Ошибка при создании мероприятия '%s': %v", e.Title, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на создание мероприятия: %w", err)
	}

	log.Printf("[EventRepo] Мероприятие '%s' создано с ID %d", e.Title, id)
	return id, nil
}

// UpdateEvent обновляет мероприятие целиком.
func (r *postgresEventRepository) UpdateEvent(ctx context.Context, e *models.Event) error {
	query := `UPDATE events SET title=$1, description=$2, date=$3, location=$4, image_url=$5,
	          registration_link=$6, is_published=$7, ord=$8, updated_at=NOW()
	          WHERE id=$9`

	res, err := r.db.ExecContext(ctx, query,
		e.Title, e.Description, e.Date, e.Location, e.ImageURL, e.RegistrationLink, e.IsPublished, e.Order, e.ID,
	)
	if err != nil {
		log.Printf("[EventRepo] Ошибка при обновлении мероприятия ID %d: %v", e.ID, err)
		return fmt.Errorf("ошибка выполнения запроса на обновление мероприятия: %w", err)
	}
	return checkAffected(res)
}

// DeleteEvent удаляет мероприятие по ID.
func (r *postgresEventRepository) DeleteEvent(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id=$1`, id)
	if err != nil {
		log.Printf("[EventRepo] Ошибка при удалении мероприятия ID %d: %v", id, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление мероприятия: %w", err)
	}
	return checkAffected(res)
}
