package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
)

// Коды ошибок PostgreSQL.
const (
	pgUniqueViolationCode = "23505"
)

// AdminRepository определяет методы для работы с администраторами.
type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin *models.Admin) (int64, error)
	GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error)
	CountAdmins(ctx context.Context) (int, error)
}

// postgresAdminRepository реализует AdminRepository для PostgreSQL.
type postgresAdminRepository struct {
	db *sqlx.DB
}

// NewPostgresAdminRepository создает новый экземпляр репозитория администраторов.
func NewPostgresAdminRepository(db *sqlx.DB) AdminRepository {
	return &postgresAdminRepository{db: db}
}

// CreateAdmin создает нового администратора.
func (r *postgresAdminRepository) CreateAdmin(ctx context.Context, admin *models.Admin) (int64, error) {
	query := `INSERT INTO admins (username, password_hash) VALUES ($1, $2) RETURNING id`
	var adminID int64

	err := r.db.QueryRowxContext(ctx, query, admin.Username, admin.PasswordHash).Scan(&adminID)
	if err != nil {
		// Проверяем на ошибку нарушения уникальности (duplicate key)
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			log.Printf("[AdminRepo] Имя администратора '%s' уже занято", admin.Username)
			return 0, ErrUsernameTaken
		}
		log.Printf("[AdminRepo] Непредвиденная ошибка при создании администратора '%s': %v", admin.Username, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на создание администратора: %w", err)
	}

	log.Printf("[AdminRepo] Администратор '%s' успешно создан с ID %d", admin.Username, adminID)
	return adminID, nil
}

// GetAdminByUsername находит администратора по имени.
func (r *postgresAdminRepository) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	query := `SELECT id, username, password_hash, created_at FROM admins WHERE username=$1`
	var admin models.Admin

	err := r.db.GetContext(ctx, &admin, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		log.Printf("[AdminRepo] Ошибка при поиске администратора '%s': %v", username, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение администратора: %w", err)
	}

	return &admin, nil
}

// CountAdmins возвращает количество зарегистрированных администраторов.
// Используется, чтобы разрешить открытую регистрацию только при пустой таблице.
func (r *postgresAdminRepository) CountAdmins(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM admins`); err != nil {
		log.Printf("[AdminRepo] Ошибка подсчета администраторов: %v", err)
		return 0, fmt.Errorf("ошибка выполнения запроса на подсчет администраторов: %w", err)
	}
	return count, nil
}

// Кастомные ошибки репозитория администраторов.
var (
	ErrAdminNotFound = errors.New("администратор не найден")
	ErrUsernameTaken = errors.New("имя пользователя уже занято")
)
