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

// TeamRepository определяет методы для работы с участниками команды.
type TeamRepository interface {
	ListTeamMembers(ctx context.Context) ([]models.TeamMember, error)
	GetTeamMemberByID(ctx context.Context, id int64) (*models.TeamMember, error)
	CreateTeamMember(ctx context.Context, m *models.TeamMember) (int64, error)
	UpdateTeamMember(ctx context.Context, m *models.TeamMember) error
	DeleteTeamMember(ctx context.Context, id int64) error
}

type postgresTeamRepository struct {
	db *sqlx.DB
}

// NewPostgresTeamRepository создает новый экземпляр репозитория команды.
func NewPostgresTeamRepository(db *sqlx.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

const teamColumns = `id, name, role, bio, image_url, linkedin_url, ord, created_at, updated_at`

// ListTeamMembers возвращает всех участников команды, отсортированных по полю ord.
func (r *postgresTeamRepository) ListTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	query := `SELECT ` + teamColumns + ` FROM team_members ORDER BY ord ASC, id ASC`

	members := make([]models.TeamMember, 0)
	if err := r.db.SelectContext(ctx, &members, query); err != nil {
		log.Printf("[TeamRepo] Ошибка при получении списка команды: %v", err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение команды: %w", err)
	}
	return members, nil
}

// GetTeamMemberByID находит участника команды по ID.
func (r *postgresTeamRepository) GetTeamMemberByID(ctx context.Context, id int64) (*models.TeamMember, error) {
	var m models.TeamMember
	if err := r.db.GetContext(ctx, &m, `SELECT `+teamColumns+` FROM team_members WHERE id=$1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		log.Printf("[TeamRepo] Ошибка при поиске участника ID %d: %v", id, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение участника: %w", err)
	}
	return &m, nil
}

// CreateTeamMember создает нового участника команды и возвращает его ID.
func (r *postgresTeamRepository) CreateTeamMember(ctx context.Context, m *models.TeamMember) (int64, error) {
	query := `INSERT INTO team_members (name, role, bio, image_url, linkedin_url, ord)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	var id int64

	err := r.db.QueryRowxContext(ctx, query, m.Name, m.Role, m.Bio, m.ImageURL, m.LinkedinURL, m.Order).Scan(&id)
	if err != nil {
		log.Printf("[TeamRepo] Ошибка при создании участника '%s': %v", m.Name, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на создание участника: %w", err)
	}

	log.Printf("[TeamRepo] Участник '%s' создан с ID %d", m.Name, id)
	return id, nil
}

// UpdateTeamMember обновляет участника команды целиком.
func (r *postgresTeamRepository) UpdateTeamMember(ctx context.Context, m *models.TeamMember) error {
	query := `UPDATE team_members SET name=$1, role=$2, bio=$3, image_url=$4, linkedin_url=$5,
	          ord=$6, updated_at=NOW() WHERE id=$7`

	res, err := r.db.ExecContext(ctx, query, m.Name, m.Role, m.Bio, m.ImageURL, m.LinkedinURL, m.Order, m.ID)
	if err != nil {
		log.Printf("[TeamRepo] Ошибка при обновлении участника ID %d: %v", m.ID, err)
		return fmt.Errorf("ошибка выполнения запроса на обновление участника: %w", err)
	}
	return checkAffected(res)
}

// DeleteTeamMember удаляет участника команды по ID.
func (r *postgresTeamRepository) DeleteTeamMember(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM team_members WHERE id=$1`, id)
	if err != nil {
		log.Printf("[TeamRepo] Ошибка при удалении участника ID %d: %v", id, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление участника: %w", err)
	}
	return checkAffected(res)
}
