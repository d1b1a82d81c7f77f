package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
)

// VersionRepository определяет методы для работы с единственной записью о версии кеша.
type VersionRepository interface {
	// GetVersion читает запись о версии. Если записи нет, создает начальную
	// (changeType = "initialize") и возвращает ее.
	GetVersion(ctx context.Context) (*models.VersionRecord, error)
	// BumpVersion безусловно перезаписывает запись новым токеном и метаданными.
	// Никакой проверки оптимистичной конкуренции нет: побеждает последний bump.
	BumpVersion(ctx context.Context, changeType, description, actor string) (*models.VersionRecord, error)
}

// postgresVersionRepository реализует VersionRepository для PostgreSQL.
type postgresVersionRepository struct {
	db *sqlx.DB
}

// NewPostgresVersionRepository создает новый экземпляр репозитория версии кеша.
func NewPostgresVersionRepository(db *sqlx.DB) VersionRepository {
	return &postgresVersionRepository{db: db}
}

// NewVersionID генерирует новый токен версии: unix-миллисекунды плюс случайный
// суффикс. Токен сравнивается только на равенство и никогда не сортируется,
// случайная часть исключает коллизию двух bump в один тик часов.
func NewVersionID() string {
	return fmt.Sprintf("v%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// GetVersion читает запись о версии, при отсутствии инициализирует ее.
func (r *postgresVersionRepository) GetVersion(ctx context.Context) (*models.VersionRecord, error) {
	query := `SELECT key, version_id, last_updated, updated_by, change_type, description
	          FROM cache_version WHERE key=$1`
	var record models.VersionRecord

	err := r.db.GetContext(ctx, &record, query, models.VersionKey)
	if err == nil {
		return &record, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Printf("[VersionRepo] Ошибка при чтении записи о версии: %v", err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение версии: %w", err)
	}

	// Записи еще нет: создаем начальную. ON CONFLICT DO NOTHING делает
	// инициализацию идемпотентной при гонке первых чтений — побеждает тот,
	// кто вставил первым, остальные перечитывают его запись.
	log.Printf("[VersionRepo] Запись о версии отсутствует, инициализация...")
	initial := models.VersionRecord{
		Key:         models.VersionKey,
		VersionID:   NewVersionID(),
		LastUpdated: time.Now().UTC(),
		UpdatedBy:   "system",
		ChangeType:  "initialize",
		Description: "Initial cache version",
	}
	insert := `INSERT INTO cache_version (key, version_id, last_updated, updated_by, change_type, description)
	           VALUES ($1, $2, $3, $4, $5, $6)
	           ON CONFLICT (key) DO NOTHING`
	if _, err = r.db.ExecContext(ctx, insert,
		initial.Key, initial.VersionID, initial.LastUpdated,
		initial.UpdatedBy, initial.ChangeType, initial.Description,
	); err != nil {
		log.Printf("[VersionRepo] Ошибка инициализации записи о версии: %v", err)
		return nil, fmt.Errorf("ошибка инициализации записи о версии: %w", err)
	}

	// Перечитываем: вернется либо наша запись, либо запись победителя гонки.
	if err = r.db.GetContext(ctx, &record, query, models.VersionKey); err != nil {
		log.Printf("[VersionRepo] Ошибка чтения записи о версии после инициализации: %v", err)
		return nil, fmt.Errorf("ошибка чтения версии после инициализации: %w", err)
	}

	log.Printf("[VersionRepo] Запись о версии инициализирована: %s", record.VersionID)
	return &record, nil
}

// BumpVersion перезаписывает запись о версии целиком.
func (r *postgresVersionRepository) BumpVersion(
	ctx context.Context,
	changeType, description, actor string,
) (*models.VersionRecord, error) {
	if actor == "" {
		actor = "system"
	}
	record := models.VersionRecord{
		Key:         models.VersionKey,
		VersionID:   NewVersionID(),
		LastUpdated: time.Now().UTC(),
		UpdatedBy:   actor,
		ChangeType:  changeType,
		Description: description,
	}

	query := `INSERT INTO cache_version (key, version_id, last_updated, updated_by, change_type, description)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (key) DO UPDATE SET
	            version_id=EXCLUDED.version_id,
	            last_updated=EXCLUDED.last_updated,
	            updated_by=EXCLUDED.updated_by,
	            change_type=EXCLUDED.change_type,
	            description=EXCLUDED.description`

	if _, err := r.db.ExecContext(ctx, query,
		record.Key, record.VersionID, record.LastUpdated,
		record.UpdatedBy, record.ChangeType, record.Description,
	); err != nil {
		log.Printf("[VersionRepo] Ошибка перезаписи версии (%s): %v", changeType, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на смену версии: %w", err)
	}

	log.Printf("[VersionRepo] Версия обновлена: %s (%s, актор: %s)", record.VersionID, changeType, actor)
	return &record, nil
}
