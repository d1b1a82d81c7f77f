// Package migrations применяет встроенные SQL-миграции схемы при старте сервера.
package migrations

import (
	"embed"
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
)

//go:embed files/*.sql
var migrationFiles embed.FS

// Up приводит схему БД к последней версии.
// Вызывается при старте сервера до создания репозиториев.
func Up(db *sqlx.DB) error {
	sourceDriver, err := iofs.New(migrationFiles, "files")
	if err != nil {
		return fmt.Errorf("ошибка чтения встроенных миграций: %w", err)
	}

	// Не закрываем databaseDriver: это закрыло бы соединение с БД,
	// которым владеет вызывающая сторона.
	databaseDriver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("ошибка создания драйвера миграций: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", databaseDriver)
	if err != nil {
		return fmt.Errorf("ошибка создания инстанса migrate: %w", err)
	}

	if err = m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("[Migrations] Схема БД актуальна, миграции не требуются")
			return nil
		}
		return fmt.Errorf("ошибка применения миграций: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("ошибка получения версии схемы: %w", err)
	}
	if dirty {
		return fmt.Errorf("схема БД в грязном состоянии на версии %d", version)
	}

	log.Printf("[Migrations] Схема БД обновлена до версии %d", version)
	return nil
}
