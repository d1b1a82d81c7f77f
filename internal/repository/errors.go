package repository

import (
	"database/sql"
	"errors"
	"fmt"
)

// Общие ошибки контентных репозиториев.
var (
	ErrRecordNotFound = errors.New("запись не найдена")
)

// checkAffected переводит "ни одна строка не затронута" в ErrRecordNotFound.
// UPDATE/DELETE по несуществующему ID в PostgreSQL не являются ошибкой сами по себе.
func checkAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения количества затронутых строк: %w", err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
