package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/repository"
)

func setupAdminRepoMock(t *testing.T) (repository.AdminRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := repository.NewPostgresAdminRepository(sqlxDB)
	return repo, mock
}

func TestAdminRepository_CreateAdmin(t *testing.T) {
	ctx := context.Background()
	insertQuery := regexp.QuoteMeta(`INSERT INTO admins (username, password_hash) VALUES ($1, $2) RETURNING id`)

	tests := []struct {
		name        string
		admin       *models.Admin
		mockSetup   func(mock sqlmock.Sqlmock, admin *models.Admin)
		expectedID  int64
		expectedErr error
	}{
		{
			name:  "Успешное создание",
			admin: &models.Admin{Username: "admin", PasswordHash: "hash123"},
			mockSetup: func(mock sqlmock.Sqlmock, admin *models.Admin) {
				rows := sqlmock.NewRows([]string{"id"}).AddRow(int64(1))
				mock.ExpectQuery(insertQuery).WithArgs(admin.Username, admin.PasswordHash).WillReturnRows(rows)
			},
			expectedID: 1,
		},
		{
			name:  "Имя пользователя занято",
			admin: &models.Admin{Username: "admin", PasswordHash: "hash456"},
			mockSetup: func(mock sqlmock.Sqlmock, admin *models.Admin) {
				pqErr := &pq.Error{Code: "23505"} // unique_violation
				mock.ExpectQuery(insertQuery).WithArgs(admin.Username, admin.PasswordHash).WillReturnError(pqErr)
			},
			expectedErr: repository.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupAdminRepoMock(t)
			tt.mockSetup(mock, tt.admin)

			id, err := repo.CreateAdmin(ctx, tt.admin)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedID, id)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAdminRepository_GetAdminByUsername(t *testing.T) {
	ctx := context.Background()
	selectQuery := regexp.QuoteMeta(`SELECT id, username, password_hash, created_at FROM admins WHERE username=$1`)

	t.Run("Администратор найден", func(t *testing.T) {
		repo, mock := setupAdminRepoMock(t)
		rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow(int64(1), "admin", "hash123", time.Now())
		mock.ExpectQuery(selectQuery).WithArgs("admin").WillReturnRows(rows)

		admin, err := repo.GetAdminByUsername(ctx, "admin")

		require.NoError(t, err)
		assert.Equal(t, int64(1), admin.ID)
		assert.Equal(t, "admin", admin.Username)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Администратор не найден", func(t *testing.T) {
		repo, mock := setupAdminRepoMock(t)
		mock.ExpectQuery(selectQuery).WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}))

		admin, err := repo.GetAdminByUsername(ctx, "ghost")

		require.ErrorIs(t, err, repository.ErrAdminNotFound)
		assert.Nil(t, admin)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAdminRepository_CountAdmins(t *testing.T) {
	ctx := context.Background()
	countQuery := regexp.QuoteMeta(`SELECT COUNT(*) FROM admins`)

	t.Run("Пустая таблица", func(t *testing.T) {
		repo, mock := setupAdminRepoMock(t)
		mock.ExpectQuery(countQuery).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		count, err := repo.CountAdmins(ctx)

		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("Администраторы существуют", func(t *testing.T) {
		repo, mock := setupAdminRepoMock(t)
		mock.ExpectQuery(countQuery).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		count, err := repo.CountAdmins(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}
