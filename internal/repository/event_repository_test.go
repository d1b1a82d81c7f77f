package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/repository"
)

func setupEventRepoMock(t *testing.T) (repository.EventRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := repository.NewPostgresEventRepository(sqlxDB)
	return repo, mock
}

func eventColumns() []string {
	return []string{
		"id", "title", "description", "date", "location", "image_url",
		"registration_link", "is_published", "ord", "created_at", "updated_at",
	}
}

func eventRow(rows *sqlmock.Rows, id int64, title string, date time.Time) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, title, "desc", date, "Bhopal", "", "", true, 1, now, now)
}

func TestEventRepository_ListEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("Список отсортирован свежими вперед", func(t *testing.T) {
		repo, mock := setupEventRepoMock(t)
		rows := sqlmock.NewRows(eventColumns())
		eventRow(rows, 2, "Demo Day", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
		eventRow(rows, 1, "Hack Night", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
		mock.ExpectQuery("SELECT (.+) FROM events ORDER BY date DESC").WillReturnRows(rows)

		events, err := repo.ListEvents(ctx)

		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "Demo Day", events[0].Title)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пустая таблица дает пустой срез, а не nil", func(t *testing.T) {
		repo, mock := setupEventRepoMock(t)
		mock.ExpectQuery("SELECT (.+) FROM events").WillReturnRows(sqlmock.NewRows(eventColumns()))

		events, err := repo.ListEvents(ctx)

		require.NoError(t, err)
		// Пустая коллекция сериализуется в [] вместо null.
		assert.NotNil(t, events)
		assert.Empty(t, events)
	})
}

func TestEventRepository_GetEventByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Мероприятие не найдено", func(t *testing.T) {
		repo, mock := setupEventRepoMock(t)
		mock.ExpectQuery("SELECT (.+) FROM events WHERE id").WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(eventColumns()))

		event, err := repo.GetEventByID(ctx, 99)

		require.ErrorIs(t, err, repository.ErrRecordNotFound)
		assert.Nil(t, event)
	})
}

func TestEventRepository_CreateEvent(t *testing.T) {
	ctx := context.Background()
	repo, mock := setupEventRepoMock(t)

	event := &models.Event{
		Title:       "Hack Night",
		Description: "An evening of building",
		Date:        time.Date(2025, 10, 1, 18, 0, 0, 0, time.UTC),
		Location:    "Bhopal",
		IsPublished: true,
		Order:       1,
	}
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO events")).
		WithArgs(event.Title, event.Description, event.Date, event.Location,
			event.ImageURL, event.RegistrationLink, event.IsPublished, event.Order).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := repo.CreateEvent(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_UpdateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Обновление несуществующего ID", func(t *testing.T) {
		repo, mock := setupEventRepoMock(t)
		mock.ExpectExec("UPDATE events SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateEvent(ctx, &models.Event{ID: 99, Title: "Ghost"})

		require.ErrorIs(t, err, repository.ErrRecordNotFound)
	})
}

func TestEventRepository_DeleteEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешное удаление", func(t *testing.T) {
		repo, mock := setupEventRepoMock(t)
		mock.ExpectExec("DELETE FROM events WHERE id").WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteEvent(ctx, 1))
	})

	t.Run("Удаление несуществующего ID", func(t *testing.T) {
		repo, mock := setupEventRepoMock(t)
		mock.ExpectExec("DELETE FROM events WHERE id").WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.ErrorIs(t, repo.DeleteEvent(ctx, 99), repository.ErrRecordNotFound)
	})
}
