package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/middleware"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
)

// fakeVersionService записывает вызовы BumpBestEffort.
type fakeVersionService struct {
	bumpCalls   int
	changeTypes []string
	actors      []string
}

func (f *fakeVersionService) GetVersion(context.Context) (*models.VersionRecord, error) {
	return &models.VersionRecord{VersionID: "v1-aaaa"}, nil
}

func (f *fakeVersionService) Bump(
	_ context.Context,
	changeType, _, actor string,
) (*models.VersionRecord, error) {
	f.bumpCalls++
	f.changeTypes = append(f.changeTypes, changeType)
	f.actors = append(f.actors, actor)
	return &models.VersionRecord{VersionID: "v2-bbbb"}, nil
}

func (f *fakeVersionService) BumpBestEffort(_ context.Context, changeType, _, actor string) {
	f.bumpCalls++
	f.changeTypes = append(f.changeTypes, changeType)
	f.actors = append(f.actors, actor)
}

func TestCacheBump(t *testing.T) {
	tests := []struct {
		name         string
		handler      http.HandlerFunc
		expectedBump bool
	}{
		{
			name: "Успешная мутация вызывает bump",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"success":true,"data":{"id":1}}`))
			},
			expectedBump: true,
		},
		{
			name: "Ошибка валидации не вызывает bump",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"success":false,"error":"title обязателен"}`))
			},
			expectedBump: false,
		},
		{
			name: "Статус успешный, но success=false — bump не вызывается",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"success":false,"error":"отказ"}`))
			},
			expectedBump: false,
		},
		{
			name: "Не-JSON тело не считается успехом",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("plain text"))
			},
			expectedBump: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			versions := &fakeVersionService{}
			wrapped := middleware.CacheBump(versions, "events")(tt.handler)

			req := httptest.NewRequest(http.MethodPost, "/api/admin/events", strings.NewReader("{}"))
			rec := httptest.NewRecorder()
			wrapped.ServeHTTP(rec, req)

			if tt.expectedBump {
				require.Equal(t, 1, versions.bumpCalls, "bump должен быть вызван ровно один раз")
				assert.Equal(t, []string{"events"}, versions.changeTypes)
			} else {
				assert.Zero(t, versions.bumpCalls, "bump не должен вызываться")
			}
		})
	}
}

func TestCacheBump_ResponsePassedThrough(t *testing.T) {
	versions := &fakeVersionService{}
	handler := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":7}}`))
	}
	wrapped := middleware.CacheBump(versions, "stats")(http.HandlerFunc(handler))

	req := httptest.NewRequest(http.MethodPost, "/api/admin/stats", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	// Ответ обработчика доходит до клиента без изменений.
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"id":7}}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestCacheBump_ActorFromContext(t *testing.T) {
	versions := &fakeVersionService{}
	handler := func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	}
	wrapped := middleware.CacheBump(versions, "faqs")(http.HandlerFunc(handler))

	req := httptest.NewRequest(http.MethodPut, "/api/admin/faqs/1", strings.NewReader("{}"))
	ctx := context.WithValue(req.Context(), middleware.ActorKey, "admin")
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req.WithContext(ctx))

	require.Equal(t, 1, versions.bumpCalls)
	assert.Equal(t, []string{"admin"}, versions.actors)
}

func TestCacheBump_NoActorDefaultsToSystem(t *testing.T) {
	versions := &fakeVersionService{}
	handler := func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	}
	wrapped := middleware.CacheBump(versions, "team")(http.HandlerFunc(handler))

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/team/1", nil)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	require.Equal(t, 1, versions.bumpCalls)
	assert.Equal(t, []string{"system"}, versions.actors)
}
