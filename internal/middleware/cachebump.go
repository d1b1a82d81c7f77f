package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/services"
)

// CacheBump оборачивает мутирующий обработчик именованной коллекции.
// После того как обработчик сформировал ответ, middleware проверяет признак
// успеха (HTTP-статус и флаг success в теле) и только при успехе:
//  1. перезаписывает запись о версии (best-effort: отказ логируется и глотается);
//  2. очищает горячий кеш;
//  3. отдает исходный ответ без изменений.
//
// Неуспешные мутации версию не трогают и кеш не очищают.
// Оборачивается каждый мутирующий админский маршрут каждой коллекции.
func CacheBump(versions services.VersionService, collection string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newResponseRecorder(w)
			next.ServeHTTP(rec, r)

			if rec.success() {
				description := fmt.Sprintf("%s collection modified via %s %s", collection, r.Method, r.URL.Path)
				actor := GetActorFromContext(r.Context())
				versions.BumpBestEffort(r.Context(), collection, description, actor)
			}

			rec.flush()
		})
	}
}

// responseRecorder буферизует ответ обработчика, чтобы middleware мог
// заглянуть в тело до отправки клиенту.
type responseRecorder struct {
	w      http.ResponseWriter
	body   bytes.Buffer
	status int
}

func newResponseRecorder(w http.ResponseWriter) *responseRecorder {
	return &responseRecorder{w: w, status: http.StatusOK}
}

func (r *responseRecorder) Header() http.Header {
	return r.w.Header()
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	return r.body.Write(b)
}

// success определяет, сигнализирует ли буферизованный ответ об успешной мутации:
// статус ниже 400 и флаг success в JSON-теле.
func (r *responseRecorder) success() bool {
	if r.status >= http.StatusBadRequest {
		return false
	}
	var envelope struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(r.body.Bytes(), &envelope); err != nil {
		return false
	}
	return envelope.Success
}

// flush отправляет буферизованный ответ настоящему клиенту.
func (r *responseRecorder) flush() {
	r.w.WriteHeader(r.status)
	_, _ = r.w.Write(r.body.Bytes())
}
