package middleware

import (
	"log"
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimit ограничивает частоту запросов к публичным эндпоинтам общим
// token bucket. Публичная выдача дешевая (горячий кеш), но лимитер защищает
// путь промаха с конкурентными чтениями БД.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Printf("[RateLimit] Запрос %s %s отклонен: превышен лимит", r.Method, r.URL.Path)
				w.Header().Set("Retry-After", "1")
				http.Error(w, "Слишком много запросов", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
