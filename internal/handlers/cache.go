package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	appmiddleware "github.com/K-Daksh/NewWebsiteCracked-sub000/internal/middleware"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/services"
)

// CacheHandler обрабатывает админские запросы к версии кеша.
type CacheHandler struct {
	versions services.VersionService
}

// NewCacheHandler создает новый экземпляр CacheHandler.
func NewCacheHandler(versions services.VersionService) *CacheHandler {
	return &CacheHandler{versions: versions}
}

// Bump обрабатывает POST запрос ручной инвалидации кеша.
// В отличие от мутаций контента здесь bump — основная операция,
// поэтому его ошибка возвращается вызывающему.
func (h *CacheHandler) Bump(w http.ResponseWriter, r *http.Request) {
	var req models.BumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}
	if req.ChangeType == "" {
		req.ChangeType = "manual"
	}
	if req.Description == "" {
		req.Description = "Manual cache invalidation"
	}

	actor := appmiddleware.GetActorFromContext(r.Context())
	record, err := h.versions.Bump(r.Context(), req.ChangeType, req.Description, actor)
	if err != nil {
		log.Printf("[CacheHandler] Ошибка ручной инвалидации: %v", err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "version": record})
}

// GetVersion обрабатывает GET запрос текущей записи о версии (админский вид).
func (h *CacheHandler) GetVersion(w http.ResponseWriter, r *http.Request) {
	record, err := h.versions.GetVersion(r.Context())
	if err != nil {
		log.Printf("[CacheHandler] Ошибка получения версии: %v", err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "version": record})
}
