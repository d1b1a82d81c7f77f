package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/repository"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/services"
)

// SettingsHandler обрабатывает админские запросы к настройкам сайта.
type SettingsHandler struct {
	repo   repository.SettingsRepository
	public services.PublicService
}

// NewSettingsHandler создает новый экземпляр SettingsHandler.
func NewSettingsHandler(repo repository.SettingsRepository, public services.PublicService) *SettingsHandler {
	return &SettingsHandler{repo: repo, public: public}
}

// Get обрабатывает GET запрос настроек сайта.
// Чтение идет через тот же сервис, что и агрегированная выдача: оба пути
// обязаны отдавать побайтно одинаковые значения по умолчанию.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.public.GetSettings(r.Context())
	if err != nil {
		log.Printf("[SettingsHandler] Ошибка получения настроек: %v", err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "settings": settings})
}

// Update обрабатывает PUT запрос перезаписи настроек сайта (upsert).
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var s models.Settings
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	if err := h.repo.UpsertSettings(r.Context(), &s); err != nil {
		log.Printf("[SettingsHandler] Ошибка сохранения настроек: %v", err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "settings": s})
}
