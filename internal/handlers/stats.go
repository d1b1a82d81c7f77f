package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/repository"
)

// StatHandler обрабатывает админские CRUD-запросы к показателям.
type StatHandler struct {
	repo repository.StatRepository
}

// NewStatHandler создает новый экземпляр StatHandler.
func NewStatHandler(repo repository.StatRepository) *StatHandler {
	return &StatHandler{repo: repo}
}

// List обрабатывает GET запрос списка показателей.
func (h *StatHandler) List(w http.ResponseWriter, r *http.Request) {
	stats, err := h.repo.ListStats(r.Context())
	if err != nil {
		log.Printf("[StatHandler] Ошибка получения списка: %v", err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "stats": stats})
}

// Get обрабатывает GET запрос одного показателя.
func (h *StatHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Неверный идентификатор")
		return
	}

	stat, err := h.repo.GetStatByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Показатель не найден")
			return
		}
		log.Printf("[StatHandler] Ошибка получения показателя ID %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "stat": stat})
}

// Create обрабатывает POST запрос создания показателя.
func (h *StatHandler) Create(w http.ResponseWriter, r *http.Request) {
	var s models.Stat
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}
	if s.Label == "" || s.Value == "" {
		respondError(w, http.StatusBadRequest, "Поля label и value обязательны")
		return
	}

	id, err := h.repo.CreateStat(r.Context(), &s)
	if err != nil {
		log.Printf("[StatHandler] Ошибка создания показателя: %v", err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	s.ID = id

	respondJSON(w, http.StatusCreated, map[string]any{"success": true, "stat": s})
}

// Update обрабатывает PUT запрос обновления показателя.
func (h *StatHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Неверный идентификатор")
		return
	}

	var s models.Stat
	if err = json.NewDecoder(r.Body).Decode(&s); err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}
	if s.Label == "" || s.Value == "" {
		respondError(w, http.StatusBadRequest, "Поля label и value обязательны")
		return
	}
	s.ID = id

	if err = h.repo.UpdateStat(r.Context(), &s); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Показатель не найден")
			return
		}
		log.Printf("[StatHandler] Ошибка обновления показателя ID %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "stat": s})
}

// Delete обрабатывает DELETE запрос удаления показателя.
func (h *StatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Неверный идентификатор")
		return
	}

	if err = h.repo.DeleteStat(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Показатель не найден")
			return
		}
		log.Printf("[StatHandler] Ошибка удаления показателя ID %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
