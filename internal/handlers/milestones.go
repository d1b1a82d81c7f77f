package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/repository"
)

// MilestoneHandler обрабатывает админские CRUD-запросы к вехам.
type MilestoneHandler struct {
	repo repository.MilestoneRepository
}

// NewMilestoneHandler создает новый экземпляр MilestoneHandler.
func NewMilestoneHandler(repo repository.MilestoneRepository) *MilestoneHandler {
	return &MilestoneHandler{repo: repo}
}

// List обрабатывает GET запрос списка вех.
func (h *MilestoneHandler) List(w http.ResponseWriter, r *http.Request) {
	milestones, err := h.repo.ListMilestones(r.Context())
	if err != nil {
		log.Printf("[MilestoneHandler] Ошибка получения списка: %v", err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "milestones": milestones})
}

// Get обрабатывает GET запрос одной вехи.
func (h *MilestoneHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Неверный идентификатор")
		return
	}

	milestone, err := h.repo.GetMilestoneByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Веха не найдена")
			return
		}
		log.Printf("[MilestoneHandler] Ошибка получения вехи ID %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "milestone": milestone})
}

// Create обрабатывает POST запрос создания вехи.
func (h *MilestoneHandler) Create(w http.ResponseWriter, r *http.Request) {
	var m models.Milestone
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}
	if m.Year == "" || m.Title == "" {
		respondError(w, http.StatusBadRequest, "Поля year и title обязательны")
		return
	}

	id, err := h.repo.CreateMilestone(r.Context(), &m)
	if err != nil {
		log.Printf("[MilestoneHandler] Ошибка создания вехи: %v", err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	m.ID = id

	respondJSON(w, http.StatusCreated, map[string]any{"success": true, "milestone": m})
}

// Update обрабатывает PUT запрос обновления вехи.
func (h *MilestoneHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Неверный идентификатор")
		return
	}

	var m models.Milestone
	if err = json.NewDecoder(r.Body).Decode(&m); err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}
	if m.Year == "" || m.Title == "" {
		respondError(w, http.StatusBadRequest, "Поля year и title обязательны")
		return
	}
	m.ID = id

	if err = h.repo.UpdateMilestone(r.Context(), &m); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Веха не найдена")
			return
		}
		log.Printf("[MilestoneHandler] Ошибка обновления вехи ID %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "milestone": m})
}

// Delete обрабатывает DELETE запрос удаления вехи.
func (h *MilestoneHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Неверный идентификатор")
		return
	}

	if err = h.repo.DeleteMilestone(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Веха не найдена")
			return
		}
		log.Printf("[MilestoneHandler] Ошибка удаления вехи ID %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
