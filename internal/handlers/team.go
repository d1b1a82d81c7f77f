package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/repository"
)

// TeamHandler обрабатывает админские CRUD-запросы к участникам команды.
type TeamHandler struct {
	repo repository.TeamRepository
}

// NewTeamHandler создает новый экземпляр TeamHandler.
func NewTeamHandler(repo repository.TeamRepository) *TeamHandler {
	return &TeamHandler{repo: repo}
}

// List обрабатывает GET запрос списка команды.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.repo.ListTeamMembers(r.Context())
	if err != nil {
		log.Printf("[TeamHandler] Ошибка получения списка: %v", err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "team": members})
}

// Get обрабатывает GET запрос одного участника команды.
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Неверный идентификатор")
		return
	}

	member, err := h.repo.GetTeamMemberByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Участник не найден")
			return
		}
		log.Printf("[TeamHandler] Ошибка получения участника ID %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "member": member})
}

// Create обрабатывает POST запрос добавления участника команды.
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var m models.TeamMember
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}
	if m.Name == "" || m.Role == "" {
		respondError(w, http.StatusBadRequest, "Поля name и role обязательны")
		return
	}

	id, err := h.repo.CreateTeamMember(r.Context(), &m)
	if err != nil {
		log.Printf("[TeamHandler] Ошибка создания участника: %v", err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	m.ID = id

	respondJSON(w, http.StatusCreated, map[string]any{"success": true, "member": m})
}

// Update обрабатывает PUT запрос обновления участника команды.
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Неверный идентификатор")
		return
	}

	var m models.TeamMember
	if err = json.NewDecoder(r.Body).Decode(&m); err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}
	if m.Name == "" || m.Role == "" {
		respondError(w, http.StatusBadRequest, "Поля name и role обязательны")
		return
	}
	m.ID = id

	if err = h.repo.UpdateTeamMember(r.Context(), &m); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Участник не найден")
			return
		}
		log.Printf("[TeamHandler] Ошибка обновления участника ID %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "member": m})
}

// Delete обрабатывает DELETE запрос удаления участника команды.
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Неверный идентификатор")
		return
	}

	if err = h.repo.DeleteTeamMember(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Участник не найден")
			return
		}
		log.Printf("[TeamHandler] Ошибка удаления участника ID %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
