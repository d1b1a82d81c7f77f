package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/repository"
)

// EventHandler обрабатывает админские CRUD-запросы к мероприятиям.
type EventHandler struct {
	repo repository.EventRepository
}

// NewEventHandler создает новый экземпляр EventHandler.
func NewEventHandler(repo repository.EventRepository) *EventHandler {
	return &EventHandler{repo: repo}
}

// List обрабатывает GET запрос списка мероприятий.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.repo.ListEvents(r.Context())
	if err != nil {
		log.Printf("[EventHandler] Ошибка получения списка: %v", err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "events": events})
}

// Get обрабатывает GET запрос одного мероприятия.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Неверный идентификатор")
		return
	}

	event, err := h.repo.GetEventByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Мероприятие не найдено")
			return
		}
		log.Printf("[EventHandler] Ошибка получения мероприятия ID %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "event": event})
}

// Create обрабатывает POST запрос создания мероприятия.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var e models.Event
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}
	if e.Title == "" || e.Date.IsZero() {
		respondError(w, http.StatusBadRequest, "Поля title и date обязательны")
		return
	}

	id, err := h.repo.CreateEvent(r.Context(), &e)
	if err != nil {
		log.Printf("[EventHandler] Ошибка создания мероприятия: %v", err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	e.ID = id

	respondJSON(w, http.StatusCreated, map[string]any{"success": true, "event": e})
}

// Update обрабатывает PUT запрос обновления мероприятия.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Неверный идентификатор")
		return
	}

	var e models.Event
	if err = json.NewDecoder(r.Body).Decode(&e); err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}
	if e.Title == "" || e.Date.IsZero() {
		respondError(w, http.StatusBadRequest, "Поля title и date обязательны")
		return
	}
	e.ID = id

	if err = h.repo.UpdateEvent(r.Context(), &e); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Мероприятие не найдено")
			return
		}
		log.Printf("[EventHandler] Ошибка обновления мероприятия ID %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "event": e})
}

// Delete обрабатывает DELETE запрос удаления мероприятия.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Неверный идентификатор")
		return
	}

	if err = h.repo.DeleteEvent(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Мероприятие не найдено")
			return
		}
		log.Printf("[EventHandler] Ошибка удаления мероприятия ID %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
