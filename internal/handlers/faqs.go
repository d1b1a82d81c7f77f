package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/repository"
)

// FAQHandler обрабатывает админские CRUD-запросы к вопросам-ответам.
type FAQHandler struct {
	repo repository.FAQRepository
}

// NewFAQHandler создает новый экземпляр FAQHandler.
func NewFAQHandler(repo repository.FAQRepository) *FAQHandler {
	return &FAQHandler{repo: repo}
}

// List обрабатывает GET запрос списка вопросов (включая скрытые).
func (h *FAQHandler) List(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.repo.ListFAQs(r.Context())
	if err != nil {
		log.Printf("[FAQHandler] Ошибка получения списка: %v", err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "faqs": faqs})
}

// Get обрабатывает GET запрос одного вопроса.
func (h *FAQHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Неверный идентификатор")
		return
	}

	faq, err := h.repo.GetFAQByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Вопрос не найден")
			return
		}
		log.Printf("[FAQHandler] Ошибка получения вопроса ID %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "faq": faq})
}

// Create обрабатывает POST запрос создания вопроса.
func (h *FAQHandler) Create(w http.ResponseWriter, r *http.Request) {
	var f models.FAQ
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}
	if f.Question == "" || f.Answer == "" {
		respondError(w, http.StatusBadRequest, "Поля question и answer обязательны")
		return
	}

	id, err := h.repo.CreateFAQ(r.Context(), &f)
	if err != nil {
		log.Printf("[FAQHandler] Ошибка создания вопроса: %v", err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	f.ID = id

	respondJSON(w, http.StatusCreated, map[string]any{"success": true, "faq": f})
}

// Update обрабатывает PUT запрос обновления вопроса.
func (h *FAQHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Неверный идентификатор")
		return
	}

	var f models.FAQ
	if err = json.NewDecoder(r.Body).Decode(&f); err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}
	if f.Question == "" || f.Answer == "" {
		respondError(w, http.StatusBadRequest, "Поля question и answer обязательны")
		return
	}
	f.ID = id

	if err = h.repo.UpdateFAQ(r.Context(), &f); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Вопрос не найден")
			return
		}
		log.Printf("[FAQHandler] Ошибка обновления вопроса ID %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "faq": f})
}

// Delete обрабатывает DELETE запрос удаления вопроса.
func (h *FAQHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Неверный идентификатор")
		return
	}

	if err = h.repo.DeleteFAQ(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Вопрос не найден")
			return
		}
		log.Printf("[FAQHandler] Ошибка удаления вопроса ID %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
