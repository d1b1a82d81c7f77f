package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/repository"
)

// TestimonialHandler обрабатывает админские CRUD-запросы к отзывам.
type TestimonialHandler struct {
	repo repository.TestimonialRepository
}

// NewTestimonialHandler создает новый экземпляр TestimonialHandler.
func NewTestimonialHandler(repo repository.TestimonialRepository) *TestimonialHandler {
	return &TestimonialHandler{repo: repo}
}

// List обрабатывает GET запрос списка отзывов (включая скрытые).
func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.repo.ListTestimonials(r.Context())
	if err != nil {
		log.Printf("[TestimonialHandler] Ошибка получения списка: %v", err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "testimonials": testimonials})
}

// Get обрабатывает GET запрос одного отзыва.
func (h *TestimonialHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Неверный идентификатор")
		return
	}

	testimonial, err := h.repo.GetTestimonialByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Отзыв не найден")
			return
		}
		log.Printf("[TestimonialHandler] Ошибка получения отзыва ID %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "testimonial": testimonial})
}

// Create обрабатывает POST запрос создания отзыва.
func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var t models.Testimonial
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}
	if t.Name == "" || t.Quote == "" {
		respondError(w, http.StatusBadRequest, "Поля name и quote обязательны")
		return
	}

	id, err := h.repo.CreateTestimonial(r.Context(), &t)
	if err != nil {
		log.Printf("[TestimonialHandler] Ошибка создания отзыва: %v", err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	t.ID = id

	respondJSON(w, http.StatusCreated, map[string]any{"success": true, "testimonial": t})
}

// Update обрабатывает PUT запрос обновления отзыва.
func (h *TestimonialHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Неверный идентификатор")
		return
	}

	var t models.Testimonial
	if err = json.NewDecoder(r.Body).Decode(&t); err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}
	if t.Name == "" || t.Quote == "" {
		respondError(w, http.StatusBadRequest, "Поля name и quote обязательны")
		return
	}
	t.ID = id

	if err = h.repo.UpdateTestimonial(r.Context(), &t); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Отзыв не найден")
			return
		}
		log.Printf("[TestimonialHandler] Ошибка обновления отзыва ID %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "testimonial": t})
}

// Delete обрабатывает DELETE запрос удаления отзыва.
func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Неверный идентификатор")
		return
	}

	if err = h.repo.DeleteTestimonial(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Отзыв не найден")
			return
		}
		log.Printf("[TestimonialHandler] Ошибка удаления отзыва ID %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
