package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/repository"
)

// BlogHandler обрабатывает админские CRUD-запросы к записям блога.
type BlogHandler struct {
	repo repository.BlogRepository
}

// NewBlogHandler создает новый экземпляр BlogHandler.
func NewBlogHandler(repo repository.BlogRepository) *BlogHandler {
	return &BlogHandler{repo: repo}
}

// List обрабатывает GET запрос всех записей блога (включая черновики).
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.repo.ListPosts(r.Context())
	if err != nil {
		log.Printf("[BlogHandler] Ошибка получения списка: %v", err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "posts": posts})
}

// Get обрабатывает GET запрос одной записи блога.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Неверный идентификатор")
		return
	}

	post, err := h.repo.GetPostByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Запись не найдена")
			return
		}
		log.Printf("[BlogHandler] Ошибка получения записи ID %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "post": post})
}

// Create обрабатывает POST запрос создания записи блога.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p models.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}
	if p.Title == "" || p.Slug == "" {
		respondError(w, http.StatusBadRequest, "Поля title и slug обязательны")
		return
	}
	setPublishedAt(&p)

	id, err := h.repo.CreatePost(r.Context(), &p)
	if err != nil {
		if errors.Is(err, repository.ErrSlugTaken) {
			respondError(w, http.StatusConflict, "Slug уже используется")
			return
		}
		log.Printf("[BlogHandler] Ошибка создания записи: %v", err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	p.ID = id

	respondJSON(w, http.StatusCreated, map[string]any{"success": true, "post": p})
}

// Update обрабатывает PUT запрос обновления записи блога.
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Неверный идентификатор")
		return
	}

	var p models.BlogPost
	if err = json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}
	if p.Title == "" || p.Slug == "" {
		respondError(w, http.StatusBadRequest, "Поля title и slug обязательны")
		return
	}
	p.ID = id
	setPublishedAt(&p)

	if err = h.repo.UpdatePost(r.Context(), &p); err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			respondError(w, http.StatusNotFound, "Запись не найдена")
		case errors.Is(err, repository.ErrSlugTaken):
			respondError(w, http.StatusConflict, "Slug уже используется")
		default:
			log.Printf("[BlogHandler] Ошибка обновления записи ID %d: %v", id, err)
			respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "post": p})
}

// Delete обрабатывает DELETE запрос удаления записи блога.
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Неверный идентификатор")
		return
	}

	if err = h.repo.DeletePost(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Запись не найдена")
			return
		}
		log.Printf("[BlogHandler] Ошибка удаления записи ID %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

// setPublishedAt проставляет время публикации при первом переводе в published.
func setPublishedAt(p *models.BlogPost) {
	if p.IsPublished && p.PublishedAt == nil {
		now := time.Now().UTC()
		p.PublishedAt = &now
	}
}
