package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/repository"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/services"
)

// Директивы HTTP-кеширования публичной выдачи: короткое кеширование в браузере,
// подольше на CDN, плюс окно stale-while-revalidate. Конкретные секунды —
// параметр настройки, а не контракт.
const publicCacheControl = "public, max-age=60, s-maxage=300, stale-while-revalidate=600"

// PublicHandler обрабатывает публичные (неаутентифицированные) запросы.
type PublicHandler struct {
	public   services.PublicService
	versions services.VersionService
	blogRepo repository.BlogRepository
}

// NewPublicHandler создает новый экземпляр PublicHandler.
func NewPublicHandler(
	public services.PublicService,
	versions services.VersionService,
	blogRepo repository.BlogRepository,
) *PublicHandler {
	return &PublicHandler{public: public, versions: versions, blogRepo: blogRepo}
}

// GetAll обрабатывает GET запрос агрегированной публичной выдачи.
func (h *PublicHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", publicCacheControl)

	resp, err := h.public.GetAggregate(r.Context())
	if err != nil {
		log.Printf("[PublicHandler] Ошибка получения выдачи: %v", err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetVersion обрабатывает легковесный GET запрос проверки версии.
// Клиенты дергают его, чтобы понять, можно ли доверять локальному кешу,
// не скачивая всю выдачу.
func (h *PublicHandler) GetVersion(w http.ResponseWriter, r *http.Request) {
	record, err := h.versions.GetVersion(r.Context())
	if err != nil {
		log.Printf("[PublicHandler] Ошибка получения версии: %v", err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, models.VersionResponse{
		Success:     true,
		VersionID:   record.VersionID,
		LastUpdated: record.LastUpdated,
		ChangeType:  record.ChangeType,
	})
}

// ListBlog обрабатывает GET запрос опубликованных записей блога.
func (h *PublicHandler) ListBlog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", publicCacheControl)

	posts, err := h.blogRepo.ListPublishedPosts(r.Context())
	if err != nil {
		log.Printf("[PublicHandler] Ошибка получения записей блога: %v", err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "posts": posts})
}

// GetBlogBySlug обрабатывает GET запрос одной опубликованной записи блога.
func (h *PublicHandler) GetBlogBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.blogRepo.GetPublishedPostBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Запись не найдена")
			return
		}
		log.Printf("[PublicHandler] Ошибка получения записи '%s': %v", slug, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	w.Header().Set("Cache-Control", publicCacheControl)
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "post": post})
}
