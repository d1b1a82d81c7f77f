package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/storage"
)

// Потолок размера загружаемого медиафайла.
const maxUploadBytes = 10 << 20 // 10 МБ

// UploadHandler обрабатывает загрузку медиафайлов в объектное хранилище.
// Загрузка намеренно не оборачивается в cache-bump: объект становится
// публичным контентом только когда на него сошлется запись коллекции.
type UploadHandler struct {
	files storage.FileStorage
}

// NewUploadHandler создает новый экземпляр UploadHandler.
func NewUploadHandler(files storage.FileStorage) *UploadHandler {
	return &UploadHandler{files: files}
}

// Upload обрабатывает POST запрос multipart-загрузки медиафайла.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат multipart-запроса")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Поле file обязательно")
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Printf("[UploadHandler] Ошибка закрытия файла: %v", closeErr)
		}
	}()

	if header.Size > maxUploadBytes {
		respondError(w, http.StatusRequestEntityTooLarge, "Файл слишком большой")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// Ключ объекта: случайный UUID с исходным расширением,
	// чтобы загрузки не перетирали друг друга.
	objectKey := fmt.Sprintf("media/%s%s", uuid.NewString(), filepath.Ext(header.Filename))

	if err = h.files.UploadFile(r.Context(), objectKey, file, header.Size, contentType); err != nil {
		log.Printf("[UploadHandler] Ошибка загрузки '%s': %v", objectKey, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера при загрузке файла")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"success":   true,
		"url":       h.files.PublicURL(objectKey),
		"objectKey": objectKey,
	})
}

// Delete обрабатывает DELETE запрос удаления медиафайла.
func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	objectKey := chi.URLParam(r, "*")
	if objectKey == "" {
		respondError(w, http.StatusBadRequest, "Не указан ключ объекта")
		return
	}

	if err := h.files.DeleteFile(r.Context(), objectKey); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			respondError(w, http.StatusNotFound, "Объект не найден")
			return
		}
		log.Printf("[UploadHandler] Ошибка удаления '%s': %v", objectKey, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера при удалении файла")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
