package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// respondJSON пишет JSON-ответ с заданным статусом.
// Все ответы API несут флаг success в теле: по нему cache-bump middleware
// отличает успешную мутацию от неуспешной.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[Handlers] Ошибка кодирования JSON-ответа: %v", err)
	}
}

// errorResponse представляет тело ответа об ошибке.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// respondError пишет стандартный ответ об ошибке.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Success: false, Error: message})
}

// parseID извлекает числовой идентификатор из URL-параметра {id}.
func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
