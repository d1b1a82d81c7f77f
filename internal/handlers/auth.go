package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/services"
)

// AuthHandler обрабатывает HTTP-запросы, связанные с аутентификацией администраторов.
type AuthHandler struct {
	service services.AuthService // Зависимость от интерфейса, а не конкретной реализации
}

// NewAuthHandler создает новый экземпляр AuthHandler.
func NewAuthHandler(s services.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Register обрабатывает запрос на регистрацию администратора.
// Доступен только для первичной настройки (пустая таблица администраторов).
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[AuthHandler] Ошибка декодирования запроса регистрации: %v", err)
		respondError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Имя пользователя и пароль не могут быть пустыми")
		return
	}

	if err := h.service.Register(r.Context(), req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrRegistrationClosed):
			respondError(w, http.StatusForbidden, "Регистрация закрыта")
		case errors.Is(err, services.ErrUsernameTaken):
			respondError(w, http.StatusConflict, "Имя пользователя уже занято")
		default:
			log.Printf("[AuthHandler] Ошибка регистрации '%s': %v", req.Username, err)
			respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"success": true})
}

// Login обрабатывает запрос на вход администратора.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[AuthHandler] Ошибка декодирования запроса входа: %v", err)
		respondError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Имя пользователя и пароль не могут быть пустыми")
		return
	}

	token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "Неверное имя пользователя или пароль")
			return
		}
		log.Printf("[AuthHandler] Ошибка входа '%s': %v", req.Username, err)
		respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, models.LoginResponse{Success: true, Token: token})
}
