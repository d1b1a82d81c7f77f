package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/repository"
)

// AuthService определяет интерфейс для сервиса аутентификации администраторов.
type AuthService interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error) // Возвращает JWT токен или ошибку
}

// Время жизни токена администратора.
const tokenTTL = 24 * time.Hour

// Claims представляет полезную нагрузку JWT администратора.
// Username используется как идентификатор актора в VersionRecord.updatedBy.
type Claims struct {
	AdminID  int64  `json:"admin_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Убедимся, что authService удовлетворяет интерфейсу AuthService.
var _ AuthService = (*authService)(nil)

type authService struct {
	adminRepo repository.AdminRepository
	jwtSecret []byte
}

// NewAuthService создает новый экземпляр сервиса аутентификации.
func NewAuthService(adminRepo repository.AdminRepository, jwtSecret []byte) AuthService {
	return &authService{adminRepo: adminRepo, jwtSecret: jwtSecret}
}

// Register регистрирует нового администратора.
// Открытая регистрация разрешена только пока таблица администраторов пуста
// (первичная настройка); дальше — ErrRegistrationClosed.
func (s *authService) Register(ctx context.Context, username, password string) error {
	count, err := s.adminRepo.CountAdmins(ctx)
	if err != nil {
		log.Printf("[AuthService] Ошибка подсчета администраторов: %v", err)
		return errors.New("внутренняя ошибка сервера при регистрации")
	}
	if count > 0 {
		log.Printf("[AuthService] Отклонена попытка регистрации '%s': регистрация закрыта", username)
		return ErrRegistrationClosed
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[AuthService] Ошибка хеширования пароля для '%s': %v", username, err)
		return errors.New("внутренняя ошибка сервера при хешировании пароля")
	}

	admin := &models.Admin{
		Username:     username,
		PasswordHash: string(hashedPassword),
	}
	if _, err = s.adminRepo.CreateAdmin(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return ErrUsernameTaken
		}
		log.Printf("[AuthService] Непредвиденная ошибка репозитория при регистрации '%s': %v", username, err)
		return errors.New("внутренняя ошибка сервера при создании администратора")
	}

	log.Printf("[AuthService] Администратор '%s' успешно зарегистрирован", username)
	return nil
}

// Login аутентифицирует администратора и возвращает JWT токен.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	admin, err := s.adminRepo.GetAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			log.Printf("[AuthService] Попытка входа несуществующего администратора: %s", username)
			// Общая ошибка: не раскрываем, что именно неверно
			return "", ErrInvalidCredentials
		}
		log.Printf("[AuthService] Ошибка репозитория при поиске '%s': %v", username, err)
		return "", errors.New("внутренняя ошибка сервера при поиске администратора")
	}

	if err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		log.Printf("[AuthService] Неверный пароль для администратора: %s", username)
		return "", ErrInvalidCredentials
	}

	token, err := s.generateJWT(admin)
	if err != nil {
		log.Printf("[AuthService] Ошибка генерации JWT для '%s': %v", username, err)
		return "", errors.New("внутренняя ошибка сервера при генерации токена")
	}

	log.Printf("[AuthService] Администратор '%s' успешно аутентифицирован", username)
	return token, nil
}

// generateJWT создает и подписывает JWT токен администратора.
func (s *authService) generateJWT(admin *models.Admin) (string, error) {
	claims := Claims{
		AdminID:  admin.ID,
		Username: admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "cracked-digital-server",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи JWT: %w", err)
	}
	return signedToken, nil
}

// Кастомные ошибки сервиса аутентификации.
var (
	ErrInvalidCredentials = errors.New("неверное имя пользователя или пароль")
	ErrUsernameTaken      = errors.New("имя пользователя уже занято")
	ErrRegistrationClosed = errors.New("регистрация закрыта: администратор уже существует")
)
