package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/repository"
	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/services"
)

var testJWTSecret = []byte("test-secret")

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	username := "admin"
	password := "password123"

	tests := []struct {
		name          string
		mockSetup     func(adminRepo *MockAdminRepository)
		expectedError error
	}{
		{
			name: "Успешная регистрация первого администратора",
			mockSetup: func(adminRepo *MockAdminRepository) {
				adminRepo.On("CountAdmins", ctx).Return(0, nil).Once()
				adminRepo.On("CreateAdmin", ctx, mock.AnythingOfType("*models.Admin")).
					Return(int64(1), nil).Once()
			},
			expectedError: nil,
		},
		{
			name: "Регистрация закрыта: администратор уже существует",
			mockSetup: func(adminRepo *MockAdminRepository) {
				adminRepo.On("CountAdmins", ctx).Return(1, nil).Once()
			},
			expectedError: services.ErrRegistrationClosed,
		},
		{
			name: "Имя пользователя занято",
			mockSetup: func(adminRepo *MockAdminRepository) {
				adminRepo.On("CountAdmins", ctx).Return(0, nil).Once()
				adminRepo.On("CreateAdmin", ctx, mock.AnythingOfType("*models.Admin")).
					Return(int64(0), repository.ErrUsernameTaken).Once()
			},
			expectedError: services.ErrUsernameTaken,
		},
		{
			name: "Ошибка репозитория при подсчете",
			mockSetup: func(adminRepo *MockAdminRepository) {
				adminRepo.On("CountAdmins", ctx).Return(0, errors.New("db error")).Once()
			},
			expectedError: errors.New("внутренняя ошибка сервера при регистрации"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adminRepo := new(MockAdminRepository)
			tt.mockSetup(adminRepo)

			authService := services.NewAuthService(adminRepo, testJWTSecret)
			err := authService.Register(ctx, username, password)

			if tt.expectedError != nil {
				require.Error(t, err)
				require.EqualError(t, err, tt.expectedError.Error())
			} else {
				require.NoError(t, err)
			}

			adminRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	ctx := context.Background()
	adminRepo := new(MockAdminRepository)
	adminRepo.On("CountAdmins", ctx).Return(0, nil).Once()
	adminRepo.On("CreateAdmin", ctx, mock.MatchedBy(func(admin *models.Admin) bool {
		// Пароль никогда не сохраняется открытым текстом.
		return admin.PasswordHash != "password123" &&
			bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("password123")) == nil
	})).Return(int64(1), nil).Once()

	authService := services.NewAuthService(adminRepo, testJWTSecret)
	require.NoError(t, authService.Register(ctx, "admin", "password123"))
	adminRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	username := "admin"
	password := "password123"

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err, "Не удалось сгенерировать хеш пароля для тестов")

	correctAdmin := &models.Admin{
		ID:           1,
		Username:     username,
		PasswordHash: string(hashedPasswordBytes),
	}

	tests := []struct {
		name          string
		passwordToUse string
		mockSetup     func(adminRepo *MockAdminRepository)
		expectedToken bool
		expectedError error
	}{
		{
			name:          "Успешный вход",
			passwordToUse: password,
			mockSetup: func(adminRepo *MockAdminRepository) {
				adminRepo.On("GetAdminByUsername", ctx, username).Return(correctAdmin, nil).Once()
			},
			expectedToken: true,
		},
		{
			name:          "Неверный пароль",
			passwordToUse: "wrongpassword",
			mockSetup: func(adminRepo *MockAdminRepository) {
				adminRepo.On("GetAdminByUsername", ctx, username).Return(correctAdmin, nil).Once()
			},
			expectedError: services.ErrInvalidCredentials,
		},
		{
			name:          "Администратор не найден",
			passwordToUse: password,
			mockSetup: func(adminRepo *MockAdminRepository) {
				adminRepo.On("GetAdminByUsername", ctx, username).
					Return(nil, repository.ErrAdminNotFound).Once()
			},
			expectedError: services.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adminRepo := new(MockAdminRepository)
			tt.mockSetup(adminRepo)

			authService := services.NewAuthService(adminRepo, testJWTSecret)
			token, err := authService.Login(ctx, username, tt.passwordToUse)

			if tt.expectedError != nil {
				require.Error(t, err)
				require.EqualError(t, err, tt.expectedError.Error())
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				require.NotEmpty(t, token)
			}

			adminRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login_TokenClaims(t *testing.T) {
	ctx := context.Background()
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	adminRepo := new(MockAdminRepository)
	adminRepo.On("GetAdminByUsername", ctx, "admin").Return(&models.Admin{
		ID:           42,
		Username:     "admin",
		PasswordHash: string(hashedPasswordBytes),
	}, nil).Once()

	authService := services.NewAuthService(adminRepo, testJWTSecret)
	tokenString, err := authService.Login(ctx, "admin", "password123")
	require.NoError(t, err)

	// Токен разбирается тем же секретом и несет идентификатор и имя администратора.
	claims := &services.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return testJWTSecret, nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	assert.Equal(t, int64(42), claims.AdminID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "cracked-digital-server", claims.Issuer)
}
