package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
)

// ErrServerUnavailable сигнализирует о сетевой ошибке или недоступности сервера.
var ErrServerUnavailable = errors.New("сервер недоступен")

// defaultTimeout ограничивает время ожидания ответа от публичного API.
const defaultTimeout = 10 * time.Second

// API определяет интерфейс для взаимодействия с публичным API сервера.
type API interface {
	// GetVersion получает текущую версию кеша (легковесная проверка).
	GetVersion(ctx context.Context) (*models.VersionResponse, error)
	// GetAll получает полную агрегированную выдачу главной страницы.
	GetAll(ctx context.Context) (*models.AggregateResponse, error)
}

// httpAPI реализует интерфейс API поверх HTTP.
type httpAPI struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPAPI создает новый экземпляр API клиента.
func NewHTTPAPI(baseURL string) API {
	return &httpAPI{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// GetVersion запрашивает /api/public/version.
func (c *httpAPI) GetVersion(ctx context.Context) (*models.VersionResponse, error) {
	versionURL, err := url.JoinPath(c.baseURL, "/api/public/version")
	if err != nil {
		return nil, fmt.Errorf("ошибка формирования URL проверки версии: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, versionURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса версии: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ошибка проверки версии: статус %d", resp.StatusCode)
	}

	var versionResponse models.VersionResponse
	if err = json.NewDecoder(resp.Body).Decode(&versionResponse); err != nil {
		return nil, fmt.Errorf("ошибка декодирования ответа версии: %w", err)
	}
	if !versionResponse.Success {
		return nil, errors.New("сервер вернул неуспешный ответ на проверку версии")
	}

	return &versionResponse, nil
}

// GetAll запрашивает /api/public/all.
func (c *httpAPI) GetAll(ctx context.Context) (*models.AggregateResponse, error) {
	allURL, err := url.JoinPath(c.baseURL, "/api/public/all")
	if err != nil {
		return nil, fmt.Errorf("ошибка формирования URL агрегированной выдачи: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, allURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса выдачи: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ошибка получения выдачи: статус %d", resp.StatusCode)
	}

	var aggregateResponse models.AggregateResponse
	if err = json.NewDecoder(resp.Body).Decode(&aggregateResponse); err != nil {
		return nil, fmt.Errorf("ошибка декодирования агрегированной выдачи: %w", err)
	}
	if !aggregateResponse.Success || aggregateResponse.Data == nil {
		return nil, errors.New("сервер вернул неуспешную или пустую выдачу")
	}

	return &aggregateResponse, nil
}
