package client

import (
	_ "embed"
	"encoding/json"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
)

// Встроенная статическая выдача на случай, когда недоступны и сервер,
// и локальный кеш: сайт лучше показать с данными по умолчанию, чем пустым.
//
//go:embed fallback.json
var fallbackRaw []byte

// FallbackData возвращает копию встроенной статической выдачи.
func FallbackData() *models.AggregateData {
	var data models.AggregateData
	// Файл встраивается при сборке, ошибка разбора невозможна при корректном файле.
	if err := json.Unmarshal(fallbackRaw, &data); err != nil {
		return &models.AggregateData{Settings: models.DefaultSettings()}
	}
	data.Settings.Key = models.SettingsKey
	return &data
}
