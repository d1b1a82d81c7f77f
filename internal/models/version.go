package models

import "time"

// VersionRecord представляет единственную запись о текущей версии кеша.
// Хранится в таблице cache_version под фиксированным ключом и перезаписывается
// целиком при каждом изменении контента.
type VersionRecord struct {
	Key         string    `db:"key" json:"-"`                  // Фиксированный ключ синглтона ("global")
	VersionID   string    `db:"version_id" json:"versionId"`   // Непрозрачный токен, сравнивается только на равенство
	LastUpdated time.Time `db:"last_updated" json:"lastUpdated"`
	UpdatedBy   string    `db:"updated_by" json:"updatedBy"`   // Кто инициировал изменение ("system", если нет актора)
	ChangeType  string    `db:"change_type" json:"changeType"` // Имя коллекции, "manual" или "initialize"
	Description string    `db:"description" json:"description"`
}

// BumpRequest представляет тело запроса на ручную инвалидацию кеша.
type BumpRequest struct {
	ChangeType  string `json:"changeType,omitempty"`
	Description string `json:"description,omitempty"`
}

// VersionResponse представляет ответ легковесного эндпоинта проверки версии.
type VersionResponse struct {
	Success     bool      `json:"success"`
	VersionID   string    `json:"versionId"`
	LastUpdated time.Time `json:"lastUpdated"`
	ChangeType  string    `json:"changeType,omitempty"`
}
