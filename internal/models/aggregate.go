package models

// AggregateData представляет собранную публичную выдачу: все коллекции
// главной страницы одним объектом, чтобы фронтенд делал один запрос.
type AggregateData struct {
	Events       []Event       `json:"events"`
	Stats        []Stat        `json:"stats"`
	Testimonials []Testimonial `json:"testimonials"`
	FAQs         []FAQ         `json:"faqs"`
	Milestones   []Milestone   `json:"milestones"`
	Team         []TeamMember  `json:"team"`
	Settings     Settings      `json:"settings"`
}

// Источники ответа агрегированного эндпоинта.
const (
	SourceCache = "cache"
	SourceDB    = "db"
)

// AggregateResponse представляет ответ агрегированного публичного эндпоинта.
type AggregateResponse struct {
	Success   bool           `json:"success"`
	VersionID string         `json:"versionId"`
	Data      *AggregateData `json:"data"`
	Source    string         `json:"source"` // "cache" или "db"
}
