package models

import "time"

// Модели контентных коллекций публичного сайта.
// Тэги `db` используются для маппинга с полями БД с помощью sqlx.
// Тэги `json` используются для (де)сериализации JSON (camelCase, как на фронтенде).
// Поле Order управляется вызывающей стороной: оно не обязано быть уникальным
// или непрерывным, при равенстве порядок определяется порядком вставки (id).

// Event представляет мероприятие сообщества.
type Event struct {
	ID               int64     `db:"id" json:"id"`
	Title            string    `db:"title" json:"title"`
	Description      string    `db:"description" json:"description"`
	Date             time.Time `db:"date" json:"date"`
	Location         string    `db:"location" json:"location"`
	ImageURL         string    `db:"image_url" json:"imageUrl"`
	RegistrationLink string    `db:"registration_link" json:"registrationLink"`
	IsPublished      bool      `db:"is_published" json:"isPublished"`
	Order            int       `db:"ord" json:"order"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`
}

// Stat представляет показатель сообщества для главной страницы ("500+ участников").
type Stat struct {
	ID        int64     `db:"id" json:"id"`
	Label     string    `db:"label" json:"label"`
	Value     string    `db:"value" json:"value"` // Строка, а не число: "500+", "24/7" и т.п.
	Icon      string    `db:"icon" json:"icon"`
	Order     int       `db:"ord" json:"order"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Testimonial представляет отзыв участника сообщества.
type Testimonial struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Role      string    `db:"role" json:"role"`
	Company   string    `db:"company" json:"company"`
	Quote     string    `db:"quote" json:"quote"`
	AvatarURL string    `db:"avatar_url" json:"avatarUrl"`
	IsActive  bool      `db:"is_active" json:"isActive"` // Только активные попадают в публичную выдачу
	Order     int       `db:"ord" json:"order"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// FAQ представляет вопрос-ответ.
type FAQ struct {
	ID        int64     `db:"id" json:"id"`
	Question  string    `db:"question" json:"question"`
	Answer    string    `db:"answer" json:"answer"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	Order     int       `db:"ord" json:"order"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Milestone представляет веху в истории сообщества.
type Milestone struct {
	ID          int64     `db:"id" json:"id"`
	Year        string    `db:"year" json:"year"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Order       int       `db:"ord" json:"order"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// TeamMember представляет участника команды.
type TeamMember struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Role        string    `db:"role" json:"role"`
	Bio         string    `db:"bio" json:"bio"`
	ImageURL    string    `db:"image_url" json:"imageUrl"`
	LinkedinURL string    `db:"linkedin_url" json:"linkedinUrl"`
	Order       int       `db:"ord" json:"order"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
