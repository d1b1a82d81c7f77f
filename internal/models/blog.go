package models

import "time"

// BlogPost представляет запись блога.
// Блог управляется из админки и проходит через cache-bump, но в агрегированную
// публичную выдачу не входит — у него отдельные публичные маршруты.
type BlogPost struct {
	ID            int64      `db:"id" json:"id"`
	Title         string     `db:"title" json:"title"`
	Slug          string     `db:"slug" json:"slug"` // Уникальный, используется в публичном URL
	Excerpt       string     `db:"excerpt" json:"excerpt"`
	Content       string     `db:"content" json:"content"`
	CoverImageURL string     `db:"cover_image_url" json:"coverImageUrl"`
	Author        string     `db:"author" json:"author"`
	IsPublished   bool       `db:"is_published" json:"isPublished"`
	PublishedAt   *time.Time `db:"published_at" json:"publishedAt,omitempty"` // NULL, пока не опубликован
	Order         int        `db:"ord" json:"order"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updatedAt"`
}
