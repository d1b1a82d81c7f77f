package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
)

// BlogRepository определяет методы для работы с записями блога.
type BlogRepository interface {
	ListPosts(ctx context.Context) ([]models.BlogPost, error)
	// ListPublishedPosts возвращает только опубликованные записи,
	// свежие первыми.
	ListPublishedPosts(ctx context.Context) ([]models.BlogPost, error)
	GetPostByID(ctx context.Context, id int64) (*models.BlogPost, error)
	// GetPublishedPostBySlug находит опубликованную запись по slug для публичного URL.
	GetPublishedPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	CreatePost(ctx context.Context, p *models.BlogPost) (int64, error)
	UpdatePost(ctx context.Context, p *models.BlogPost) error
	DeletePost(ctx context.Context, id int64) error
}

type postgresBlogRepository struct {
	db *sqlx.DB
}

// NewPostgresBlogRepository создает новый экземпляр репозитория блога.
func NewPostgresBlogRepository(db *sqlx.DB) BlogRepository {
	return &postgresBlogRepository{db: db}
}

const blogColumns = `id, title, slug, excerpt, content, cover_image_url, author,
	is_published, published_at, ord, created_at, updated_at`

// ListPosts возвращает все записи блога (для админки), свежие первыми.
func (r *postgresBlogRepository) ListPosts(ctx context.Context) ([]models.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts ORDER BY created_at DESC, id DESC`

	posts := make([]models.BlogPost, 0)
	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		log.Printf("[BlogRepo] Ошибка при получении списка записей: %v", err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение записей блога: %w", err)
	}
	return posts, nil
}

// ListPublishedPosts возвращает только опубликованные записи.
func (r *postgresBlogRepository) ListPublishedPosts(ctx context.Context) ([]models.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts
	          WHERE is_published=TRUE
	          ORDER BY published_at DESC NULLS LAST, id DESC`

	posts := make([]models.BlogPost, 0)
	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		log.Printf("[BlogRepo] Ошибка при получении опубликованных записей: %v", err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение записей блога: %w", err)
	}
	return posts, nil
}

// GetPostByID находит запись блога по ID.
func (r *postgresBlogRepository) GetPostByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	var p models.BlogPost
	if err := r.db.GetContext(ctx, &p, `SELECT `+blogColumns+` FROM blog_posts WHERE id=$1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		log.Printf("[BlogRepo] Ошибка при поиске записи ID %d: %v", id, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение записи блога: %w", err)
	}
	return &p, nil
}

// GetPublishedPostBySlug находит опубликованную запись по slug.
func (r *postgresBlogRepository) GetPublishedPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE slug=$1 AND is_published=TRUE`
	var p models.BlogPost

	if err := r.db.GetContext(ctx, &p, query, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		log.Printf("[BlogRepo] Ошибка при поиске записи по slug '%s': %v", slug, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение записи блога: %w", err)
	}
	return &p, nil
}

// CreatePost создает новую запись блога и возвращает ее ID.
func (r *postgresBlogRepository) CreatePost(ctx context.Context, p *models.BlogPost) (int64, error) {
	query := `INSERT INTO blog_posts (title, slug, excerpt, content, cover_image_url, author,
	              is_published, published_at, ord)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	var id int64

	err := r.db.QueryRowxContext(ctx, query,
		p.Title, p.Slug, p.Excerpt, p.Content, p.CoverImageURL, p.Author,
		p.IsPublished, p.PublishedAt, p.Order,
	).Scan(&id)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			log.Printf("[BlogRepo] Slug '%s' уже занят", p.Slug)
			return 0, ErrSlugTaken
		}
		log.Printf("[BlogRepo] Ошибка при создании записи '%s': %v", p.Title, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на создание записи блога: %w", err)
	}

	log.Printf("[BlogRepo] Запись блога '%s' создана с ID %d", p.Title, id)
	return id, nil
}

// UpdatePost обновляет запись блога целиком.
func (r *postgresBlogRepository) UpdatePost(ctx context.Context, p *models.BlogPost) error {
	query := `UPDATE blog_posts SET title=$1, slug=$2, excerpt=$3, content=$4, cover_image_url=$5,
	          author=$6, is_published=$7, published_at=$8, ord=$9, updated_at=NOW()
	          WHERE id=$10`

	res, err := r.db.ExecContext(ctx, query,
		p.Title, p.Slug, p.Excerpt, p.Content, p.CoverImageURL,
		p.Author, p.IsPublished, p.PublishedAt, p.Order, p.ID,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			return ErrSlugTaken
		}
		log.Printf("[BlogRepo] Ошибка при обновлении записи ID %d: %v", p.ID, err)
		return fmt.Errorf("ошибка выполнения запроса на обновление записи блога: %w", err)
	}
	return checkAffected(res)
}

// DeletePost удаляет запись блога по ID.
func (r *postgresBlogRepository) DeletePost(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id=$1`, id)
	if err != nil {
		log.Printf("[BlogRepo] Ошибка при удалении записи ID %d: %v", id, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление записи блога: %w", err)
	}
	return checkAffected(res)
}

// Кастомные ошибки репозитория блога.
var (
	ErrSlugTaken = errors.New("slug уже используется другой записью")
)
