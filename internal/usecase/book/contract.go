package book

import (
	"context"
	"time"

	"github.com/kitaplik/kitaplik/internal/domain"
	"github.com/kitaplik/kitaplik/internal/query"
)

// Repository defines the storage contract the book service consumes.
type Repository interface {
	MatchAll(ctx context.Context, p query.Page) ([]domain.Book, error)
	GetByID(ctx context.Context, id string) (*domain.Book, error)
	Term(ctx context.Context, field, value string, p query.Page) ([]domain.Book, error)
	Terms(ctx context.Context, field string, values []string, p query.Page) ([]domain.Book, error)
	DateRange(ctx context.Context, field string, start, end time.Time, p query.Page) ([]domain.Book, error)
	NumberRange(ctx context.Context, field string, min, max float64, p query.Page) ([]domain.Book, error)
	Wildcard(ctx context.Context, field, pattern string, p query.Page) ([]domain.Book, error)
	FullTextMatch(ctx context.Context, field, text string, maxEdits int, p query.Page) ([]domain.Book, error)
	SearchText(ctx context.Context, text string, p query.Page) ([]domain.Book, error)
	Filter(ctx context.Context, f *domain.SearchBookFilter) ([]domain.Book, error)
	Index(ctx context.Context, b *domain.Book) error
	Update(ctx context.Context, b *domain.Book) error
	Delete(ctx context.Context, id string) (bool, error)
	SoftDelete(ctx context.Context, id string) (bool, error)
}
