package author

import (
	"context"
	"time"

	"github.com/kitaplik/kitaplik/internal/domain"
	"github.com/kitaplik/kitaplik/internal/query"
)

// Repository defines the storage contract the author service consumes.
type Repository interface {
	MatchAll(ctx context.Context, p query.Page) ([]domain.Author, error)
	GetByID(ctx context.Context, id string) (*domain.Author, error)
	Term(ctx context.Context, field, value string, p query.Page) ([]domain.Author, error)
	Terms(ctx context.Context, field string, values []string, p query.Page) ([]domain.Author, error)
	Prefix(ctx context.Context, field, value string, p query.Page) ([]domain.Author, error)
	DateRange(ctx context.Context, field string, start, end time.Time, p query.Page) ([]domain.Author, error)
	Index(ctx context.Context, a *domain.Author) error
	Update(ctx context.Context, a *domain.Author) error
	Delete(ctx context.Context, id string) (bool, error)
	SoftDelete(ctx context.Context, id string) (bool, error)
}
