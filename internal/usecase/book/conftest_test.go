package book

import (
	"context"
	"time"

	"github.com/kitaplik/kitaplik/internal/domain"
	"github.com/kitaplik/kitaplik/internal/query"
)

// mockRepo implements Repository for tests.
type mockRepo struct {
	matchAllFn      func(ctx context.Context, p query.Page) ([]domain.Book, error)
	getByIDFn       func(ctx context.Context, id string) (*domain.Book, error)
	termFn          func(ctx context.Context, field, value string, p query.Page) ([]domain.Book, error)
	termsFn         func(ctx context.Context, field string, values []string, p query.Page) ([]domain.Book, error)
	dateRangeFn     func(ctx context.Context, field string, start, end time.Time, p query.Page) ([]domain.Book, error)
	numberRangeFn   func(ctx context.Context, field string, min, max float64, p query.Page) ([]domain.Book, error)
	wildcardFn      func(ctx context.Context, field, pattern string, p query.Page) ([]domain.Book, error)
	fullTextMatchFn func(ctx context.Context, field, text string, maxEdits int, p query.Page) ([]domain.Book, error)
	searchTextFn    func(ctx context.Context, text string, p query.Page) ([]domain.Book, error)
	filterFn        func(ctx context.Context, f *domain.SearchBookFilter) ([]domain.Book, error)
	indexFn         func(ctx context.Context, b *domain.Book) error
	updateFn        func(ctx context.Context, b *domain.Book) error
	deleteFn        func(ctx context.Context, id string) (bool, error)
	softDeleteFn    func(ctx context.Context, id string) (bool, error)
}

func (m *mockRepo) MatchAll(ctx context.Context, p query.Page) ([]domain.Book, error) {
	if m.matchAllFn != nil {
		return m.matchAllFn(ctx, p)
	}
	return []domain.Book{}, nil
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockRepo) Term(ctx context.Context, field, value string, p query.Page) ([]domain.Book, error) {
	if m.termFn != nil {
		return m.termFn(ctx, field, value, p)
	}
	return []domain.Book{}, nil
}

func (m *mockRepo) Terms(ctx context.Context, field string, values []string, p query.Page) ([]domain.Book, error) {
	if m.termsFn != nil {
		return m.termsFn(ctx, field, values, p)
	}
	return []domain.Book{}, nil
}

func (m *mockRepo) DateRange(ctx context.Context, field string, start, end time.Time, p query.Page) ([]domain.Book, error) {
	if m.dateRangeFn != nil {
		return m.dateRangeFn(ctx, field, start, end, p)
	}
	return []domain.Book{}, nil
}

func (m *mockRepo) NumberRange(ctx context.Context, field string, min, max float64, p query.Page) ([]domain.Book, error) {
	if m.numberRangeFn != nil {
		return m.numberRangeFn(ctx, field, min, max, p)
	}
	return []domain.Book{}, nil
}

func (m *mockRepo) Wildcard(ctx context.Context, field, pattern string, p query.Page) ([]domain.Book, error) {
	if m.wildcardFn != nil {
		return m.wildcardFn(ctx, field, pattern, p)
	}
	return []domain.Book{}, nil
}

func (m *mockRepo) FullTextMatch(ctx context.Context, field, text string, maxEdits int, p query.Page) ([]domain.Book, error) {
	if m.fullTextMatchFn != nil {
		return m.fullTextMatchFn(ctx, field, text, maxEdits, p)
	}
	return []domain.Book{}, nil
}

func (m *mockRepo) SearchText(ctx context.Context, text string, p query.Page) ([]domain.Book, error) {
	if m.searchTextFn != nil {
		return m.searchTextFn(ctx, text, p)
	}
	return []domain.Book{}, nil
}

func (m *mockRepo) Filter(ctx context.Context, f *domain.SearchBookFilter) ([]domain.Book, error) {
	if m.filterFn != nil {
		return m.filterFn(ctx, f)
	}
	return []domain.Book{}, nil
}

func (m *mockRepo) Index(ctx context.Context, b *domain.Book) error {
	if m.indexFn != nil {
		return m.indexFn(ctx, b)
	}
	b.ID = "generated"
	return nil
}

func (m *mockRepo) Update(ctx context.Context, b *domain.Book) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, b)
	}
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, id string) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return true, nil
}

func (m *mockRepo) SoftDelete(ctx context.Context, id string) (bool, error) {
	if m.softDeleteFn != nil {
		return m.softDeleteFn(ctx, id)
	}
	return true, nil
}

func someBook(id string) domain.Book {
	b := domain.Book{
		Title:       "The Dispossessed",
		Abstract:    "An ambiguous utopia",
		Price:       12.5,
		Stock:       4,
		PublishDate: time.Date(1974, 5, 1, 0, 0, 0, 0, time.UTC),
		Categories:  []string{"fiction"},
	}
	b.ID = id
	b.IsActive = true
	return b
}
