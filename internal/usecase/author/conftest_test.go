package author

import (
	"context"
	"time"

	"github.com/kitaplik/kitaplik/internal/domain"
	"github.com/kitaplik/kitaplik/internal/query"
)

// mockRepo implements Repository for tests.
type mockRepo struct {
	matchAllFn   func(ctx context.Context, p query.Page) ([]domain.Author, error)
	getByIDFn    func(ctx context.Context, id string) (*domain.Author, error)
	termFn       func(ctx context.Context, field, value string, p query.Page) ([]domain.Author, error)
	termsFn      func(ctx context.Context, field string, values []string, p query.Page) ([]domain.Author, error)
	prefixFn     func(ctx context.Context, field, value string, p query.Page) ([]domain.Author, error)
	dateRangeFn  func(ctx context.Context, field string, start, end time.Time, p query.Page) ([]domain.Author, error)
	indexFn      func(ctx context.Context, a *domain.Author) error
	updateFn     func(ctx context.Context, a *domain.Author) error
	deleteFn     func(ctx context.Context, id string) (bool, error)
	softDeleteFn func(ctx context.Context, id string) (bool, error)
}

func (m *mockRepo) MatchAll(ctx context.Context, p query.Page) ([]domain.Author, error) {
	if m.matchAllFn != nil {
		return m.matchAllFn(ctx, p)
	}
	return []domain.Author{}, nil
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (*domain.Author, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockRepo) Term(ctx context.Context, field, value string, p query.Page) ([]domain.Author, error) {
	if m.termFn != nil {
		return m.termFn(ctx, field, value, p)
	}
	return []domain.Author{}, nil
}

func (m *mockRepo) Terms(ctx context.Context, field string, values []string, p query.Page) ([]domain.Author, error) {
	if m.termsFn != nil {
		return m.termsFn(ctx, field, values, p)
	}
	return []domain.Author{}, nil
}

func (m *mockRepo) Prefix(ctx context.Context, field, value string, p query.Page) ([]domain.Author, error) {
	if m.prefixFn != nil {
		return m.prefixFn(ctx, field, value, p)
	}
	return []domain.Author{}, nil
}

func (m *mockRepo) DateRange(ctx context.Context, field string, start, end time.Time, p query.Page) ([]domain.Author, error) {
	if m.dateRangeFn != nil {
		return m.dateRangeFn(ctx, field, start, end, p)
	}
	return []domain.Author{}, nil
}

func (m *mockRepo) Index(ctx context.Context, a *domain.Author) error {
	if m.indexFn != nil {
		return m.indexFn(ctx, a)
	}
	a.ID = "generated"
	return nil
}

func (m *mockRepo) Update(ctx context.Context, a *domain.Author) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, a)
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

func someAuthor(id string) domain.Author {
	a := domain.Author{
		FirstName: "Ursula",
		LastName:  "Le Guin",
		BirthDate: time.Date(1929, 10, 21, 0, 0, 0, 0, time.UTC),
	}
	a.ID = id
	a.IsActive = true
	return a
}
