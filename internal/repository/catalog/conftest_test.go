package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/kitaplik/kitaplik/internal/db"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// mockEngine implements the consumer interface for tests.
type mockEngine struct {
	searchFn func(ctx context.Context, index string, size, from int, q any) (*db.SearchResult, error)
	getFn    func(ctx context.Context, index, id string) (*db.Hit, error)
	indexFn  func(ctx context.Context, index string, doc any) (string, error)
	updateFn func(ctx context.Context, index, id string, partial any) error
	deleteFn func(ctx context.Context, index, id string) error
}

func (m *mockEngine) Search(ctx context.Context, index string, size, from int, q any) (*db.SearchResult, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, index, size, from, q)
	}
	return &db.SearchResult{Hits: []db.Hit{}}, nil
}

func (m *mockEngine) Get(ctx context.Context, index, id string) (*db.Hit, error) {
	if m.getFn != nil {
		return m.getFn(ctx, index, id)
	}
	return nil, db.ErrNotFound
}

func (m *mockEngine) Index(ctx context.Context, index string, doc any) (string, error) {
	if m.indexFn != nil {
		return m.indexFn(ctx, index, doc)
	}
	return "generated", nil
}

func (m *mockEngine) Update(ctx context.Context, index, id string, partial any) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, index, id, partial)
	}
	return nil
}

func (m *mockEngine) Delete(ctx context.Context, index, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, index, id)
	}
	return nil
}

func twoHits(t *testing.T) *db.SearchResult {
	t.Helper()
	return &db.SearchResult{
		Total: 2,
		Hits: []db.Hit{
			{ID: "a", Source: []byte(`{"title": "first"}`)},
			{ID: "b", Source: []byte(`{"title": "second"}`)},
		},
	}
}
