package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/kitaplik/kitaplik/internal/db"
	"github.com/kitaplik/kitaplik/internal/domain"
	"github.com/kitaplik/kitaplik/internal/query"
)

func capturedBookQuery(t *testing.T, op func(repo *BookRepo)) query.Query {
	t.Helper()
	var captured query.Query
	me := &mockEngine{
		searchFn: func(_ context.Context, _ string, _, _ int, q any) (*db.SearchResult, error) {
			captured = q.(query.Query)
			return &db.SearchResult{Hits: []db.Hit{}}, nil
		},
	}
	op(NewBookRepo(me, "books"))
	if captured == nil {
		t.Fatal("no query captured")
	}
	return captured
}

func TestSearchText_ShouldOverTitleAndAbstract(t *testing.T) {
	q := capturedBookQuery(t, func(repo *BookRepo) {
		_, _ = repo.SearchText(context.Background(), "dune mess", query.DefaultPage())
	})

	body := q["bool"].(map[string]any)
	should, ok := body["should"].([]query.Query)
	if !ok || len(should) != 2 {
		t.Fatalf("expected two should clauses, got %#v", body)
	}
	for _, group := range []string{"must", "must_not", "filter"} {
		if _, present := body[group]; present {
			t.Errorf("single-box search must not emit %s clauses", group)
		}
	}

	fields := map[string]bool{}
	for _, clause := range should {
		inner := clause["match_bool_prefix"].(map[string]any)
		for field, raw := range inner {
			fields[field] = true
			if _, present := raw.(map[string]any)["fuzziness"]; present {
				t.Errorf("single-box search must not set fuzziness on %s: %v", field, raw)
			}
		}
	}
	if !fields["title"] || !fields["abstract"] {
		t.Errorf("expected title and abstract clauses, got %v", fields)
	}
}

func TestFilter_NilMatchesEverything(t *testing.T) {
	q := capturedBookQuery(t, func(repo *BookRepo) {
		_, _ = repo.Filter(context.Background(), nil)
	})

	if _, ok := q["match_all"]; !ok {
		t.Fatalf("nil filter must match all, got %#v", q)
	}
}

func TestFilter_EmptyModelMatchesEverything(t *testing.T) {
	q := capturedBookQuery(t, func(repo *BookRepo) {
		_, _ = repo.Filter(context.Background(), &domain.SearchBookFilter{})
	})

	if _, ok := q["match_all"]; !ok {
		t.Fatalf("empty filter must match all, got %#v", q)
	}
}

func TestFilter_SubsetDrivesClauses(t *testing.T) {
	minPrice := 15.0
	q := capturedBookQuery(t, func(repo *BookRepo) {
		_, _ = repo.Filter(context.Background(), &domain.SearchBookFilter{
			Title:    "dune",
			MinPrice: &minPrice,
		})
	})

	body := q["bool"].(map[string]any)
	must := body["must"].([]query.Query)
	if len(must) != 1 {
		t.Fatalf("expected one must clause, got %d", len(must))
	}
	if _, ok := must[0]["match_bool_prefix"]; !ok {
		t.Errorf("title must use match_bool_prefix, got %#v", must[0])
	}

	filter := body["filter"].([]query.Query)
	if len(filter) != 1 {
		t.Fatalf("expected one filter clause, got %d", len(filter))
	}
	clause := filter[0]["range"].(map[string]any)["price"].(map[string]any)
	if clause["gte"] != 15.0 {
		t.Errorf("unexpected price bound: %#v", clause)
	}
}

func TestFilter_AllFields(t *testing.T) {
	minPrice := 10.0
	minStock := uint(3)
	start := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	q := capturedBookQuery(t, func(repo *BookRepo) {
		_, _ = repo.Filter(context.Background(), &domain.SearchBookFilter{
			Title:            "dune",
			Abstract:         "desert",
			MinPrice:         &minPrice,
			MinStock:         &minStock,
			PublishDateStart: &start,
		})
	})

	body := q["bool"].(map[string]any)
	if len(body["must"].([]query.Query)) != 2 {
		t.Errorf("expected two text clauses, got %#v", body["must"])
	}
	if len(body["filter"].([]query.Query)) != 3 {
		t.Errorf("expected three filter clauses, got %#v", body["filter"])
	}
}

// The publish-date start value is applied as an upper bound. The behavior is
// load-bearing for existing clients; this test pins it down.
func TestFilter_PublishDateStartIsUpperBound(t *testing.T) {
	start := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	q := capturedBookQuery(t, func(repo *BookRepo) {
		_, _ = repo.Filter(context.Background(), &domain.SearchBookFilter{
			PublishDateStart: &start,
		})
	})

	body := q["bool"].(map[string]any)
	filter := body["filter"].([]query.Query)
	clause := filter[0]["range"].(map[string]any)["publishdate"].(map[string]any)
	if clause["lte"] != "2020-06-01T00:00:00Z" {
		t.Errorf("expected lte bound, got %#v", clause)
	}
	if _, present := clause["gte"]; present {
		t.Errorf("publishDateStart must not emit a lower bound, got %#v", clause)
	}
}

func TestFilter_ForwardsPagination(t *testing.T) {
	var size, from int
	me := &mockEngine{
		searchFn: func(_ context.Context, _ string, s, f int, _ any) (*db.SearchResult, error) {
			size, from = s, f
			return &db.SearchResult{Hits: []db.Hit{}}, nil
		},
	}
	repo := NewBookRepo(me, "books")

	_, err := repo.Filter(context.Background(), &domain.SearchBookFilter{Page: 2, PageSize: 25})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size != 25 || from != 25 {
		t.Errorf("expected size=25 from=25, got size=%d from=%d", size, from)
	}
}
