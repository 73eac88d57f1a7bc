// Package book implements the book service: input validation, repository
// calls, and envelope wrapping.
package book

import (
	"context"
	"time"

	"github.com/kitaplik/kitaplik/internal/domain"
	"github.com/kitaplik/kitaplik/internal/domain/result"
	"github.com/kitaplik/kitaplik/internal/query"
)

// abstractMaxEdits is the edit tolerance for abstract full-text lookups.
// Tighter than the search-box tolerance; abstracts are long enough that two
// edits per term pulls in noise.
const abstractMaxEdits = 1

// Fixed envelope messages. Clients match on these strings.
const (
	msgNotFound      = "book not found"
	msgNoneFound     = "books not found"
	msgIDRequired    = "book id is required"
	msgTitleRequired = "book title is required"
	msgTextRequired  = "search text is required"
	msgCreateFailed  = "book could not be created"
	msgUpdateFailed  = "book could not be updated"
	msgDeleteFailed  = "book could not be deleted"
)

// Service handles book operations.
type Service struct {
	repo     Repository
	pageSize int
}

// New creates a book service.
func New(repo Repository, pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = query.DefaultPageSize
	}
	return &Service{repo: repo, pageSize: pageSize}
}

// GetAll returns a page of all books.
func (s *Service) GetAll(ctx context.Context, page, size int) result.Result[[]Book] {
	books, err := s.repo.MatchAll(ctx, s.page(page, size))
	return s.listResult(books, err)
}

// GetByID returns a single book. A missing id and an engine failure both
// surface as an empty envelope.
func (s *Service) GetByID(ctx context.Context, id string) result.Result[Book] {
	if id == "" {
		return result.BadRequest[Book](msgIDRequired)
	}
	b, err := s.repo.GetByID(ctx, id)
	if err != nil || b == nil {
		return result.NoContent[Book](msgNotFound)
	}
	return result.OK(toDTO(*b))
}

// GetByTitle returns books whose title equals title exactly.
func (s *Service) GetByTitle(ctx context.Context, title string, page, size int) result.Result[[]Book] {
	books, err := s.repo.Term(ctx, "title", title, s.page(page, size))
	return s.listResult(books, err)
}

// GetByTitles returns books whose title equals any of titles.
func (s *Service) GetByTitles(ctx context.Context, titles []string, page, size int) result.Result[[]Book] {
	books, err := s.repo.Terms(ctx, "title", titles, s.page(page, size))
	return s.listResult(books, err)
}

// GetByPublishDate returns books published on the given calendar day.
func (s *Service) GetByPublishDate(ctx context.Context, day time.Time, page, size int) result.Result[[]Book] {
	start := day.Truncate(24 * time.Hour)
	books, err := s.repo.DateRange(ctx, "publishdate", start, start.AddDate(0, 0, 1), s.page(page, size))
	return s.listResult(books, err)
}

// GetByAbstract runs a full-text match against book abstracts.
func (s *Service) GetByAbstract(ctx context.Context, text string, page, size int) result.Result[[]Book] {
	books, err := s.repo.FullTextMatch(ctx, "abstract", text, abstractMaxEdits, s.page(page, size))
	return s.listResult(books, err)
}

// GetByCategory returns books tagged with the category.
func (s *Service) GetByCategory(ctx context.Context, category string, page, size int) result.Result[[]Book] {
	books, err := s.repo.Term(ctx, "categories", category, s.page(page, size))
	return s.listResult(books, err)
}

// GetByPriceRange returns books priced within [min, max].
func (s *Service) GetByPriceRange(ctx context.Context, min, max float64, page, size int) result.Result[[]Book] {
	books, err := s.repo.NumberRange(ctx, "price", min, max, s.page(page, size))
	return s.listResult(books, err)
}

// GetByTitleWildcard returns books whose title matches the glob pattern.
func (s *Service) GetByTitleWildcard(ctx context.Context, pattern string, page, size int) result.Result[[]Book] {
	books, err := s.repo.Wildcard(ctx, "title", pattern, s.page(page, size))
	return s.listResult(books, err)
}

// Search runs the single-box search over titles and abstracts.
func (s *Service) Search(ctx context.Context, text string, page, size int) result.Result[[]Book] {
	if text == "" {
		return result.BadRequest[[]Book](msgTextRequired)
	}
	books, err := s.repo.SearchText(ctx, text, s.page(page, size))
	return s.listResult(books, err)
}

// Filter runs a multi-criteria search. A nil filter returns everything.
func (s *Service) Filter(ctx context.Context, f *Filter) result.Result[[]Book] {
	var model *domain.SearchBookFilter
	if f != nil {
		model = f.toDomain()
	}
	books, err := s.repo.Filter(ctx, model)
	return s.listResult(books, err)
}

// Create indexes a new book and returns it with the assigned id.
func (s *Service) Create(ctx context.Context, in Book) result.Result[Book] {
	if in.Title == "" {
		return result.BadRequest[Book](msgTitleRequired)
	}
	b := fromDTO(in)
	if err := s.repo.Index(ctx, &b); err != nil {
		return result.BadRequest[Book](msgCreateFailed)
	}
	return result.OK(toDTO(b))
}

// Update overwrites the book with the given id.
func (s *Service) Update(ctx context.Context, id string, in Book) result.Result[Book] {
	if id == "" {
		return result.BadRequest[Book](msgIDRequired)
	}
	b := fromDTO(in)
	b.ID = id
	if err := s.repo.Update(ctx, &b); err != nil {
		return result.BadRequest[Book](msgUpdateFailed)
	}
	return result.OK(toDTO(b))
}

// Delete removes the book permanently.
func (s *Service) Delete(ctx context.Context, id string) result.Result[bool] {
	return s.deleteResult(ctx, id, s.repo.Delete)
}

// SoftDelete deactivates the book but keeps the document.
func (s *Service) SoftDelete(ctx context.Context, id string) result.Result[bool] {
	return s.deleteResult(ctx, id, s.repo.SoftDelete)
}

func (s *Service) deleteResult(ctx context.Context, id string, op func(context.Context, string) (bool, error)) result.Result[bool] {
	if id == "" {
		return result.BadRequest[bool](msgIDRequired)
	}
	ok, err := op(ctx, id)
	if err != nil {
		return result.BadRequest[bool](msgDeleteFailed)
	}
	if !ok {
		return result.NoContent[bool](msgNotFound)
	}
	return result.OK(true)
}

// listResult collapses engine failures and empty result sets into the same
// empty envelope.
func (s *Service) listResult(books []domain.Book, err error) result.Result[[]Book] {
	if err != nil || len(books) == 0 {
		return result.NoContent[[]Book](msgNoneFound)
	}
	return result.OK(toDTOs(books))
}

func (s *Service) page(page, size int) query.Page {
	if size <= 0 {
		size = s.pageSize
	}
	return query.Page{Size: size, Number: page}.Normalize()
}
