// Package author implements the author service: input validation, repository
// calls, and envelope wrapping.
package author

import (
	"context"
	"time"

	"github.com/kitaplik/kitaplik/internal/domain"
	"github.com/kitaplik/kitaplik/internal/domain/result"
	"github.com/kitaplik/kitaplik/internal/query"
)

// Fixed envelope messages. Clients match on these strings.
const (
	msgNotFound     = "author not found"
	msgNoneFound    = "authors not found"
	msgIDRequired   = "author id is required"
	msgNameRequired = "author first name and last name are required"
	msgCreateFailed = "author could not be created"
	msgUpdateFailed = "author could not be updated"
	msgDeleteFailed = "author could not be deleted"
)

// Service handles author operations.
type Service struct {
	repo     Repository
	pageSize int
}

// New creates an author service.
func New(repo Repository, pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = query.DefaultPageSize
	}
	return &Service{repo: repo, pageSize: pageSize}
}

// GetAll returns a page of all authors.
func (s *Service) GetAll(ctx context.Context, page, size int) result.Result[[]Author] {
	authors, err := s.repo.MatchAll(ctx, s.page(page, size))
	return s.listResult(authors, err)
}

// GetByID returns a single author. A missing id and an engine failure both
// surface as an empty envelope.
func (s *Service) GetByID(ctx context.Context, id string) result.Result[Author] {
	if id == "" {
		return result.BadRequest[Author](msgIDRequired)
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil || a == nil {
		return result.NoContent[Author](msgNotFound)
	}
	return result.OK(toDTO(*a))
}

// GetByFirstName returns authors whose first name equals name exactly.
func (s *Service) GetByFirstName(ctx context.Context, name string, page, size int) result.Result[[]Author] {
	authors, err := s.repo.Term(ctx, "firstname", name, s.page(page, size))
	return s.listResult(authors, err)
}

// GetByFirstNames returns authors whose first name equals any of names.
func (s *Service) GetByFirstNames(ctx context.Context, names []string, page, size int) result.Result[[]Author] {
	authors, err := s.repo.Terms(ctx, "firstname", names, s.page(page, size))
	return s.listResult(authors, err)
}

// GetByLastNamePrefix returns authors whose last name starts with prefix.
func (s *Service) GetByLastNamePrefix(ctx context.Context, prefix string, page, size int) result.Result[[]Author] {
	authors, err := s.repo.Prefix(ctx, "lastname", prefix, s.page(page, size))
	return s.listResult(authors, err)
}

// GetBornBetween returns authors born in [start, end).
func (s *Service) GetBornBetween(ctx context.Context, start, end time.Time, page, size int) result.Result[[]Author] {
	authors, err := s.repo.DateRange(ctx, "birthdate", start, end, s.page(page, size))
	return s.listResult(authors, err)
}

// Create indexes a new author and returns it with the assigned id.
func (s *Service) Create(ctx context.Context, in Author) result.Result[Author] {
	if in.FirstName == "" || in.LastName == "" {
		return result.BadRequest[Author](msgNameRequired)
	}
	a := fromDTO(in)
	if err := s.repo.Index(ctx, &a); err != nil {
		return result.BadRequest[Author](msgCreateFailed)
	}
	return result.OK(toDTO(a))
}

// Update overwrites the author with the given id.
func (s *Service) Update(ctx context.Context, id string, in Author) result.Result[Author] {
	if id == "" {
		return result.BadRequest[Author](msgIDRequired)
	}
	a := fromDTO(in)
	a.ID = id
	if err := s.repo.Update(ctx, &a); err != nil {
		return result.BadRequest[Author](msgUpdateFailed)
	}
	return result.OK(toDTO(a))
}

// Delete removes the author permanently.
func (s *Service) Delete(ctx context.Context, id string) result.Result[bool] {
	return s.deleteResult(ctx, id, s.repo.Delete)
}

// SoftDelete deactivates the author but keeps the document.
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
// empty envelope. Callers cannot tell the two apart; the messages say so.
func (s *Service) listResult(authors []domain.Author, err error) result.Result[[]Author] {
	if err != nil || len(authors) == 0 {
		return result.NoContent[[]Author](msgNoneFound)
	}
	return result.OK(toDTOs(authors))
}

func (s *Service) page(page, size int) query.Page {
	if size <= 0 {
		size = s.pageSize
	}
	return query.Page{Size: size, Number: page}.Normalize()
}
