package catalog

import "github.com/kitaplik/kitaplik/internal/domain"

// AuthorRepo is the author repository. Authors need no custom assemblers;
// the generic operation set covers every author query.
type AuthorRepo struct {
	*Repo[domain.Author, *domain.Author]
}

// NewAuthorRepo creates an author repository bound to an index.
func NewAuthorRepo(e engine, index string) *AuthorRepo {
	return &AuthorRepo{Repo: New[domain.Author, *domain.Author](e, index)}
}
