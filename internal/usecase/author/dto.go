package author

import (
	"time"

	"github.com/kitaplik/kitaplik/internal/domain"
)

// Author is the author view served over the wire. Embedded books are
// flattened to break the author/book recursion at the boundary.
type Author struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstname"`
	LastName  string    `json:"lastname"`
	BirthDate time.Time `json:"birthdate"`
	Books     []Book    `json:"books,omitempty"`
	IsActive  bool      `json:"isactive"`
}

// Book is the embedded book view inside an author. No author backlink.
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	PublishDate time.Time `json:"publishdate"`
}

func toDTO(a domain.Author) Author {
	out := Author{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		BirthDate: a.BirthDate,
		IsActive:  a.IsActive,
	}
	for _, b := range a.Books {
		out.Books = append(out.Books, Book{
			ID:          b.ID,
			Title:       b.Title,
			Price:       b.Price,
			PublishDate: b.PublishDate,
		})
	}
	return out
}

func toDTOs(authors []domain.Author) []Author {
	out := make([]Author, 0, len(authors))
	for _, a := range authors {
		out = append(out, toDTO(a))
	}
	return out
}

func fromDTO(a Author) domain.Author {
	out := domain.Author{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		BirthDate: a.BirthDate,
	}
	out.ID = a.ID
	out.IsActive = a.IsActive
	for _, b := range a.Books {
		book := domain.Book{
			Title:       b.Title,
			Price:       b.Price,
			PublishDate: b.PublishDate,
		}
		book.ID = b.ID
		// The embed carries no flag of its own; a partial merge must not
		// deactivate the denormalized book copies.
		book.IsActive = true
		out.Books = append(out.Books, book)
	}
	return out
}
