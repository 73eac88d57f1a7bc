package book

import (
	"time"

	"github.com/kitaplik/kitaplik/internal/domain"
)

// Book is the book view served over the wire. The embedded author is
// flattened to break the book/author recursion at the boundary.
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Abstract    string    `json:"abstract"`
	Price       float64   `json:"price"`
	Stock       uint      `json:"stock"`
	PublishDate time.Time `json:"publishdate"`
	Categories  []string  `json:"categories,omitempty"`
	Author      *Author   `json:"author,omitempty"`
	IsActive    bool      `json:"isactive"`
}

// Author is the embedded author view inside a book. No books backlink.
type Author struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstname"`
	LastName  string    `json:"lastname"`
	BirthDate time.Time `json:"birthdate"`
}

// Filter is the multi-criteria search request body.
type Filter struct {
	Title            string     `json:"title,omitempty"`
	Abstract         string     `json:"abstract,omitempty"`
	MinPrice         *float64   `json:"minprice,omitempty"`
	MinStock         *uint      `json:"minstock,omitempty"`
	PublishDateStart *time.Time `json:"publishdatestart,omitempty"`
	Page             int        `json:"page,omitempty"`
	PageSize         int        `json:"pagesize,omitempty"`
}

func toDTO(b domain.Book) Book {
	out := Book{
		ID:          b.ID,
		Title:       b.Title,
		Abstract:    b.Abstract,
		Price:       b.Price,
		Stock:       b.Stock,
		PublishDate: b.PublishDate,
		Categories:  b.Categories,
		IsActive:    b.IsActive,
	}
	if b.Author != nil {
		out.Author = &Author{
			ID:        b.Author.ID,
			FirstName: b.Author.FirstName,
			LastName:  b.Author.LastName,
			BirthDate: b.Author.BirthDate,
		}
	}
	return out
}

func toDTOs(books []domain.Book) []Book {
	out := make([]Book, 0, len(books))
	for _, b := range books {
		out = append(out, toDTO(b))
	}
	return out
}

func fromDTO(b Book) domain.Book {
	out := domain.Book{
		Title:       b.Title,
		Abstract:    b.Abstract,
		Price:       b.Price,
		Stock:       b.Stock,
		PublishDate: b.PublishDate,
		Categories:  b.Categories,
	}
	out.ID = b.ID
	out.IsActive = b.IsActive
	if b.Author != nil {
		author := domain.Author{
			FirstName: b.Author.FirstName,
			LastName:  b.Author.LastName,
			BirthDate: b.Author.BirthDate,
		}
		author.ID = b.Author.ID
		// The embed carries no flag of its own; a partial merge must not
		// deactivate the denormalized author copy.
		author.IsActive = true
		out.Author = &author
	}
	return out
}

func (f Filter) toDomain() *domain.SearchBookFilter {
	return &domain.SearchBookFilter{
		Title:            f.Title,
		Abstract:         f.Abstract,
		MinPrice:         f.MinPrice,
		MinStock:         f.MinStock,
		PublishDateStart: f.PublishDateStart,
		Page:             f.Page,
		PageSize:         f.PageSize,
	}
}
