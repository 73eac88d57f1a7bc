package domain

import "time"

// Author is an indexed author document. The relation to books is
// many-to-many and denormalized: the embedded copies are the caller's
// responsibility to keep consistent.
type Author struct {
	Audit

	FirstName string    `json:"firstname"`
	LastName  string    `json:"lastname"`
	BirthDate time.Time `json:"birthdate"`
	Books     []Book    `json:"books,omitempty"`
}

// Book is an indexed book document with a denormalized author embed.
type Book struct {
	Audit

	Title       string    `json:"title"`
	Abstract    string    `json:"abstract"`
	Price       float64   `json:"price"`
	Stock       uint      `json:"stock"`
	PublishDate time.Time `json:"publishdate"`
	Categories  []string  `json:"categories,omitempty"`
	Author      *Author   `json:"author,omitempty"`
}

// SearchBookFilter is a multi-criteria book search model. Every field is
// optional; absent fields contribute no query clause at all.
type SearchBookFilter struct {
	Title            string
	Abstract         string
	MinPrice         *float64
	MinStock         *uint
	PublishDateStart *time.Time
	Page             int
	PageSize         int
}
