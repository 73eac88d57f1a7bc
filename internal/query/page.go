package query

// DefaultPageSize is the engine's native default result window.
const DefaultPageSize = 10

// Page is a 1-indexed pagination request.
type Page struct {
	Size   int
	Number int
}

// DefaultPage returns the first page with the default size.
func DefaultPage() Page {
	return Page{Size: DefaultPageSize, Number: 1}
}

// Normalize replaces non-positive fields with defaults.
func (p Page) Normalize() Page {
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Number <= 0 {
		p.Number = 1
	}
	return p
}

// From returns the offset of the first result on the page.
func (p Page) From() int {
	return (p.Number - 1) * p.Size
}
