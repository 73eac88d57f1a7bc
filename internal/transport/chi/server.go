// Package chi implements the HTTP boundary: routing, request decoding, and
// the envelope-to-status mapping.
package chi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kitaplik/kitaplik/internal/domain/result"
	authoruc "github.com/kitaplik/kitaplik/internal/usecase/author"
	bookuc "github.com/kitaplik/kitaplik/internal/usecase/book"
)

// Server exposes the author and book services over HTTP.
type Server struct {
	authors *authoruc.Service
	books   *bookuc.Service
	logger  *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(authors *authoruc.Service, books *bookuc.Service, logger *zap.Logger) *Server {
	return &Server{
		authors: authors,
		books:   books,
		logger:  logger,
	}
}

// Routes mounts every API route on the router.
func (s *Server) Routes(r chi.Router) {
	r.Route("/api/v1/authors", func(r chi.Router) {
		r.Get("/", s.listAuthors)
		r.Post("/", s.createAuthor)
		r.Get("/firstname/{name}", s.authorsByFirstName)
		r.Get("/firstnames", s.authorsByFirstNames)
		r.Get("/lastname-prefix/{prefix}", s.authorsByLastNamePrefix)
		r.Get("/born", s.authorsBornBetween)
		r.Get("/{id}", s.getAuthor)
		r.Put("/{id}", s.updateAuthor)
		r.Delete("/{id}", s.deleteAuthor)
		r.Post("/{id}/deactivate", s.deactivateAuthor)
	})

	r.Route("/api/v1/books", func(r chi.Router) {
		r.Get("/", s.listBooks)
		r.Post("/", s.createBook)
		r.Get("/title/{title}", s.booksByTitle)
		r.Get("/titles", s.booksByTitles)
		r.Get("/publishdate/{date}", s.booksByPublishDate)
		r.Get("/abstract", s.booksByAbstract)
		r.Get("/category/{category}", s.booksByCategory)
		r.Get("/price", s.booksByPriceRange)
		r.Get("/title-wildcard", s.booksByTitleWildcard)
		r.Get("/search", s.searchBooks)
		r.Post("/filter", s.filterBooks)
		r.Get("/{id}", s.getBook)
		r.Put("/{id}", s.updateBook)
		r.Delete("/{id}", s.deleteBook)
		r.Post("/{id}/deactivate", s.deactivateBook)
	})
}

// --- Author handlers ---

func (s *Server) listAuthors(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	writeResult(w, s.authors.GetAll(r.Context(), page, size))
}

func (s *Server) getAuthor(w http.ResponseWriter, r *http.Request) {
	writeResult(w, s.authors.GetByID(r.Context(), chi.URLParam(r, "id")))
}

func (s *Server) authorsByFirstName(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	writeResult(w, s.authors.GetByFirstName(r.Context(), chi.URLParam(r, "name"), page, size))
}

func (s *Server) authorsByFirstNames(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	names := r.URL.Query()["name"]
	writeResult(w, s.authors.GetByFirstNames(r.Context(), names, page, size))
}

func (s *Server) authorsByLastNamePrefix(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	writeResult(w, s.authors.GetByLastNamePrefix(r.Context(), chi.URLParam(r, "prefix"), page, size))
}

func (s *Server) authorsBornBetween(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		writeResult(w, result.BadRequest[[]authoruc.Author]("start must be RFC3339"))
		return
	}
	end, err := time.Parse(time.RFC3339, r.URL.Query().Get("end"))
	if err != nil {
		writeResult(w, result.BadRequest[[]authoruc.Author]("end must be RFC3339"))
		return
	}
	page, size := pageParams(r)
	writeResult(w, s.authors.GetBornBetween(r.Context(), start, end, page, size))
}

func (s *Server) createAuthor(w http.ResponseWriter, r *http.Request) {
	in, err := decodeAuthor(r)
	if err != nil {
		writeResult(w, result.BadRequest[authoruc.Author]("invalid request body"))
		return
	}
	writeResult(w, s.authors.Create(r.Context(), in))
}

func (s *Server) updateAuthor(w http.ResponseWriter, r *http.Request) {
	in, err := decodeAuthor(r)
	if err != nil {
		writeResult(w, result.BadRequest[authoruc.Author]("invalid request body"))
		return
	}
	writeResult(w, s.authors.Update(r.Context(), chi.URLParam(r, "id"), in))
}

func (s *Server) deleteAuthor(w http.ResponseWriter, r *http.Request) {
	writeResult(w, s.authors.Delete(r.Context(), chi.URLParam(r, "id")))
}

func (s *Server) deactivateAuthor(w http.ResponseWriter, r *http.Request) {
	writeResult(w, s.authors.SoftDelete(r.Context(), chi.URLParam(r, "id")))
}

// --- Book handlers ---

func (s *Server) listBooks(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	writeResult(w, s.books.GetAll(r.Context(), page, size))
}

func (s *Server) getBook(w http.ResponseWriter, r *http.Request) {
	writeResult(w, s.books.GetByID(r.Context(), chi.URLParam(r, "id")))
}

func (s *Server) booksByTitle(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	writeResult(w, s.books.GetByTitle(r.Context(), chi.URLParam(r, "title"), page, size))
}

func (s *Server) booksByTitles(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	titles := r.URL.Query()["title"]
	writeResult(w, s.books.GetByTitles(r.Context(), titles, page, size))
}

func (s *Server) booksByPublishDate(w http.ResponseWriter, r *http.Request) {
	day, err := time.Parse("2006-01-02", chi.URLParam(r, "date"))
	if err != nil {
		writeResult(w, result.BadRequest[[]bookuc.Book]("date must be YYYY-MM-DD"))
		return
	}
	page, size := pageParams(r)
	writeResult(w, s.books.GetByPublishDate(r.Context(), day, page, size))
}

func (s *Server) booksByAbstract(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	writeResult(w, s.books.GetByAbstract(r.Context(), r.URL.Query().Get("text"), page, size))
}

func (s *Server) booksByCategory(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	writeResult(w, s.books.GetByCategory(r.Context(), chi.URLParam(r, "category"), page, size))
}

func (s *Server) booksByPriceRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	min, err := strconv.ParseFloat(q.Get("min"), 64)
	if err != nil {
		writeResult(w, result.BadRequest[[]bookuc.Book]("min must be a number"))
		return
	}
	max, err := strconv.ParseFloat(q.Get("max"), 64)
	if err != nil {
		writeResult(w, result.BadRequest[[]bookuc.Book]("max must be a number"))
		return
	}
	page, size := pageParams(r)
	writeResult(w, s.books.GetByPriceRange(r.Context(), min, max, page, size))
}

func (s *Server) booksByTitleWildcard(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	writeResult(w, s.books.GetByTitleWildcard(r.Context(), r.URL.Query().Get("pattern"), page, size))
}

func (s *Server) searchBooks(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	writeResult(w, s.books.Search(r.Context(), r.URL.Query().Get("text"), page, size))
}

func (s *Server) filterBooks(w http.ResponseWriter, r *http.Request) {
	var f bookuc.Filter
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		writeResult(w, result.BadRequest[[]bookuc.Book]("invalid request body"))
		return
	}
	writeResult(w, s.books.Filter(r.Context(), &f))
}

func (s *Server) createBook(w http.ResponseWriter, r *http.Request) {
	in, err := decodeBook(r)
	if err != nil {
		writeResult(w, result.BadRequest[bookuc.Book]("invalid request body"))
		return
	}
	writeResult(w, s.books.Create(r.Context(), in))
}

func (s *Server) updateBook(w http.ResponseWriter, r *http.Request) {
	in, err := decodeBook(r)
	if err != nil {
		writeResult(w, result.BadRequest[bookuc.Book]("invalid request body"))
		return
	}
	writeResult(w, s.books.Update(r.Context(), chi.URLParam(r, "id"), in))
}

func (s *Server) deleteBook(w http.ResponseWriter, r *http.Request) {
	writeResult(w, s.books.Delete(r.Context(), chi.URLParam(r, "id")))
}

func (s *Server) deactivateBook(w http.ResponseWriter, r *http.Request) {
	writeResult(w, s.books.SoftDelete(r.Context(), chi.URLParam(r, "id")))
}

// --- Helpers ---

// decodeAuthor decodes an author body. Documents are active unless the
// client says otherwise, so an omitted isactive must not read as false.
func decodeAuthor(r *http.Request) (authoruc.Author, error) {
	in := authoruc.Author{IsActive: true}
	err := json.NewDecoder(r.Body).Decode(&in)
	return in, err
}

// decodeBook decodes a book body with the same active-by-default rule.
func decodeBook(r *http.Request) (bookuc.Book, error) {
	in := bookuc.Book{IsActive: true}
	err := json.NewDecoder(r.Body).Decode(&in)
	return in, err
}

// pageParams reads ?page= and ?pageSize=; zero values defer to service
// defaults.
func pageParams(r *http.Request) (page, size int) {
	q := r.URL.Query()
	page, _ = strconv.Atoi(q.Get("page"))
	size, _ = strconv.Atoi(q.Get("pageSize"))
	return page, size
}

// writeResult maps the envelope onto the HTTP status and serializes it. An
// OK envelope with no payload carries nothing worth sending and becomes a
// bare 204. An empty read keeps its body (and the 200 code clients expect).
func writeResult[T any](w http.ResponseWriter, res result.Result[T]) {
	code := httpStatus(res)
	if code == http.StatusNoContent {
		w.WriteHeader(code)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(res)
}

func httpStatus[T any](res result.Result[T]) int {
	switch res.Status {
	case result.StatusOK:
		if res.Data == nil {
			return http.StatusNoContent
		}
		return http.StatusOK
	case result.StatusNoContent:
		return http.StatusOK
	case result.StatusBadRequest:
		return http.StatusBadRequest
	case result.StatusNotFound:
		return http.StatusNotFound
	case result.StatusUnauthorized:
		return http.StatusUnauthorized
	default:
		// An unknown status is a programming error. Fail loud instead of
		// guessing a code; the recoverer turns it into a 500.
		panic(fmt.Sprintf("unmapped result status %q", res.Status))
	}
}
