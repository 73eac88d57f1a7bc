// Package catalog implements engine-backed repositories for the catalog
// documents. A single generic Repo carries every query and write operation;
// per-document repositories embed it and add their search assemblers.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kitaplik/kitaplik/internal/db"
	"github.com/kitaplik/kitaplik/internal/domain"
	"github.com/kitaplik/kitaplik/internal/query"
)

// engine is the consumer interface over the search engine client (ISP).
type engine interface {
	Search(ctx context.Context, index string, size, from int, q any) (*db.SearchResult, error)
	Get(ctx context.Context, index, id string) (*db.Hit, error)
	Index(ctx context.Context, index string, doc any) (string, error)
	Update(ctx context.Context, index, id string, partial any) error
	Delete(ctx context.Context, index, id string) error
}

// doc constrains P to be a pointer to T that carries the document
// capabilities. The repository works on values but stamps and restores
// identifiers through the pointer.
type doc[T any] interface {
	*T
	domain.Entity
}

// Repo is a generic engine-backed repository for one index.
type Repo[T any, P doc[T]] struct {
	engine engine
	index  string
	now    func() time.Time
}

// New creates a repository bound to an index.
func New[T any, P doc[T]](e engine, index string) *Repo[T, P] {
	return &Repo[T, P]{
		engine: e,
		index:  index,
		now:    time.Now,
	}
}

// WithClock overrides the time source. Tests use it for stable stamps.
func (r *Repo[T, P]) WithClock(now func() time.Time) *Repo[T, P] {
	r.now = now
	return r
}

// FieldValue pairs a field with an exact-match value.
type FieldValue struct {
	Field string
	Value string
}

// FieldTime pairs a field with a date bound.
type FieldTime struct {
	Field string
	Value time.Time
}

// FieldNumber pairs a field with a numeric bound.
type FieldNumber struct {
	Field string
	Value float64
}

// CompoundParams drives a four-role boolean query. Empty roles contribute
// no clause group.
type CompoundParams struct {
	// Equals clauses are hard exact-match requirements (AND, scoring).
	Equals []FieldValue
	// After clauses boost documents with field >= value without filtering.
	After []FieldTime
	// AtMost clauses exclude documents with field <= value.
	AtMost []FieldNumber
	// Filters are exact-match requirements that do not affect score.
	Filters []FieldValue
}

// MatchAll returns a page of every document in the index.
func (r *Repo[T, P]) MatchAll(ctx context.Context, p query.Page) ([]T, error) {
	return r.search(ctx, query.MatchAll(), p)
}

// GetByID returns the document with the given id, or (nil, nil) when the
// engine does not hold it. Absence is a valid outcome of a point lookup,
// not a failure.
func (r *Repo[T, P]) GetByID(ctx context.Context, id string) (*T, error) {
	hit, err := r.engine.Get(ctx, r.index, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s/%s: %w", r.index, id, err)
	}

	var out T
	if err := json.Unmarshal(hit.Source, &out); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", hit.ID, err)
	}
	P(&out).SetDocID(hit.ID)
	return &out, nil
}

// Term returns documents whose field equals value exactly, ignoring case.
func (r *Repo[T, P]) Term(ctx context.Context, field, value string, p query.Page) ([]T, error) {
	return r.search(ctx, query.Term(field, value), p)
}

// Terms returns documents whose field equals any of the values.
func (r *Repo[T, P]) Terms(ctx context.Context, field string, values []string, p query.Page) ([]T, error) {
	return r.search(ctx, query.Terms(field, values), p)
}

// Prefix returns documents whose field starts with value.
func (r *Repo[T, P]) Prefix(ctx context.Context, field, value string, p query.Page) ([]T, error) {
	return r.search(ctx, query.Prefix(field, value), p)
}

// DateRange returns documents with start <= field < end.
func (r *Repo[T, P]) DateRange(ctx context.Context, field string, start, end time.Time, p query.Page) ([]T, error) {
	return r.search(ctx, query.DateRange(field, start, end), p)
}

// NumberRange returns documents with min <= field <= max.
func (r *Repo[T, P]) NumberRange(ctx context.Context, field string, min, max float64, p query.Page) ([]T, error) {
	return r.search(ctx, query.NumberRange(field, min, max), p)
}

// Wildcard returns documents whose field matches the glob pattern.
func (r *Repo[T, P]) Wildcard(ctx context.Context, field, pattern string, p query.Page) ([]T, error) {
	return r.search(ctx, query.Wildcard(field, pattern), p)
}

// Fuzzy returns documents whose field is within maxEdits edits of value.
func (r *Repo[T, P]) Fuzzy(ctx context.Context, field, value string, maxEdits int, p query.Page) ([]T, error) {
	return r.search(ctx, query.Fuzzy(field, value, maxEdits), p)
}

// FullTextMatch runs an analyzed match against the field.
func (r *Repo[T, P]) FullTextMatch(ctx context.Context, field, text string, maxEdits int, p query.Page) ([]T, error) {
	return r.search(ctx, query.Match(field, text, maxEdits), p)
}

// Compound combines the four boolean roles from params into one query.
func (r *Repo[T, P]) Compound(ctx context.Context, params CompoundParams, p query.Page) ([]T, error) {
	var must, should, mustNot, filter []query.Query
	for _, fv := range params.Equals {
		must = append(must, query.Term(fv.Field, fv.Value))
	}
	for _, ft := range params.After {
		should = append(should, query.DateAfter(ft.Field, ft.Value))
	}
	for _, fn := range params.AtMost {
		mustNot = append(mustNot, query.NumberMax(fn.Field, fn.Value))
	}
	for _, fv := range params.Filters {
		filter = append(filter, query.TermFilter(fv.Field, fv.Value))
	}
	return r.search(ctx, query.Bool(must, should, mustNot, filter), p)
}

// Index stamps and submits a new document. The engine assigns the
// identifier; it is written back into the document before returning.
func (r *Repo[T, P]) Index(ctx context.Context, d P) error {
	d.StampCreated(r.now(), domain.IdentityFromContext(ctx))
	id, err := r.engine.Index(ctx, r.index, d)
	if err != nil {
		return fmt.Errorf("index %s: %w", r.index, err)
	}
	d.SetDocID(id)
	return nil
}

// Update stamps and submits the full document as a partial merge.
func (r *Repo[T, P]) Update(ctx context.Context, d P) error {
	d.StampUpdated(r.now(), domain.IdentityFromContext(ctx))
	if err := r.engine.Update(ctx, r.index, d.DocID(), d); err != nil {
		return fmt.Errorf("update %s/%s: %w", r.index, d.DocID(), err)
	}
	return nil
}

// Delete removes the document permanently. Returns false without error when
// the id is already gone.
func (r *Repo[T, P]) Delete(ctx context.Context, id string) (bool, error) {
	if err := r.engine.Delete(ctx, r.index, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("delete %s/%s: %w", r.index, id, err)
	}
	return true, nil
}

// SoftDelete deactivates the document in place, stamping the update. The
// document body stays in the index.
func (r *Repo[T, P]) SoftDelete(ctx context.Context, id string) (bool, error) {
	at := r.now()
	partial := map[string]any{
		"isactive":    false,
		"updateddate": at,
		"updatedby":   domain.IdentityFromContext(ctx),
	}
	if err := r.engine.Update(ctx, r.index, id, partial); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("soft delete %s/%s: %w", r.index, id, err)
	}
	return true, nil
}

// search runs the query and hydrates the hits. The identifier travels
// outside the document body, so it is restored from each hit after decoding.
// On failure the slice is empty but never nil.
func (r *Repo[T, P]) search(ctx context.Context, q query.Query, p query.Page) ([]T, error) {
	p = p.Normalize()
	res, err := r.engine.Search(ctx, r.index, p.Size, p.From(), q)
	if err != nil {
		return []T{}, fmt.Errorf("search %s: %w", r.index, err)
	}

	out := make([]T, len(res.Hits))
	for i, h := range res.Hits {
		if err := json.Unmarshal(h.Source, &out[i]); err != nil {
			return []T{}, fmt.Errorf("decode document %s: %w", h.ID, err)
		}
		P(&out[i]).SetDocID(h.ID)
	}
	return out, nil
}
