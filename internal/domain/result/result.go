// Package result provides the uniform outcome envelope returned by every
// service-level operation.
package result

// Status classifies the outcome of a service call. The transport layer owns
// the mapping to HTTP status codes.
type Status string

const (
	StatusOK           Status = "ok"
	StatusNoContent    Status = "no_content"
	StatusBadRequest   Status = "bad_request"
	StatusNotFound     Status = "not_found"
	StatusUnauthorized Status = "unauthorized"
)

// Result is the envelope for a service outcome. Data is non-nil only for
// StatusOK with a non-null payload.
type Result[T any] struct {
	Status   Status   `json:"status"`
	Success  bool     `json:"success"`
	Messages []string `json:"messages"`
	Data     *T       `json:"data,omitempty"`
}

// OK wraps a successful payload.
func OK[T any](data T) Result[T] {
	return Result[T]{
		Status:   StatusOK,
		Success:  true,
		Messages: []string{},
		Data:     &data,
	}
}

// NoContent signals a succeeded call that found nothing.
func NoContent[T any](messages ...string) Result[T] {
	return Result[T]{
		Status:   StatusNoContent,
		Success:  true,
		Messages: normalize(messages),
	}
}

// BadRequest signals rejected input or a rejected write.
func BadRequest[T any](messages ...string) Result[T] {
	return Result[T]{
		Status:   StatusBadRequest,
		Success:  false,
		Messages: normalize(messages),
	}
}

// NotFound is part of the envelope taxonomy but not produced by the current
// services; other call sites may emit it.
func NotFound[T any](messages ...string) Result[T] {
	return Result[T]{
		Status:   StatusNotFound,
		Success:  false,
		Messages: normalize(messages),
	}
}

// Unauthorized is part of the envelope taxonomy but not produced by the
// current services.
func Unauthorized[T any](messages ...string) Result[T] {
	return Result[T]{
		Status:   StatusUnauthorized,
		Success:  false,
		Messages: normalize(messages),
	}
}

func normalize(messages []string) []string {
	if messages == nil {
		return []string{}
	}
	return messages
}
