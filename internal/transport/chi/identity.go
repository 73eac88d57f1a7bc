package chi

import (
	"net/http"

	"github.com/kitaplik/kitaplik/internal/domain"
)

// identityHeader names the caller on write audit stamps. The gateway in
// front of this service authenticates the user and injects the header.
const identityHeader = "X-User-ID"

// IdentityMiddleware threads the caller identity from the request header
// into the context. Requests without the header stamp as the system user.
func IdentityMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := r.Header.Get(identityHeader); id != "" {
				r = r.WithContext(domain.ContextWithIdentity(r.Context(), id))
			}
			next.ServeHTTP(w, r)
		})
	}
}
