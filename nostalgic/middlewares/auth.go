package middlewares

import (
	"context"
	"net/http"
	"strings"

	"nostalgic/nostalgic/types"

	"github.com/go-chi/render"
)

type contextKey string

const IdentityKey contextKey = "identity"

const credentialsDetail = "Could not validate credentials"

// Authenticator resolves a bearer token to the caller's identity.
type Authenticator interface {
	Authenticate(token string) (types.Identity, error)
}

// Unauthorized writes the 401 shared by every protected route.
func Unauthorized(w http.ResponseWriter, r *http.Request, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, types.ErrorResponse{Detail: detail})
}

func bearerToken(header string) (string, bool) {
	scheme, tok, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	tok = strings.TrimSpace(tok)
	return tok, tok != ""
}

func AuthMiddleware(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				Unauthorized(w, r, "Not authenticated")
				return
			}
			ident, err := auth.Authenticate(tokenStr)
			if err != nil {
				Unauthorized(w, r, credentialsDetail)
				return
			}
			ctx := context.WithValue(r.Context(), IdentityKey, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFrom returns the identity stored by AuthMiddleware.
func IdentityFrom(ctx context.Context) (types.Identity, bool) {
	ident, ok := ctx.Value(IdentityKey).(types.Identity)
	return ident, ok
}
