package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nostalgic/nostalgic/types"
	"nostalgic/nostalgic/utils/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFunc func(string) (types.Identity, error)

func (f authFunc) Authenticate(tok string) (types.Identity, error) { return f(tok) }

var onlyGood = authFunc(func(tok string) (types.Identity, error) {
	if tok != "good" {
		return types.Identity{}, errors.New("bad token")
	}
	return types.Identity{Username: "alice"}, nil
})

func echoIdentity(w http.ResponseWriter, r *http.Request) {
	ident, ok := IdentityFrom(r.Context())
	if !ok {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	w.Write([]byte(ident.Username))
}

func TestAuthMiddleware(t *testing.T) {
	h := AuthMiddleware(onlyGood)(http.HandlerFunc(echoIdentity))

	cases := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"valid", "Bearer good", http.StatusOK, "alice"},
		{"lowercase scheme", "bearer good", http.StatusOK, "alice"},
		{"missing", "", http.StatusUnauthorized, "Not authenticated"},
		{"wrong scheme", "Basic good", http.StatusUnauthorized, "Not authenticated"},
		{"empty token", "Bearer ", http.StatusUnauthorized, "Not authenticated"},
		{"bad token", "Bearer nope", http.StatusUnauthorized, credentialsDetail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			require.Equal(t, tc.status, rr.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, tc.body, rr.Body.String())
				return
			}
			assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
			var resp types.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tc.body, resp.Detail)
		})
	}
}

func TestIdentityFromEmptyContext(t *testing.T) {
	_, ok := IdentityFrom(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}

func TestTrace(t *testing.T) {
	var seen string
	h := Trace(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.TraceID(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rr.Header().Get(TraceHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceHeader, "abc")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, "abc", seen)
	assert.Equal(t, "abc", rr.Header().Get(TraceHeader))
}

func TestRequestLogPassesThrough(t *testing.T) {
	h := RequestLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/x", nil))
	assert.Equal(t, http.StatusCreated, rr.Code)
}
