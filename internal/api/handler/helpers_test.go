package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inpulse/inpulse-api/internal/api/handler/router"
	"github.com/inpulse/inpulse-api/internal/domain"
	"github.com/inpulse/inpulse-api/pkg/middleware"
)

var (
	ownerClaims  = &domain.Claims{UserID: "user-1", UserFirstName: "Ana", UserRole: domain.RoleOwner}
	memberClaims = &domain.Claims{UserID: "user-2", UserFirstName: "Bruno", UserRole: domain.RoleUser}
)

func newRequest(method, target, body string, claims *domain.Claims) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if claims != nil {
		req = req.WithContext(middleware.WithUser(req.Context(), claims))
	}
	return req
}

func serve(routes []router.Route, req *http.Request) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
