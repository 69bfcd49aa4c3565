package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inpulse/inpulse-api/internal/domain"
)

func TestOwnerOrAdmin(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		claims     *domain.Claims
		wantStatus int
	}{
		{name: "sem usuário", wantStatus: http.StatusUnauthorized},
		{name: "owner", claims: &domain.Claims{UserID: "u-1", UserRole: domain.RoleOwner}, wantStatus: http.StatusOK},
		{name: "admin", claims: &domain.Claims{UserID: "u-2", UserRole: domain.RoleAdmin}, wantStatus: http.StatusOK},
		{name: "user", claims: &domain.Claims{UserID: "u-3", UserRole: domain.RoleUser}, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/cron/status", nil)
			if tt.claims != nil {
				req = req.WithContext(WithUser(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			OwnerOrAdmin()(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
