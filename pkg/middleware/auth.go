package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/inpulse/inpulse-api/internal/domain"
	"github.com/inpulse/inpulse-api/internal/usecases/authenticating"
	"github.com/inpulse/inpulse-api/pkg/apiErrors"
	"github.com/inpulse/inpulse-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

var publicPaths = map[string]struct{}{
	"/healthcheck":       {},
	"/metrics":           {},
	"/api/auth/login":    {},
	"/api/auth/register": {},
}

// AuthMiddleware valida o bearer token e coloca as claims no contexto
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := publicPaths[r.URL.Path]; ok || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader || tokenString == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			claims, err := authService.ValidateToken(r.Context(), tokenString)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Debug("Token rejeitado")

				if errors.Is(err, authenticating.ErrRevokedToken) {
					apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Token revogado", nil)
					return
				}

				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Invalid token", nil)
				return
			}

			ctx := log.WithTenant(WithUser(r.Context(), claims), claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext retorna as claims do usuário autenticado
func UserFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok && claims != nil
}

// WithUser coloca as claims no contexto
func WithUser(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, ContextKeyUser, claims)
}
