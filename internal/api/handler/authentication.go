package handler

import (
	"errors"
	"net/http"

	"github.com/inpulse/inpulse-api/internal/domain"
	"github.com/inpulse/inpulse-api/internal/usecases/authenticating"
	"github.com/inpulse/inpulse-api/pkg/apiErrors"
	"github.com/inpulse/inpulse-api/pkg/log"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		user, err := service.Register(r.Context(), &req)
		if err != nil {
			handleAuthError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, RegisterResponse{
			Message: "User registered successfully",
			UserID:  user.ID,
		})
	}
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		identifier := req.Email
		if identifier == "" {
			identifier = req.Username
		}

		token, err := service.Login(r.Context(), identifier, req.Password)
		if err != nil {
			handleAuthError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, LoginResponse{Token: token})
	}
}

func Logout(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		if err := service.Logout(r.Context(), claims); err != nil {
			handleAuthError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, MessageResponse{Message: "Logged out successfully"})
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		user, err := service.GetUserProfile(r.Context(), claims.UserID)
		if err != nil {
			handleAuthError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}

func UpdateMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		user, err := service.UpdateProfile(r.Context(), claims.UserID, &req)
		if err != nil {
			handleAuthError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}

func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.ChangePassword(r.Context(), claims.UserID, &req); err != nil {
			handleAuthError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, MessageResponse{Message: "Password updated successfully"})
	}
}

// handleAuthError traduz os erros de autenticação para o envelope da API
func handleAuthError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		if apiErrors.StatusFor(authErr.Code) >= http.StatusInternalServerError {
			log.ForContext(r.Context()).WithError(err).Error("auth: falha interna")
		}

		apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
		return
	}

	switch {
	case authenticating.IsCredentialsError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)
	case authenticating.IsTokenError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
	case errors.Is(err, authenticating.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("auth: erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar autenticação", nil)
	}
}
