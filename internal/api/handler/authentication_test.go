package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/inpulse/inpulse-api/internal/domain"
	"github.com/inpulse/inpulse-api/internal/usecases/authenticating"
	"github.com/inpulse/inpulse-api/internal/usecases/authenticating/mocks"
	"github.com/inpulse/inpulse-api/pkg/apiErrors"
)

func TestRegister(t *testing.T) {
	t.Run("cria usuário", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)

		service.EXPECT().Register(gomock.Any(), &domain.RegisterRequest{
			FirstName: "Ana", LastName: "Souza", Email: "ana@inpulse.io", Password: "secret",
		}).Return(&domain.User{ID: "user-1"}, nil)

		rec := serve(Authentication(service), newRequest(http.MethodPost, "/api/auth/register",
			`{"firstName":"Ana","lastName":"Souza","email":"ana@inpulse.io","password":"secret"}`, nil))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"message":"User registered successfully","userId":"user-1"}`, rec.Body.String())
	})

	t.Run("email duplicado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)

		service.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, authenticating.NewAuthError(authenticating.ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado"))

		rec := serve(Authentication(service), newRequest(http.MethodPost, "/api/auth/register", `{"email":"ana@inpulse.io"}`, nil))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrUserAlreadyExists, decode[apiErrors.APIError](t, rec).Code)
	})

	t.Run("json inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)

		rec := serve(Authentication(service), newRequest(http.MethodPost, "/api/auth/register", `{`, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		identifier string
		token      string
		err        error
		wantStatus int
	}{
		{name: "por email", body: `{"email":"ana@inpulse.io","password":"secret"}`, identifier: "ana@inpulse.io", token: "jwt", wantStatus: http.StatusOK},
		{name: "por username", body: `{"username":"ana@inpulse.io","password":"secret"}`, identifier: "ana@inpulse.io", token: "jwt", wantStatus: http.StatusOK},
		{
			name:       "senha errada",
			body:       `{"email":"ana@inpulse.io","password":"x"}`,
			identifier: "ana@inpulse.io",
			err:        authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Senha incorreta"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "erro sem código",
			body:       `{"email":"ana@inpulse.io","password":"x"}`,
			identifier: "ana@inpulse.io",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockAuthenticator(ctrl)
			service.EXPECT().Login(gomock.Any(), tt.identifier, gomock.Any()).Return(tt.token, tt.err)

			rec := serve(Authentication(service), newRequest(http.MethodPost, "/api/auth/login", tt.body, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				assert.JSONEq(t, `{"token":"jwt"}`, rec.Body.String())
			}
		})
	}
}

func TestLogoutAndMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAuthenticator(ctrl)

	service.EXPECT().Logout(gomock.Any(), ownerClaims).Return(nil)
	rec := serve(Authentication(service), newRequest(http.MethodPost, "/api/auth/logout", "", ownerClaims))
	assert.Equal(t, http.StatusOK, rec.Code)

	service.EXPECT().GetUserProfile(gomock.Any(), "user-1").Return(&domain.User{ID: "user-1", FirstName: "Ana", PasswordHash: "hash"}, nil)
	rec = serve(Authentication(service), newRequest(http.MethodGet, "/api/user/me", "", ownerClaims))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hash")

	service.EXPECT().GetUserProfile(gomock.Any(), "user-1").Return(nil, authenticating.ErrUserNotFound)
	rec = serve(Authentication(service), newRequest(http.MethodGet, "/api/user/me", "", ownerClaims))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateMe(t *testing.T) {
	t.Run("atualiza nome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)

		service.EXPECT().UpdateProfile(gomock.Any(), "user-1", &domain.UpdateProfileRequest{FirstName: "Ana", LastName: "Lima"}).
			Return(&domain.User{ID: "user-1", FirstName: "Ana", LastName: "Lima"}, nil)

		rec := serve(Authentication(service), newRequest(http.MethodPut, "/api/user/me", `{"firstName":"Ana","lastName":"Lima"}`, ownerClaims))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Lima", decode[domain.User](t, rec).LastName)
	})

	t.Run("campos obrigatórios", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)

		service.EXPECT().UpdateProfile(gomock.Any(), "user-1", gomock.Any()).
			Return(nil, authenticating.NewAuthError(authenticating.ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome e sobrenome são obrigatórios"))

		rec := serve(Authentication(service), newRequest(http.MethodPut, "/api/user/me", `{"firstName":""}`, ownerClaims))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decode[apiErrors.APIError](t, rec).Code)
	})

	t.Run("sem usuário autenticado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)

		rec := serve(Authentication(service), newRequest(http.MethodPut, "/api/user/me", `{"firstName":"Ana"}`, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestChangePassword(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "senha alterada", wantStatus: http.StatusOK},
		{
			name:       "senha atual incorreta",
			err:        authenticating.NewUserAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "user-1", "Senha atual incorreta"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name:       "falha no banco",
			err:        authenticating.NewUserAuthError(errors.New("timeout"), apiErrors.ErrDatabaseOperation, "user-1", "Erro ao atualizar senha"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockAuthenticator(ctrl)

			service.EXPECT().ChangePassword(gomock.Any(), "user-1", &domain.ChangePasswordRequest{
				CurrentPassword: "old", NewPassword: "new",
			}).Return(tt.err)

			rec := serve(Authentication(service), newRequest(http.MethodPut, "/api/user/password",
				`{"currentPassword":"old","newPassword":"new"}`, ownerClaims))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decode[apiErrors.APIError](t, rec).Code)
				return
			}
			assert.JSONEq(t, `{"message":"Password updated successfully"}`, rec.Body.String())
		})
	}
}
