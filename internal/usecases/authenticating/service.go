package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/inpulse/inpulse-api/infrastructure/repository"
	"github.com/inpulse/inpulse-api/infrastructure/session"
	"github.com/inpulse/inpulse-api/internal/config"
	"github.com/inpulse/inpulse-api/internal/domain"
	"github.com/inpulse/inpulse-api/pkg/apiErrors"
	"github.com/inpulse/inpulse-api/pkg/log"
)

const defaultTokenTTL = 8 * time.Hour

type Authenticator interface {
	Register(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, identifier, password string) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error)
	Logout(ctx context.Context, claims *domain.Claims) error
	GetUserProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, req *domain.UpdateProfileRequest) (*domain.User, error)
	ChangePassword(ctx context.Context, userID string, req *domain.ChangePasswordRequest) error
}

type Service struct {
	userRepo    repository.UserRepository
	revocations session.RevocationStore
	secret      []byte
	tokenTTL    time.Duration
	hashCost    int
	now         func() time.Time
}

func NewService(userRepo repository.UserRepository, revocations session.RevocationStore, cfg config.Auth) Authenticator {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &Service{
		userRepo:    userRepo,
		revocations: revocations,
		secret:      []byte(cfg.Secret),
		tokenTTL:    ttl,
		hashCost:    bcrypt.DefaultCost,
		now:         time.Now,
	}
}

// Register cria o usuário dono e o seu workspace
func (s *Service) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error) {
	if req == nil || strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" ||
		strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome, sobrenome, email e senha são obrigatórios")
	}

	email := handleEmail(req.Email)

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, NewAuthError(pkgerrors.Wrap(err, ErrDatabaseOperation.Error()), apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao gerar hash da senha")
	}

	firstName := strings.TrimSpace(req.FirstName)
	user := &domain.User{
		ID:           uuid.NewString(),
		FirstName:    firstName,
		LastName:     strings.TrimSpace(req.LastName),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         domain.RoleOwner,
		Status:       domain.UserStatusVerified,
	}
	team := &domain.Team{
		ID:   uuid.NewString(),
		Name: fmt.Sprintf("%s's Workspace", firstName),
	}

	created, err := s.userRepo.CreateUserWithTeam(ctx, user, team)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
		}
		return nil, NewAuthError(pkgerrors.Wrap(err, ErrDatabaseOperation.Error()), apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	log.ForContext(ctx).Infof("auth: workspace %q criado para o usuário %s", team.Name, created.ID)

	created.PasswordHash = ""
	return created, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

// Login aceita o email como identificador, seja enviado como email ou username
func (s *Service) Login(ctx context.Context, identifier, password string) (string, error) {
	if strings.TrimSpace(identifier) == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, handleEmail(identifier))
	if err != nil {
		return "", NewAuthError(pkgerrors.Wrap(err, ErrDatabaseOperation.Error()), apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Credenciais inválidas ou conta não verificada")
	}

	if user.Status != domain.UserStatusVerified {
		return "", NewUserAuthError(ErrUserNotVerified, apiErrors.ErrInvalidCredentials, user.ID, "Credenciais inválidas ou conta não verificada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Senha incorreta")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	now := s.now()
	claims := domain.Claims{
		UserID:        user.ID,
		UserFirstName: user.FirstName,
		UserEmail:     user.Email,
		UserRole:      user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, pkgerrors.Wrap(ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	if s.revocations != nil {
		revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
		if err != nil {
			log.ForContext(ctx).WithError(err).Warn("auth: não foi possível consultar revogação do token")
			return nil, ErrInvalidToken
		}
		if revoked {
			return nil, ErrRevokedToken
		}
	}

	return claims, nil
}

// Logout revoga o token atual até a sua expiração
func (s *Service) Logout(ctx context.Context, claims *domain.Claims) error {
	if claims == nil || claims.ExpiresAt == nil {
		return ErrInvalidToken
	}

	if s.revocations == nil {
		return nil
	}

	return s.revocations.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}

func (s *Service) GetUserProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("auth: erro ao buscar perfil")
		return nil, pkgerrors.Wrap(err, ErrDatabaseOperation.Error())
	}

	if user == nil {
		return nil, ErrUserNotFound
	}

	user.PasswordHash = ""
	return user, nil
}

// UpdateProfile altera nome e sobrenome do usuário autenticado
func (s *Service) UpdateProfile(ctx context.Context, userID string, req *domain.UpdateProfileRequest) (*domain.User, error) {
	if req == nil || strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome e sobrenome são obrigatórios")
	}

	user, err := s.userRepo.UpdateProfile(ctx, userID, strings.TrimSpace(req.FirstName), strings.TrimSpace(req.LastName))
	if err != nil {
		return nil, NewUserAuthError(pkgerrors.Wrap(err, ErrDatabaseOperation.Error()), apiErrors.ErrDatabaseOperation, userID, "Erro ao atualizar perfil")
	}
	if user == nil {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "Usuário não encontrado")
	}

	user.PasswordHash = ""
	return user, nil
}

// ChangePassword confere a senha atual antes de gravar o novo hash
func (s *Service) ChangePassword(ctx context.Context, userID string, req *domain.ChangePasswordRequest) error {
	if req == nil || req.CurrentPassword == "" || req.NewPassword == "" {
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Senha atual e nova senha são obrigatórias")
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return NewUserAuthError(pkgerrors.Wrap(err, ErrDatabaseOperation.Error()), apiErrors.ErrDatabaseOperation, userID, "Erro ao consultar usuário")
	}
	if user == nil {
		return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "Usuário não encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, userID, "Senha atual incorreta")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.hashCost)
	if err != nil {
		return NewUserAuthError(pkgerrors.Wrap(err, "erro ao gerar hash da senha"), apiErrors.ErrInternalServer, userID, "Erro ao atualizar senha")
	}

	updated, err := s.userRepo.UpdatePassword(ctx, userID, string(hashedPassword))
	if err != nil {
		return NewUserAuthError(pkgerrors.Wrap(err, ErrDatabaseOperation.Error()), apiErrors.ErrDatabaseOperation, userID, "Erro ao atualizar senha")
	}
	if !updated {
		return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "Usuário não encontrado")
	}

	log.ForContext(ctx).Info("auth: senha alterada")
	return nil
}
