package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"LostFoundAPI/internal/config"
	"LostFoundAPI/internal/constant"
	"LostFoundAPI/internal/entity"
	"LostFoundAPI/internal/helper"
	"LostFoundAPI/internal/model"
	"LostFoundAPI/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"google.golang.org/api/idtoken"
)

type AuthService struct {
	users     UserStore
	cfg       *config.AppConfig
	validator *validator.Validate
}

func NewAuthService(users UserStore, cfg *config.AppConfig, validator *validator.Validate) *AuthService {
	return &AuthService{
		users:     users,
		cfg:       cfg,
		validator: validator,
	}
}

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Register validation failed", "error", err)
		return nil, helper.NewBadRequestError("")
	}

	hash, err := helper.HashPassword(req.Password)
	if err != nil {
		slog.Error("Failed to hash password", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	user := &entity.User{
		Username:     req.Username,
		Email:        strings.ToLower(req.Email),
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Roles:        []string{constant.RoleUser},
		Active:       true,
	}

	user, err = s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrUserDuplicate) {
			return nil, helper.NewConflictError("Username or email already taken")
		}
		slog.Error("Failed to create user", "error", err)
		return nil, helper.NewServiceUnavailableError("")
	}

	return s.buildAuthResponse(user)
}

func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Login validation failed", "error", err)
		return nil, helper.NewBadRequestError("")
	}

	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, helper.NewUnauthorizedError("Invalid username or password")
		}
		slog.Error("Failed to query user", "error", err)
		return nil, helper.NewServiceUnavailableError("")
	}

	if !helper.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, helper.NewUnauthorizedError("Invalid username or password")
	}
	if !user.Active {
		return nil, helper.NewUnauthorizedError("Account is deactivated")
	}

	return s.buildAuthResponse(user)
}

// GoogleExchange validates a client-obtained Google ID token and signs the
// caller in, creating an account on first contact.
func (s *AuthService) GoogleExchange(ctx context.Context, req model.GoogleLoginRequest) (*model.AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Google exchange validation failed", "error", err)
		return nil, helper.NewBadRequestError("")
	}
	if s.cfg.GoogleClientID == "" {
		return nil, helper.NewServiceUnavailableError("Google sign-in is not configured")
	}

	payload, err := idtoken.Validate(ctx, req.IDToken, s.cfg.GoogleClientID)
	if err != nil {
		slog.Warn("Failed to validate Google ID token", "error", err)
		return nil, helper.NewUnauthorizedError("")
	}

	email, ok := payload.Claims["email"].(string)
	if !ok || email == "" {
		slog.Warn("Email not found in Google token claims")
		return nil, helper.NewBadRequestError("")
	}
	email = strings.ToLower(email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		slog.Error("Failed to query user", "error", err)
		return nil, helper.NewServiceUnavailableError("")
	}

	if user == nil {
		firstName, _ := payload.Claims["given_name"].(string)
		lastName, _ := payload.Claims["family_name"].(string)

		user = &entity.User{
			Username:  usernameFromEmail(email),
			Email:     email,
			FirstName: firstName,
			LastName:  lastName,
			Roles:     []string{constant.RoleUser},
			Active:    true,
		}

		created, err := s.users.Create(ctx, user)
		if errors.Is(err, repository.ErrUserDuplicate) {
			// username collision with another account; retry with a suffix
			user.ID = primitive.NilObjectID
			user.Username = usernameFromEmail(email) + uuid.NewString()[:8]
			created, err = s.users.Create(ctx, user)
		}
		if err != nil {
			slog.Error("Failed to create user", "error", err)
			return nil, helper.NewServiceUnavailableError("")
		}
		user = created
	}

	if !user.Active {
		return nil, helper.NewUnauthorizedError("Account is deactivated")
	}

	return s.buildAuthResponse(user)
}

// VerifyUser resolves a bearer token into the request principal.
func (s *AuthService) VerifyUser(ctx context.Context, tokenString string) (*model.UserDTO, error) {
	claims, err := helper.ParseJWT(s.cfg.JWTSecret, tokenString)
	if err != nil {
		return nil, helper.NewUnauthorizedError("")
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, helper.NewUnauthorizedError("")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, helper.NewUnauthorizedError("")
		}
		slog.Error("Failed to load principal", "error", err)
		return nil, helper.NewServiceUnavailableError("")
	}
	if !user.Active {
		return nil, helper.NewUnauthorizedError("")
	}

	return &model.UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Roles:    user.Roles,
	}, nil
}

func (s *AuthService) Me(ctx context.Context, principal *model.UserDTO) (*model.UserResponse, error) {
	if principal == nil {
		return nil, helper.NewUnauthorizedError("")
	}

	user, err := s.users.FindByID(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, helper.NewNotFoundError("")
		}
		slog.Error("Failed to load user", "error", err)
		return nil, helper.NewServiceUnavailableError("")
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *AuthService) buildAuthResponse(user *entity.User) (*model.AuthResponse, error) {
	token, err := helper.GenerateJWT(s.cfg.JWTSecret, s.cfg.JWTExp, user.ID.Hex())
	if err != nil {
		slog.Error("Failed to generate JWT token", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	return &model.AuthResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func toUserResponse(user *entity.User) model.UserResponse {
	return model.UserResponse{
		ID:        user.ID.Hex(),
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Roles:     user.Roles,
		Active:    user.Active,
	}
}

func usernameFromEmail(email string) string {
	return strings.Split(email, "@")[0]
}
