package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pcstore-be/internal/logger"
	"pcstore-be/internal/utils"

	"go.uber.org/zap"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Generate(userID, email, role string) (string, error)
}

type Service interface {
	Register(ctx context.Context, input RegisterInput) (string, *User, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
	Me(ctx context.Context, userID string) (*User, error)
	GetOrCreateProfile(ctx context.Context, userID string) (*Profile, error)
	UpdateProfile(ctx context.Context, userID string, params UpdateProfileParams) (*Profile, error)
}

type service struct {
	repo   Repository
	tokens TokenIssuer
}

func NewService(repo Repository, tokens TokenIssuer) Service {
	return &service{repo: repo, tokens: tokens}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (string, *User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
	)

	email := strings.ToLower(strings.TrimSpace(input.Email))
	missing := utils.MissingFields([][2]string{
		{"name", input.Name},
		{"email", email},
		{"password", input.Password},
	})
	if len(missing) > 0 {
		return "", nil, fmt.Errorf("%w: missing %s", ErrInvalidUser, strings.Join(missing, ", "))
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", nil, err
	}

	u, err := s.repo.Create(ctx, strings.TrimSpace(input.Name), email, hashed, utils.RoleUser)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			log.Warn("email already registered", zap.String("email", email))
		} else {
			log.Error("failed to create user", zap.String("email", email), zap.Error(err))
		}
		return "", nil, err
	}

	token, err := s.tokens.Generate(u.ID, u.Email, u.Role)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("user_id", u.ID), zap.Error(err))
		return "", nil, err
	}

	log.Info("register service completed",
		zap.String("user_id", u.ID),
		zap.String("email", email),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, *User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
	)

	u, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			log.Error("failed to find user", zap.Error(err))
			return "", nil, err
		}
		log.Info("email not found")
		return "", nil, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		log.Info("password not match", zap.String("user_id", u.ID))
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(u.ID, u.Email, u.Role)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *service) Me(ctx context.Context, userID string) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}

// GetOrCreateProfile returns the user's profile, creating one seeded
// with the account name on first access.
func (s *service) GetOrCreateProfile(ctx context.Context, userID string) (*Profile, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetOrCreateProfile"),
		zap.String("user_id", userID),
	)

	p, err := s.repo.GetProfile(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrProfileNotFound) {
		log.Error("failed to get profile", zap.Error(err))
		return nil, err
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	p, err = s.repo.CreateProfile(ctx, &Profile{
		UserID:   userID,
		FullName: utils.StrPtr(u.Name),
		Email:    u.Email,
	})
	if err != nil {
		log.Error("failed to create profile", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID string, params UpdateProfileParams) (*Profile, error) {
	if _, err := s.GetOrCreateProfile(ctx, userID); err != nil {
		return nil, err
	}

	p, err := s.repo.UpdateProfile(ctx, userID, params)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update profile",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, err
	}

	logger.FromCtx(ctx).Info("profile updated", zap.String("user_id", userID))
	return p, nil
}
