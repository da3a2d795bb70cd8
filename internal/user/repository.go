package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pcstore-be/internal/db"
	"pcstore-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, name, email, password, role string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)

	GetProfile(ctx context.Context, userID string) (*Profile, error)
	CreateProfile(ctx context.Context, p *Profile) (*Profile, error)
	UpdateProfile(ctx context.Context, userID string, params UpdateProfileParams) (*Profile, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name, email, password, role string) (*User, error) {
	log := logger.FromCtx(ctx)

	u := User{ID: uuid.NewString()}
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO users (id, name, email, password, role) VALUES ($1, $2, $3, $4, $5) RETURNING name, email, password, role, created_at",
		u.ID, name, email, password, role,
	).Scan(&u.Name, &u.Email, &u.Password, &u.Role, &u.CreatedAt)

	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		log.Error("db: failed to insert user",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return &u, nil
}

func (r *repository) findOne(ctx context.Context, where string, arg string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, email, password, role, created_at FROM users WHERE "+where+" = $1",
		arg,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, "email", email)
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	return r.findOne(ctx, "id", id)
}

const profileColumns = `p.user_id, p.full_name, p.phone, p.address, p.avatar_url, p.updated_at, u.email`

// GetProfile fetches a user's profile by user ID.
func (r *repository) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetProfile"),
		zap.String("user_id", userID),
	)

	query := `
		SELECT ` + profileColumns + `
		FROM profiles p
		INNER JOIN users u ON p.user_id = u.id
		WHERE p.user_id = $1
	`

	var p Profile
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.FullName, &p.Phone, &p.Address, &p.AvatarURL, &p.UpdatedAt, &p.Email,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Info("profile not found")
			return nil, ErrProfileNotFound
		}
		log.Error("failed to scan profile", zap.Error(err))
		return nil, err
	}

	return &p, nil
}

// CreateProfile creates an empty-or-seeded profile row for a user.
func (r *repository) CreateProfile(ctx context.Context, p *Profile) (*Profile, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateProfile"),
		zap.String("user_id", p.UserID),
	)

	query := `
		INSERT INTO profiles (user_id, full_name, phone, address, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		p.UserID, p.FullName, p.Phone, p.Address, p.AvatarURL,
	).Scan(&p.UpdatedAt)
	if err != nil {
		log.Error("failed to create profile", zap.Error(err))
		return nil, err
	}

	log.Info("profile created")
	return p, nil
}

// UpdateProfile keeps existing values for nil params.
func (r *repository) UpdateProfile(ctx context.Context, userID string, params UpdateProfileParams) (*Profile, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdateProfile"),
		zap.String("user_id", userID),
	)

	query := `
		UPDATE profiles
		SET full_name = COALESCE($2, full_name),
			phone = COALESCE($3, phone),
			address = COALESCE($4, address),
			avatar_url = COALESCE($5, avatar_url),
			updated_at = NOW()
		WHERE user_id = $1
		RETURNING user_id, full_name, phone, address, avatar_url, updated_at
	`

	var p Profile
	err := r.db.QueryRowContext(ctx, query,
		userID, params.FullName, params.Phone, params.Address, params.AvatarURL,
	).Scan(&p.UserID, &p.FullName, &p.Phone, &p.Address, &p.AvatarURL, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		log.Error("failed to update profile", zap.Error(err))
		return nil, err
	}

	return &p, nil
}
