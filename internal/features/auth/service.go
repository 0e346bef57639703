package auth

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/xyz-asif/studycoach/internal/pkg/logger"
	"github.com/xyz-asif/studycoach/internal/pkg/password"
	apperrors "github.com/xyz-asif/studycoach/pkg/errors"
)

// Store is the persistence the auth service needs
type Store interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, userID string) (*User, error)
	Update(ctx context.Context, userID string, updates bson.M) (*User, error)
	Delete(ctx context.Context, userID string) (bool, error)
}

// TokenIssuer mints session tokens for a user id
type TokenIssuer interface {
	Generate(userID string) (string, error)
}

// Service implements account registration, login and maintenance.
// Input strength and format rules are enforced by the handlers.
type Service struct {
	store  Store
	tokens TokenIssuer
}

func NewService(store Store, tokens TokenIssuer) *Service {
	return &Service{store: store, tokens: tokens}
}

func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (*AuthResponse, error) {
	existing, err := s.store.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, fmt.Errorf("lookup email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrEmailTaken
	}

	hashed, err := password.Hash(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		Email:          cmd.Email,
		Password:       hashed,
		Name:           cmd.Name,
		StudentProfile: cmd.StudentProfile,
	}
	if err := s.store.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Ctx(ctx).Info().Str("user_id", user.ID.Hex()).Msg("User registered")
	return s.issue(user)
}

// Login fails with ErrInvalidCredentials for both unknown emails and wrong passwords
func (s *Service) Login(ctx context.Context, cmd LoginCommand) (*AuthResponse, error) {
	user, err := s.store.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, fmt.Errorf("lookup email: %w", err)
	}
	if user == nil {
		password.CompareDummy(cmd.Password)
		return nil, apperrors.ErrInvalidCredentials
	}

	ok, err := password.Compare(user.Password, cmd.Password)
	if err != nil {
		logger.Ctx(ctx).Warn().Err(err).Str("user_id", user.ID.Hex()).Msg("Stored password hash is unreadable")
		return nil, apperrors.ErrInvalidCredentials
	}
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(user)
}

// GetCurrentUser returns nil, nil when the account no longer exists
func (s *Service) GetCurrentUser(ctx context.Context, userID string) (*User, error) {
	return s.store.FindByID(ctx, userID)
}

// UpdateUser returns nil, nil when the account does not exist
func (s *Service) UpdateUser(ctx context.Context, userID string, cmd UpdateUserCommand) (*User, error) {
	current, err := s.store.FindByID(ctx, userID)
	if err != nil || current == nil {
		return nil, err
	}

	updates := bson.M{}
	if cmd.Name != nil {
		updates["name"] = *cmd.Name
	}
	if cmd.Email != nil {
		email := NormalizeEmail(*cmd.Email)
		if email != current.Email {
			other, err := s.store.FindByEmail(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("lookup email: %w", err)
			}
			if other != nil && other.ID != current.ID {
				return nil, apperrors.ErrEmailInUse
			}
		}
		updates["email"] = email
	}
	if len(updates) == 0 {
		return current, nil
	}

	return s.store.Update(ctx, userID, updates)
}

func (s *Service) UpdatePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.ErrUserNotFound
	}

	ok, err := password.Compare(user.Password, oldPassword)
	if err != nil || !ok {
		return apperrors.ErrIncorrectPassword
	}

	hashed, err := password.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	updated, err := s.store.Update(ctx, userID, bson.M{"password": hashed})
	if err != nil {
		return err
	}
	if updated == nil {
		return apperrors.ErrUserNotFound
	}

	logger.Ctx(ctx).Info().Str("user_id", userID).Msg("Password changed")
	return nil
}

// DeleteUser reports false when there was nothing to delete
func (s *Service) DeleteUser(ctx context.Context, userID string) (bool, error) {
	deleted, err := s.store.Delete(ctx, userID)
	if err != nil {
		return false, err
	}
	if deleted {
		logger.Ctx(ctx).Info().Str("user_id", userID).Msg("User deleted")
	}
	return deleted, nil
}

func (s *Service) issue(user *User) (*AuthResponse, error) {
	tok, err := s.tokens.Generate(user.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &AuthResponse{User: user, Token: tok}, nil
}
