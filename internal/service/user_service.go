package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/markethub/marketplace-service/internal/domain"
	"github.com/markethub/marketplace-service/internal/repository"
)

// UserService coordinates the user directory.
type UserService struct {
	users repository.UserRepository
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register creates the account on first sign-in. A repeat call for an
// existing email is a no-op that reports exists=true with a nil inserted id;
// it is a defined business outcome, not an error.
func (s *UserService) Register(ctx context.Context, user *domain.User) (repository.InsertResult, bool, error) {
	_, err := s.users.GetByEmail(ctx, user.Email)
	if err == nil {
		return repository.InsertResult{InsertedID: nil}, true, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return repository.InsertResult{}, false, err
	}

	res, err := s.users.Insert(ctx, user)
	if err != nil {
		return repository.InsertResult{}, false, err
	}
	return res, false, nil
}

// List returns every account record.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// IsAdmin resolves the admin flag for an email. A missing record is simply
// not an admin.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

// IsModerator resolves the moderator flag for an email.
func (s *UserService) IsModerator(ctx context.Context, email string) (bool, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.IsModerator(), nil
}

// SetRole overwrites the role unconditionally. A filter matching zero
// documents surfaces as matchedCount 0, not an error.
func (s *UserService) SetRole(ctx context.Context, id primitive.ObjectID, role domain.Role) (repository.UpdateResult, error) {
	return s.users.SetRole(ctx, id, role)
}

// Delete removes the account.
func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) (repository.DeleteResult, error) {
	return s.users.Delete(ctx, id)
}
