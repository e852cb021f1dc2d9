package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/markethub/marketplace-service/internal/domain"
	"github.com/markethub/marketplace-service/internal/repository"
)

type fakeUserRepo struct {
	byEmail  map[string]*domain.User
	inserted []*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Insert(_ context.Context, user *domain.User) (repository.InsertResult, error) {
	id := primitive.NewObjectID()
	user.ID = id
	f.byEmail[user.Email] = user
	f.inserted = append(f.inserted, user)
	return repository.InsertResult{InsertedID: id}, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	var users []domain.User
	for _, u := range f.byEmail {
		users = append(users, *u)
	}
	return users, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return user, nil
}

func (f *fakeUserRepo) SetRole(_ context.Context, id primitive.ObjectID, role domain.Role) (repository.UpdateResult, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			u.Role = role
			return repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return repository.UpdateResult{}, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id primitive.ObjectID) (repository.DeleteResult, error) {
	for email, u := range f.byEmail {
		if u.ID == id {
			delete(f.byEmail, email)
			return repository.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return repository.DeleteResult{}, nil
}

func (f *fakeUserRepo) EstimatedCount(_ context.Context) (int64, error) {
	return int64(len(f.byEmail)), nil
}

func TestRegisterNewUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	res, exists, err := svc.Register(context.Background(), &domain.User{Email: "alice@example.com"})
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NotNil(t, res.InsertedID)
	assert.Len(t, repo.inserted, 1)
}

func TestRegisterDuplicateEmailIsNoOp(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	_, _, err := svc.Register(context.Background(), &domain.User{Email: "alice@example.com"})
	require.NoError(t, err)

	res, exists, err := svc.Register(context.Background(), &domain.User{Email: "alice@example.com"})
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Nil(t, res.InsertedID)
	assert.Len(t, repo.inserted, 1, "second create must not insert")
}

func TestRoleChecks(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, &domain.User{Email: "admin@example.com", Role: domain.RoleAdmin})
	require.NoError(t, err)
	_, _, err = svc.Register(ctx, &domain.User{Email: "mod@example.com", Role: domain.RoleModerator})
	require.NoError(t, err)

	admin, err := svc.IsAdmin(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.True(t, admin)

	admin, err = svc.IsAdmin(ctx, "mod@example.com")
	require.NoError(t, err)
	assert.False(t, admin)

	moderator, err := svc.IsModerator(ctx, "mod@example.com")
	require.NoError(t, err)
	assert.True(t, moderator)

	// absent user is false, not an error
	admin, err = svc.IsAdmin(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, admin)
}

func TestSetRoleZeroMatch(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	res, err := svc.SetRole(context.Background(), primitive.NewObjectID(), domain.RoleAdmin)
	require.NoError(t, err)
	assert.Zero(t, res.MatchedCount)
}
