package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/markethub/marketplace-service/internal/domain"
	"github.com/markethub/marketplace-service/internal/repository"
	apperrors "github.com/markethub/marketplace-service/pkg/util"
)

type setFieldCall struct {
	field string
	value any
}

type fakeProductRepo struct {
	products     map[primitive.ObjectID]*domain.Product
	inserted     []*domain.Product
	setCalls     []setFieldCall
	lastEdit     *domain.ProductUpdate
	searchParams *repository.SearchParams
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[primitive.ObjectID]*domain.Product{}}
}

func (f *fakeProductRepo) Insert(_ context.Context, product *domain.Product) (repository.InsertResult, error) {
	id := primitive.NewObjectID()
	product.ID = id
	f.products[id] = product
	f.inserted = append(f.inserted, product)
	return repository.InsertResult{InsertedID: id}, nil
}

func (f *fakeProductRepo) List(_ context.Context) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductRepo) ListByOwner(_ context.Context, email string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if p.OwnerEmail == email {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ListAccepted(_ context.Context) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if p.Status == domain.StatusAccepted {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ListFeatured(_ context.Context) ([]domain.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) ListReported(_ context.Context) ([]domain.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) Search(_ context.Context, params repository.SearchParams) ([]domain.Product, error) {
	f.searchParams = &params
	return nil, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return p, nil
}

func (f *fakeProductRepo) Edit(_ context.Context, id primitive.ObjectID, update domain.ProductUpdate) (repository.UpdateResult, error) {
	f.lastEdit = &update
	p, ok := f.products[id]
	if !ok {
		return repository.UpdateResult{}, nil
	}
	p.OwnerEmail = update.OwnerEmail
	p.Name = update.Name
	p.Status = domain.StatusPending
	p.Featured = domain.FeaturedPending
	p.Report = domain.ReportPending
	return repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeProductRepo) SetField(_ context.Context, id primitive.ObjectID, field string, value any) (repository.UpdateResult, error) {
	f.setCalls = append(f.setCalls, setFieldCall{field: field, value: value})
	if _, ok := f.products[id]; !ok {
		return repository.UpdateResult{}, nil
	}
	return repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id primitive.ObjectID) (repository.DeleteResult, error) {
	if _, ok := f.products[id]; !ok {
		return repository.DeleteResult{}, nil
	}
	delete(f.products, id)
	return repository.DeleteResult{DeletedCount: 1}, nil
}

func (f *fakeProductRepo) CountAccepted(_ context.Context) (int64, error) {
	var n int64
	for _, p := range f.products {
		if p.Status == domain.StatusAccepted {
			n++
		}
	}
	return n, nil
}

func TestSubmitForcesModerationDefaults(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, nil)

	product := &domain.Product{
		OwnerEmail: "alice@example.com",
		Name:       "widget",
		Status:     domain.StatusAccepted,
		Featured:   domain.FeaturedFeatured,
		Report:     domain.ReportReported,
		Vote:       42,
	}
	_, err := svc.Submit(context.Background(), product)
	require.NoError(t, err)

	require.Len(t, repo.inserted, 1)
	got := repo.inserted[0]
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Equal(t, domain.FeaturedPending, got.Featured)
	assert.Equal(t, domain.ReportPending, got.Report)
	assert.Zero(t, got.Vote)
	assert.False(t, got.Timestamp.IsZero())
}

func TestEditResetsModerationFields(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, nil)
	ctx := context.Background()

	product := &domain.Product{OwnerEmail: "alice@example.com", Name: "widget"}
	_, err := svc.Submit(ctx, product)
	require.NoError(t, err)

	// moderation happened in between
	repo.products[product.ID].Status = domain.StatusAccepted
	repo.products[product.ID].Featured = domain.FeaturedFeatured
	repo.products[product.ID].Report = domain.ReportReported

	res, err := svc.Edit(ctx, product.ID, domain.ProductUpdate{
		OwnerEmail: "alice@example.com",
		Name:       "widget v2",
		Timestamp:  time.Now(),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.MatchedCount)

	got := repo.products[product.ID]
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Equal(t, domain.FeaturedPending, got.Featured)
	assert.Equal(t, domain.ReportPending, got.Report)
}

func TestSetStatusRequiresValue(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, nil)

	_, err := svc.SetStatus(context.Background(), primitive.NewObjectID(), "  ")
	require.Error(t, err)

	var de *apperrors.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 400, de.HTTPStatus)
	assert.Empty(t, repo.setCalls)
}

func TestSetStatusAcceptsArbitraryStrings(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, nil)

	product := &domain.Product{Name: "widget"}
	_, err := svc.Submit(context.Background(), product)
	require.NoError(t, err)

	// the moderation client is trusted; no enum validation here
	res, err := svc.SetStatus(context.Background(), product.ID, "on-hold")
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.MatchedCount)
	require.Len(t, repo.setCalls, 1)
	assert.Equal(t, "status", repo.setCalls[0].field)
	assert.Equal(t, "on-hold", repo.setCalls[0].value)
}

func TestSearchAppliesPagingDefaults(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, nil)

	_, err := svc.Search(context.Background(), "shoes", -5, 0)
	require.NoError(t, err)

	require.NotNil(t, repo.searchParams)
	assert.Equal(t, "shoes", repo.searchParams.Term)
	assert.EqualValues(t, 0, repo.searchParams.Page)
	assert.EqualValues(t, DefaultSearchPageSize, repo.searchParams.Size)
}

func TestSearchPassesPaging(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, nil)

	_, err := svc.Search(context.Background(), "shoes", 1, 3)
	require.NoError(t, err)

	require.NotNil(t, repo.searchParams)
	assert.EqualValues(t, 1, repo.searchParams.Page)
	assert.EqualValues(t, 3, repo.searchParams.Size)
}

func TestSearchRejectsEmptyTerm(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), nil)

	_, err := svc.Search(context.Background(), "   ", 0, 3)
	require.Error(t, err)

	var de *apperrors.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 400, de.HTTPStatus)
}

func TestDeleteUnknownProductIsZeroCount(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), nil)

	res, err := svc.Delete(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	assert.Zero(t, res.DeletedCount)
}
