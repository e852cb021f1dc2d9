package repository

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/markethub/marketplace-service/internal/domain"
)

// SearchParams captures paginated tag search input. Page and Size carry
// already-defaulted values; skip is Page*Size.
type SearchParams struct {
	Term string
	Page int64
	Size int64
}

// ProductRepository encapsulates listing persistence.
type ProductRepository interface {
	Insert(ctx context.Context, product *domain.Product) (InsertResult, error)
	List(ctx context.Context) ([]domain.Product, error)
	ListByOwner(ctx context.Context, email string) ([]domain.Product, error)
	ListAccepted(ctx context.Context) ([]domain.Product, error)
	ListFeatured(ctx context.Context) ([]domain.Product, error)
	ListReported(ctx context.Context) ([]domain.Product, error)
	Search(ctx context.Context, params SearchParams) ([]domain.Product, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)
	Edit(ctx context.Context, id primitive.ObjectID, update domain.ProductUpdate) (UpdateResult, error)
	SetField(ctx context.Context, id primitive.ObjectID, field string, value any) (UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (DeleteResult, error)
	CountAccepted(ctx context.Context) (int64, error)
}

type productRepository struct {
	coll *mongo.Collection
}

// NewProductRepository returns a Mongo-backed implementation.
func NewProductRepository(coll *mongo.Collection) ProductRepository {
	return &productRepository{coll: coll}
}

func (r *productRepository) Insert(ctx context.Context, product *domain.Product) (InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, product)
	if err != nil {
		return InsertResult{}, err
	}
	return InsertResult{InsertedID: res.InsertedID}, nil
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	return r.find(ctx, bson.M{})
}

func (r *productRepository) ListByOwner(ctx context.Context, email string) ([]domain.Product, error) {
	return r.find(ctx, bson.M{"ownerEmail": email})
}

// ListAccepted returns accepted listings newest first. Both the predicate and
// the sort are pushed into the store query.
func (r *productRepository) ListAccepted(ctx context.Context) ([]domain.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	return r.find(ctx, bson.M{"status": domain.StatusAccepted}, opts)
}

func (r *productRepository) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	return r.find(ctx, bson.M{"featured": domain.FeaturedFeatured})
}

func (r *productRepository) ListReported(ctx context.Context) ([]domain.Product, error) {
	return r.find(ctx, bson.M{"report": domain.ReportReported})
}

func (r *productRepository) Search(ctx context.Context, params SearchParams) ([]domain.Product, error) {
	opts := options.Find().
		SetSkip(params.Page * params.Size).
		SetLimit(params.Size)
	return r.find(ctx, searchFilter(params.Term), opts)
}

// searchFilter matches accepted listings whose tags contain the term as a
// case-insensitive substring. The term is quoted so regex metacharacters in
// client input stay literal.
func searchFilter(term string) bson.M {
	return bson.M{
		"status": domain.StatusAccepted,
		"tags": bson.M{"$regex": primitive.Regex{
			Pattern: regexp.QuoteMeta(term),
			Options: "i",
		}},
	}
}

func (r *productRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	var product domain.Product
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Edit overwrites the editable fields and forces the moderation fields back
// to pending so the listing is re-reviewed.
func (r *productRepository) Edit(ctx context.Context, id primitive.ObjectID, update domain.ProductUpdate) (UpdateResult, error) {
	set := bson.M{
		"ownerEmail":             update.OwnerEmail,
		"product_name":           update.Name,
		"description":            update.Description,
		"image":                  update.Image,
		"tags":                   update.Tags,
		"facebook_external_link": update.FacebookLink,
		"google_external_link":   update.GoogleLink,
		"timestamp":              update.Timestamp,
		"status":                 domain.StatusPending,
		"featured":               domain.FeaturedPending,
		"report":                 domain.ReportPending,
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// SetField performs an unconditional single-field overwrite. There is no
// prior-value check; concurrent writers follow last-write-wins.
func (r *productRepository) SetField(ctx context.Context, id primitive.ObjectID, field string, value any) (UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{field: value}},
	)
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *productRepository) Delete(ctx context.Context, id primitive.ObjectID) (DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (r *productRepository) CountAccepted(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"status": domain.StatusAccepted})
}

func (r *productRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]domain.Product, error) {
	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
