package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/markethub/marketplace-service/internal/domain"
	"github.com/markethub/marketplace-service/internal/events"
	"github.com/markethub/marketplace-service/internal/repository"
	apperrors "github.com/markethub/marketplace-service/pkg/util"
)

// Default search page size when the client sends nothing usable.
const DefaultSearchPageSize = 3

// ProductService coordinates the listing lifecycle.
type ProductService struct {
	products   repository.ProductRepository
	dispatcher events.Dispatcher
}

// NewProductService builds the service.
func NewProductService(products repository.ProductRepository, dispatcher events.Dispatcher) *ProductService {
	return &ProductService{products: products, dispatcher: dispatcher}
}

// Submit inserts a new listing. Whatever the client sent, the moderation
// fields start at pending and the vote count at zero.
func (s *ProductService) Submit(ctx context.Context, product *domain.Product) (repository.InsertResult, error) {
	product.Status = domain.StatusPending
	product.Featured = domain.FeaturedPending
	product.Report = domain.ReportPending
	product.Vote = 0
	if product.Timestamp.IsZero() {
		product.Timestamp = time.Now()
	}

	res, err := s.products.Insert(ctx, product)
	if err != nil {
		return repository.InsertResult{}, err
	}

	insertedID := ""
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		insertedID = oid.Hex()
	}
	s.publish(ctx, events.EventProductSubmitted, insertedID, events.ProductSubmittedPayload{
		OwnerEmail: product.OwnerEmail,
		Name:       product.Name,
	})
	return res, nil
}

// Edit overwrites the editable fields and sends the listing back through
// moderation: status, featured and report all reset to pending.
func (s *ProductService) Edit(ctx context.Context, id primitive.ObjectID, update domain.ProductUpdate) (repository.UpdateResult, error) {
	return s.products.Edit(ctx, id, update)
}

// SetStatus overwrites the status field. The value is required but otherwise
// unvalidated; the moderation client is trusted.
func (s *ProductService) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (repository.UpdateResult, error) {
	if strings.TrimSpace(status) == "" {
		return repository.UpdateResult{}, apperrors.NewValidationError("Please provide a valid status", nil)
	}
	res, err := s.products.SetField(ctx, id, "status", status)
	if err != nil {
		return repository.UpdateResult{}, err
	}
	s.publish(ctx, events.EventProductStatusChanged, id.Hex(), events.ProductStatusChangedPayload{
		Field:    "status",
		NewValue: status,
	})
	return res, nil
}

// SetFeatured overwrites the featured field.
func (s *ProductService) SetFeatured(ctx context.Context, id primitive.ObjectID, featured string) (repository.UpdateResult, error) {
	res, err := s.products.SetField(ctx, id, "featured", featured)
	if err != nil {
		return repository.UpdateResult{}, err
	}
	s.publish(ctx, events.EventProductStatusChanged, id.Hex(), events.ProductStatusChangedPayload{
		Field:    "featured",
		NewValue: featured,
	})
	return res, nil
}

// SetReport overwrites the report field.
func (s *ProductService) SetReport(ctx context.Context, id primitive.ObjectID, report string) (repository.UpdateResult, error) {
	res, err := s.products.SetField(ctx, id, "report", report)
	if err != nil {
		return repository.UpdateResult{}, err
	}
	s.publish(ctx, events.EventProductReported, id.Hex(), events.ProductReportedPayload{Report: report})
	return res, nil
}

// SetVote overwrites the vote count. Last write wins; there is no check
// against the prior value.
func (s *ProductService) SetVote(ctx context.Context, id primitive.ObjectID, vote int) (repository.UpdateResult, error) {
	return s.products.SetField(ctx, id, "vote", vote)
}

// Get fetches one listing.
func (s *ProductService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

// List returns every listing.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

// ListByOwner returns the caller's own listings.
func (s *ProductService) ListByOwner(ctx context.Context, email string) ([]domain.Product, error) {
	return s.products.ListByOwner(ctx, email)
}

// ListAccepted returns accepted listings, newest first.
func (s *ProductService) ListAccepted(ctx context.Context) ([]domain.Product, error) {
	return s.products.ListAccepted(ctx)
}

// ListFeatured returns listings flagged as featured.
func (s *ProductService) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	return s.products.ListFeatured(ctx)
}

// ListReported returns listings flagged as reported.
func (s *ProductService) ListReported(ctx context.Context) ([]domain.Product, error) {
	return s.products.ListReported(ctx)
}

// Search pages through accepted listings whose tags contain the term.
// Negative paging values fall back to the first page and default size.
func (s *ProductService) Search(ctx context.Context, term string, page, size int64) ([]domain.Product, error) {
	if strings.TrimSpace(term) == "" {
		return nil, apperrors.NewValidationError("Invalid search term", nil)
	}
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultSearchPageSize
	}
	return s.products.Search(ctx, repository.SearchParams{Term: term, Page: page, Size: size})
}

// Delete removes the listing. Deleting an unknown id yields deletedCount 0.
func (s *ProductService) Delete(ctx context.Context, id primitive.ObjectID) (repository.DeleteResult, error) {
	res, err := s.products.Delete(ctx, id)
	if err != nil {
		return repository.DeleteResult{}, err
	}
	s.publish(ctx, events.EventProductDeleted, id.Hex(), nil)
	return res, nil
}

func (s *ProductService) publish(ctx context.Context, eventType events.EventType, productID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ProductID: productID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
