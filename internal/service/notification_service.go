package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/markethub/marketplace-service/internal/config"
	"github.com/markethub/marketplace-service/internal/events"
)

// NotificationService handles emitting notifications for domain events. It
// gives moderation an audit trail in the logs and stubs out webhook delivery.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventProductSubmitted, n.handleProductSubmitted)
	n.dispatcher.Subscribe(events.EventProductStatusChanged, n.handleProductStatusChanged)
	n.dispatcher.Subscribe(events.EventProductReported, n.handleProductReported)
	n.dispatcher.Subscribe(events.EventProductDeleted, n.handleProductDeleted)
}

func (n *NotificationService) handleProductSubmitted(ctx context.Context, event events.Event) error {
	n.logger.Info("ProductSubmitted", zap.String("product_id", event.ProductID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleProductStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("ProductStatusChanged", zap.String("product_id", event.ProductID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleProductReported(ctx context.Context, event events.Event) error {
	n.logger.Info("ProductReported", zap.String("product_id", event.ProductID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleProductDeleted(ctx context.Context, event events.Event) error {
	n.logger.Info("ProductDeleted", zap.String("product_id", event.ProductID))
	return nil
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("product_id", event.ProductID),
		zap.String("event_type", string(event.Type)))
}
