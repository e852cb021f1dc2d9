package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ModerationStatus tracks a listing through review. Mutation endpoints accept
// arbitrary strings, so these constants cover the values the system itself
// writes, not an exhaustive enum.
type ModerationStatus = string

const (
	StatusPending  ModerationStatus = "pending"
	StatusAccepted ModerationStatus = "accepted"
	StatusRejected ModerationStatus = "rejected"

	FeaturedPending  ModerationStatus = "pending"
	FeaturedFeatured ModerationStatus = "featured"

	ReportPending  ModerationStatus = "pending"
	ReportReported ModerationStatus = "reported"
)

// Product is a marketplace listing. status, featured and report are
// independently settable moderation fields; any edit resets all three to
// pending so the listing goes through review again.
type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	OwnerEmail   string             `bson:"ownerEmail" json:"ownerEmail"`
	Name         string             `bson:"product_name" json:"product_name"`
	Description  string             `bson:"description" json:"description"`
	Image        string             `bson:"image" json:"image"`
	Tags         []string           `bson:"tags" json:"tags"`
	FacebookLink string             `bson:"facebook_external_link" json:"facebook_external_link"`
	GoogleLink   string             `bson:"google_external_link" json:"google_external_link"`
	Status       ModerationStatus   `bson:"status" json:"status"`
	Featured     ModerationStatus   `bson:"featured" json:"featured"`
	Report       ModerationStatus   `bson:"report" json:"report"`
	Vote         int                `bson:"vote" json:"vote"`
	Timestamp    time.Time          `bson:"timestamp" json:"timestamp"`
}

// ProductUpdate carries the editable fields of a listing. The moderation
// fields are intentionally absent; edits always reset them.
type ProductUpdate struct {
	OwnerEmail   string    `bson:"ownerEmail" json:"ownerEmail"`
	Name         string    `bson:"product_name" json:"product_name"`
	Description  string    `bson:"description" json:"description"`
	Image        string    `bson:"image" json:"image"`
	Tags         []string  `bson:"tags" json:"tags"`
	FacebookLink string    `bson:"facebook_external_link" json:"facebook_external_link"`
	GoogleLink   string    `bson:"google_external_link" json:"google_external_link"`
	Timestamp    time.Time `bson:"timestamp" json:"timestamp"`
}
