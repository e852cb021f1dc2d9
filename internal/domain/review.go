package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is an append-only rating attached to a product. ProductID is kept as
// the raw string the client supplied; there is no referential check against
// the products collection.
type Review struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductID     string             `bson:"productId" json:"productId"`
	ReviewerEmail string             `bson:"reviewerEmail,omitempty" json:"reviewerEmail,omitempty"`
	ReviewerName  string             `bson:"reviewerName,omitempty" json:"reviewerName,omitempty"`
	ReviewerImage string             `bson:"reviewerImage,omitempty" json:"reviewerImage,omitempty"`
	Rating        float64            `bson:"rating" json:"rating"`
	Text          string             `bson:"text" json:"text"`
}
