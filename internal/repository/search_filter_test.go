package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/markethub/marketplace-service/internal/domain"
)

func TestSearchFilterScopesToAccepted(t *testing.T) {
	filter := searchFilter("shoes")
	assert.Equal(t, domain.StatusAccepted, filter["status"])
}

func TestSearchFilterIsCaseInsensitive(t *testing.T) {
	filter := searchFilter("Shoes")

	tags, ok := filter["tags"].(bson.M)
	require.True(t, ok)
	regex, ok := tags["$regex"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "i", regex.Options)
	assert.Equal(t, "Shoes", regex.Pattern)
}

func TestSearchFilterQuotesRegexMetacharacters(t *testing.T) {
	filter := searchFilter("c++ (beta)")

	tags := filter["tags"].(bson.M)
	regex := tags["$regex"].(primitive.Regex)
	assert.Equal(t, `c\+\+ \(beta\)`, regex.Pattern)
}
