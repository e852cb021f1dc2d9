package repository

// InsertResult mirrors the driver's insert acknowledgement. InsertedID is nil
// when the write was skipped as a defined business outcome (duplicate user).
type InsertResult struct {
	InsertedID any `json:"insertedId"`
}

// UpdateResult mirrors the driver's update acknowledgement. A zero
// MatchedCount means the filter matched no document; callers treat that as a
// result, not an error.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult mirrors the driver's delete acknowledgement.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
