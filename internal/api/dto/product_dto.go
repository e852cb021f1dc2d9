package dto

// StatusUpdateRequest payload for PATCH /api/status/:productId.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// FeaturedUpdateRequest payload for PATCH /api/featured/:productId.
type FeaturedUpdateRequest struct {
	Featured string `json:"featured"`
}

// ReportUpdateRequest payload for PATCH /api/report/:productId.
type ReportUpdateRequest struct {
	Report string `json:"report"`
}

// VoteUpdateRequest payload for PATCH /api/upvote/:productId.
type VoteUpdateRequest struct {
	Vote int `json:"vote"`
}
