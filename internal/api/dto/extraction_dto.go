package dto

// ExtractListingRequest is the body of POST /api/extract-listing.
type ExtractListingRequest struct {
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl"`
}
