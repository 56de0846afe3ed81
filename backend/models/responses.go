package models

import (
	"time"
)

// APIResponse represents a standard API response structure
type APIResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// APIError represents an API error response
type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// PaginatedResponse represents a paginated API response
type PaginatedResponse struct {
	APIResponse
	Pagination *PaginationInfo `json:"pagination,omitempty"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// NewSuccessResponse creates a successful API response
func NewSuccessResponse(data interface{}, message string) *APIResponse {
	return &APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewErrorResponse creates an error API response
func NewErrorResponse(code, message string, details map[string]string) *APIResponse {
	return &APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
		Timestamp: time.Now(),
	}
}

// NewPaginatedResponse creates a paginated API response
func NewPaginatedResponse(data interface{}, pagination *PaginationInfo, message string) *PaginatedResponse {
	return &PaginatedResponse{
		APIResponse: APIResponse{
			Success:   true,
			Message:   message,
			Data:      data,
			Timestamp: time.Now(),
		},
		Pagination: pagination,
	}
}

// CreateCharacterRequest is the payload for creating a character.
type CreateCharacterRequest struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	HomeCity string `json:"home_city"`
}

// PurchasePropertyRequest is the payload for buying a new property.
type PurchasePropertyRequest struct {
	CharacterID     int64  `json:"character_id"`
	Type            string `json:"type"`
	Name            string `json:"name"`
	City            string `json:"city"`
	LocationPremium int64  `json:"location_premium"`
}

// AddZoneRequest is the payload for zoning a city block.
type AddZoneRequest struct {
	Zone string `json:"zone"`
}

// BuildRoadsRequest is the payload for building road segments.
type BuildRoadsRequest struct {
	Count int `json:"count"`
}

// SetTaxRateRequest is the payload for adjusting a city's tax rate.
type SetTaxRateRequest struct {
	Rate float64 `json:"rate"`
}

// CreateListingRequest is the payload for posting a marketplace listing.
// Kind selects which fields apply: item listings use ItemID/Quantity
// with a per-unit price, property listings use PropertyID with a total
// price, service listings use Title/Description with a total price.
type CreateListingRequest struct {
	SellerID    int64  `json:"seller_id"`
	Kind        string `json:"kind"`
	ItemID      int64  `json:"item_id,omitempty"`
	Quantity    int    `json:"quantity,omitempty"`
	PropertyID  int64  `json:"property_id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"`
}

// PurchaseListingRequest is the payload for buying from a listing.
// Quantity applies to item listings only; zero means take all.
type PurchaseListingRequest struct {
	BuyerID  int64 `json:"buyer_id"`
	Quantity int   `json:"quantity,omitempty"`
}

// MakeOfferRequest is the payload for bidding below asking price.
type MakeOfferRequest struct {
	BuyerID   int64  `json:"buyer_id"`
	ListingID int64  `json:"listing_id"`
	Price     int64  `json:"price"`
	Message   string `json:"message,omitempty"`
}

// OfferActionRequest identifies the actor for an offer state change.
type OfferActionRequest struct {
	ActorID int64 `json:"actor_id"`
}
