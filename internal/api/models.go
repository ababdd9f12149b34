package api

import (
	"github.com/floravend/bloom-api/internal/domain"
	"github.com/google/uuid"
)

// Common request/response structures

// SignupRequest carries the multipart /signup fields.
// The profile picture file rides alongside and is handled separately.
type SignupRequest struct {
	Username string `validate:"required,min=1,max=64"`
	Password string `validate:"required,min=1,max=72"`
}

// LoginRequest carries the form-encoded /login fields.
type LoginRequest struct {
	Username string `validate:"required,min=1"`
	Password string `validate:"required,min=1"`
}

// UserProfileResponse is the public subset of a user's stored attributes.
type UserProfileResponse struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
}

// NewUserProfileResponse builds the public profile view of a user.
func NewUserProfileResponse(user *domain.User) UserProfileResponse {
	return UserProfileResponse{
		ID:             user.ID,
		Username:       user.Username,
		ProfilePicture: user.ProfilePicture,
	}
}

// TokenResponse is the successful /login response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CreateFlowerRequest defines the payload for the catalog creation endpoint.
// Prices are deliberately unconstrained; the catalog accepts zero and
// negative values.
type CreateFlowerRequest struct {
	Name  string  `json:"name"  validate:"required,min=1"`
	Price float64 `json:"price"`
}

// FlowerResponse is the public view of a catalog entry.
type FlowerResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
}

// NewFlowerResponse builds the public view of a flower.
func NewFlowerResponse(flower *domain.Flower) FlowerResponse {
	return FlowerResponse{
		ID:    flower.ID,
		Name:  flower.Name,
		Price: flower.Price,
	}
}

// CartResponse is the /cart/items response. The shape is the same whether the
// cart is empty or not: an items list and a total.
type CartResponse struct {
	Items      []FlowerResponse `json:"items"`
	TotalPrice float64          `json:"total_price"`
}
