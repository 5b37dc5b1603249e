package dto

import (
	"time"

	"soulseer-admin/internal/model"

	"github.com/shopspring/decimal"
)

// ---- readers ----

type CreateReaderRequest struct {
	ClerkID        string   `json:"clerk_id" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	DisplayName    string   `json:"display_name" validate:"required"`
	Bio            string   `json:"bio"`
	ProfilePicture string   `json:"profile_picture"`
	Specialties    []string `json:"specialties" validate:"dive,oneof=tarot astrology mediumship numerology palmistry crystals energy dreams"`

	// Omitted rates fall back to the standard defaults
	ChatRate  *float64 `json:"chat_rate" validate:"omitempty,gte=0"`
	CallRate  *float64 `json:"call_rate" validate:"omitempty,gte=0"`
	VideoRate *float64 `json:"video_rate" validate:"omitempty,gte=0"`

	StripeAccountID string `json:"stripe_account_id"`
}

func (r *CreateReaderRequest) ToModel() *model.ReaderProfile {
	return &model.ReaderProfile{
		ClerkID:         r.ClerkID,
		Email:           r.Email,
		DisplayName:     r.DisplayName,
		Bio:             r.Bio,
		ProfilePicture:  r.ProfilePicture,
		Specialties:     r.Specialties,
		ChatRate:        rateOrDefault(r.ChatRate, "2.99"),
		CallRate:        rateOrDefault(r.CallRate, "3.99"),
		VideoRate:       rateOrDefault(r.VideoRate, "4.99"),
		Status:          model.ReaderStatusOffline,
		IsActive:        true,
		StripeAccountID: r.StripeAccountID,
	}
}

type UpdateReaderRequest struct {
	Email          string   `json:"email" validate:"required,email"`
	DisplayName    string   `json:"display_name" validate:"required"`
	Bio            string   `json:"bio"`
	ProfilePicture string   `json:"profile_picture"`
	Specialties    []string `json:"specialties" validate:"dive,oneof=tarot astrology mediumship numerology palmistry crystals energy dreams"`

	ChatRate  float64 `json:"chat_rate" validate:"gte=0"`
	CallRate  float64 `json:"call_rate" validate:"gte=0"`
	VideoRate float64 `json:"video_rate" validate:"gte=0"`

	Status   string `json:"status" validate:"required,oneof=online offline busy"`
	IsOnline bool   `json:"is_online"`
	IsActive bool   `json:"is_active"`

	StripeAccountID string `json:"stripe_account_id"`
}

func (r *UpdateReaderRequest) ToModel(id string) *model.ReaderProfile {
	return &model.ReaderProfile{
		ID:              id,
		Email:           r.Email,
		DisplayName:     r.DisplayName,
		Bio:             r.Bio,
		ProfilePicture:  r.ProfilePicture,
		Specialties:     r.Specialties,
		ChatRate:        decimal.NewFromFloat(r.ChatRate).Round(2),
		CallRate:        decimal.NewFromFloat(r.CallRate).Round(2),
		VideoRate:       decimal.NewFromFloat(r.VideoRate).Round(2),
		Status:          model.ReaderStatus(r.Status),
		IsOnline:        r.IsOnline,
		IsActive:        r.IsActive,
		StripeAccountID: r.StripeAccountID,
	}
}

type ReaderResponse struct {
	ID             string   `json:"id"`
	ClerkID        string   `json:"clerk_id"`
	Email          string   `json:"email"`
	DisplayName    string   `json:"display_name"`
	Bio            string   `json:"bio"`
	ProfilePicture string   `json:"profile_picture,omitempty"`
	Specialties    []string `json:"specialties"`

	ChatRate  string `json:"chat_rate"`
	CallRate  string `json:"call_rate"`
	VideoRate string `json:"video_rate"`

	Status      string `json:"status"`
	StatusBadge string `json:"status_badge"`
	IsOnline    bool   `json:"is_online"`
	IsActive    bool   `json:"is_active"`

	TotalEarnings   string `json:"total_earnings"`
	PendingPayout   string `json:"pending_payout"`
	StripeAccountID string `json:"stripe_account_id,omitempty"`

	AverageRating string `json:"average_rating"`
	TotalReviews  int    `json:"total_reviews"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewReaderResponse(reader *model.ReaderProfile) *ReaderResponse {
	return &ReaderResponse{
		ID:              reader.ID,
		ClerkID:         reader.ClerkID,
		Email:           reader.Email,
		DisplayName:     reader.DisplayName,
		Bio:             reader.Bio,
		ProfilePicture:  reader.ProfilePicture,
		Specialties:     reader.Specialties,
		ChatRate:        reader.ChatRate.StringFixed(2),
		CallRate:        reader.CallRate.StringFixed(2),
		VideoRate:       reader.VideoRate.StringFixed(2),
		Status:          string(reader.Status),
		StatusBadge:     model.StatusBadgeColor(reader.Status),
		IsOnline:        reader.IsOnline,
		IsActive:        reader.IsActive,
		TotalEarnings:   reader.TotalEarnings.StringFixed(2),
		PendingPayout:   reader.PendingPayout.StringFixed(2),
		StripeAccountID: reader.StripeAccountID,
		AverageRating:   reader.AverageRating.StringFixed(2),
		TotalReviews:    reader.TotalReviews,
		CreatedAt:       reader.CreatedAt,
		UpdatedAt:       reader.UpdatedAt,
	}
}

func NewReaderListResponse(readers []*model.ReaderProfile) []*ReaderResponse {
	out := make([]*ReaderResponse, len(readers))
	for i, reader := range readers {
		out[i] = NewReaderResponse(reader)
	}
	return out
}

func rateOrDefault(rate *float64, fallback string) decimal.Decimal {
	if rate != nil {
		return decimal.NewFromFloat(*rate).Round(2)
	}
	return decimal.RequireFromString(fallback)
}

// ---- products ----

type SaveProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	ProductType string  `json:"product_type" validate:"required,oneof=service digital physical"`
	Price       float64 `json:"price" validate:"required,gt=0"`

	ReaderID       *string `json:"reader_id"`
	InventoryCount *int    `json:"inventory_count" validate:"omitempty,gte=0"`
	IsActive       *bool   `json:"is_active"`

	Images   []string          `json:"images"`
	Metadata map[string]string `json:"metadata"`
}

func (r *SaveProductRequest) ToModel(id string) *model.Product {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return &model.Product{
		ID:             id,
		Name:           r.Name,
		Description:    r.Description,
		ProductType:    model.ProductType(r.ProductType),
		Price:          decimal.NewFromFloat(r.Price).Round(2),
		ReaderID:       r.ReaderID,
		InventoryCount: r.InventoryCount,
		IsActive:       isActive,
		Images:         r.Images,
		Metadata:       r.Metadata,
	}
}

type ProductResponse struct {
	ID              string `json:"id"`
	StripeProductID string `json:"stripe_product_id,omitempty"`

	Name        string `json:"name"`
	Description string `json:"description"`
	ProductType string `json:"product_type"`
	Price       string `json:"price"`

	ReaderID       *string `json:"reader_id,omitempty"`
	InventoryCount *int    `json:"inventory_count,omitempty"`
	IsActive       bool    `json:"is_active"`

	Images   []string          `json:"images"`
	Metadata map[string]string `json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewProductResponse(product *model.Product) *ProductResponse {
	return &ProductResponse{
		ID:              product.ID,
		StripeProductID: product.StripeProductID,
		Name:            product.Name,
		Description:     product.Description,
		ProductType:     string(product.ProductType),
		Price:           product.Price.StringFixed(2),
		ReaderID:        product.ReaderID,
		InventoryCount:  product.InventoryCount,
		IsActive:        product.IsActive,
		Images:          product.Images,
		Metadata:        product.Metadata,
		CreatedAt:       product.CreatedAt,
		UpdatedAt:       product.UpdatedAt,
	}
}

func NewProductListResponse(products []*model.Product) []*ProductResponse {
	out := make([]*ProductResponse, len(products))
	for i, product := range products {
		out[i] = NewProductResponse(product)
	}
	return out
}

// ---- gifts ----

type SaveGiftRequest struct {
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	IconURL      string  `json:"icon_url" validate:"omitempty,url"`
	AnimationURL string  `json:"animation_url" validate:"omitempty,url"`
	IsActive     *bool   `json:"is_active"`
}

func (r *SaveGiftRequest) ToModel(id string) *model.VirtualGift {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return &model.VirtualGift{
		ID:           id,
		Name:         r.Name,
		Description:  r.Description,
		Price:        decimal.NewFromFloat(r.Price).Round(2),
		IconURL:      r.IconURL,
		AnimationURL: r.AnimationURL,
		IsActive:     isActive,
	}
}

type GiftResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        string    `json:"price"`
	IconURL      string    `json:"icon_url,omitempty"`
	AnimationURL string    `json:"animation_url,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewGiftResponse(gift *model.VirtualGift) *GiftResponse {
	return &GiftResponse{
		ID:           gift.ID,
		Name:         gift.Name,
		Description:  gift.Description,
		Price:        gift.Price.StringFixed(2),
		IconURL:      gift.IconURL,
		AnimationURL: gift.AnimationURL,
		IsActive:     gift.IsActive,
		CreatedAt:    gift.CreatedAt,
	}
}

func NewGiftListResponse(gifts []*model.VirtualGift) []*GiftResponse {
	out := make([]*GiftResponse, len(gifts))
	for i, gift := range gifts {
		out[i] = NewGiftResponse(gift)
	}
	return out
}
