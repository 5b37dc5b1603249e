package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReaderStatus string

const (
	ReaderStatusOnline  ReaderStatus = "online"
	ReaderStatusOffline ReaderStatus = "offline"
	ReaderStatusBusy    ReaderStatus = "busy"
)

type ProductType string

const (
	ProductTypeService  ProductType = "service"
	ProductTypeDigital  ProductType = "digital"
	ProductTypePhysical ProductType = "physical"
)

// Specialties recognised by the reader signup form. The column itself is a
// plain JSON list, so historical rows may carry values outside this set.
func Specialties() []string {
	return []string{
		"tarot",
		"astrology",
		"mediumship",
		"numerology",
		"palmistry",
		"crystals",
		"energy",
		"dreams",
	}
}

type ReaderProfile struct {
	ID             string `gorm:"primaryKey;size:36;not null"`
	ClerkID        string `gorm:"size:255;uniqueIndex;not null"` // external identity provider id
	Email          string `gorm:"size:255;uniqueIndex;not null"`
	DisplayName    string `gorm:"size:255;not null"`
	Bio            string `gorm:"type:text"`
	ProfilePicture string `gorm:"size:512"` // storage path, optional

	Specialties []string `gorm:"serializer:json"`

	// Per-minute rates
	ChatRate  decimal.Decimal `gorm:"type:decimal(10,2);default:2.99"`
	CallRate  decimal.Decimal `gorm:"type:decimal(10,2);default:3.99"`
	VideoRate decimal.Decimal `gorm:"type:decimal(10,2);default:4.99"`

	Status ReaderStatus `gorm:"size:20;index;default:'offline'"` // online | offline | busy
	// Status and IsOnline are set independently; neither is derived from
	// the other.
	IsOnline bool `gorm:"default:false"`
	IsActive bool `gorm:"default:true"`

	TotalEarnings decimal.Decimal `gorm:"type:decimal(10,2);default:0"`
	PendingPayout decimal.Decimal `gorm:"type:decimal(10,2);default:0"`

	StripeAccountID string `gorm:"size:255"`

	// Computed by the review pipeline, read-only here
	AverageRating decimal.Decimal `gorm:"type:decimal(3,2);default:0"`
	TotalReviews  int             `gorm:"default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Product struct {
	ID string `gorm:"primaryKey;size:36;not null"`
	// Assigned once by the Stripe catalog sync, never reassigned
	StripeProductID string `gorm:"size:255;index"`

	Name        string          `gorm:"size:255;not null"`
	Description string          `gorm:"type:text;not null"`
	ProductType ProductType     `gorm:"size:50;index;not null"` // service | digital | physical
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	// Weak relation: deleting a reader clears the reference
	ReaderID *string        `gorm:"size:36;index"`
	Reader   *ReaderProfile `gorm:"foreignKey:ReaderID;constraint:OnDelete:SET NULL"`

	InventoryCount *int `gorm:"default:null"` // nil = unlimited / service item
	IsActive       bool `gorm:"default:true"`

	Images   []string          `gorm:"serializer:json"`
	Metadata map[string]string `gorm:"serializer:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type VirtualGift struct {
	ID           string          `gorm:"primaryKey;size:36;not null"`
	Name         string          `gorm:"size:255;not null"`
	Description  string          `gorm:"type:text;not null"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	IconURL      string          `gorm:"size:512"`
	AnimationURL string          `gorm:"size:512"`
	IsActive     bool            `gorm:"default:true"`
	CreatedAt    time.Time
}
