package models

import (
	"gorm.io/gorm"
)

// Reference/content entities maintained through the admin surface and
// served read-only to the public pages.

// ContactMethod is one way to reach the team (phone, email, address...).
type ContactMethod struct {
	gorm.Model

	Name        string `gorm:"not null" json:"name"`
	Type        string `gorm:"not null" json:"type" validate:"omitempty,oneof=phone email address social other"`
	Value       string `gorm:"not null" json:"value"`
	Description string `gorm:"type:text" json:"description"`

	IsPrimary bool `gorm:"default:false" json:"is_primary"`
	IsActive  bool `gorm:"default:true" json:"is_active"`
	Order     uint `gorm:"default:0" json:"order"`
}

type FAQ struct {
	gorm.Model

	Question string `gorm:"not null" json:"question"`
	Answer   string `gorm:"type:text;not null" json:"answer"`
	Category string `gorm:"default:'general'" json:"category" validate:"omitempty,oneof=general pricing services technical support"`

	Order    uint `gorm:"default:0" json:"order"`
	IsActive bool `gorm:"default:true" json:"is_active"`
}

// Testimonial is a customer quote shown on the home page.
type Testimonial struct {
	gorm.Model

	DoctorName      string `gorm:"not null" json:"doctor_name"`
	PracticeName    string `gorm:"not null" json:"practice_name"`
	Specialty       string `gorm:"not null" json:"specialty"`
	TestimonialText string `gorm:"type:text;not null" json:"testimonial_text"`
	Rating          uint   `gorm:"not null" json:"rating" validate:"omitempty,oneof=1 2 3 4 5"`
	DoctorImageURL  string `json:"doctor_image_url"`

	IsFeatured bool `gorm:"default:false" json:"is_featured"`
	IsActive   bool `gorm:"default:true" json:"is_active"`
}

// Service is one offering with display pricing. Prices are display data
// only; nothing in this system charges them.
type Service struct {
	gorm.Model

	Name             string `gorm:"not null" json:"name"`
	Description      string `gorm:"type:text;not null" json:"description"`
	ShortDescription string `gorm:"not null" json:"short_description"`
	IconClass        string `json:"icon_class"`

	BasePrice   float64 `gorm:"type:decimal(10,2)" json:"base_price"`
	PricePeriod string  `json:"price_period" validate:"omitempty,oneof=one-time monthly yearly"`

	Features StringList `gorm:"type:text" json:"features"`

	IsFeatured bool `gorm:"default:false" json:"is_featured"`
	IsPopular  bool `gorm:"default:false" json:"is_popular"`
	Order      uint `gorm:"default:0" json:"order"`
	IsActive   bool `gorm:"default:true" json:"is_active"`
}
