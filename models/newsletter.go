package models

import (
	"time"

	"gorm.io/gorm"
)

// Subscription sources
const (
	SourceContactForm = "contact-form"
	SourceWebsite     = "website"
	SourceManual      = "manual"
)

// NewsletterSubscription is one opted-in email address. Email is the
// natural key; repeat signups reactivate rather than duplicate.
type NewsletterSubscription struct {
	gorm.Model

	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	SubscribedAt time.Time `json:"subscribed_at"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	Source       string    `gorm:"default:'website'" json:"source" validate:"omitempty,oneof=contact-form website manual"`
}

func (s *NewsletterSubscription) BeforeCreate(tx *gorm.DB) error {
	if s.SubscribedAt.IsZero() {
		s.SubscribedAt = time.Now()
	}
	if s.Source == "" {
		s.Source = SourceWebsite
	}
	return nil
}

// FullName falls back to the email address when no name was given.
func (s *NewsletterSubscription) FullName() string {
	switch {
	case s.FirstName != "" && s.LastName != "":
		return s.FirstName + " " + s.LastName
	case s.FirstName != "":
		return s.FirstName
	case s.LastName != "":
		return s.LastName
	}
	return s.Email
}
