package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Inquiry status values. Transitions are intentionally unconstrained:
// staff may move an inquiry from any status to any other.
const (
	StatusNew         = "new"
	StatusContacted   = "contacted"
	StatusQualified   = "qualified"
	StatusProposal    = "proposal"
	StatusNegotiating = "negotiating"
	StatusClosed      = "closed"
	StatusLost        = "lost"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Contact log actions
const (
	ActionEmailSent        = "email_sent"
	ActionPhoneCall        = "phone_call"
	ActionMeetingScheduled = "meeting_scheduled"
	ActionProposalSent     = "proposal_sent"
	ActionFollowUp         = "follow_up"
	ActionFormSubmitted    = "form_submitted"
	ActionOther            = "other"
)

// StringList stores a list of strings as a JSON text column so it works
// on both PostgreSQL and SQLite.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		s = StringList{}
	}
	b, err := json.Marshal(s)
	return string(b), err
}

func (s *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	}
	return fmt.Errorf("unsupported type %T for StringList", value)
}

// ContactInquiry is one submission from a prospective client practice.
type ContactInquiry struct {
	gorm.Model

	// Personal information
	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `gorm:"not null" json:"last_name"`
	Email     string `gorm:"not null;index" json:"email"`
	Phone     string `json:"phone"` // digits with optional leading +, normalized at the boundary

	// Practice information
	PracticeName   string `gorm:"not null" json:"practice_name"`
	Specialty      string `gorm:"not null;index:idx_contact_inquiries_specialty_submitted" json:"specialty" validate:"omitempty,oneof=family-medicine cardiology dermatology orthopedics pediatrics dental ophthalmology neurology psychiatry surgery other"`
	Location       string `gorm:"not null" json:"location"`
	CurrentWebsite string `json:"current_website"`

	// Services the practice is interested in
	ServicesNeeded StringList `gorm:"type:text" json:"services_needed"`

	// Project details
	BudgetRange string `json:"budget_range" validate:"omitempty,oneof=under-500 500-1000 1000-2000 2000-5000 over-5000"`
	Timeline    string `json:"timeline" validate:"omitempty,oneof=immediately 1-month 3-months 6-months planning"`

	Message                string `gorm:"type:text;not null" json:"message"`
	NewsletterSubscription bool   `gorm:"default:false" json:"newsletter_subscription"`

	// Submission metadata
	SubmittedAt time.Time `gorm:"index:idx_contact_inquiries_status_submitted;index:idx_contact_inquiries_specialty_submitted" json:"submitted_at"`
	IPAddress   string    `json:"ip_address"`
	UserAgent   string    `gorm:"type:text" json:"user_agent"`

	// Triage block, mutated only by staff
	Status        string     `gorm:"default:'new';index:idx_contact_inquiries_status_submitted" json:"status" validate:"omitempty,oneof=new contacted qualified proposal negotiating closed lost"`
	Priority      string     `gorm:"default:'medium'" json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	AssignedTo    string     `json:"assigned_to"`
	Notes         string     `gorm:"type:text" json:"notes"`
	LastContacted *time.Time `json:"last_contacted"`

	// Relations
	ContactLogs []ContactLog `gorm:"foreignKey:InquiryID;constraint:OnDelete:CASCADE" json:"contact_logs,omitempty"`
}

func (ContactInquiry) TableName() string {
	return "contact_inquiries"
}

// BeforeCreate fills the defaults an intake handler relies on.
func (i *ContactInquiry) BeforeCreate(tx *gorm.DB) error {
	if i.SubmittedAt.IsZero() {
		i.SubmittedAt = time.Now()
	}
	if i.Status == "" {
		i.Status = StatusNew
	}
	if i.Priority == "" {
		i.Priority = PriorityMedium
	}
	return nil
}

func (i *ContactInquiry) FullName() string {
	return i.FirstName + " " + i.LastName
}

// DaysSinceSubmission is derived, never stored.
func (i *ContactInquiry) DaysSinceSubmission() int {
	return int(time.Since(i.SubmittedAt).Hours() / 24)
}

// ContactLog is an append-only audit entry attached to one inquiry.
type ContactLog struct {
	gorm.Model
	InquiryID uint `gorm:"not null;index" json:"inquiry_id"`

	Action      string `gorm:"not null" json:"action" validate:"omitempty,oneof=email_sent phone_call meeting_scheduled proposal_sent follow_up form_submitted other"`
	Description string `gorm:"type:text" json:"description"`
	Outcome     string `gorm:"type:text" json:"outcome"`
	NextAction  string `gorm:"type:text" json:"next_action"`

	ScheduledDate *time.Time `json:"scheduled_date"`
	PerformedBy   string     `gorm:"not null" json:"performed_by"`
	PerformedAt   time.Time  `json:"performed_at"`
}

func (l *ContactLog) BeforeCreate(tx *gorm.DB) error {
	if l.PerformedAt.IsZero() {
		l.PerformedAt = time.Now()
	}
	return nil
}
