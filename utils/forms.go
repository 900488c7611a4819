package utils

import (
	"strings"

	"github.com/badoux/checkmail"
)

// Form structs for the three public intake paths. Each Validate call
// first normalizes the raw input (trimming, phone cleaning) and then
// returns field name -> error messages; an empty map means the form is
// clean and every field can be trusted.

const (
	phoneErrorMessage    = "Please enter a valid phone number with at least 10 digits."
	servicesErrorMessage = "Please select at least one service you're interested in."
)

// ContactInquiryForm carries a full inquiry submission.
type ContactInquiryForm struct {
	FirstName string `form:"first_name" validate:"required,max=100"`
	LastName  string `form:"last_name" validate:"required,max=100"`
	Email     string `form:"email" validate:"required,email,max=254"`
	Phone     string `form:"phone"`

	PracticeName   string `form:"practice_name" validate:"required,max=200"`
	Specialty      string `form:"specialty" validate:"required,oneof=family-medicine cardiology dermatology orthopedics pediatrics dental ophthalmology neurology psychiatry surgery other"`
	Location       string `form:"location" validate:"required,max=200"`
	CurrentWebsite string `form:"current_website" validate:"omitempty,url"`

	ServicesNeeded []string `form:"services_needed" validate:"omitempty,dive,oneof=website-design seo-optimization appointment-system digital-marketing google-business social-media"`

	BudgetRange string `form:"budget_range" validate:"omitempty,oneof=under-500 500-1000 1000-2000 2000-5000 over-5000"`
	Timeline    string `form:"timeline" validate:"omitempty,oneof=immediately 1-month 3-months 6-months planning"`

	Message                string `form:"message" validate:"required"`
	NewsletterSubscription bool   `form:"newsletter_subscription"`
}

func (f *ContactInquiryForm) clean() {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = CleanPhone(f.Phone)
	f.PracticeName = strings.TrimSpace(f.PracticeName)
	f.Specialty = strings.TrimSpace(f.Specialty)
	f.Location = strings.TrimSpace(f.Location)
	f.CurrentWebsite = strings.TrimSpace(f.CurrentWebsite)
	f.BudgetRange = strings.TrimSpace(f.BudgetRange)
	f.Timeline = strings.TrimSpace(f.Timeline)
	f.Message = strings.TrimSpace(f.Message)
}

func (f *ContactInquiryForm) Validate() map[string][]string {
	f.clean()
	errs := ValidateForm(f)
	validatePhone(errs, f.Phone)
	validateEmailSyntax(errs, f.Email)
	if len(f.ServicesNeeded) == 0 {
		errs["services_needed"] = append(errs["services_needed"], servicesErrorMessage)
	}
	return errs
}

// NewsletterSubscriptionForm carries a newsletter signup.
type NewsletterSubscriptionForm struct {
	Email     string `form:"email" validate:"required,email,max=254"`
	FirstName string `form:"first_name" validate:"omitempty,max=100"`
	LastName  string `form:"last_name" validate:"omitempty,max=100"`
}

func (f *NewsletterSubscriptionForm) Validate() map[string][]string {
	f.Email = strings.TrimSpace(f.Email)
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)

	errs := ValidateForm(f)
	validateEmailSyntax(errs, f.Email)
	return errs
}

// QuickContactForm carries the short contact form.
type QuickContactForm struct {
	Name              string `form:"name" validate:"required,max=200"`
	Email             string `form:"email" validate:"required,email,max=254"`
	Phone             string `form:"phone"`
	Message           string `form:"message" validate:"required"`
	ContactPreference string `form:"contact_preference" validate:"required,oneof=email phone either"`
}

func (f *QuickContactForm) Validate() map[string][]string {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = CleanPhone(f.Phone)
	f.Message = strings.TrimSpace(f.Message)
	f.ContactPreference = strings.TrimSpace(f.ContactPreference)

	errs := ValidateForm(f)
	validatePhone(errs, f.Phone)
	validateEmailSyntax(errs, f.Email)
	return errs
}

// SplitName splits the single name field on whitespace: first word is
// the first name, the rest joined is the last name.
func (f *QuickContactForm) SplitName() (first, last string) {
	parts := strings.Fields(f.Name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// CleanPhone strips every character that is not a digit, keeping a
// single leading +.
func CleanPhone(raw string) string {
	raw = strings.TrimSpace(raw)
	var b strings.Builder
	for i, r := range raw {
		if (r >= '0' && r <= '9') || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func digitCount(phone string) int {
	n := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// validatePhone rejects a non-empty normalized phone with fewer than 10
// digits. Empty phone is fine: the field is optional everywhere.
func validatePhone(errs map[string][]string, phone string) {
	if phone != "" && digitCount(phone) < 10 {
		errs["phone"] = append(errs["phone"], phoneErrorMessage)
	}
}

// validateEmailSyntax runs the stricter checkmail format check on top of
// the validator tag, without double-reporting.
func validateEmailSyntax(errs map[string][]string, email string) {
	if email == "" || len(errs["email"]) > 0 {
		return
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		errs["email"] = append(errs["email"], "Enter a valid email address.")
	}
}
