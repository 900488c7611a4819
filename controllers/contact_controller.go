package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"doctorconnect/models"
	"doctorconnect/utils"
)

type ContactController struct {
	DB     *gorm.DB
	Mailer utils.Mailer
	Logger *log.Logger
}

func NewContactController(db *gorm.DB, mailer utils.Mailer, logger *log.Logger) *ContactController {
	return &ContactController{
		DB:     db,
		Mailer: mailer,
		Logger: logger,
	}
}

// SubmitInquiry handles the full contact form. Every valid call creates
// a new inquiry; submissions are never deduplicated.
func (cc *ContactController) SubmitInquiry(c *fiber.Ctx) error {
	var form utils.ContactInquiryForm
	if err := c.BodyParser(&form); err != nil {
		return utils.RejectionResponse(c, "Invalid request body.")
	}

	if errs := form.Validate(); len(errs) > 0 {
		return utils.ValidationErrorResponse(c, errs)
	}

	inquiry := models.ContactInquiry{
		FirstName:              form.FirstName,
		LastName:               form.LastName,
		Email:                  form.Email,
		Phone:                  form.Phone,
		PracticeName:           form.PracticeName,
		Specialty:              form.Specialty,
		Location:               form.Location,
		CurrentWebsite:         form.CurrentWebsite,
		ServicesNeeded:         models.StringList(form.ServicesNeeded),
		BudgetRange:            form.BudgetRange,
		Timeline:               form.Timeline,
		Message:                form.Message,
		NewsletterSubscription: form.NewsletterSubscription,
		Status:                 models.StatusNew,
		Priority:               models.PriorityMedium,
		SubmittedAt:            time.Now(),
		IPAddress:              utils.ClientIP(c),
		UserAgent:              c.Get("User-Agent"),
	}

	if err := cc.DB.Create(&inquiry).Error; err != nil {
		return cc.inquiryFailure(c, "saving contact inquiry", err)
	}

	// Subscribe to the newsletter if requested; an existing subscription
	// for the email, active or not, is left untouched.
	if form.NewsletterSubscription {
		var sub models.NewsletterSubscription
		err := cc.DB.Where("email = ?", inquiry.Email).First(&sub).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sub = models.NewsletterSubscription{
				Email:        inquiry.Email,
				FirstName:    inquiry.FirstName,
				LastName:     inquiry.LastName,
				Source:       models.SourceContactForm,
				IsActive:     true,
				SubscribedAt: time.Now(),
			}
			if err := cc.DB.Create(&sub).Error; err != nil {
				return cc.inquiryFailure(c, "creating newsletter subscription", err)
			}
		} else if err != nil {
			return cc.inquiryFailure(c, "looking up newsletter subscription", err)
		}
	}

	logEntry := models.ContactLog{
		InquiryID:   inquiry.ID,
		Action:      models.ActionFormSubmitted,
		Description: "Contact form submitted via website",
		PerformedBy: "System",
		PerformedAt: time.Now(),
	}
	if err := cc.DB.Create(&logEntry).Error; err != nil {
		return cc.inquiryFailure(c, "creating contact log", err)
	}

	// Best-effort notifications; the inquiry is already committed and
	// send failures must not change the response.
	if err := cc.Mailer.SendInquiryConfirmation(&inquiry); err != nil {
		logrus.WithFields(logrus.Fields{
			"inquiry_id": inquiry.ID,
			"email":      inquiry.Email,
		}).WithError(err).Error("failed to send confirmation email")
	}
	if err := cc.Mailer.SendTeamNotification(&inquiry); err != nil {
		logrus.WithFields(logrus.Fields{
			"inquiry_id": inquiry.ID,
		}).WithError(err).Error("failed to send team notification email")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"message":    "Thank you! Your inquiry has been submitted successfully. We'll get back to you within 2 hours.",
		"inquiry_id": inquiry.ID,
	})
}

// QuickContact handles the short contact form. The single name field is
// split on whitespace; practice details get fixed placeholder values.
func (cc *ContactController) QuickContact(c *fiber.Ctx) error {
	var form utils.QuickContactForm
	if err := c.BodyParser(&form); err != nil {
		return utils.RejectionResponse(c, "Invalid request body.")
	}

	if errs := form.Validate(); len(errs) > 0 {
		return utils.ValidationErrorResponse(c, errs)
	}

	firstName, lastName := form.SplitName()

	inquiry := models.ContactInquiry{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        form.Email,
		Phone:        form.Phone,
		PracticeName: "Quick Contact",
		Specialty:    "other",
		Location:     "Not specified",
		Message:      form.Message,
		Status:       models.StatusNew,
		Priority:     models.PriorityMedium,
		SubmittedAt:  time.Now(),
		IPAddress:    utils.ClientIP(c),
		UserAgent:    c.Get("User-Agent"),
		Notes:        fmt.Sprintf("Quick contact form. Preferred contact method: %s", form.ContactPreference),
	}

	if err := cc.DB.Create(&inquiry).Error; err != nil {
		cc.Logger.Printf("Error processing quick contact: %v", err)
		sentry.CaptureException(err)
		return utils.FailureResponse(c, "Sorry, there was an error sending your message. Please try again.")
	}

	if err := cc.Mailer.SendQuickContactNotification(&inquiry, form.ContactPreference); err != nil {
		logrus.WithFields(logrus.Fields{
			"inquiry_id": inquiry.ID,
			"email":      inquiry.Email,
		}).WithError(err).Error("failed to send quick contact notification")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Thank you for your message! We'll get back to you soon.",
	})
}

// inquiryFailure logs and reports a persistence failure during full
// inquiry intake. No compensating rollback: earlier steps stay
// committed, matching the authoritative-record contract.
func (cc *ContactController) inquiryFailure(c *fiber.Ctx, step string, err error) error {
	cc.Logger.Printf("Error %s: %v", step, err)
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("operation", "submit_inquiry")
		scope.SetExtra("step", step)
		sentry.CaptureException(err)
	})
	return utils.FailureResponse(c, "Sorry, there was an error submitting your inquiry. Please try again or contact us directly.")
}
