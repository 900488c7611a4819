package controller

import (
	"errors"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"doctorconnect/models"
	"doctorconnect/utils"
)

type NewsletterController struct {
	DB     *gorm.DB
	Mailer utils.Mailer
	Logger *log.Logger
}

func NewNewsletterController(db *gorm.DB, mailer utils.Mailer, logger *log.Logger) *NewsletterController {
	return &NewsletterController{
		DB:     db,
		Mailer: mailer,
		Logger: logger,
	}
}

// Subscribe handles a newsletter signup. Email is the natural key: an
// active duplicate is rejected, an inactive one is reactivated in
// place, otherwise a new subscription is created.
func (nc *NewsletterController) Subscribe(c *fiber.Ctx) error {
	var form utils.NewsletterSubscriptionForm
	if err := c.BodyParser(&form); err != nil {
		return utils.RejectionResponse(c, "Invalid request body.")
	}

	if errs := form.Validate(); len(errs) > 0 {
		return utils.ValidationErrorResponse(c, errs)
	}

	var sub models.NewsletterSubscription
	err := nc.DB.Where("email = ?", form.Email).First(&sub).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		sub = models.NewsletterSubscription{
			Email:        form.Email,
			FirstName:    form.FirstName,
			LastName:     form.LastName,
			Source:       models.SourceWebsite,
			IsActive:     true,
			SubscribedAt: time.Now(),
		}
		// A create racing another signup for the same email trips the
		// unique constraint and surfaces here as a generic failure.
		if err := nc.DB.Create(&sub).Error; err != nil {
			return nc.subscribeFailure(c, err)
		}

	case err != nil:
		return nc.subscribeFailure(c, err)

	case sub.IsActive:
		return utils.RejectionResponse(c, "You are already subscribed to our newsletter.")

	default:
		if err := nc.DB.Model(&sub).Update("is_active", true).Error; err != nil {
			return nc.subscribeFailure(c, err)
		}
		sub.IsActive = true
	}

	if err := nc.Mailer.SendNewsletterWelcome(&sub); err != nil {
		logrus.WithFields(logrus.Fields{
			"email": sub.Email,
		}).WithError(err).Error("failed to send newsletter welcome email")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Thank you for subscribing to our newsletter!",
	})
}

func (nc *NewsletterController) subscribeFailure(c *fiber.Ctx, err error) error {
	nc.Logger.Printf("Error subscribing to newsletter: %v", err)
	sentry.CaptureException(err)
	return utils.FailureResponse(c, "Sorry, there was an error subscribing you to our newsletter. Please try again.")
}
