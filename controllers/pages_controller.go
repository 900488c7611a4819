package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"doctorconnect/models"
)

// PagesController serves the read-only context data behind the public
// informational pages.
type PagesController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewPagesController(db *gorm.DB, logger *log.Logger) *PagesController {
	return &PagesController{
		DB:     db,
		Logger: logger,
	}
}

// Home returns featured testimonials, active services and site stats.
func (pc *PagesController) Home(c *fiber.Ctx) error {
	var testimonials []models.Testimonial
	if err := pc.DB.
		Where("is_active = ? AND is_featured = ?", true, true).
		Order("created_at DESC").
		Limit(2).
		Find(&testimonials).Error; err != nil {
		pc.Logger.Printf("Error loading testimonials: %v", err)
		return fiber.ErrInternalServerError
	}

	var services []models.Service
	if err := pc.DB.
		Where("is_active = ?", true).
		Order("\"order\", name").
		Find(&services).Error; err != nil {
		pc.Logger.Printf("Error loading services: %v", err)
		return fiber.ErrInternalServerError
	}

	var totalDoctors, totalInquiries, activeSubscriptions int64
	pc.DB.Model(&models.ContactInquiry{}).
		Where("status IN ?", []string{models.StatusClosed, models.StatusNegotiating}).
		Count(&totalDoctors)
	pc.DB.Model(&models.ContactInquiry{}).Count(&totalInquiries)
	pc.DB.Model(&models.NewsletterSubscription{}).
		Where("is_active = ?", true).
		Count(&activeSubscriptions)

	return c.JSON(fiber.Map{
		"featured_testimonials": testimonials,
		"services":              services,
		"stats": fiber.Map{
			"total_doctors":        totalDoctors,
			"total_inquiries":      totalInquiries,
			"active_subscriptions": activeSubscriptions,
		},
	})
}

// About returns the team statistics block.
func (pc *PagesController) About(c *fiber.Ctx) error {
	var doctorsServed, medicalSpecialties int64
	pc.DB.Model(&models.ContactInquiry{}).
		Where("status IN ?", []string{models.StatusClosed, models.StatusNegotiating}).
		Count(&doctorsServed)
	pc.DB.Model(&models.ContactInquiry{}).
		Distinct("specialty").
		Count(&medicalSpecialties)

	return c.JSON(fiber.Map{
		"stats": fiber.Map{
			"years_experience":    5,
			"doctors_served":      doctorsServed,
			"medical_specialties": medicalSpecialties,
		},
	})
}

// Contact returns contact methods, FAQs and the office info block.
func (pc *PagesController) Contact(c *fiber.Ctx) error {
	var contactMethods []models.ContactMethod
	if err := pc.DB.
		Where("is_active = ?", true).
		Order("\"order\", name").
		Find(&contactMethods).Error; err != nil {
		pc.Logger.Printf("Error loading contact methods: %v", err)
		return fiber.ErrInternalServerError
	}

	var faqs []models.FAQ
	if err := pc.DB.
		Where("is_active = ?", true).
		Order("category, \"order\", question").
		Find(&faqs).Error; err != nil {
		pc.Logger.Printf("Error loading FAQs: %v", err)
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"contact_methods": contactMethods,
		"faqs":            faqs,
		"office_info": fiber.Map{
			"address": "123 Healthcare Avenue, Medical District, Healthcare City, HC 12345",
			"phone":   "+1 (555) 123-4567",
			"email":   "hello@doctorconnect.com",
			"hours":   "Monday - Friday: 9:00 AM - 6:00 PM EST",
			"parking": "Free parking available in our building",
		},
	})
}
