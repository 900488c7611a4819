package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"doctorconnect/models"
)

// DashboardController serves the staff triage views. Routes using it
// must sit behind middleware.Staff(); everything here is read-only.
type DashboardController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewDashboardController(db *gorm.DB, logger *log.Logger) *DashboardController {
	return &DashboardController{
		DB:     db,
		Logger: logger,
	}
}

type SpecialtyCount struct {
	Specialty string `json:"specialty"`
	Count     int64  `json:"count"`
}

// GetDashboard returns the 10 most recent inquiries, counts by status
// and the top specialties by inquiry volume.
func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	var recent []models.ContactInquiry
	if err := dc.DB.
		Order("submitted_at DESC").
		Limit(10).
		Find(&recent).Error; err != nil {
		dc.Logger.Printf("Error loading recent inquiries: %v", err)
		return fiber.ErrInternalServerError
	}

	stats := fiber.Map{}
	var total int64
	dc.DB.Model(&models.ContactInquiry{}).Count(&total)
	stats["total_inquiries"] = total

	for _, status := range []string{
		models.StatusNew,
		models.StatusContacted,
		models.StatusQualified,
		models.StatusClosed,
	} {
		var count int64
		dc.DB.Model(&models.ContactInquiry{}).
			Where("status = ?", status).
			Count(&count)
		stats[status+"_inquiries"] = count
	}

	var specialtyStats []SpecialtyCount
	if err := dc.DB.Model(&models.ContactInquiry{}).
		Select("specialty, COUNT(*) AS count").
		Group("specialty").
		Order("count DESC").
		Limit(5).
		Scan(&specialtyStats).Error; err != nil {
		dc.Logger.Printf("Error loading specialty stats: %v", err)
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"recent_inquiries": recent,
		"stats":            stats,
		"specialty_stats":  specialtyStats,
	})
}

// GetInquiryDetail returns one inquiry with its contact log history,
// newest entry first.
func (dc *DashboardController) GetInquiryDetail(c *fiber.Ctx) error {
	inquiryID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid inquiry ID",
		})
	}

	var inquiry models.ContactInquiry
	if err := dc.DB.First(&inquiry, inquiryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Inquiry not found",
			})
		}
		dc.Logger.Printf("Error loading inquiry %d: %v", inquiryID, err)
		return fiber.ErrInternalServerError
	}

	var logs []models.ContactLog
	if err := dc.DB.
		Where("inquiry_id = ?", inquiry.ID).
		Order("performed_at DESC").
		Find(&logs).Error; err != nil {
		dc.Logger.Printf("Error loading contact logs for inquiry %d: %v", inquiryID, err)
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"inquiry":      inquiry,
		"contact_logs": logs,
	})
}
