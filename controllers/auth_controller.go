package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"doctorconnect/models"
	"doctorconnect/utils"
)

type AuthController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewAuthController(db *gorm.DB, logger *log.Logger) *AuthController {
	return &AuthController{
		DB:     db,
		Logger: logger,
	}
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// Login exchanges staff credentials for an access token.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if errs := utils.ValidateForm(&req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"errors": errs,
		})
	}

	var user models.User
	if err := ac.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid email or password",
			})
		}
		ac.Logger.Printf("Error loading user %s: %v", req.Email, err)
		return fiber.ErrInternalServerError
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	}

	if !user.IsActive {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Account is not active",
		})
	}

	token, err := utils.GenerateAccessToken(&user)
	if err != nil {
		ac.Logger.Printf("Error generating token for %s: %v", user.Email, err)
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"user":         user,
	})
}

// SeedStaffUser creates the configured staff account when it does not
// exist yet. Called once at startup.
func SeedStaffUser(db *gorm.DB, email, password string, logger *log.Logger) error {
	if email == "" || password == "" {
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
		IsStaff:      true,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	logger.Printf("Seeded staff user %s", email)
	return nil
}
