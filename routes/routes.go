package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"doctorconnect/admin"
	controller "doctorconnect/controllers"
	"doctorconnect/middleware"
	"doctorconnect/utils"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	routeLogger := log.New(os.Stdout, "ROUTES: ", log.Ldate|log.Ltime|log.Lshortfile)

	mailer := utils.NewMailer()

	pagesController := controller.NewPagesController(db, log.New(os.Stdout, "PAGES: ", log.Ldate|log.Ltime|log.Lshortfile))
	contactController := controller.NewContactController(db, mailer, log.New(os.Stdout, "CONTACT: ", log.Ldate|log.Ltime|log.Lshortfile))
	newsletterController := controller.NewNewsletterController(db, mailer, log.New(os.Stdout, "NEWSLETTER: ", log.Ldate|log.Ltime|log.Lshortfile))
	dashboardController := controller.NewDashboardController(db, log.New(os.Stdout, "DASHBOARD: ", log.Ldate|log.Ltime|log.Lshortfile))
	authController := controller.NewAuthController(db, log.New(os.Stdout, "AUTH: ", log.Ldate|log.Ltime|log.Lshortfile))
	adminController := admin.NewController(db, admin.Resources(), log.New(os.Stdout, "ADMIN: ", log.Ldate|log.Ltime|log.Lshortfile))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Public marketing pages
	app.Get("/", pagesController.Home)
	app.Get("/about/", pagesController.About)
	app.Get("/contact/", pagesController.Contact)

	// Form intake endpoints (POST only, rate limited per client IP)
	api := app.Group("/api", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	api.Post("/contact/", middleware.IntakeRateLimiter(), contactController.SubmitInquiry)
	api.All("/contact/", utils.MethodNotAllowed)
	api.Post("/newsletter/", middleware.IntakeRateLimiter(), newsletterController.Subscribe)
	api.All("/newsletter/", utils.MethodNotAllowed)
	api.Post("/quick-contact/", middleware.IntakeRateLimiter(), contactController.QuickContact)
	api.All("/quick-contact/", utils.MethodNotAllowed)

	// Staff authentication
	auth := app.Group("/auth", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	auth.Post("/login", authController.Login)

	// Staff dashboard (requires an active staff account)
	dashboard := app.Group("/dashboard", middleware.Staff())
	dashboard.Get("/", dashboardController.GetDashboard)
	dashboard.Get("/inquiry/:id/", dashboardController.GetInquiryDetail)

	// Staff administration of stored entities
	adminGroup := app.Group("/admin", middleware.Staff())
	adminGroup.Get("/", adminController.Index)
	adminGroup.Get("/:resource/", adminController.List)
	adminGroup.Post("/:resource/", adminController.Create)
	adminGroup.Get("/:resource/:id/", adminController.Get)
	adminGroup.Put("/:resource/:id/", adminController.Update)
	adminGroup.Delete("/:resource/:id/", adminController.Delete)

	// JSON 404 for anything unmatched
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
		})
	})

	routeLogger.Println("Routes initialized successfully")
}
