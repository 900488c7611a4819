package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctorconnect/models"
)

func newPagesApp(t *testing.T) (*fiber.App, *PagesController) {
	t.Helper()
	pc := NewPagesController(setupTestDB(t), testLogger())
	app := fiber.New()
	app.Get("/", pc.Home)
	app.Get("/about/", pc.About)
	app.Get("/contact/", pc.Contact)
	return app, pc
}

func pagesGet(t *testing.T, app *fiber.App, path string) map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeBody(t, resp)
}

func TestHomePage(t *testing.T) {
	app, pc := newPagesApp(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, pc.DB.Create(&models.Testimonial{
			DoctorName:      "Dr. Smith",
			PracticeName:    "Smith Clinic",
			Specialty:       "dental",
			TestimonialText: "Great work",
			Rating:          5,
			IsFeatured:      true,
			IsActive:        true,
		}).Error)
	}
	require.NoError(t, pc.DB.Create(&models.Testimonial{
		DoctorName:      "Dr. Hidden",
		PracticeName:    "Hidden Clinic",
		Specialty:       "dental",
		TestimonialText: "Not shown",
		Rating:          4,
		IsFeatured:      false,
		IsActive:        true,
	}).Error)

	require.NoError(t, pc.DB.Create(&models.Service{
		Name: "Website Design", Description: "d", ShortDescription: "s",
		BasePrice: 999, PricePeriod: "one-time", IsActive: true,
	}).Error)
	retired := models.Service{Name: "Retired Service", Description: "d", ShortDescription: "s"}
	require.NoError(t, pc.DB.Create(&retired).Error)
	require.NoError(t, pc.DB.Model(&retired).Update("is_active", false).Error)

	require.NoError(t, pc.DB.Create(&models.ContactInquiry{
		FirstName: "A", LastName: "B", Email: "a@example.com",
		PracticeName: "P", Specialty: "dental", Location: "L", Message: "M",
		Status: models.StatusClosed,
	}).Error)
	require.NoError(t, pc.DB.Create(&models.NewsletterSubscription{
		Email: "sub@example.com", IsActive: true,
	}).Error)

	body := pagesGet(t, app, "/")

	testimonials, ok := body["featured_testimonials"].([]interface{})
	require.True(t, ok)
	assert.Len(t, testimonials, 2, "featured list is capped at 2")

	services, ok := body["services"].([]interface{})
	require.True(t, ok)
	require.Len(t, services, 1, "inactive services are hidden")

	stats, ok := body["stats"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 1, stats["total_doctors"])
	assert.EqualValues(t, 1, stats["total_inquiries"])
	assert.EqualValues(t, 1, stats["active_subscriptions"])
}

func TestAboutPage(t *testing.T) {
	app, pc := newPagesApp(t)

	for _, specialty := range []string{"dental", "dental", "cardiology"} {
		require.NoError(t, pc.DB.Create(&models.ContactInquiry{
			FirstName: "A", LastName: "B", Email: "a@example.com",
			PracticeName: "P", Specialty: specialty, Location: "L", Message: "M",
			Status: models.StatusNegotiating,
		}).Error)
	}

	body := pagesGet(t, app, "/about/")
	stats, ok := body["stats"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 5, stats["years_experience"])
	assert.EqualValues(t, 3, stats["doctors_served"])
	assert.EqualValues(t, 2, stats["medical_specialties"])
}

func TestContactPage(t *testing.T) {
	app, pc := newPagesApp(t)

	require.NoError(t, pc.DB.Create(&models.ContactMethod{
		Name: "Phone", Type: "phone", Value: "+1 555 000 0000", IsActive: true,
	}).Error)
	require.NoError(t, pc.DB.Create(&models.FAQ{
		Question: "Q1", Answer: "A1", Category: "general", IsActive: true,
	}).Error)
	hidden := models.FAQ{Question: "Q2", Answer: "A2", Category: "pricing"}
	require.NoError(t, pc.DB.Create(&hidden).Error)
	require.NoError(t, pc.DB.Model(&hidden).Update("is_active", false).Error)

	body := pagesGet(t, app, "/contact/")

	methods, ok := body["contact_methods"].([]interface{})
	require.True(t, ok)
	assert.Len(t, methods, 1)

	faqs, ok := body["faqs"].([]interface{})
	require.True(t, ok)
	assert.Len(t, faqs, 1, "inactive FAQs are hidden")

	office, ok := body["office_info"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "hello@doctorconnect.com", office["email"])
}
