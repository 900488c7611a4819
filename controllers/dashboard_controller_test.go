package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctorconnect/config"
	"doctorconnect/middleware"
	"doctorconnect/models"
	"doctorconnect/utils"
)

// newDashboardApp wires the staff gate the way routes do, pointing the
// package-level config globals at the test database.
func newDashboardApp(t *testing.T) (*fiber.App, *DashboardController) {
	t.Helper()
	db := setupTestDB(t)
	config.DB = db
	config.AppConfig.JWTSecret = "test-secret"
	t.Cleanup(func() { config.DB = nil })

	dc := NewDashboardController(db, testLogger())
	app := fiber.New()
	dashboard := app.Group("/dashboard", middleware.Staff())
	dashboard.Get("/", dc.GetDashboard)
	dashboard.Get("/inquiry/:id/", dc.GetInquiryDetail)
	return app, dc
}

func staffToken(t *testing.T, dc *DashboardController) string {
	t.Helper()
	require.NoError(t, SeedStaffUser(dc.DB, "staff@doctorconnect.test", "s3cret-pass", testLogger()))
	var user models.User
	require.NoError(t, dc.DB.Where("email = ?", "staff@doctorconnect.test").First(&user).Error)
	token, err := utils.GenerateAccessToken(&user)
	require.NoError(t, err)
	return token
}

func dashboardGet(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func seedInquiry(t *testing.T, dc *DashboardController, specialty, status string, submittedAt time.Time) models.ContactInquiry {
	t.Helper()
	inquiry := models.ContactInquiry{
		FirstName:    "Test",
		LastName:     "Doctor",
		Email:        "doctor@example.com",
		PracticeName: "Test Practice",
		Specialty:    specialty,
		Location:     "Nowhere",
		Message:      "Hello",
		Status:       status,
		SubmittedAt:  submittedAt,
	}
	require.NoError(t, dc.DB.Create(&inquiry).Error)
	return inquiry
}

func TestDashboardRequiresStaff(t *testing.T) {
	app, dc := newDashboardApp(t)

	// No token at all
	resp := dashboardGet(t, app, "/dashboard/", "")
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	// Garbage token
	resp = dashboardGet(t, app, "/dashboard/", "not-a-jwt")
	require.Equal(t, http.StatusFound, resp.StatusCode)

	// Valid token for a non-staff account
	user := models.User{Email: "visitor@example.com", PasswordHash: "x", IsActive: true, IsStaff: false}
	require.NoError(t, dc.DB.Create(&user).Error)
	token, err := utils.GenerateAccessToken(&user)
	require.NoError(t, err)
	resp = dashboardGet(t, app, "/dashboard/", token)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestDashboardStats(t *testing.T) {
	app, dc := newDashboardApp(t)
	token := staffToken(t, dc)

	now := time.Now()
	for i := 0; i < 12; i++ {
		seedInquiry(t, dc, "cardiology", models.StatusNew, now.Add(-time.Duration(i)*time.Hour))
	}
	seedInquiry(t, dc, "dental", models.StatusContacted, now.Add(-24*time.Hour))
	seedInquiry(t, dc, "dental", models.StatusClosed, now.Add(-48*time.Hour))

	resp := dashboardGet(t, app, "/dashboard/", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)

	recent, ok := body["recent_inquiries"].([]interface{})
	require.True(t, ok)
	assert.Len(t, recent, 10, "recent list is capped at 10")

	stats, ok := body["stats"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 14, stats["total_inquiries"])
	assert.EqualValues(t, 12, stats["new_inquiries"])
	assert.EqualValues(t, 1, stats["contacted_inquiries"])
	assert.EqualValues(t, 0, stats["qualified_inquiries"])
	assert.EqualValues(t, 1, stats["closed_inquiries"])

	specialties, ok := body["specialty_stats"].([]interface{})
	require.True(t, ok)
	require.NotEmpty(t, specialties)
	top, ok := specialties[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "cardiology", top["specialty"])
	assert.EqualValues(t, 12, top["count"])
}

func TestInquiryDetailWithLogs(t *testing.T) {
	app, dc := newDashboardApp(t)
	token := staffToken(t, dc)

	inquiry := seedInquiry(t, dc, "dermatology", models.StatusNew, time.Now())
	older := models.ContactLog{
		InquiryID:   inquiry.ID,
		Action:      models.ActionFormSubmitted,
		PerformedBy: "System",
		PerformedAt: time.Now().Add(-2 * time.Hour),
	}
	newer := models.ContactLog{
		InquiryID:   inquiry.ID,
		Action:      models.ActionPhoneCall,
		PerformedBy: "Alex",
		PerformedAt: time.Now().Add(-1 * time.Hour),
	}
	require.NoError(t, dc.DB.Create(&older).Error)
	require.NoError(t, dc.DB.Create(&newer).Error)

	resp := dashboardGet(t, app, "/dashboard/inquiry/1/", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	logs, ok := body["contact_logs"].([]interface{})
	require.True(t, ok)
	require.Len(t, logs, 2)

	first, ok := logs[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, models.ActionPhoneCall, first["action"], "newest entry first")
}

func TestInquiryDetailNotFound(t *testing.T) {
	app, dc := newDashboardApp(t)
	token := staffToken(t, dc)

	resp := dashboardGet(t, app, "/dashboard/inquiry/999/", token)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Inquiry not found", body["error"])
}
