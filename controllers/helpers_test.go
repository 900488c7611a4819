package controller

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"doctorconnect/config"
	"doctorconnect/models"
)

// setupTestDB opens an isolated in-memory SQLite database. A single
// connection keeps every query on the same memory instance.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{DriverName: "sqlite", Conn: sqlDB}, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, config.MigrateDB(db))

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// stubMailer records send calls; set fail to exercise error handling.
type stubMailer struct {
	confirmations int
	teamNotes     int
	welcomes      int
	quickNotes    int
	fail          bool
}

func (m *stubMailer) err() error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	return nil
}

func (m *stubMailer) SendInquiryConfirmation(*models.ContactInquiry) error {
	m.confirmations++
	return m.err()
}

func (m *stubMailer) SendTeamNotification(*models.ContactInquiry) error {
	m.teamNotes++
	return m.err()
}

func (m *stubMailer) SendNewsletterWelcome(*models.NewsletterSubscription) error {
	m.welcomes++
	return m.err()
}

func (m *stubMailer) SendQuickContactNotification(*models.ContactInquiry, string) error {
	m.quickNotes++
	return m.err()
}

func postForm(t *testing.T, app *fiber.App, path string, values url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func validInquiryValues() url.Values {
	return url.Values{
		"first_name":      {"Jane"},
		"last_name":       {"Doe"},
		"email":           {"jane.doe@example.com"},
		"phone":           {"(555) 123-4567"},
		"practice_name":   {"Doe Family Medicine"},
		"specialty":       {"family-medicine"},
		"location":        {"Austin, TX"},
		"services_needed": {"website-design", "seo-optimization"},
		"budget_range":    {"1000-2000"},
		"timeline":        {"1-month"},
		"message":         {"We need a new website for our practice."},
	}
}
