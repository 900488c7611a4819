package models

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{DriverName: "sqlite", Conn: sqlDB}, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(&ContactInquiry{}, &ContactLog{}, &NewsletterSubscription{}))

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestContactInquiryFullName(t *testing.T) {
	inquiry := ContactInquiry{FirstName: "Jane", LastName: "Doe"}
	assert.Equal(t, "Jane Doe", inquiry.FullName())
}

func TestDaysSinceSubmission(t *testing.T) {
	inquiry := ContactInquiry{SubmittedAt: time.Now().Add(-49 * time.Hour)}
	assert.Equal(t, 2, inquiry.DaysSinceSubmission())

	inquiry.SubmittedAt = time.Now().Add(-time.Hour)
	assert.Equal(t, 0, inquiry.DaysSinceSubmission())
}

func TestContactInquiryBeforeCreateDefaults(t *testing.T) {
	db := openTestDB(t)

	inquiry := ContactInquiry{
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane@example.com",
		PracticeName: "Doe Clinic",
		Specialty:    "other",
		Location:     "Portland, OR",
		Message:      "Hi",
	}
	require.NoError(t, db.Create(&inquiry).Error)

	assert.Equal(t, StatusNew, inquiry.Status)
	assert.Equal(t, PriorityMedium, inquiry.Priority)
	assert.False(t, inquiry.SubmittedAt.IsZero())
}

func TestServicesNeededRoundTrip(t *testing.T) {
	db := openTestDB(t)

	inquiry := ContactInquiry{
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jane@example.com",
		PracticeName:   "Doe Clinic",
		Specialty:      "dental",
		Location:       "Boise, ID",
		Message:        "Hi",
		ServicesNeeded: StringList{"website-design", "google-business"},
	}
	require.NoError(t, db.Create(&inquiry).Error)

	var loaded ContactInquiry
	require.NoError(t, db.First(&loaded, inquiry.ID).Error)
	assert.Equal(t, StringList{"website-design", "google-business"}, loaded.ServicesNeeded)
}

func TestContactLogBeforeCreateSetsPerformedAt(t *testing.T) {
	db := openTestDB(t)

	inquiry := ContactInquiry{
		FirstName: "A", LastName: "B", Email: "a@example.com",
		PracticeName: "P", Specialty: "other", Location: "L", Message: "M",
	}
	require.NoError(t, db.Create(&inquiry).Error)

	entry := ContactLog{
		InquiryID:   inquiry.ID,
		Action:      ActionFollowUp,
		PerformedBy: "Alex",
	}
	require.NoError(t, db.Create(&entry).Error)
	assert.False(t, entry.PerformedAt.IsZero())
}

func TestNewsletterSubscriptionFullName(t *testing.T) {
	tests := []struct {
		name string
		sub  NewsletterSubscription
		want string
	}{
		{"both names", NewsletterSubscription{FirstName: "Jane", LastName: "Doe", Email: "j@example.com"}, "Jane Doe"},
		{"first only", NewsletterSubscription{FirstName: "Jane", Email: "j@example.com"}, "Jane"},
		{"last only", NewsletterSubscription{LastName: "Doe", Email: "j@example.com"}, "Doe"},
		{"email fallback", NewsletterSubscription{Email: "j@example.com"}, "j@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sub.FullName())
		})
	}
}

func TestNewsletterSubscriptionDefaults(t *testing.T) {
	db := openTestDB(t)

	sub := NewsletterSubscription{Email: "j@example.com"}
	require.NoError(t, db.Create(&sub).Error)
	assert.Equal(t, SourceWebsite, sub.Source)
	assert.False(t, sub.SubscribedAt.IsZero())
}

func TestNewsletterSubscriptionEmailUnique(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Create(&NewsletterSubscription{Email: "j@example.com"}).Error)
	err := db.Create(&NewsletterSubscription{Email: "j@example.com"}).Error
	assert.Error(t, err)
}
