package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"doctorconnect/models"
)

var (
	DB        *gorm.DB
	AppConfig Config
)

type RedisConfig struct {
	Enabled  bool   `json:"enabled"`
	Address  string `json:"address"`
	Password string `json:"-"`
	DB       int    `json:"db"`
}

type Config struct {
	Environment string `json:"environment"`
	ServerPort  string `json:"server_port"`

	// Database. Driver is "postgres" or "sqlite"; sqlite is the
	// local-development fallback.
	DBDriver       string `json:"db_driver"`
	DBHost         string `json:"db_host"`
	DBPort         string `json:"db_port"`
	DBUser         string `json:"db_user"`
	DBPassword     string `json:"-"`
	DBName         string `json:"db_name"`
	DBSSLMode      string `json:"db_ssl_mode"`
	DBMaxIdleConns int    `json:"db_max_idle_conns"`
	DBMaxOpenConns int    `json:"db_max_open_conns"`
	SQLitePath     string `json:"sqlite_path"`

	// Staff sessions
	JWTSecret string `json:"-"`

	// Error reporting
	SentryDSN string `json:"sentry_dsn"`

	// Outbound mail
	SMTPHost     string `json:"smtp_host"`
	SMTPPort     int    `json:"smtp_port"`
	SMTPUsername string `json:"smtp_username"`
	SMTPPassword string `json:"-"`
	FromEmail    string `json:"from_email"`
	FromName     string `json:"from_name"`
	// TeamEmail overrides the recipient for internal notifications;
	// empty means FromEmail.
	TeamEmail string `json:"team_email"`

	// Rate limiting for the public intake endpoints (requests per
	// minute per client IP).
	RateLimitIntake int         `json:"rate_limit_intake"`
	Redis           RedisConfig `json:"redis"`

	// Optional staff account seeded at startup when absent.
	AdminEmail    string `json:"admin_email"`
	AdminPassword string `json:"-"`
}

func init() {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()
}

func LoadConfig() error {
	AppConfig = Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		ServerPort:  getEnv("SERVER_PORT", "5000"),

		DBDriver:       getEnv("DB_DRIVER", "sqlite"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", "doctorconnect"),
		DBSSLMode:      getEnv("DB_SSL_MODE", "disable"),
		DBMaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
		DBMaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
		SQLitePath:     getEnv("SQLITE_PATH", "doctorconnect.db"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		SentryDSN: getEnv("SENTRY_DSN", ""),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "hello@doctorconnect.com"),
		FromName:     getEnv("FROM_NAME", "DoctorConnect"),
		TeamEmail:    getEnv("TEAM_EMAIL", ""),

		RateLimitIntake: getEnvAsInt("RATE_LIMIT_INTAKE", 20),
		Redis: RedisConfig{
			Enabled:  getEnv("REDIS_ADDRESS", "") != "",
			Address:  getEnv("REDIS_ADDRESS", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},

		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}

	// Validate required configurations
	if AppConfig.JWTSecret == "" {
		if AppConfig.Environment == "production" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		log.Println("⚠️ JWT_SECRET not set, using insecure development default")
		AppConfig.JWTSecret = "dev-only-secret"
	}
	if AppConfig.DBDriver == "postgres" && AppConfig.DBPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required for postgres")
	}

	logConfig()
	return nil
}

func ConnectDB() error {
	log.Println("Attempting to connect to database...")

	var dialector gorm.Dialector
	switch AppConfig.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			AppConfig.DBHost,
			AppConfig.DBPort,
			AppConfig.DBUser,
			AppConfig.DBPassword,
			AppConfig.DBName,
			AppConfig.DBSSLMode,
		)
		dialector = postgres.Open(dsn)
	case "sqlite":
		sqlDB, err := sql.Open("sqlite", AppConfig.SQLitePath)
		if err != nil {
			return fmt.Errorf("failed to open SQLite database: %w", err)
		}
		dialector = sqlite.Dialector{
			DriverName: "sqlite",
			DSN:        AppConfig.SQLitePath,
			Conn:       sqlDB,
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", AppConfig.DBDriver)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get DB instance: %w", err)
	}

	if AppConfig.DBDriver == "postgres" {
		sqlDB.SetMaxIdleConns(AppConfig.DBMaxIdleConns)
		sqlDB.SetMaxOpenConns(AppConfig.DBMaxOpenConns)
		sqlDB.SetConnMaxLifetime(time.Hour)
		sqlDB.SetConnMaxIdleTime(30 * time.Minute)
	}

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	log.Println("✅ Successfully connected to the database")
	log.Println("🔄 Starting database migration...")
	if err := MigrateDB(DB); err != nil {
		return fmt.Errorf("database migration failed: %w", err)
	}
	log.Println("✅ Database migration completed")
	return nil
}

// MigrateDB creates or updates the schema for every entity the system owns.
func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.ContactInquiry{},
		&models.ContactLog{},
		&models.NewsletterSubscription{},
		&models.ContactMethod{},
		&models.FAQ{},
		&models.Testimonial{},
		&models.Service{},
	)
}

// Helper functions
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return fallback
	}
	return value
}

func logConfig() {
	log.Println("🔧 Loaded configuration:")
	log.Printf("Environment: %s", AppConfig.Environment)
	log.Printf("Server Port: %s", AppConfig.ServerPort)
	if AppConfig.DBDriver == "postgres" {
		log.Printf("Database: %s@%s:%s/%s",
			AppConfig.DBUser,
			AppConfig.DBHost,
			AppConfig.DBPort,
			AppConfig.DBName)
	} else {
		log.Printf("Database: sqlite (%s)", AppConfig.SQLitePath)
	}
	log.Printf("Mail: from %s, team recipient override %t",
		AppConfig.FromEmail,
		AppConfig.TeamEmail != "")
}
