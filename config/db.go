package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotelease-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotelease_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// ConnectDatabase opens the configured database, runs migrations and seeds
// baseline data. DB_DRIVER=sqlite switches to a file database for local
// development; MySQL is the default.
func ConnectDatabase() error {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	var dialector gorm.Dialector
	if strings.EqualFold(envOrDefault("DB_DRIVER", "mysql"), "sqlite") {
		dialector = sqlite.Open(envOrDefault("DB_PATH", "hotelease.db"))
	} else {
		dsn, err := resolveMySQLDSN()
		if err != nil {
			return err
		}
		dialector = mysql.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// parent -> child order
	if err := DB.AutoMigrate(
		&models.Company{},
		&models.Role{},
		&models.User{},
		&models.Amenity{},
		&models.Room{},
		&models.Booking{},
	); err != nil {
		return err
	}

	return SeedDatabase(DB)
}

// SeedDatabase ensures the fixed role set exists and, unless disabled,
// a default company with an admin user for first login.
func SeedDatabase(db *gorm.DB) error {
	desiredRoles := []models.Role{
		{Name: models.RoleAdmin, Description: "Full access to company resources"},
		{Name: models.RoleHotelManager, Description: "Room, amenity and booking management"},
		{Name: models.RoleReception, Description: "Front desk booking operations"},
		{Name: models.RoleHousekeeping, Description: "Room status updates"},
		{Name: models.RoleGuest, Description: "Read-only access to own bookings"},
	}

	for i := range desiredRoles {
		role := desiredRoles[i]

		var existing models.Role
		err := db.Where("name = ?", role.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to check role %s: %w", role.Name, err)
		}
		if err := db.Create(&role).Error; err != nil {
			return fmt.Errorf("failed to seed role %s: %w", role.Name, err)
		}
	}

	if strings.EqualFold(envOrDefault("SEED_DEFAULT_ADMIN", "true"), "false") {
		return nil
	}

	var adminCount int64
	db.Model(&models.User{}).Count(&adminCount)
	if adminCount > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("SEED_ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("warning: failed to hash default admin password: %v", err)
		return nil
	}

	var adminRole models.Role
	if err := db.Where("name = ?", models.RoleAdmin).First(&adminRole).Error; err != nil {
		return fmt.Errorf("admin role missing after seed: %w", err)
	}

	company := models.Company{Name: envOrDefault("SEED_COMPANY_NAME", "HotelEase Demo Hotel")}
	if err := db.Where("name = ?", company.Name).FirstOrCreate(&company).Error; err != nil {
		log.Printf("warning: failed to seed default company: %v", err)
		return nil
	}

	admin := models.User{
		CompanyID: company.ID,
		Name:      "Admin User",
		Email:     envOrDefault("SEED_ADMIN_EMAIL", "admin@hotelease.local"),
		Password:  string(hash),
		RoleID:    adminRole.ID,
		IsActive:  true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("warning: failed to seed default admin: %v", err)
		return nil
	}

	log.Println("Default company and admin seeded")
	return nil
}
