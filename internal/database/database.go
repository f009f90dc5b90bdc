package database

import (
	"errors"
	"log"
	"os"

	"gramseva/config"
	"gramseva/internal/domain"
	"gramseva/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error), // Only log errors, not every SQL query
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Village{},
		&models.User{},
		&models.TaxPayment{},
		&models.Announcement{},
		&models.Notice{},
		&models.ContactMessage{},
		&models.Feedback{},
		&models.QuickServiceRequest{},
		&models.Item{},
		&models.ServiceCategory{},
		&models.VillageService{},
		&models.Scheme{},
		&models.DevWork{},
		&models.PanchayatMember{},
		&models.EmergencyContact{},
		&models.GalleryImage{},
		&models.MarketPrice{},
		&models.Notification{},
		&models.AuditLog{},
	)
}

// SeedVillage ensures a village row exists and returns it.
func SeedVillage(db *gorm.DB) *models.Village {
	var v models.Village
	err := db.First(&v).Error
	if err == nil {
		return &v
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[SEED] village lookup: %v", err)
		return nil
	}
	v = models.Village{
		Name:   os.Getenv("VILLAGE_NAME"),
		NameMr: os.Getenv("VILLAGE_NAME_MR"),
	}
	if v.Name == "" {
		v.Name = "Gramseva Village"
	}
	if err := db.Create(&v).Error; err != nil {
		log.Printf("[SEED] village create: %v", err)
		return nil
	}
	return &v
}

// SeedAdmin creates the default admin account when none exists. Credentials
// come from ADMIN_EMAIL / ADMIN_PASSWORD; skipped if either is unset.
func SeedAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}
	var count int64
	db.Model(&models.User{}).Where("role = ?", domain.RoleAdmin).Count(&count)
	if count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[SEED] admin password hash: %v", err)
		return
	}
	admin := &models.User{
		FullName:     "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Status:       domain.UserStatusApproved,
	}
	if err := db.Create(admin).Error; err != nil {
		log.Printf("[SEED] admin create: %v", err)
		return
	}
	log.Printf("[SEED] admin account created: %s", email)
}
