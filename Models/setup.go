package Models

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "database.db"
	}

	connection, err := gorm.Open(sqlite.Open(dbPath))
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	DB = connection

	// 1. Base tables with no foreign keys
	DB.AutoMigrate(
		&Department{},
		&TaskTemplate{},
	)

	// 2. Tables depending on the base set
	DB.AutoMigrate(
		&User{},
		&FCMToken{},
	)

	// 3. Tasks and everything hanging off them
	DB.AutoMigrate(
		&Task{},
		&TaskAssignment{},
		&TaskDependency{},
		&Comment{},
		&CommentMention{},
		&Notification{},
		&AuditLog{},
	)

	seedAdmin()

	if err := SeedFromFile("seed.json5"); err != nil {
		log.Printf("Seed file skipped: %v", err)
	}
}

// seedAdmin creates the initial admin account when no admin exists yet.
func seedAdmin() {
	var count int64
	DB.Model(&User{}).Where("permission = ?", PermissionAdmin).Count(&count)
	if count > 0 {
		return
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" {
		email = "admin@taskflow.local"
	}
	if password == "" {
		password = "changeme"
	}

	passwordByte, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Failed to hash admin password:", err)
		return
	}

	admin := User{
		Email:      email,
		Name:       "Administrator",
		Password:   passwordByte,
		Permission: PermissionAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Println("Failed to seed admin user:", err)
		return
	}
	log.Println("Seeded admin user:", email)
}
