package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"trade-admin.backend/internal/config"
	"trade-admin.backend/internal/infrastructure/models"
	"trade-admin.backend/pkg/crypto"
)

var countries = []string{
	"United States", "United Kingdom", "Germany", "France", "Spain",
	"Italy", "Canada", "Australia", "Japan", "Brazil",
}

var firstNames = []string{
	"James", "Maria", "Oliver", "Sofia", "Lucas", "Emma", "Noah", "Mia",
	"Ethan", "Ava", "Liam", "Isabella", "Mason", "Amelia", "Logan", "Diana",
}

var lastNames = []string{
	"Smith", "Garcia", "Johnson", "Martinez", "Brown", "Rodriguez",
	"Miller", "Lopez", "Wilson", "Silva", "Anderson", "Costa",
}

var statuses = []string{"active", "active", "active", "inactive", "suspended", "pending"}
var riskLevels = []string{"low", "low", "low", "medium", "medium", "high"}
var kycStatuses = []string{"approved", "approved", "pending", "rejected", "not_submitted"}
var txTypes = []string{"deposit", "withdrawal", "trade", "bonus", "fee"}
var txStatuses = []string{"completed", "completed", "completed", "pending", "failed", "rejected"}

func main() {
	userCount := flag.Int("users", 200, "number of demo users to create")
	adminEmail := flag.String("admin-email", "admin@example.com", "back-office admin email")
	adminPassword := flag.String("admin-password", "admin123", "back-office admin password")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.Database.URL(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.KycDocument{},
		&models.Transaction{},
		&models.ChatMessage{},
		&models.AdminUser{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}
	log.Println("schema migrated")

	if err := seedAdmin(db, *adminEmail, *adminPassword); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if err := seedUsers(db, rng, *userCount); err != nil {
		log.Fatalf("failed to seed users: %v", err)
	}
	log.Printf("seeded %d users", *userCount)
}

func seedAdmin(db *gorm.DB, email, password string) error {
	var count int64
	if err := db.Model(&models.AdminUser{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("admin %s already exists, skipping", email)
		return nil
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}
	admin := &models.AdminUser{
		ID:           uuid.New(),
		FullName:     "Platform Admin",
		Email:        email,
		PasswordHash: hash,
		Role:         "superadmin",
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}
	log.Printf("created admin %s", email)
	return nil
}

func seedUsers(db *gorm.DB, rng *rand.Rand, count int) error {
	now := time.Now().UTC()

	for i := 0; i < count; i++ {
		registeredAt := now.AddDate(0, 0, -rng.Intn(365))
		balance := float64(rng.Intn(5000000)) / 100
		deposited := balance + float64(rng.Intn(2000000))/100
		fullName := fmt.Sprintf("%s %s",
			firstNames[rng.Intn(len(firstNames))],
			lastNames[rng.Intn(len(lastNames))],
		)

		tags, _ := json.Marshal(randomTags(rng))
		tagsStr := string(tags)

		referralCode, err := crypto.GenerateReferralCode()
		if err != nil {
			return err
		}

		user := &models.User{
			ID:             uuid.New(),
			Email:          fmt.Sprintf("user%d@example.com", i+1),
			FullName:       fullName,
			Country:        countries[rng.Intn(len(countries))],
			Status:         statuses[rng.Intn(len(statuses))],
			Verified:       rng.Intn(100) < 70,
			Balance:        balance,
			TotalDeposited: deposited,
			TotalWithdrawn: float64(rng.Intn(1000000)) / 100,
			TotalProfit:    float64(rng.Intn(2000000)-1000000) / 100,
			TotalTrades:    rng.Intn(500),
			WinRate:        float64(rng.Intn(10000)) / 100,
			RegisteredAt:   registeredAt,
			ReferralCode:   referralCode,
			KYCStatus:      kycStatuses[rng.Intn(len(kycStatuses))],
			RiskLevel:      riskLevels[rng.Intn(len(riskLevels))],
			Tags:           &tagsStr,
		}
		if rng.Intn(100) < 80 {
			lastLogin := now.AddDate(0, 0, -rng.Intn(30))
			user.LastLogin = &lastLogin
		}
		if err := db.Create(user).Error; err != nil {
			return err
		}

		if err := seedTransactions(db, rng, user, registeredAt); err != nil {
			return err
		}
		if user.KYCStatus == "approved" || user.KYCStatus == "pending" {
			if err := seedKycDocument(db, rng, user, registeredAt); err != nil {
				return err
			}
		}
		if rng.Intn(100) < 30 {
			if err := seedChat(db, rng, user, now); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedTransactions(db *gorm.DB, rng *rand.Rand, user *models.User, since time.Time) error {
	span := int64(time.Since(since))
	if span <= 0 {
		span = int64(time.Hour)
	}
	n := rng.Intn(10)
	for i := 0; i < n; i++ {
		createdAt := since.Add(time.Duration(rng.Int63n(span)))
		status := txStatuses[rng.Intn(len(txStatuses))]
		txType := txTypes[rng.Intn(len(txTypes))]

		tx := &models.Transaction{
			ID:          uuid.New(),
			UserID:      user.ID,
			Type:        txType,
			Amount:      float64(rng.Intn(1000000)) / 100,
			Currency:    "USD",
			Status:      status,
			Description: fmt.Sprintf("%s via web platform", txType),
			CreatedAt:   createdAt,
		}
		if status == "completed" {
			completedAt := createdAt.Add(time.Duration(rng.Intn(3600)) * time.Second)
			tx.CompletedAt = &completedAt
		}
		if err := db.Create(tx).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedKycDocument(db *gorm.DB, rng *rand.Rand, user *models.User, since time.Time) error {
	docTypes := []string{"passport", "drivers_license", "national_id"}
	doc := &models.KycDocument{
		ID:         uuid.New(),
		UserID:     user.ID,
		Type:       docTypes[rng.Intn(len(docTypes))],
		URL:        fmt.Sprintf("https://storage.example.com/kyc/%s.pdf", uuid.New()),
		UploadedAt: since.AddDate(0, 0, rng.Intn(7)),
	}
	return db.Create(doc).Error
}

func seedChat(db *gorm.DB, rng *rand.Rand, user *models.User, now time.Time) error {
	openers := []string{
		"Hi, I have a question about my withdrawal.",
		"My deposit is not showing up yet.",
		"How do I complete identity verification?",
		"Can you check the status of my account?",
	}
	n := 1 + rng.Intn(5)
	start := now.Add(-time.Duration(rng.Intn(72)) * time.Hour)
	for i := 0; i < n; i++ {
		isAdmin := i%2 == 1
		message := openers[rng.Intn(len(openers))]
		if isAdmin {
			message = "Thanks for reaching out, we are looking into it."
		}
		msg := &models.ChatMessage{
			ID:        uuid.New(),
			UserID:    user.ID,
			Message:   message,
			IsAdmin:   isAdmin,
			CreatedAt: start.Add(time.Duration(i) * 10 * time.Minute),
		}
		if err := db.Create(msg).Error; err != nil {
			return err
		}
	}
	return nil
}

func randomTags(rng *rand.Rand) []string {
	pool := []string{"vip", "new", "high-volume", "referral", "promo-2026", "watchlist"}
	n := rng.Intn(3)
	tags := make([]string, 0, n)
	for i := 0; i < n; i++ {
		tags = append(tags, pool[rng.Intn(len(pool))])
	}
	return tags
}
