package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"servicehub/internal/config"
	"servicehub/internal/database"
	"servicehub/internal/domain"
)

// Seeds the database with the baseline catalog: post categories, subscription
// plans, payment methods and the initial admin account. Safe to re-run,
// existing rows are left alone.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	categories := []domain.PostCategory{
		{Name: "Plumbing", IsActive: true},
		{Name: "Electrical", IsActive: true},
		{Name: "Cleaning", IsActive: true},
		{Name: "Moving", IsActive: true},
		{Name: "Repairs", IsActive: true},
		{Name: "Gardening", IsActive: true},
	}
	for _, c := range categories {
		var count int64
		db.Model(&domain.PostCategory{}).Where("name = ?", c.Name).Count(&count)
		if count == 0 {
			if err := db.Create(&c).Error; err != nil {
				log.Fatalf("seed category %q: %v", c.Name, err)
			}
		}
	}

	plans := []domain.SubscriptionPlan{
		{Name: "Basic", Description: "Monthly listing access", Price: 9.90, DurationDays: 30, IsActive: true},
		{Name: "Pro", Description: "Monthly access with highlighted posts", Price: 29.90, DurationDays: 30, IsActive: true},
		{Name: "Annual", Description: "A full year of Pro", Price: 299.00, DurationDays: 365, IsActive: true},
	}
	for _, p := range plans {
		var count int64
		db.Model(&domain.SubscriptionPlan{}).Where("name = ?", p.Name).Count(&count)
		if count == 0 {
			if err := db.Create(&p).Error; err != nil {
				log.Fatalf("seed plan %q: %v", p.Name, err)
			}
		}
	}

	methods := []domain.PaymentMethod{
		{Name: "Card", IsActive: true},
		{Name: "Bank transfer", IsActive: true},
	}
	for _, m := range methods {
		var count int64
		db.Model(&domain.PaymentMethod{}).Where("name = ?", m.Name).Count(&count)
		if count == 0 {
			if err := db.Create(&m).Error; err != nil {
				log.Fatalf("seed payment method %q: %v", m.Name, err)
			}
		}
	}

	var admins int64
	db.Model(&domain.User{}).Where("role = ?", domain.RoleAdmin).Count(&admins)
	if admins == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		admin := domain.User{
			Email:        "admin@servicehub.local",
			PasswordHash: string(hash),
			Role:         domain.RoleAdmin,
			FullName:     "Administrator",
			CreatedAt:    time.Now(),
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("seed admin: %v", err)
		}
		log.Println("created admin admin@servicehub.local (change the password immediately)")
	}

	log.Println("seed complete")
}
