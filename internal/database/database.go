package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"servicehub/internal/domain"
)

// Connect opens PostgreSQL for postgres:// DSNs and falls back to the cgo-free
// sqlite driver for anything else (local files, ":memory:" in tests).
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates or updates the schema for every marketplace entity.
// Used by cmd/seed and the sqlite test databases; production schema changes
// go through regular migrations.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.PostCategory{},
		&domain.CustomerPost{},
		&domain.WorkerPost{},
		&domain.PostMedium{},
		&domain.Offer{},
		&domain.JobProgress{},
		&domain.Rating{},
		&domain.RatingCustomerPost{},
		&domain.Conversation{},
		&domain.Message{},
		&domain.FavoriteCustomerPost{},
		&domain.FavoriteWorkerPost{},
		&domain.SubscriptionPlan{},
		&domain.Subscription{},
		&domain.PaymentMethod{},
		&domain.Payment{},
		&domain.WorkerApproval{},
		&domain.Advertisement{},
	)
}
