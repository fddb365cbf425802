package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"zebratime/internal/domain"
)

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

// Migrate keeps the schema current and installs the double-booking guard.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Business{},
		&domain.Table{},
		&domain.AvailabilityRule{},
		&domain.Booking{},
	); err != nil {
		return err
	}

	// Advisory check-then-insert is not enough under concurrent intake; the
	// partial unique index makes the database reject the second writer.
	// Postgres only — the SQLite dev database skips it.
	if db.Dialector.Name() == "postgres" {
		return db.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS idx_no_double_booking
ON bookings (table_id, date, start_time)
WHERE table_id IS NOT NULL
  AND status NOT IN ('cancelled', 'rejected', 'completed', 'no_show')
`).Error
	}
	return nil
}
