package main

import (
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"zebratime/internal/database"
	"zebratime/internal/domain"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "zebratime.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data (children first)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM availability_rules")
	db.Exec("DELETE FROM tables")
	db.Exec("DELETE FROM businesses")

	// ================== BUSINESSES ==================
	log.Println("Creating businesses...")

	trattoria := domain.Business{
		OwnerID:          1,
		Name:             "Trattoria Zebra",
		Slug:             "trattoria-zebra",
		Description:      "Late-night Italian kitchen",
		Address:          "14 Canal Street",
		City:             "Rotterdam",
		Phone:            "+31 10 123 4567",
		Timezone:         "Europe/Amsterdam",
		SlotDuration:     60,
		ConfirmationMode: domain.ConfirmAuto,
		IsActive:         true,
	}
	if err := db.Create(&trattoria).Error; err != nil {
		log.Fatal(err)
	}

	sunrise := domain.Business{
		OwnerID:          2,
		Name:             "Cafe Sunrise",
		Slug:             "cafe-sunrise",
		Description:      "Breakfast and brunch",
		Address:          "2 Harbor Lane",
		City:             "Rotterdam",
		Phone:            "+31 10 765 4321",
		Timezone:         "Europe/Amsterdam",
		SlotDuration:     30,
		ConfirmationMode: domain.ConfirmManual,
		IsActive:         true,
	}
	if err := db.Create(&sunrise).Error; err != nil {
		log.Fatal(err)
	}

	// ================== AVAILABILITY RULES ==================
	log.Println("Creating availability rules...")

	var rules []domain.AvailabilityRule
	// Trattoria: dinner service Tue-Sun, Fri/Sat running past midnight.
	for day := 0; day <= 6; day++ {
		if day == 1 { // closed Mondays
			continue
		}
		closeAt := "23:00"
		if day == 5 || day == 6 {
			closeAt = "01:00"
		}
		rules = append(rules, domain.AvailabilityRule{
			BusinessID: trattoria.ID, DayOfWeek: day, Open: "17:00", Close: closeAt,
		})
	}
	// Sunrise: split morning and lunch service on weekdays.
	for day := 1; day <= 5; day++ {
		rules = append(rules,
			domain.AvailabilityRule{BusinessID: sunrise.ID, DayOfWeek: day, Open: "08:00", Close: "11:30"},
			domain.AvailabilityRule{BusinessID: sunrise.ID, DayOfWeek: day, Open: "12:00", Close: "15:00"},
		)
	}
	if err := db.Create(&rules).Error; err != nil {
		log.Fatal(err)
	}

	// ================== TABLES ==================
	log.Println("Creating tables...")

	tables := []domain.Table{
		{BusinessID: trattoria.ID, Label: "T1", Capacity: 2, IsActive: true},
		{BusinessID: trattoria.ID, Label: "T2", Capacity: 2, IsActive: true},
		{BusinessID: trattoria.ID, Label: "T3", Capacity: 4, IsActive: true},
		{BusinessID: trattoria.ID, Label: "T4", Capacity: 4, IsActive: true},
		{BusinessID: trattoria.ID, Label: "T5", Capacity: 6, IsActive: true},
		{BusinessID: trattoria.ID, Label: "T6", Capacity: 8, IsActive: true},
		{BusinessID: sunrise.ID, Label: "A", Capacity: 2, IsActive: true},
		{BusinessID: sunrise.ID, Label: "B", Capacity: 4, IsActive: true},
		{BusinessID: sunrise.ID, Label: "C", Capacity: 6, IsActive: false}, // terrace, closed for winter
	}
	if err := db.Create(&tables).Error; err != nil {
		log.Fatal(err)
	}

	// ================== BOOKINGS ==================
	log.Println("Creating sample bookings...")

	nextFriday := upcoming(time.Friday).Format("2006-01-02")
	bookings := []domain.Booking{
		{
			BusinessID: trattoria.ID, TableID: &tables[2].ID, Reference: uuid.NewString(),
			Date: nextFriday, StartTime: "19:00", EndTime: "20:00", PartySize: 4,
			Status: domain.BookingConfirmed, Source: domain.SourceWeb,
			GuestName: "Maya Lindt", GuestPhone: "+31 6 1111 2222",
		},
		{
			BusinessID: trattoria.ID, TableID: &tables[0].ID, Reference: uuid.NewString(),
			Date: nextFriday, StartTime: "00:00", EndTime: "01:00", PartySize: 2,
			Status: domain.BookingConfirmed, Source: domain.SourceAssistant,
			GuestName: "Jonas Brandt", GuestPhone: "+31 6 3333 4444",
		},
		{
			BusinessID: trattoria.ID, Reference: uuid.NewString(),
			Date: nextFriday, StartTime: "20:00", EndTime: "21:00", PartySize: 10,
			Status: domain.BookingPending, Source: domain.SourceAssistant,
			GuestName: "Office party", GuestPhone: "+31 6 5555 6666",
		},
	}
	if err := db.Create(&bookings).Error; err != nil {
		log.Fatal(err)
	}

	log.Println("Seed complete.")
}

func upcoming(day time.Weekday) time.Time {
	t := time.Now()
	for t.Weekday() != day {
		t = t.AddDate(0, 0, 1)
	}
	return t
}
