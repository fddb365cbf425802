package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"zebratime/internal/domain"
	"zebratime/internal/schedule"
)

// ErrConflict is returned when the serialized re-check inside CreateAssigned
// finds the chosen table already taken.
var ErrConflict = errors.New("table already booked for this window")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID                 int64      `gorm:"column:id;primaryKey"`
	BusinessID         int64      `gorm:"column:business_id"`
	TableID            *int64     `gorm:"column:table_id"`
	Reference          string     `gorm:"column:reference"`
	Date               string     `gorm:"column:date"`
	StartTime          string     `gorm:"column:start_time"`
	EndTime            string     `gorm:"column:end_time"`
	PartySize          int        `gorm:"column:party_size"`
	Status             string     `gorm:"column:status"`
	Source             string     `gorm:"column:source"`
	GuestName          string     `gorm:"column:guest_name"`
	GuestPhone         *string    `gorm:"column:guest_phone"`
	GuestEmail         *string    `gorm:"column:guest_email"`
	Notes              *string    `gorm:"column:notes"`
	CancellationReason *string    `gorm:"column:cancellation_reason"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
	CancelledAt        *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	deref := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}

	return &domain.Booking{
		ID:                 m.ID,
		BusinessID:         m.BusinessID,
		TableID:            m.TableID,
		Reference:          m.Reference,
		Date:               m.Date,
		StartTime:          m.StartTime,
		EndTime:            m.EndTime,
		PartySize:          m.PartySize,
		Status:             domain.BookingStatus(m.Status),
		Source:             domain.BookingSource(m.Source),
		GuestName:          m.GuestName,
		GuestPhone:         deref(m.GuestPhone),
		GuestEmail:         deref(m.GuestEmail),
		Notes:              deref(m.Notes),
		CancellationReason: deref(m.CancellationReason),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		CancelledAt:        m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	opt := func(s string) *string {
		if s == "" {
			return nil
		}
		v := s
		return &v
	}

	return bookingModel{
		ID:                 b.ID,
		BusinessID:         b.BusinessID,
		TableID:            b.TableID,
		Reference:          b.Reference,
		Date:               b.Date,
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		PartySize:          b.PartySize,
		Status:             string(b.Status),
		Source:             string(b.Source),
		GuestName:          b.GuestName,
		GuestPhone:         opt(b.GuestPhone),
		GuestEmail:         opt(b.GuestEmail),
		Notes:              opt(b.Notes),
		CancellationReason: opt(b.CancellationReason),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
		CancelledAt:        b.CancelledAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

// CreateAssigned inserts a table-assigned booking behind a transactional
// overlap re-check, so the feasibility the caller computed moments ago is
// verified again against committed rows. On Postgres the partial unique
// index idx_no_double_booking backstops the race this cannot close alone.
func (r *BookingRepository) CreateAssigned(ctx context.Context, b *domain.Booking) error {
	if b.TableID == nil {
		return r.Create(ctx, b)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []bookingModel
		if err := tx.
			Where("table_id = ? AND date = ?", *b.TableID, b.Date).
			Find(&rows).Error; err != nil {
			return err
		}

		start, err := schedule.ToMinutes(b.StartTime)
		if err != nil {
			return err
		}
		end, err := schedule.ToMinutes(b.EndTime)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if !domain.BookingStatus(row.Status).BlocksTable() {
				continue
			}
			rowStart, err := schedule.ToMinutes(row.StartTime)
			if err != nil {
				return err
			}
			rowEnd, err := schedule.ToMinutes(row.EndTime)
			if err != nil {
				return err
			}
			if schedule.Overlaps(start, end, rowStart, rowEnd) {
				return ErrConflict
			}
		}

		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*b = *toDomainBooking(m)
		return nil
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("reference = ?", reference).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// ListForDate returns every booking of a business on one date, any status;
// the engine decides which ones still occupy a table.
func (r *BookingRepository) ListForDate(ctx context.Context, businessID int64, date string) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("business_id = ? AND date = ?", businessID, date).
		Order("start_time").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BookingRepository) CancelWithReason(ctx context.Context, id int64, reason string) error {
	now := time.Now()
	updates := map[string]any{
		"status":       string(domain.BookingCancelled),
		"cancelled_at": &now,
	}
	if reason != "" {
		updates["cancellation_reason"] = reason
	}

	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
