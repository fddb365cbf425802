package domain

import "time"

type ConfirmationMode string

const (
	ConfirmAuto   ConfirmationMode = "auto"
	ConfirmManual ConfirmationMode = "manual"
)

type Business struct {
	ID               int64            `json:"id"`
	OwnerID          int64            `json:"owner_id"`
	Name             string           `json:"name" validate:"required"`
	Slug             string           `json:"slug" validate:"required"`
	Description      string           `json:"description,omitempty" gorm:"type:text"`
	Address          string           `json:"address,omitempty"`
	City             string           `json:"city,omitempty"`
	Phone            string           `json:"phone,omitempty"`
	Timezone         string           `json:"timezone,omitempty"`
	SlotDuration     int              `json:"slot_duration"`
	ConfirmationMode ConfirmationMode `json:"confirmation_mode"`
	IsActive         bool             `json:"is_active"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`

	// Relations
	Tables []Table            `json:"tables,omitempty"`
	Rules  []AvailabilityRule `json:"rules,omitempty"`
}

// DefaultSlotDuration is used when a business has no explicit granularity configured.
const DefaultSlotDuration = 60

func (b Business) SlotDurationOrDefault() int {
	if b.SlotDuration <= 0 {
		return DefaultSlotDuration
	}
	return b.SlotDuration
}
