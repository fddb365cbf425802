package business

type CreateBusinessRequest struct {
	Name             string `json:"name" binding:"required"`
	Slug             string `json:"slug" binding:"required"`
	Description      string `json:"description"`
	Address          string `json:"address"`
	City             string `json:"city"`
	Phone            string `json:"phone"`
	Timezone         string `json:"timezone"`
	SlotDuration     int    `json:"slot_duration"`
	ConfirmationMode string `json:"confirmation_mode"`
}

type UpdateBusinessRequest struct {
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	Address          *string `json:"address"`
	City             *string `json:"city"`
	Phone            *string `json:"phone"`
	Timezone         *string `json:"timezone"`
	SlotDuration     *int    `json:"slot_duration"`
	ConfirmationMode *string `json:"confirmation_mode"`
	IsActive         *bool   `json:"is_active"`
}

type RuleRequest struct {
	DayOfWeek int    `json:"day_of_week"`
	Open      string `json:"open" binding:"required"`
	Close     string `json:"close" binding:"required"`
}

type TableRequest struct {
	Label    string `json:"label" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
	IsActive *bool  `json:"is_active"`
}
