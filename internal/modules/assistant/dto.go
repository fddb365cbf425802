package assistant

type WebhookRequest struct {
	Action       string         `json:"action" binding:"required"`
	BusinessSlug string         `json:"business_slug"`
	Payload      WebhookPayload `json:"payload"`
}

type WebhookPayload struct {
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	PartySize  int    `json:"party_size"`
	GuestName  string `json:"guest_name"`
	GuestPhone string `json:"guest_phone"`
	Reference  string `json:"reference"`
	Reason     string `json:"reason"`
}

// Per-action validation views of the payload. The webhook body is bound
// loosely because required fields differ per action, so each action checks
// its own slice of the payload before it reaches the services.

type createPayload struct {
	Date      string `validate:"required,bookdate"`
	StartTime string `validate:"required,clock"`
	PartySize int    `validate:"required,gt=0"`
	GuestName string `validate:"required"`
}

type updatePayload struct {
	Date      string `validate:"omitempty,bookdate"`
	StartTime string `validate:"omitempty,clock"`
	PartySize int    `validate:"omitempty,gt=0"`
}

type checkPayload struct {
	Date      string `validate:"required,bookdate"`
	PartySize int    `validate:"omitempty,gt=0"`
}
