package booking

type CreateBookingRequest struct {
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"`
	PartySize  int    `json:"party_size" binding:"required,gt=0"`
	GuestName  string `json:"guest_name" binding:"required"`
	GuestPhone string `json:"guest_phone"`
	GuestEmail string `json:"guest_email"`
	Notes      string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}
