package request

type CreateBooking struct {
	ProviderID       int64   `json:"provider_id" validate:"required"`
	OfferedServiceID int64   `json:"offered_service_id" validate:"required"`
	TotalPrice       float64 `json:"total_price" validate:"required,gt=0"`
	StartTime        string  `json:"start_time" validate:"required"`
	EndTime          string  `json:"end_time" validate:"required"`
	EmailRecipient   string  `json:"email_recipient"`
}

type UpdateBookingStatus struct {
	BookingID          string `json:"booking_id" validate:"required"`
	Status             string `json:"status" validate:"required"`
	CancellationReason string `json:"cancellation_reason"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}

type NotificationMessage struct {
	Message        string `json:"message" validate:"required"`
	EmailRecipient string `json:"email_recipient" validate:"required"`
}

type BookingCompleted struct {
	BookingID  string  `json:"booking_id" validate:"required"`
	ProviderID int64   `json:"provider_id" validate:"required"`
	Amount     float64 `json:"amount" validate:"required"`
}
