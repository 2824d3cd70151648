package response

type UserServiceValidate struct {
	IsValid   bool   `json:"is_valid"`
	UserID    int64  `json:"user_id"`
	Role      string `json:"role"`
	EmailUser string `json:"email_user"`
}

type BookingDetail struct {
	ID                 string  `json:"id"`
	ProviderID         int64   `json:"provider_id"`
	OfferedServiceID   int64   `json:"offered_service_id"`
	Status             string  `json:"status"`
	PaymentStatus      string  `json:"payment_status"`
	TotalPrice         float64 `json:"total_price"`
	StartTime          string  `json:"start_time"`
	EndTime            string  `json:"end_time"`
	ActualEndTime      string  `json:"actual_end_time,omitempty"`
	CancellationReason string  `json:"cancellation_reason,omitempty"`
}
