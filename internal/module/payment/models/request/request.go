package request

type CreatePayment struct {
	BookingID string `json:"booking_id" validate:"required"`
	Method    string `json:"method" validate:"required,oneof=redirect_gateway webhook_gateway"`
}

type PaymentCancellation struct {
	BookingID string `json:"booking_id" validate:"required"`
	Reason    string `json:"reason" validate:"required"`
}

type ReconcilePayment struct {
	OrderCode string `json:"order_code" validate:"required"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}

type PaymentCompleted struct {
	BookingID string  `json:"booking_id" validate:"required"`
	OrderCode string  `json:"order_code" validate:"required"`
	Amount    float64 `json:"amount" validate:"required"`
	Method    string  `json:"method" validate:"required"`
}
