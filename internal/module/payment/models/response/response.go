package response

type PaymentLink struct {
	OrderCode   string  `json:"order_code"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	CheckoutURL string  `json:"checkout_url,omitempty"`
	QRCode      string  `json:"qr_code,omitempty"`
	Status      string  `json:"status"`
}

type PaymentDetail struct {
	OrderCode   string  `json:"order_code"`
	BookingID   string  `json:"booking_id"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	Status      string  `json:"status"`
	PaymentDate string  `json:"payment_date,omitempty"`
}

type PendingPaymentCount struct {
	Total int64 `json:"total"`
}
