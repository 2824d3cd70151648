package response

type WalletBalance struct {
	WalletID   int64   `json:"wallet_id"`
	ProviderID int64   `json:"provider_id"`
	Available  float64 `json:"available"`
	Pending    float64 `json:"pending"`
}

type Transaction struct {
	ID          int64   `json:"id"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	BookingID   string  `json:"booking_id,omitempty"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
}

type WithdrawalDetail struct {
	ID              int64   `json:"id"`
	Amount          float64 `json:"amount"`
	Fee             float64 `json:"fee"`
	NetAmount       float64 `json:"net_amount"`
	Status          string  `json:"status"`
	BankName        string  `json:"bank_name"`
	BankAccount     string  `json:"bank_account_number"`
	RejectionReason string  `json:"rejection_reason,omitempty"`
	TransactionRef  string  `json:"transaction_ref,omitempty"`
	CreatedAt       string  `json:"created_at"`
}
