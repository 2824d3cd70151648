package request

type RequestWithdrawal struct {
	Amount            float64 `json:"amount" validate:"required,gt=0"`
	BankName          string  `json:"bank_name" validate:"required"`
	BankAccountNumber string  `json:"bank_account_number" validate:"required"`
	BankAccountHolder string  `json:"bank_account_holder" validate:"required"`
}

type RejectWithdrawal struct {
	Reason string `json:"reason" validate:"required"`
}

type CompleteWithdrawal struct {
	TransactionRef string `json:"transaction_ref" validate:"required"`
}

type WithdrawalEvent struct {
	WithdrawalID int64   `json:"withdrawal_id" validate:"required"`
	ProviderID   int64   `json:"provider_id" validate:"required"`
	Amount       float64 `json:"amount" validate:"required"`
	NetAmount    float64 `json:"net_amount"`
	Status       string  `json:"status" validate:"required"`
}
