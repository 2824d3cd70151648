package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionEarning          TransactionType = "earning"
	TransactionWithdrawal       TransactionType = "withdrawal"
	TransactionSystemAdjustment TransactionType = "system_adjustment"
)

type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalApproved  WithdrawalStatus = "approved"
	WithdrawalCompleted WithdrawalStatus = "completed"
	WithdrawalRejected  WithdrawalStatus = "rejected"
)

const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
)

type Wallet struct {
	ID         int64        `db:"id"`
	ProviderID int64        `db:"provider_id"`
	Available  float64      `db:"available"`
	Pending    float64      `db:"pending"`
	CreatedAt  time.Time    `db:"created_at"`
	UpdatedAt  sql.NullTime `db:"updated_at"`
}

// WalletTransaction rows are append-only. The sum of signed amounts must
// always equal available + pending of the owning wallet.
type WalletTransaction struct {
	ID           int64           `db:"id"`
	WalletID     int64           `db:"wallet_id"`
	Amount       float64         `db:"amount"`
	Type         TransactionType `db:"type"`
	Status       string          `db:"status"`
	BookingID    uuid.NullUUID   `db:"booking_id"`
	WithdrawalID sql.NullInt64   `db:"withdrawal_id"`
	Description  string          `db:"description"`
	CreatedAt    time.Time       `db:"created_at"`
}

type Withdrawal struct {
	ID                int64            `db:"id"`
	WalletID          int64            `db:"wallet_id"`
	ProviderID        int64            `db:"provider_id"`
	Amount            float64          `db:"amount"`
	Fee               float64          `db:"fee"`
	NetAmount         float64          `db:"net_amount"`
	Status            WithdrawalStatus `db:"status"`
	BankName          string           `db:"bank_name"`
	BankAccountNumber string           `db:"bank_account_number"`
	BankAccountHolder string           `db:"bank_account_holder"`
	RejectionReason   sql.NullString   `db:"rejection_reason"`
	ProcessedBy       sql.NullInt64    `db:"processed_by"`
	ProcessedAt       sql.NullTime     `db:"processed_at"`
	TransactionRef    sql.NullString   `db:"transaction_ref"`
	CreatedAt         time.Time        `db:"created_at"`
	UpdatedAt         sql.NullTime     `db:"updated_at"`
}

func (s WithdrawalStatus) IsTerminal() bool {
	return s == WithdrawalCompleted || s == WithdrawalRejected
}
