package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCancelled PaymentStatus = "cancelled"
)

type Payment struct {
	ID          int64          `db:"id"`
	BookingID   uuid.UUID      `db:"booking_id"`
	Amount      float64        `db:"amount"`
	Method      string         `db:"method"`
	OrderCode   string         `db:"order_code"`
	Status      PaymentStatus  `db:"status"`
	PaymentDate sql.NullTime   `db:"payment_date"`
	CheckoutURL sql.NullString `db:"checkout_url"`
	TaskID      sql.NullString `db:"task_id"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   sql.NullTime   `db:"updated_at"`
	DeletedAt   sql.NullTime   `db:"deleted_at"`
}

func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentCompleted || s == PaymentFailed || s == PaymentCancelled
}
