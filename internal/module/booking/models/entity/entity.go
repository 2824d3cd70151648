package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending     BookingStatus = "pending"
	BookingAccepted    BookingStatus = "accepted"
	BookingOngoing     BookingStatus = "ongoing"
	BookingServiceDone BookingStatus = "service_done"
	BookingCompleted   BookingStatus = "completed"
	BookingCancelled   BookingStatus = "cancelled"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

const (
	RoleUser     = "user"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

type Booking struct {
	ID                 uuid.UUID      `db:"id"`
	UserID             int64          `db:"user_id"`
	ProviderID         int64          `db:"provider_id"`
	OfferedServiceID   int64          `db:"offered_service_id"`
	Status             BookingStatus  `db:"status"`
	PaymentStatus      string         `db:"payment_status"`
	TotalPrice         float64        `db:"total_price"`
	StartTime          time.Time      `db:"start_time"`
	EndTime            time.Time      `db:"end_time"`
	ActualEndTime      sql.NullTime   `db:"actual_end_time"`
	CancellationReason sql.NullString `db:"cancellation_reason"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          sql.NullTime   `db:"updated_at"`
	DeletedAt          sql.NullTime   `db:"deleted_at"`
}

func (s BookingStatus) IsTerminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}
