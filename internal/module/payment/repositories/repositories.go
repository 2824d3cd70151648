package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	bookingEntity "petcare-service/internal/module/booking/models/entity"
	"petcare-service/internal/module/payment/gateway"
	"petcare-service/internal/module/payment/models/entity"
	"petcare-service/internal/pkg/errors"
	"petcare-service/internal/pkg/log"
	"petcare-service/internal/pkg/scheduler"

	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

type repositories struct {
	db          *sqlx.DB
	log         log.Logger
	redisClient *redis.Client
	taskClient  *asynq.Client
	inspector   *asynq.Inspector
}

type Repositories interface {
	// db
	CreatePayment(ctx context.Context, payment entity.Payment) (entity.Payment, error)
	UpdatePaymentLink(ctx context.Context, paymentID int64, checkoutURL, taskID string) error
	FindPaymentByOrderCode(ctx context.Context, orderCode string) (entity.Payment, error)
	FindActivePaymentByBookingID(ctx context.Context, bookingID string) (entity.Payment, error)
	FindBookingByID(ctx context.Context, bookingID string) (bookingEntity.Booking, error)
	ApplyOutcome(ctx context.Context, outcome gateway.Outcome) (entity.Payment, bool, error)
	CountPendingPayment(ctx context.Context) (int64, error)
	// scheduler
	SetTaskScheduler(ctx context.Context, runAt time.Time, payload []byte) (string, error)
	DeleteTaskScheduler(ctx context.Context, taskID string) error
}

func New(db *sqlx.DB, log log.Logger, redisClient *redis.Client, taskClient *asynq.Client, inspector *asynq.Inspector) Repositories {
	return &repositories{
		db:          db,
		log:         log,
		redisClient: redisClient,
		taskClient:  taskClient,
		inspector:   inspector,
	}
}

// CreatePayment inserts the payment attempt before any external link is
// generated. The unique constraint on order_code keeps one row per attempt.
func (r *repositories) CreatePayment(ctx context.Context, payment entity.Payment) (entity.Payment, error) {
	query := `INSERT INTO payments (booking_id, amount, method, order_code, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		payment.BookingID, payment.Amount, payment.Method, payment.OrderCode, entity.PaymentPending,
	).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return entity.Payment{}, errors.Conflict("order code already exists")
		}
		return entity.Payment{}, errors.InternalServerError("error inserting payment")
	}
	payment.Status = entity.PaymentPending
	return payment, nil
}

// UpdatePaymentLink stores the checkout link and the fallback task id once
// the gateway issued them. The order code itself is immutable.
func (r *repositories) UpdatePaymentLink(ctx context.Context, paymentID int64, checkoutURL, taskID string) error {
	query := `UPDATE payments SET checkout_url = $2, task_id = $3, updated_at = NOW() WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, paymentID, checkoutURL, taskID); err != nil {
		return errors.InternalServerError("error updating payment link")
	}
	return nil
}

// FindPaymentByOrderCode implements Repositories.
func (r *repositories) FindPaymentByOrderCode(ctx context.Context, orderCode string) (entity.Payment, error) {
	query := `SELECT * FROM payments WHERE order_code = $1 AND deleted_at IS NULL`
	var payment entity.Payment
	err := r.db.GetContext(ctx, &payment, query, orderCode)
	if err == sql.ErrNoRows {
		return entity.Payment{}, errors.NotFound("payment not found")
	}
	if err != nil {
		return entity.Payment{}, errors.InternalServerError("error find payment by order code")
	}
	return payment, nil
}

// FindActivePaymentByBookingID returns the booking's latest non-terminal
// payment attempt, if any.
func (r *repositories) FindActivePaymentByBookingID(ctx context.Context, bookingID string) (entity.Payment, error) {
	query := `SELECT * FROM payments WHERE booking_id = $1 AND status = 'pending' AND deleted_at IS NULL ORDER BY created_at DESC LIMIT 1`
	var payment entity.Payment
	err := r.db.GetContext(ctx, &payment, query, bookingID)
	if err == sql.ErrNoRows {
		return entity.Payment{}, errors.NotFound("no active payment for booking")
	}
	if err != nil {
		return entity.Payment{}, errors.InternalServerError("error find payment by booking id")
	}
	return payment, nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, bookingID string) (bookingEntity.Booking, error) {
	query := `SELECT * FROM bookings WHERE id = $1 AND deleted_at IS NULL`
	var booking bookingEntity.Booking
	err := r.db.GetContext(ctx, &booking, query, bookingID)
	if err == sql.ErrNoRows {
		return bookingEntity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		return bookingEntity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

// ApplyOutcome applies a normalized gateway outcome to the payment row under
// a row lock, exactly once. Returns the payment and whether anything was
// applied: repeats of the same terminal outcome are a no-op, conflicting
// terminal outcomes are rejected, and a paid outcome also flips the booking's
// payment status inside the same transaction.
func (r *repositories) ApplyOutcome(ctx context.Context, outcome gateway.Outcome) (entity.Payment, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Payment{}, false, errors.InternalServerError("error starting transaction")
	}

	var payment entity.Payment
	query := `SELECT * FROM payments WHERE order_code = $1 AND deleted_at IS NULL FOR UPDATE`
	err = tx.GetContext(ctx, &payment, query, outcome.OrderCode)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return entity.Payment{}, false, errors.NotFound("payment not found for order code " + outcome.OrderCode)
	}
	if err != nil {
		tx.Rollback()
		return entity.Payment{}, false, errors.InternalServerError("error locking payment row")
	}

	target := statusFromOutcome(outcome.Status)
	if target == "" {
		// a pending poll result carries nothing to apply
		tx.Rollback()
		return payment, false, nil
	}

	if payment.Status.IsTerminal() {
		tx.Rollback()
		if payment.Status == target {
			return payment, false, nil
		}
		r.log.Warn(ctx, fmt.Sprintf("conflicting outcome for order %s: payment is %s, gateway reports %s", outcome.OrderCode, payment.Status, target))
		return payment, false, errors.Conflict(fmt.Sprintf("payment already %s, refusing to apply %s", payment.Status, target))
	}

	if outcome.Amount > 0 && outcome.Amount != payment.Amount {
		tx.Rollback()
		r.log.Warn(ctx, fmt.Sprintf("amount mismatch for order %s: stored %.2f, gateway reports %.2f", outcome.OrderCode, payment.Amount, outcome.Amount))
		return payment, false, errors.Gateway("payment amount mismatch")
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE payments SET status = $2, payment_date = CASE WHEN $2 = 'completed' THEN NOW() ELSE payment_date END, updated_at = NOW()
		WHERE id = $1
	`, payment.ID, target)
	if err != nil {
		tx.Rollback()
		return payment, false, errors.InternalServerError("error updating payment status")
	}

	if target == entity.PaymentCompleted {
		_, err = tx.ExecContext(ctx, `
			UPDATE bookings SET payment_status = $2, updated_at = NOW() WHERE id = $1
		`, payment.BookingID, bookingEntity.PaymentStatusCompleted)
		if err != nil {
			tx.Rollback()
			return payment, false, errors.InternalServerError("error updating booking payment status")
		}
	}

	if err := tx.Commit(); err != nil {
		return payment, false, errors.InternalServerError("error committing transaction")
	}

	// the booking detail cache now carries a stale payment status
	r.redisClient.Del(ctx, "booking:"+payment.BookingID.String())

	payment.Status = target
	if target == entity.PaymentCompleted {
		payment.PaymentDate = sql.NullTime{Time: time.Now(), Valid: true}
	}
	return payment, true, nil
}

// CountPendingPayment implements Repositories.
func (r *repositories) CountPendingPayment(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(1) FROM payments WHERE status = 'pending' AND deleted_at IS NULL`
	var total int64
	if err := r.db.GetContext(ctx, &total, query); err != nil {
		return 0, errors.InternalServerError("error count pending payment")
	}
	return total, nil
}

// SetTaskScheduler enqueues the delayed reconciliation fallback task.
func (r *repositories) SetTaskScheduler(ctx context.Context, runAt time.Time, payload []byte) (string, error) {
	task := asynq.NewTask(scheduler.TypeReconcilePayment, payload)
	info, err := r.taskClient.EnqueueContext(ctx, task, asynq.ProcessAt(runAt))
	if err != nil {
		return "", errors.InternalServerError("error enqueue reconcile task")
	}
	return info.ID, nil
}

// DeleteTaskScheduler implements Repositories.
func (r *repositories) DeleteTaskScheduler(ctx context.Context, taskID string) error {
	if err := r.inspector.DeleteTask("default", taskID); err != nil {
		return errors.InternalServerError("error delete reconcile task")
	}
	return nil
}

func statusFromOutcome(status gateway.Status) entity.PaymentStatus {
	switch status {
	case gateway.StatusPaid:
		return entity.PaymentCompleted
	case gateway.StatusFailed:
		return entity.PaymentFailed
	case gateway.StatusCancelled:
		return entity.PaymentCancelled
	default:
		return ""
	}
}
