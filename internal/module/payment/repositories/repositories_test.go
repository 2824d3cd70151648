package repositories_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	bookingEntity "petcare-service/internal/module/booking/models/entity"
	"petcare-service/internal/module/payment/gateway"
	"petcare-service/internal/module/payment/models/entity"
	"petcare-service/internal/module/payment/repositories"
	"petcare-service/internal/pkg/errors"
	"petcare-service/internal/pkg/log"
	log_internal "petcare-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

var (
	mock    sqlxmock.Sqlmock
	dbx     *sqlx.DB
	logMock log.Logger
)

func setup() {
	dbx, mock, _ = sqlxmock.Newx()
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logMock = log_internal.GetLogger()
}

func newRepo() repositories.Repositories {
	return repositories.New(dbx, logMock, redis.NewClient(&redis.Options{}), nil, nil)
}

var lockQuery = regexp.QuoteMeta(`SELECT * FROM payments WHERE order_code = $1 AND deleted_at IS NULL FOR UPDATE`)

func paymentRow(bookingID uuid.UUID, status entity.PaymentStatus, amount float64) *sqlxmock.Rows {
	return sqlxmock.NewRows([]string{"id", "booking_id", "amount", "method", "order_code", "status", "created_at"}).
		AddRow(int64(1), bookingID.String(), amount, gateway.MethodWebhook, "PC1", string(status), time.Now())
}

func TestApplyOutcome(t *testing.T) {
	setup()
	repo := newRepo()
	ctx := context.Background()
	bookingID := uuid.New()

	updatePayment := regexp.QuoteMeta(`
		UPDATE payments SET status = $2, payment_date = CASE WHEN $2 = 'completed' THEN NOW() ELSE payment_date END, updated_at = NOW()
		WHERE id = $1
	`)
	updateBooking := regexp.QuoteMeta(`
			UPDATE bookings SET payment_status = $2, updated_at = NOW() WHERE id = $1
		`)

	t.Run("paid outcome applies once", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs("PC1").WillReturnRows(paymentRow(bookingID, entity.PaymentPending, 150000))
		mock.ExpectExec(updatePayment).WithArgs(int64(1), entity.PaymentCompleted).WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectExec(updateBooking).WithArgs(bookingID.String(), bookingEntity.PaymentStatusCompleted).WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectCommit()

		payment, applied, err := repo.ApplyOutcome(ctx, gateway.Outcome{
			OrderCode: "PC1",
			Status:    gateway.StatusPaid,
			Amount:    150000,
			Method:    gateway.MethodWebhook,
		})
		assert.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, entity.PaymentCompleted, payment.Status)
	})

	t.Run("repeat of the same terminal outcome is a no-op", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs("PC1").WillReturnRows(paymentRow(bookingID, entity.PaymentCompleted, 150000))
		mock.ExpectRollback()

		_, applied, err := repo.ApplyOutcome(ctx, gateway.Outcome{
			OrderCode: "PC1",
			Status:    gateway.StatusPaid,
			Amount:    150000,
		})
		assert.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("conflicting terminal outcome is rejected", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs("PC1").WillReturnRows(paymentRow(bookingID, entity.PaymentFailed, 150000))
		mock.ExpectRollback()

		_, applied, err := repo.ApplyOutcome(ctx, gateway.Outcome{
			OrderCode: "PC1",
			Status:    gateway.StatusPaid,
			Amount:    150000,
		})
		assert.Error(t, err)
		assert.True(t, errors.IsConflict(err))
		assert.False(t, applied)
	})

	t.Run("pending outcome carries nothing to apply", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs("PC1").WillReturnRows(paymentRow(bookingID, entity.PaymentPending, 150000))
		mock.ExpectRollback()

		_, applied, err := repo.ApplyOutcome(ctx, gateway.Outcome{
			OrderCode: "PC1",
			Status:    gateway.StatusPending,
		})
		assert.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("amount mismatch is rejected", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs("PC1").WillReturnRows(paymentRow(bookingID, entity.PaymentPending, 150000))
		mock.ExpectRollback()

		_, applied, err := repo.ApplyOutcome(ctx, gateway.Outcome{
			OrderCode: "PC1",
			Status:    gateway.StatusPaid,
			Amount:    1,
		})
		assert.Error(t, err)
		assert.Equal(t, 502, errors.HTTPCode(err))
		assert.False(t, applied)
	})

	t.Run("unknown order code", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs("PC404").WillReturnRows(sqlxmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		_, applied, err := repo.ApplyOutcome(ctx, gateway.Outcome{
			OrderCode: "PC404",
			Status:    gateway.StatusPaid,
		})
		assert.Error(t, err)
		assert.Equal(t, 404, errors.HTTPCode(err))
		assert.False(t, applied)
	})
}

func TestCountPendingPayment(t *testing.T) {
	setup()
	repo := newRepo()
	ctx := context.Background()

	query := regexp.QuoteMeta(`SELECT COUNT(1) FROM payments WHERE status = 'pending' AND deleted_at IS NULL`)
	mock.ExpectQuery(query).WillReturnRows(sqlxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	total, err := repo.CountPendingPayment(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
}
