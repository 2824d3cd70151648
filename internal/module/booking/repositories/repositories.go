package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"petcare-service/config"
	"petcare-service/internal/module/booking/models/entity"
	"petcare-service/internal/module/booking/models/response"
	"petcare-service/internal/pkg/errors"
	"petcare-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	circuit "github.com/rubyist/circuitbreaker"
)

const bookingCacheTTL = 30 * time.Second

// WalletLedger is the slice of the wallet repository the booking module needs
// to credit a provider inside the booking completion transaction.
type WalletLedger interface {
	CreditEarningTx(ctx context.Context, tx *sqlx.Tx, providerID int64, bookingID uuid.UUID, amount float64) error
}

type repositories struct {
	db             *sqlx.DB
	log            log.Logger
	httpClient     *circuit.HTTPClient
	redisClient    *redis.Client
	walletLedger   WalletLedger
	cfgUserService *config.UserServiceConfig
}

type Repositories interface {
	// http
	ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error)
	// db
	CreateBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error)
	FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error)
	FindBookingsByUserID(ctx context.Context, userID int64) ([]entity.Booking, error)
	FindBookingsByProviderID(ctx context.Context, providerID int64) ([]entity.Booking, error)
	UpdateBookingStatus(ctx context.Context, booking entity.Booking, from entity.BookingStatus) error
	CompleteBooking(ctx context.Context, bookingID string) (entity.Booking, error)
}

func New(db *sqlx.DB, log log.Logger, httpClient *circuit.HTTPClient, redisClient *redis.Client, walletLedger WalletLedger, cfgUserService *config.UserServiceConfig) Repositories {
	return &repositories{
		db:             db,
		log:            log,
		httpClient:     httpClient,
		redisClient:    redisClient,
		walletLedger:   walletLedger,
		cfgUserService: cfgUserService,
	}
}

// CreateBooking inserts the booking only if the provider has no overlapping
// non-terminal booking. The check and the insert run in one serializable
// transaction so two concurrent requests cannot both claim the same slot.
func (r *repositories) CreateBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error starting transaction")
	}

	var overlapping int
	query := `SELECT COUNT(1) FROM bookings
		WHERE provider_id = $1
		AND status NOT IN ('cancelled', 'completed')
		AND deleted_at IS NULL
		AND start_time < $3 AND end_time > $2`
	if err := tx.GetContext(ctx, &overlapping, query, booking.ProviderID, booking.StartTime, booking.EndTime); err != nil {
		tx.Rollback()
		return entity.Booking{}, errors.InternalServerError("error checking provider availability")
	}

	if overlapping > 0 {
		tx.Rollback()
		return entity.Booking{}, errors.Conflict("provider already has a booking in this time range")
	}

	booking.ID = uuid.New()
	booking.Status = entity.BookingPending
	booking.PaymentStatus = entity.PaymentStatusPending
	booking.CreatedAt = time.Now()

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO bookings (id, user_id, provider_id, offered_service_id, status, payment_status, total_price, start_time, end_time, created_at)
		VALUES (:id, :user_id, :provider_id, :offered_service_id, :status, :payment_status, :total_price, :start_time, :end_time, :created_at)
	`, booking)
	if err != nil {
		tx.Rollback()
		return entity.Booking{}, errors.InternalServerError("error inserting booking")
	}

	if err := tx.Commit(); err != nil {
		if isSerializationFailure(err) {
			return entity.Booking{}, errors.Conflict("provider already has a booking in this time range")
		}
		return entity.Booking{}, errors.InternalServerError("error committing transaction")
	}

	return booking, nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error) {
	if cached, err := r.redisClient.Get(ctx, bookingCacheKey(bookingID)).Result(); err == nil {
		var booking entity.Booking
		if err := json.Unmarshal([]byte(cached), &booking); err == nil {
			return booking, nil
		}
	}

	query := `SELECT * FROM bookings WHERE id = $1 AND deleted_at IS NULL`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, bookingID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}

	if payload, err := json.Marshal(booking); err == nil {
		r.redisClient.Set(ctx, bookingCacheKey(bookingID), payload, bookingCacheTTL)
	}

	return booking, nil
}

// FindBookingsByUserID implements Repositories.
func (r *repositories) FindBookingsByUserID(ctx context.Context, userID int64) ([]entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE user_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`
	var bookings []entity.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, userID); err != nil {
		return nil, errors.InternalServerError("error find bookings by user id")
	}
	return bookings, nil
}

// FindBookingsByProviderID implements Repositories.
func (r *repositories) FindBookingsByProviderID(ctx context.Context, providerID int64) ([]entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE provider_id = $1 AND deleted_at IS NULL ORDER BY start_time ASC`
	var bookings []entity.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, providerID); err != nil {
		return nil, errors.InternalServerError("error find bookings by provider id")
	}
	return bookings, nil
}

// UpdateBookingStatus re-reads the row under a lock and fails fast when the
// status moved underneath the caller, so a concurrent cancellation and an
// in-flight transition cannot both apply stale-state writes.
func (r *repositories) UpdateBookingStatus(ctx context.Context, booking entity.Booking, from entity.BookingStatus) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	var current entity.Booking
	query := `SELECT * FROM bookings WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`
	err = tx.GetContext(ctx, &current, query, booking.ID)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return errors.NotFound("booking not found")
	}
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error locking booking row")
	}

	if current.Status != from {
		tx.Rollback()
		return errors.Conflict(fmt.Sprintf("booking status changed concurrently: expected %s, got %s", from, current.Status))
	}

	_, err = tx.NamedExecContext(ctx, `
		UPDATE bookings
		SET status = :status,
			cancellation_reason = :cancellation_reason,
			actual_end_time = :actual_end_time,
			updated_at = NOW()
		WHERE id = :id
	`, booking)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error updating booking status")
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}

	r.redisClient.Del(ctx, bookingCacheKey(booking.ID.String()))

	return nil
}

// CompleteBooking moves service_done -> completed and credits the provider
// wallet with the booking price in the same transaction. This is the single
// point where money enters the ledger.
func (r *repositories) CompleteBooking(ctx context.Context, bookingID string) (entity.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error starting transaction")
	}

	var booking entity.Booking
	query := `SELECT * FROM bookings WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`
	err = tx.GetContext(ctx, &booking, query, bookingID)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		tx.Rollback()
		return entity.Booking{}, errors.InternalServerError("error locking booking row")
	}

	if booking.Status != entity.BookingServiceDone {
		tx.Rollback()
		return entity.Booking{}, errors.Conflict(fmt.Sprintf("invalid state transition from %s to %s", booking.Status, entity.BookingCompleted))
	}

	if booking.PaymentStatus != entity.PaymentStatusCompleted {
		tx.Rollback()
		return entity.Booking{}, errors.Precondition("booking payment is not completed yet")
	}

	_, err = tx.ExecContext(ctx, `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`, booking.ID, entity.BookingCompleted)
	if err != nil {
		tx.Rollback()
		return entity.Booking{}, errors.InternalServerError("error updating booking status")
	}

	if err := r.walletLedger.CreditEarningTx(ctx, tx, booking.ProviderID, booking.ID, booking.TotalPrice); err != nil {
		tx.Rollback()
		return entity.Booking{}, err
	}

	if err := tx.Commit(); err != nil {
		return entity.Booking{}, errors.InternalServerError("error committing transaction")
	}

	r.redisClient.Del(ctx, bookingCacheKey(bookingID))

	booking.Status = entity.BookingCompleted
	return booking, nil
}

func (r *repositories) ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error) {
	// http call to user service
	url := fmt.Sprintf("http://%s:%s/api/private/token/validate?token=%s", r.cfgUserService.Host, r.cfgUserService.Port, token)
	resp, err := r.httpClient.Get(url)
	if err != nil {
		return response.UserServiceValidate{}, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		r.log.Error(ctx, "invalid token", resp.StatusCode)
		return response.UserServiceValidate{}, errors.BadRequest("invalid token")
	}

	var respData response.UserServiceValidate
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&respData); err != nil {
		return response.UserServiceValidate{}, err
	}

	if !respData.IsValid {
		r.log.Error(ctx, "invalid token", resp.StatusCode)
		return response.UserServiceValidate{}, errors.BadRequest("invalid token")
	}

	return respData, nil
}

func bookingCacheKey(bookingID string) string {
	return "booking:" + bookingID
}

func isSerializationFailure(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "40001"
	}
	return false
}
