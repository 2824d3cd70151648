package usecases

import (
	"context"
	"fmt"
	"time"

	bookingEntity "petcare-service/internal/module/booking/models/entity"
	"petcare-service/internal/module/payment/gateway"
	"petcare-service/internal/module/payment/models/entity"
	"petcare-service/internal/module/payment/models/request"
	"petcare-service/internal/module/payment/models/response"
	"petcare-service/internal/module/payment/repositories"
	"petcare-service/internal/pkg/errors"
	"petcare-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-redsync/redsync/v4"
	"github.com/goccy/go-json"
)

const (
	paymentLinkTTL   = 15 * time.Minute
	timeLayout       = "2006-01-02 15:04:05"
	reconcileTopic   = "payment_reconcile"
	reconcileLockTTL = 30 * time.Second
)

type usecase struct {
	repo     repositories.Repositories
	log      log.Logger
	publish  message.Publisher
	adapters map[string]gateway.Adapter
	locks    *redsync.Redsync
}

type Usecase interface {
	CreatePayment(ctx context.Context, payload *request.CreatePayment, userID int64, emailUser string) (response.PaymentLink, error)
	HandleReturn(ctx context.Context, params map[string]string) (response.PaymentDetail, error)
	HandleWebhook(ctx context.Context, payload []byte) error
	ApplyOutcome(ctx context.Context, outcome gateway.Outcome) error
	ReconcilePayment(ctx context.Context, payload *request.ReconcilePayment) error
	PaymentCancel(ctx context.Context, payload *request.PaymentCancellation, userID int64) error
	CountPendingPayment(ctx context.Context) (response.PendingPaymentCount, error)
}

func New(repo repositories.Repositories, log log.Logger, publish message.Publisher, adapters map[string]gateway.Adapter, locks *redsync.Redsync) Usecase {
	return &usecase{
		repo:     repo,
		log:      log,
		publish:  publish,
		adapters: adapters,
		locks:    locks,
	}
}

// CreatePayment records the attempt first, then asks the gateway for a
// checkout link and schedules the poll fallback. The order code is issued
// once and never changes.
func (u *usecase) CreatePayment(ctx context.Context, payload *request.CreatePayment, userID int64, emailUser string) (response.PaymentLink, error) {
	booking, err := u.repo.FindBookingByID(ctx, payload.BookingID)
	if err != nil {
		return response.PaymentLink{}, err
	}

	if booking.UserID != userID {
		return response.PaymentLink{}, errors.Forbidden("booking does not belong to this user")
	}
	if booking.Status == bookingEntity.BookingCancelled {
		return response.PaymentLink{}, errors.Conflict("booking is cancelled")
	}
	if booking.PaymentStatus == bookingEntity.PaymentStatusCompleted {
		return response.PaymentLink{}, errors.Conflict("booking is already paid")
	}

	// one active attempt per booking: hand back the pending link if it exists
	if existing, err := u.repo.FindActivePaymentByBookingID(ctx, payload.BookingID); err == nil {
		return toPaymentLink(existing), nil
	}

	adapter, ok := u.adapters[payload.Method]
	if !ok {
		return response.PaymentLink{}, errors.BadRequest("unsupported payment method")
	}

	payment := entity.Payment{
		BookingID: booking.ID,
		Amount:    booking.TotalPrice,
		Method:    payload.Method,
		OrderCode: fmt.Sprintf("PC%d", time.Now().UnixNano()),
	}

	created, err := u.repo.CreatePayment(ctx, payment)
	if err != nil {
		return response.PaymentLink{}, err
	}

	link, err := adapter.CreatePaymentLink(ctx, gateway.CreateLinkRequest{
		OrderCode:   created.OrderCode,
		Amount:      created.Amount,
		Description: fmt.Sprintf("pet care booking %s", booking.ID),
		BuyerEmail:  emailUser,
	})
	if err != nil {
		// payment stays pending without a link; the caller may retry
		u.log.Error(ctx, "error creating payment link", err)
		return response.PaymentLink{}, err
	}

	taskPayload, _ := json.Marshal(request.ReconcilePayment{OrderCode: created.OrderCode})
	expiresAt := time.Now().Add(paymentLinkTTL)
	taskID, err := u.repo.SetTaskScheduler(ctx, expiresAt, taskPayload)
	if err != nil {
		u.log.Error(ctx, "error scheduling reconcile fallback", err)
	}

	if err := u.repo.UpdatePaymentLink(ctx, created.ID, link.CheckoutURL, taskID); err != nil {
		return response.PaymentLink{}, err
	}

	resp := toPaymentLink(created)
	resp.CheckoutURL = link.CheckoutURL
	resp.QRCode = link.QRCode
	return resp, nil
}

// HandleReturn processes the redirect gateway's synchronous return callback.
func (u *usecase) HandleReturn(ctx context.Context, params map[string]string) (response.PaymentDetail, error) {
	adapter, ok := u.adapters[gateway.MethodRedirect]
	if !ok {
		return response.PaymentDetail{}, errors.InternalServerError("redirect gateway not configured")
	}

	outcome, err := adapter.VerifyReturn(params)
	if err != nil {
		return response.PaymentDetail{}, err
	}

	if err := u.ApplyOutcome(ctx, outcome); err != nil {
		return response.PaymentDetail{}, err
	}

	payment, err := u.repo.FindPaymentByOrderCode(ctx, outcome.OrderCode)
	if err != nil {
		return response.PaymentDetail{}, err
	}

	return toPaymentDetail(payment), nil
}

// HandleWebhook verifies the push payload and hands the outcome to the
// reconcile queue so the gateway gets its acknowledgment immediately.
func (u *usecase) HandleWebhook(ctx context.Context, payload []byte) error {
	adapter, ok := u.adapters[gateway.MethodWebhook]
	if !ok {
		return errors.InternalServerError("webhook gateway not configured")
	}

	outcome, err := adapter.VerifyWebhook(payload)
	if err != nil {
		return err
	}

	jsonPayload, _ := json.Marshal(outcome)
	if err := u.publish.Publish(reconcileTopic, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		u.log.Error(ctx, "error publish outcome to reconcile queue", err)
		return errors.InternalServerError("error queueing payment outcome")
	}

	return nil
}

// ApplyOutcome is the idempotent core of reconciliation. Attempts for the
// same order code are serialized across instances by a redis mutex on top of
// the row lock, and an unknown order code acknowledges without error so the
// gateway stops retrying.
func (u *usecase) ApplyOutcome(ctx context.Context, outcome gateway.Outcome) error {
	mutex := u.locks.NewMutex("reconcile:payment:"+outcome.OrderCode, redsync.WithExpiry(reconcileLockTTL))
	if err := mutex.LockContext(ctx); err != nil {
		return errors.InternalServerError("error acquiring reconcile lock")
	}
	defer mutex.UnlockContext(ctx)

	payment, applied, err := u.repo.ApplyOutcome(ctx, outcome)
	if err != nil {
		if errors.HTTPCode(err) == 404 {
			u.log.Warn(ctx, "outcome for unknown order code acknowledged", outcome.OrderCode)
			return nil
		}
		return err
	}

	if !applied {
		return nil
	}

	if payment.TaskID.Valid {
		if err := u.repo.DeleteTaskScheduler(ctx, payment.TaskID.String); err != nil {
			u.log.Warn(ctx, "error deleting reconcile fallback task", err)
		}
	}

	if payment.Status == entity.PaymentCompleted {
		event := request.PaymentCompleted{
			BookingID: payment.BookingID.String(),
			OrderCode: payment.OrderCode,
			Amount:    payment.Amount,
			Method:    payment.Method,
		}
		jsonPayload, _ := json.Marshal(event)
		if err := u.publish.Publish("payment_completed", message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
			u.log.Error(ctx, "error publish payment_completed event", err)
		}
	}

	return nil
}

// ReconcilePayment is the scheduled fallback for a payment that never saw a
// confirmation: poll the gateway when it supports it, otherwise expire the
// attempt.
func (u *usecase) ReconcilePayment(ctx context.Context, payload *request.ReconcilePayment) error {
	payment, err := u.repo.FindPaymentByOrderCode(ctx, payload.OrderCode)
	if err != nil {
		if errors.HTTPCode(err) == 404 {
			return nil
		}
		return err
	}

	if payment.Status.IsTerminal() {
		return nil
	}

	adapter, ok := u.adapters[payment.Method]
	if !ok {
		return errors.InternalServerError("no gateway adapter for method " + payment.Method)
	}

	if payment.Method == gateway.MethodWebhook {
		outcome, err := adapter.PollStatus(ctx, payment.OrderCode)
		if err != nil {
			u.log.Error(ctx, "error polling gateway status", err)
			return err
		}
		if outcome.Status == gateway.StatusPending {
			u.log.Info(ctx, "payment still pending at gateway", payment.OrderCode)
			return nil
		}
		return u.ApplyOutcome(ctx, outcome)
	}

	// redirect gateway has no poll channel: the unpaid link expires
	if err := adapter.CancelLink(ctx, payment.OrderCode, "payment window expired"); err != nil {
		u.log.Warn(ctx, "error cancelling expired payment link", err)
	}
	return u.ApplyOutcome(ctx, gateway.Outcome{
		OrderCode: payment.OrderCode,
		Status:    gateway.StatusCancelled,
		Method:    payment.Method,
	})
}

// PaymentCancel lets the paying user abandon a pending attempt.
func (u *usecase) PaymentCancel(ctx context.Context, payload *request.PaymentCancellation, userID int64) error {
	booking, err := u.repo.FindBookingByID(ctx, payload.BookingID)
	if err != nil {
		return err
	}
	if booking.UserID != userID {
		return errors.Forbidden("booking does not belong to this user")
	}

	payment, err := u.repo.FindActivePaymentByBookingID(ctx, payload.BookingID)
	if err != nil {
		return err
	}

	adapter, ok := u.adapters[payment.Method]
	if !ok {
		return errors.InternalServerError("no gateway adapter for method " + payment.Method)
	}

	if err := adapter.CancelLink(ctx, payment.OrderCode, payload.Reason); err != nil {
		u.log.Warn(ctx, "error cancelling payment link at gateway", err)
	}

	return u.ApplyOutcome(ctx, gateway.Outcome{
		OrderCode: payment.OrderCode,
		Status:    gateway.StatusCancelled,
		Method:    payment.Method,
	})
}

func (u *usecase) CountPendingPayment(ctx context.Context) (response.PendingPaymentCount, error) {
	total, err := u.repo.CountPendingPayment(ctx)
	if err != nil {
		return response.PendingPaymentCount{}, err
	}
	return response.PendingPaymentCount{Total: total}, nil
}

func toPaymentLink(payment entity.Payment) response.PaymentLink {
	link := response.PaymentLink{
		OrderCode: payment.OrderCode,
		Amount:    payment.Amount,
		Method:    payment.Method,
		Status:    string(payment.Status),
	}
	if payment.CheckoutURL.Valid {
		link.CheckoutURL = payment.CheckoutURL.String
	}
	return link
}

func toPaymentDetail(payment entity.Payment) response.PaymentDetail {
	detail := response.PaymentDetail{
		OrderCode: payment.OrderCode,
		BookingID: payment.BookingID.String(),
		Amount:    payment.Amount,
		Method:    payment.Method,
		Status:    string(payment.Status),
	}
	if payment.PaymentDate.Valid {
		detail.PaymentDate = payment.PaymentDate.Time.Format(timeLayout)
	}
	return detail
}
