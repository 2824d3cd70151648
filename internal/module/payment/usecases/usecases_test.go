package usecases_test

import (
	"context"
	"testing"

	bookingEntity "petcare-service/internal/module/booking/models/entity"
	"petcare-service/internal/module/payment/gateway"
	"petcare-service/internal/module/payment/mocks"
	"petcare-service/internal/module/payment/models/entity"
	"petcare-service/internal/module/payment/models/request"
	"petcare-service/internal/module/payment/usecases"
	"petcare-service/internal/pkg/errors"
	"petcare-service/internal/pkg/log"
	log_internal "petcare-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc          usecases.Usecase
	repoMock    *mocks.Repositories
	redirectMck *mocks.Adapter
	webhookMck  *mocks.Adapter
	logMock     log.Logger
	p           message.Publisher
)

type mockPublisher struct{}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	return nil
}

func NewMockPublisher() message.Publisher {
	return &mockPublisher{}
}

func setup() {
	repoMock = new(mocks.Repositories)
	redirectMck = new(mocks.Adapter)
	webhookMck = new(mocks.Adapter)
	p = NewMockPublisher()
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logMock = log_internal.GetLogger()
	adapters := map[string]gateway.Adapter{
		gateway.MethodRedirect: redirectMck,
		gateway.MethodWebhook:  webhookMck,
	}
	uc = usecases.New(repoMock, logMock, p, adapters, nil)
}

func teardown() {
	repoMock = nil
	uc = nil
}

func TestCreatePayment(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	bookingID := uuid.New()

	bookingMock := bookingEntity.Booking{
		ID:            bookingID,
		UserID:        1,
		ProviderID:    2,
		Status:        bookingEntity.BookingAccepted,
		PaymentStatus: bookingEntity.PaymentStatusPending,
		TotalPrice:    150000,
	}

	t.Run("success", func(t *testing.T) {
		payloadMock := request.CreatePayment{
			BookingID: bookingID.String(),
			Method:    gateway.MethodWebhook,
		}

		createdMock := entity.Payment{
			ID:        1,
			BookingID: bookingID,
			Amount:    150000,
			Method:    gateway.MethodWebhook,
			OrderCode: "PC1",
			Status:    entity.PaymentPending,
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil).Once()
		repoMock.On("FindActivePaymentByBookingID", ctx, bookingID.String()).Return(entity.Payment{}, errors.NotFound("payment not found")).Once()
		repoMock.On("CreatePayment", ctx, mock.AnythingOfType("entity.Payment")).Return(createdMock, nil).Once()
		webhookMck.On("CreatePaymentLink", ctx, mock.AnythingOfType("gateway.CreateLinkRequest")).Return(gateway.CreateLinkResponse{CheckoutURL: "https://pay.example/PC1"}, nil).Once()
		repoMock.On("SetTaskScheduler", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("[]uint8")).Return("task-1", nil).Once()
		repoMock.On("UpdatePaymentLink", ctx, int64(1), "https://pay.example/PC1", "task-1").Return(nil).Once()

		resp, err := uc.CreatePayment(ctx, &payloadMock, 1, "user@test.com")
		assert.NoError(t, err)
		assert.Equal(t, "https://pay.example/PC1", resp.CheckoutURL)
	})

	t.Run("booking belongs to someone else", func(t *testing.T) {
		payloadMock := request.CreatePayment{
			BookingID: bookingID.String(),
			Method:    gateway.MethodWebhook,
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil).Once()

		_, err := uc.CreatePayment(ctx, &payloadMock, 99, "stranger@test.com")
		assert.Error(t, err)
		assert.Equal(t, 403, errors.HTTPCode(err))
	})

	t.Run("booking already paid", func(t *testing.T) {
		paidBooking := bookingMock
		paidBooking.PaymentStatus = bookingEntity.PaymentStatusCompleted

		payloadMock := request.CreatePayment{
			BookingID: bookingID.String(),
			Method:    gateway.MethodWebhook,
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(paidBooking, nil).Once()

		_, err := uc.CreatePayment(ctx, &payloadMock, 1, "user@test.com")
		assert.Error(t, err)
		assert.True(t, errors.IsConflict(err))
	})

	t.Run("existing pending attempt is returned", func(t *testing.T) {
		payloadMock := request.CreatePayment{
			BookingID: bookingID.String(),
			Method:    gateway.MethodWebhook,
		}

		existingMock := entity.Payment{
			ID:        7,
			BookingID: bookingID,
			Amount:    150000,
			Method:    gateway.MethodWebhook,
			OrderCode: "PC7",
			Status:    entity.PaymentPending,
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil).Once()
		repoMock.On("FindActivePaymentByBookingID", ctx, bookingID.String()).Return(existingMock, nil).Once()

		resp, err := uc.CreatePayment(ctx, &payloadMock, 1, "user@test.com")
		assert.NoError(t, err)
		assert.Equal(t, "PC7", resp.OrderCode)
	})

	t.Run("unsupported method", func(t *testing.T) {
		payloadMock := request.CreatePayment{
			BookingID: bookingID.String(),
			Method:    "carrier_pigeon",
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil).Once()
		repoMock.On("FindActivePaymentByBookingID", ctx, bookingID.String()).Return(entity.Payment{}, errors.NotFound("payment not found")).Once()

		_, err := uc.CreatePayment(ctx, &payloadMock, 1, "user@test.com")
		assert.Error(t, err)
		assert.Equal(t, 400, errors.HTTPCode(err))
	})
}

func TestHandleWebhook(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	t.Run("valid signature is queued", func(t *testing.T) {
		payload := []byte(`{"code":"00"}`)
		outcomeMock := gateway.Outcome{
			OrderCode: "PC1",
			Status:    gateway.StatusPaid,
			Amount:    150000,
			Method:    gateway.MethodWebhook,
		}

		webhookMck.On("VerifyWebhook", payload).Return(outcomeMock, nil).Once()

		err := uc.HandleWebhook(ctx, payload)
		assert.NoError(t, err)
	})

	t.Run("bad signature fails closed", func(t *testing.T) {
		payload := []byte(`{"code":"00","signature":"tampered"}`)

		webhookMck.On("VerifyWebhook", payload).Return(gateway.Outcome{}, errors.BadRequest("invalid webhook signature")).Once()

		err := uc.HandleWebhook(ctx, payload)
		assert.Error(t, err)
		assert.Equal(t, 400, errors.HTTPCode(err))
	})
}

func TestReconcilePayment(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	t.Run("unknown order code acknowledges", func(t *testing.T) {
		payloadMock := request.ReconcilePayment{OrderCode: "PC404"}

		repoMock.On("FindPaymentByOrderCode", ctx, "PC404").Return(entity.Payment{}, errors.NotFound("payment not found")).Once()

		err := uc.ReconcilePayment(ctx, &payloadMock)
		assert.NoError(t, err)
	})

	t.Run("terminal payment is a no-op", func(t *testing.T) {
		payloadMock := request.ReconcilePayment{OrderCode: "PC1"}

		paymentMock := entity.Payment{
			ID:        1,
			OrderCode: "PC1",
			Method:    gateway.MethodWebhook,
			Status:    entity.PaymentCompleted,
		}

		repoMock.On("FindPaymentByOrderCode", ctx, "PC1").Return(paymentMock, nil).Once()

		err := uc.ReconcilePayment(ctx, &payloadMock)
		assert.NoError(t, err)
	})

	t.Run("still pending at gateway is a no-op", func(t *testing.T) {
		payloadMock := request.ReconcilePayment{OrderCode: "PC2"}

		paymentMock := entity.Payment{
			ID:        2,
			OrderCode: "PC2",
			Method:    gateway.MethodWebhook,
			Status:    entity.PaymentPending,
		}

		repoMock.On("FindPaymentByOrderCode", ctx, "PC2").Return(paymentMock, nil).Once()
		webhookMck.On("PollStatus", ctx, "PC2").Return(gateway.Outcome{OrderCode: "PC2", Status: gateway.StatusPending}, nil).Once()

		err := uc.ReconcilePayment(ctx, &payloadMock)
		assert.NoError(t, err)
	})
}
