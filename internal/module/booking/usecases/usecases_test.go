package usecases_test

import (
	"context"
	"testing"
	"time"

	"petcare-service/internal/module/booking/mocks"
	"petcare-service/internal/module/booking/models/entity"
	"petcare-service/internal/module/booking/models/request"
	"petcare-service/internal/module/booking/usecases"
	"petcare-service/internal/pkg/errors"
	"petcare-service/internal/pkg/log"
	log_internal "petcare-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	logMock  log.Logger
	p        message.Publisher
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
	p = NewMockPublisher()
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logMock = log_internal.GetLogger()
	uc = usecases.New(repoMock, logMock, p)
}

func teardown() {
	repoMock = nil
	uc = nil
}

const timeLayout = "2006-01-02 15:04:05"

func TestCreateBooking(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	start := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	end := start.Add(2 * time.Hour)

	t.Run("success", func(t *testing.T) {
		payloadMock := request.CreateBooking{
			ProviderID:       2,
			OfferedServiceID: 3,
			TotalPrice:       150000,
			StartTime:        start.Format(timeLayout),
			EndTime:          end.Format(timeLayout),
		}

		bookingMock := entity.Booking{
			ID:               uuid.New(),
			UserID:           1,
			ProviderID:       2,
			OfferedServiceID: 3,
			Status:           entity.BookingPending,
			TotalPrice:       150000,
			StartTime:        start,
			EndTime:          end,
		}

		repoMock.On("CreateBooking", ctx, mock.AnythingOfType("entity.Booking")).Return(bookingMock, nil).Once()

		resp, err := uc.CreateBooking(ctx, &payloadMock, 1)
		assert.NoError(t, err)
		assert.Equal(t, string(entity.BookingPending), resp.Status)
	})

	t.Run("start after end", func(t *testing.T) {
		payloadMock := request.CreateBooking{
			ProviderID:       2,
			OfferedServiceID: 3,
			TotalPrice:       150000,
			StartTime:        end.Format(timeLayout),
			EndTime:          start.Format(timeLayout),
		}

		_, err := uc.CreateBooking(ctx, &payloadMock, 1)
		assert.Error(t, err)
		assert.Equal(t, 400, errors.HTTPCode(err))
	})

	t.Run("start in the past", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		payloadMock := request.CreateBooking{
			ProviderID:       2,
			OfferedServiceID: 3,
			TotalPrice:       150000,
			StartTime:        past.Format(timeLayout),
			EndTime:          past.Add(time.Hour).Format(timeLayout),
		}

		_, err := uc.CreateBooking(ctx, &payloadMock, 1)
		assert.Error(t, err)
	})

	t.Run("overlap conflict from repository", func(t *testing.T) {
		payloadMock := request.CreateBooking{
			ProviderID:       2,
			OfferedServiceID: 3,
			TotalPrice:       150000,
			StartTime:        start.Format(timeLayout),
			EndTime:          end.Format(timeLayout),
		}

		repoMock.On("CreateBooking", ctx, mock.AnythingOfType("entity.Booking")).Return(entity.Booking{}, errors.Conflict("provider is not available for the requested time slot")).Once()

		_, err := uc.CreateBooking(ctx, &payloadMock, 1)
		assert.Error(t, err)
		assert.True(t, errors.IsConflict(err))
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	bookingID := uuid.New()

	bookingWith := func(status entity.BookingStatus) entity.Booking {
		return entity.Booking{
			ID:         bookingID,
			UserID:     1,
			ProviderID: 2,
			Status:     status,
			TotalPrice: 100000,
		}
	}

	t.Run("provider accepts pending booking", func(t *testing.T) {
		payloadMock := request.UpdateBookingStatus{
			BookingID: bookingID.String(),
			Status:    string(entity.BookingAccepted),
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingWith(entity.BookingPending), nil).Once()
		repoMock.On("UpdateBookingStatus", ctx, mock.AnythingOfType("entity.Booking"), entity.BookingPending).Return(nil).Once()

		resp, err := uc.UpdateBookingStatus(ctx, &payloadMock, 2, entity.RoleProvider)
		assert.NoError(t, err)
		assert.Equal(t, string(entity.BookingAccepted), resp.Status)
	})

	t.Run("user may not accept", func(t *testing.T) {
		payloadMock := request.UpdateBookingStatus{
			BookingID: bookingID.String(),
			Status:    string(entity.BookingAccepted),
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingWith(entity.BookingPending), nil).Once()

		_, err := uc.UpdateBookingStatus(ctx, &payloadMock, 1, entity.RoleUser)
		assert.Error(t, err)
		assert.Equal(t, 403, errors.HTTPCode(err))
	})

	t.Run("skip ahead is rejected", func(t *testing.T) {
		payloadMock := request.UpdateBookingStatus{
			BookingID: bookingID.String(),
			Status:    string(entity.BookingServiceDone),
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingWith(entity.BookingPending), nil).Once()

		_, err := uc.UpdateBookingStatus(ctx, &payloadMock, 2, entity.RoleProvider)
		assert.Error(t, err)
		assert.True(t, errors.IsConflict(err))
	})

	t.Run("transition out of terminal state is rejected", func(t *testing.T) {
		payloadMock := request.UpdateBookingStatus{
			BookingID: bookingID.String(),
			Status:    string(entity.BookingOngoing),
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingWith(entity.BookingCancelled), nil).Once()

		_, err := uc.UpdateBookingStatus(ctx, &payloadMock, 2, entity.RoleProvider)
		assert.Error(t, err)
		assert.True(t, errors.IsConflict(err))
	})

	t.Run("cancel without reason fails", func(t *testing.T) {
		payloadMock := request.UpdateBookingStatus{
			BookingID: bookingID.String(),
			Status:    string(entity.BookingCancelled),
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingWith(entity.BookingPending), nil).Once()

		_, err := uc.UpdateBookingStatus(ctx, &payloadMock, 1, entity.RoleUser)
		assert.Error(t, err)
		assert.Equal(t, 400, errors.HTTPCode(err))
	})

	t.Run("cancel with reason succeeds", func(t *testing.T) {
		payloadMock := request.UpdateBookingStatus{
			BookingID:          bookingID.String(),
			Status:             string(entity.BookingCancelled),
			CancellationReason: "schedule conflict",
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingWith(entity.BookingPending), nil).Once()
		repoMock.On("UpdateBookingStatus", ctx, mock.AnythingOfType("entity.Booking"), entity.BookingPending).Return(nil).Once()

		resp, err := uc.UpdateBookingStatus(ctx, &payloadMock, 1, entity.RoleUser)
		assert.NoError(t, err)
		assert.Equal(t, string(entity.BookingCancelled), resp.Status)
		assert.Equal(t, "schedule conflict", resp.CancellationReason)
	})

	t.Run("stranger may not touch the booking", func(t *testing.T) {
		payloadMock := request.UpdateBookingStatus{
			BookingID: bookingID.String(),
			Status:    string(entity.BookingAccepted),
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingWith(entity.BookingPending), nil).Once()

		_, err := uc.UpdateBookingStatus(ctx, &payloadMock, 99, entity.RoleProvider)
		assert.Error(t, err)
		assert.Equal(t, 403, errors.HTTPCode(err))
	})

	t.Run("user completes service_done booking", func(t *testing.T) {
		payloadMock := request.UpdateBookingStatus{
			BookingID: bookingID.String(),
			Status:    string(entity.BookingCompleted),
		}

		completed := bookingWith(entity.BookingCompleted)
		completed.PaymentStatus = entity.PaymentStatusCompleted

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingWith(entity.BookingServiceDone), nil).Once()
		repoMock.On("CompleteBooking", ctx, bookingID.String()).Return(completed, nil).Once()

		resp, err := uc.UpdateBookingStatus(ctx, &payloadMock, 1, entity.RoleUser)
		assert.NoError(t, err)
		assert.Equal(t, string(entity.BookingCompleted), resp.Status)
	})

	t.Run("completion without payment fails with precondition", func(t *testing.T) {
		payloadMock := request.UpdateBookingStatus{
			BookingID: bookingID.String(),
			Status:    string(entity.BookingCompleted),
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingWith(entity.BookingServiceDone), nil).Once()
		repoMock.On("CompleteBooking", ctx, bookingID.String()).Return(entity.Booking{}, errors.Precondition("payment is not completed")).Once()

		_, err := uc.UpdateBookingStatus(ctx, &payloadMock, 1, entity.RoleUser)
		assert.Error(t, err)
		assert.Equal(t, 400, errors.HTTPCode(err))
	})
}

func TestTransitionMatrix(t *testing.T) {
	testCases := []struct {
		name      string
		from      entity.BookingStatus
		to        entity.BookingStatus
		role      string
		exists    bool
		permitted bool
	}{
		{"provider accepts", entity.BookingPending, entity.BookingAccepted, entity.RoleProvider, true, true},
		{"user cannot accept", entity.BookingPending, entity.BookingAccepted, entity.RoleUser, true, false},
		{"user cancels pending", entity.BookingPending, entity.BookingCancelled, entity.RoleUser, true, true},
		{"provider starts service", entity.BookingAccepted, entity.BookingOngoing, entity.RoleProvider, true, true},
		{"user cannot cancel ongoing", entity.BookingOngoing, entity.BookingCancelled, entity.RoleUser, true, false},
		{"provider finishes service", entity.BookingOngoing, entity.BookingServiceDone, entity.RoleProvider, true, true},
		{"user completes", entity.BookingServiceDone, entity.BookingCompleted, entity.RoleUser, true, true},
		{"provider cannot complete", entity.BookingServiceDone, entity.BookingCompleted, entity.RoleProvider, true, false},
		{"no skip to service_done", entity.BookingPending, entity.BookingServiceDone, entity.RoleProvider, false, false},
		{"no backwards edge", entity.BookingOngoing, entity.BookingAccepted, entity.RoleProvider, false, false},
		{"completed is terminal", entity.BookingCompleted, entity.BookingCancelled, entity.RoleUser, false, false},
		{"cancelled is terminal", entity.BookingCancelled, entity.BookingPending, entity.RoleUser, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			exists, permitted := entity.TransitionAllowed(tc.from, tc.to, tc.role)
			assert.Equal(t, tc.exists, exists)
			assert.Equal(t, tc.permitted, permitted)
		})
	}
}
