package usecases

import (
	"context"
	"database/sql"
	"time"

	"petcare-service/internal/module/booking/models/entity"
	"petcare-service/internal/module/booking/models/request"
	"petcare-service/internal/module/booking/models/response"
	"petcare-service/internal/module/booking/repositories"
	"petcare-service/internal/pkg/errors"
	"petcare-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
)

const timeLayout = "2006-01-02 15:04:05"

type usecase struct {
	repo    repositories.Repositories
	log     log.Logger
	publish message.Publisher
}

type Usecase interface {
	CreateBooking(ctx context.Context, payload *request.CreateBooking, userID int64) (response.BookingDetail, error)
	UpdateBookingStatus(ctx context.Context, payload *request.UpdateBookingStatus, actorID int64, role string) (response.BookingDetail, error)
	ShowBookings(ctx context.Context, userID int64) ([]response.BookingDetail, error)
	ShowProviderBookings(ctx context.Context, providerID int64) ([]response.BookingDetail, error)
}

func New(repo repositories.Repositories, log log.Logger, publish message.Publisher) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
	}
}

func (u *usecase) CreateBooking(ctx context.Context, payload *request.CreateBooking, userID int64) (response.BookingDetail, error) {
	startTime, err := time.Parse(timeLayout, payload.StartTime)
	if err != nil {
		return response.BookingDetail{}, errors.Validation("invalid start time format")
	}
	endTime, err := time.Parse(timeLayout, payload.EndTime)
	if err != nil {
		return response.BookingDetail{}, errors.Validation("invalid end time format")
	}

	if !startTime.Before(endTime) {
		return response.BookingDetail{}, errors.Validation("start time must be before end time")
	}
	if startTime.Before(time.Now()) {
		return response.BookingDetail{}, errors.Validation("start time must not be in the past")
	}

	booking := entity.Booking{
		UserID:           userID,
		ProviderID:       payload.ProviderID,
		OfferedServiceID: payload.OfferedServiceID,
		TotalPrice:       payload.TotalPrice,
		StartTime:        startTime,
		EndTime:          endTime,
	}

	created, err := u.repo.CreateBooking(ctx, booking)
	if err != nil {
		return response.BookingDetail{}, err
	}

	return toBookingDetail(created), nil
}

// UpdateBookingStatus drives every edge of the booking state machine except
// the final completion credit, which goes through CompleteBooking so the
// wallet movement shares the transaction.
func (u *usecase) UpdateBookingStatus(ctx context.Context, payload *request.UpdateBookingStatus, actorID int64, role string) (response.BookingDetail, error) {
	booking, err := u.repo.FindBookingByID(ctx, payload.BookingID)
	if err != nil {
		return response.BookingDetail{}, err
	}

	if err := authorizeActor(booking, actorID, role); err != nil {
		return response.BookingDetail{}, err
	}

	target := entity.BookingStatus(payload.Status)

	exists, permitted := entity.TransitionAllowed(booking.Status, target, role)
	if !exists {
		return response.BookingDetail{}, errors.Conflict("invalid state transition from " + string(booking.Status) + " to " + string(target))
	}
	if !permitted {
		return response.BookingDetail{}, errors.Forbidden("role " + role + " may not perform this transition")
	}

	if target == entity.BookingCancelled && payload.CancellationReason == "" {
		return response.BookingDetail{}, errors.Validation("cancellation reason is required")
	}

	if target == entity.BookingCompleted {
		completed, err := u.repo.CompleteBooking(ctx, payload.BookingID)
		if err != nil {
			return response.BookingDetail{}, err
		}
		u.publishBookingCompleted(ctx, completed)
		return toBookingDetail(completed), nil
	}

	from := booking.Status
	booking.Status = target
	if target == entity.BookingCancelled {
		booking.CancellationReason = sql.NullString{String: payload.CancellationReason, Valid: true}
	}
	if target == entity.BookingServiceDone {
		booking.ActualEndTime = sql.NullTime{Time: time.Now(), Valid: true}
	}

	if err := u.repo.UpdateBookingStatus(ctx, booking, from); err != nil {
		return response.BookingDetail{}, err
	}

	return toBookingDetail(booking), nil
}

func (u *usecase) ShowBookings(ctx context.Context, userID int64) ([]response.BookingDetail, error) {
	bookings, err := u.repo.FindBookingsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toBookingDetails(bookings), nil
}

func (u *usecase) ShowProviderBookings(ctx context.Context, providerID int64) ([]response.BookingDetail, error) {
	bookings, err := u.repo.FindBookingsByProviderID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	return toBookingDetails(bookings), nil
}

func (u *usecase) publishBookingCompleted(ctx context.Context, booking entity.Booking) {
	event := request.BookingCompleted{
		BookingID:  booking.ID.String(),
		ProviderID: booking.ProviderID,
		Amount:     booking.TotalPrice,
	}
	jsonPayload, _ := json.Marshal(event)
	if err := u.publish.Publish("booking_completed", message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		// the credit already committed, notification delivery is best effort
		u.log.Error(ctx, "error publish booking_completed event", err)
	}
}

func authorizeActor(booking entity.Booking, actorID int64, role string) error {
	switch role {
	case entity.RoleUser:
		if booking.UserID != actorID {
			return errors.Forbidden("booking does not belong to this user")
		}
	case entity.RoleProvider:
		if booking.ProviderID != actorID {
			return errors.Forbidden("booking does not belong to this provider")
		}
	default:
		return errors.Forbidden("unknown role")
	}
	return nil
}

func toBookingDetail(booking entity.Booking) response.BookingDetail {
	detail := response.BookingDetail{
		ID:               booking.ID.String(),
		ProviderID:       booking.ProviderID,
		OfferedServiceID: booking.OfferedServiceID,
		Status:           string(booking.Status),
		PaymentStatus:    booking.PaymentStatus,
		TotalPrice:       booking.TotalPrice,
		StartTime:        booking.StartTime.Format(timeLayout),
		EndTime:          booking.EndTime.Format(timeLayout),
	}
	if booking.ActualEndTime.Valid {
		detail.ActualEndTime = booking.ActualEndTime.Time.Format(timeLayout)
	}
	if booking.CancellationReason.Valid {
		detail.CancellationReason = booking.CancellationReason.String
	}
	return detail
}

func toBookingDetails(bookings []entity.Booking) []response.BookingDetail {
	details := make([]response.BookingDetail, 0, len(bookings))
	for _, booking := range bookings {
		details = append(details, toBookingDetail(booking))
	}
	return details
}
