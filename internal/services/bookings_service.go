package services

import (
	"context"

	"odyssweb/internal/apiclient"
	"odyssweb/internal/domain"
	"odyssweb/internal/utils"
)

// BookingsService covers the signed-in user's bookings.
type BookingsService struct {
	API       *apiclient.Client
	RequestID string
}

func (s BookingsService) UserBookings(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := s.API.Get(ctx, "/bookings/", nil, &bookings)
	return bookings, err
}

func (s BookingsService) CancelBooking(ctx context.Context, bookingID string) (MessageResponse, error) {
	if bookingID == "" {
		return MessageResponse{}, domain.ValidationError{Field: "booking_id", Msg: "booking id is required"}
	}
	var resp MessageResponse
	if err := s.API.Delete(ctx, "/bookings/"+bookingID, &resp); err != nil {
		return MessageResponse{}, err
	}
	utils.LogEvent(s.RequestID, "bookings", "cancel", "booking_id="+bookingID)
	return resp, nil
}

func (s BookingsService) TripPassengers(ctx context.Context, tripID string) ([]domain.TripPassenger, error) {
	if tripID == "" {
		return nil, domain.ValidationError{Field: "trip_id", Msg: "trip id is required"}
	}
	var passengers []domain.TripPassenger
	err := s.API.Get(ctx, "/bookings/"+tripID+"/passengers", nil, &passengers)
	return passengers, err
}
