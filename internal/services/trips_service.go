package services

import (
	"context"
	"net/url"

	"odyssweb/internal/apiclient"
	"odyssweb/internal/domain"
	"odyssweb/internal/utils"
)

// TripsService covers trip CRUD, search, seats and membership.
type TripsService struct {
	API       *apiclient.Client
	RequestID string
}

type BookTripResponse struct {
	BookingID string `json:"booking_id"`
	Message   string `json:"message"`
}

func (s TripsService) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	var trips domain.TripList
	if err := s.API.Get(ctx, "/trips/", nil, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

func (s TripsService) GetTrip(ctx context.Context, tripID string) (domain.Trip, error) {
	if tripID == "" {
		return domain.Trip{}, domain.ValidationError{Field: "trip_id", Msg: "trip id is required"}
	}
	var trip domain.Trip
	err := s.API.Get(ctx, "/trips/"+tripID, nil, &trip)
	return trip, err
}

func (s TripsService) CreateTrip(ctx context.Context, data domain.CreateTripData) (domain.Trip, error) {
	if err := validateTripData(data); err != nil {
		return domain.Trip{}, err
	}
	var trip domain.Trip
	if err := s.API.Post(ctx, "/trips/", data, &trip); err != nil {
		return domain.Trip{}, err
	}
	utils.LogEvent(s.RequestID, "trips", "create", "trip_id="+trip.ID)
	return trip, nil
}

func (s TripsService) UpdateTrip(ctx context.Context, tripID string, data domain.UpdateTripData) (domain.Trip, error) {
	if tripID == "" {
		return domain.Trip{}, domain.ValidationError{Field: "trip_id", Msg: "trip id is required"}
	}
	var trip domain.Trip
	if err := s.API.Patch(ctx, "/trips/"+tripID, data, &trip); err != nil {
		return domain.Trip{}, err
	}
	utils.LogEvent(s.RequestID, "trips", "update", "trip_id="+tripID)
	return trip, nil
}

func (s TripsService) DeleteTrip(ctx context.Context, tripID string) error {
	if tripID == "" {
		return domain.ValidationError{Field: "trip_id", Msg: "trip id is required"}
	}
	if err := s.API.Delete(ctx, "/trips/"+tripID, nil); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "trips", "delete", "trip_id="+tripID)
	return nil
}

// SearchTrips queries by any subset of origin, destination, date and time.
// Empty fields are left out of the query string.
func (s TripsService) SearchTrips(ctx context.Context, params domain.TripSearchParams) ([]domain.Trip, error) {
	query := url.Values{}
	if v := utils.TrimOrEmpty(params.Origin); v != "" {
		query.Set("origin", v)
	}
	if v := utils.TrimOrEmpty(params.Destination); v != "" {
		query.Set("destination", v)
	}
	if v := utils.TrimOrEmpty(params.Date); v != "" {
		query.Set("date", v)
	}
	if v := utils.TrimOrEmpty(params.Time); v != "" {
		query.Set("time", v)
	}

	var trips domain.TripList
	if err := s.API.Get(ctx, "/trips/search", query, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

func (s TripsService) BookTrip(ctx context.Context, tripID string, seatNumber int) (BookTripResponse, error) {
	if tripID == "" {
		return BookTripResponse{}, domain.ValidationError{Field: "trip_id", Msg: "trip id is required"}
	}
	if seatNumber <= 0 {
		return BookTripResponse{}, domain.ValidationError{Field: "seat_number", Msg: "seat number must be positive"}
	}
	var resp BookTripResponse
	if err := s.API.Post(ctx, "/trips/"+tripID+"/book", map[string]int{"seat_number": seatNumber}, &resp); err != nil {
		return BookTripResponse{}, err
	}
	utils.LogEvent(s.RequestID, "trips", "book", "trip_id="+tripID)
	return resp, nil
}

func (s TripsService) TripSeats(ctx context.Context, tripID string) ([]domain.Seat, error) {
	if tripID == "" {
		return nil, domain.ValidationError{Field: "trip_id", Msg: "trip id is required"}
	}
	var seats []domain.Seat
	err := s.API.Get(ctx, "/trips/"+tripID+"/seats", nil, &seats)
	return seats, err
}

func (s TripsService) TripPassengers(ctx context.Context, tripID string) ([]domain.TripPassenger, error) {
	if tripID == "" {
		return nil, domain.ValidationError{Field: "trip_id", Msg: "trip id is required"}
	}
	var passengers []domain.TripPassenger
	err := s.API.Get(ctx, "/trips/"+tripID+"/passengers", nil, &passengers)
	return passengers, err
}

func (s TripsService) MyTrips(ctx context.Context) ([]domain.Trip, error) {
	var trips domain.TripList
	if err := s.API.Get(ctx, "/users/my_trips", nil, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

func (s TripsService) InviteToTrip(ctx context.Context, tripID, userID string) (MessageResponse, error) {
	if tripID == "" || userID == "" {
		return MessageResponse{}, domain.ValidationError{Field: "trip_id", Msg: "trip and user id are required"}
	}
	var resp MessageResponse
	if err := s.API.Post(ctx, "/trips/"+tripID+"/invite", map[string]string{"user_id": userID}, &resp); err != nil {
		return MessageResponse{}, err
	}
	utils.LogEvent(s.RequestID, "trips", "invite", "trip_id="+tripID+" user_id="+userID)
	return resp, nil
}

func validateTripData(data domain.CreateTripData) error {
	switch {
	case utils.TrimOrEmpty(data.DepartureLoc) == "":
		return domain.ValidationError{Field: "departureLoc", Msg: "departure location is required"}
	case utils.TrimOrEmpty(data.ArrivalLoc) == "":
		return domain.ValidationError{Field: "arrivalLoc", Msg: "arrival location is required"}
	case utils.TrimOrEmpty(data.DepartureDate) == "":
		return domain.ValidationError{Field: "departureDate", Msg: "departure date is required"}
	case data.Seats <= 0:
		return domain.ValidationError{Field: "seats", Msg: "seats must be positive"}
	case data.Price < 0:
		return domain.ValidationError{Field: "price", Msg: "price cannot be negative"}
	}
	return nil
}
