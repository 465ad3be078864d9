package services

import (
	"context"

	"odyssweb/internal/apiclient"
	"odyssweb/internal/domain"
	"odyssweb/internal/utils"
)

// CompanyService covers the operator-facing endpoints: company auth,
// fleet and route management, and company trips and bookings.
type CompanyService struct {
	API       *apiclient.Client
	RequestID string
}

type CompanyProfile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	Logo       string `json:"logo,omitempty"`
	IsVerified bool   `json:"is_verified"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type CompanyLoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CompanySignupData struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	CompanyName  string `json:"company_name"`
	CompanyEmail string `json:"company_email"`
	CompanyCert  string `json:"company_cert"` // base64 encoded certificate
}

type CompanyAuthResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	Company      CompanyProfile `json:"company"`
}

type CreateVehicleData struct {
	Model       string `json:"model"`
	PlateNumber string `json:"plate_number"`
	Capacity    int    `json:"capacity"`
}

type CreateRouteData struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

func (s CompanyService) Login(ctx context.Context, data CompanyLoginData) (CompanyAuthResponse, error) {
	data.Email = utils.TrimOrEmpty(data.Email)
	if data.Email == "" || data.Password == "" {
		return CompanyAuthResponse{}, domain.ValidationError{Field: "email", Msg: "email and password are required"}
	}
	var resp CompanyAuthResponse
	if err := s.API.PostPublic(ctx, "/company/login", data, &resp); err != nil {
		return CompanyAuthResponse{}, err
	}
	utils.LogEvent(s.RequestID, "company", "login", "company_id="+resp.Company.ID)
	return resp, nil
}

func (s CompanyService) Signup(ctx context.Context, data CompanySignupData) (CompanyAuthResponse, error) {
	switch {
	case utils.TrimOrEmpty(data.Email) == "" || data.Password == "":
		return CompanyAuthResponse{}, domain.ValidationError{Field: "email", Msg: "email and password are required"}
	case utils.TrimOrEmpty(data.CompanyName) == "":
		return CompanyAuthResponse{}, domain.ValidationError{Field: "company_name", Msg: "company name is required"}
	case data.CompanyCert == "":
		return CompanyAuthResponse{}, domain.ValidationError{Field: "company_cert", Msg: "certificate is required"}
	}
	var resp CompanyAuthResponse
	if err := s.API.PostPublic(ctx, "/company/signup", data, &resp); err != nil {
		return CompanyAuthResponse{}, err
	}
	utils.LogEvent(s.RequestID, "company", "signup", "company_id="+resp.Company.ID)
	return resp, nil
}

func (s CompanyService) Profile(ctx context.Context) (CompanyProfile, error) {
	var profile CompanyProfile
	err := s.API.Get(ctx, "/company/me", nil, &profile)
	return profile, err
}

func (s CompanyService) Vehicles(ctx context.Context) ([]domain.CompanyVehicle, error) {
	var vehicles []domain.CompanyVehicle
	err := s.API.Get(ctx, "/company/vehicles", nil, &vehicles)
	return vehicles, err
}

func (s CompanyService) AddVehicle(ctx context.Context, data CreateVehicleData) (domain.CompanyVehicle, error) {
	switch {
	case utils.TrimOrEmpty(data.Model) == "":
		return domain.CompanyVehicle{}, domain.ValidationError{Field: "model", Msg: "vehicle model is required"}
	case utils.TrimOrEmpty(data.PlateNumber) == "":
		return domain.CompanyVehicle{}, domain.ValidationError{Field: "plate_number", Msg: "plate number is required"}
	case data.Capacity <= 0:
		return domain.CompanyVehicle{}, domain.ValidationError{Field: "capacity", Msg: "capacity must be positive"}
	}
	var vehicle domain.CompanyVehicle
	if err := s.API.Post(ctx, "/company/vehicles", data, &vehicle); err != nil {
		return domain.CompanyVehicle{}, err
	}
	utils.LogEvent(s.RequestID, "company", "add_vehicle", "vehicle_id="+vehicle.ID)
	return vehicle, nil
}

func (s CompanyService) Routes(ctx context.Context) ([]domain.CompanyRoute, error) {
	var routes []domain.CompanyRoute
	err := s.API.Get(ctx, "/company/routes", nil, &routes)
	return routes, err
}

func (s CompanyService) CreateRoute(ctx context.Context, data CreateRouteData) (domain.CompanyRoute, error) {
	if utils.TrimOrEmpty(data.Origin) == "" || utils.TrimOrEmpty(data.Destination) == "" {
		return domain.CompanyRoute{}, domain.ValidationError{Field: "route", Msg: "origin and destination are required"}
	}
	var route domain.CompanyRoute
	if err := s.API.Post(ctx, "/company/routes", data, &route); err != nil {
		return domain.CompanyRoute{}, err
	}
	utils.LogEvent(s.RequestID, "company", "create_route", "route_id="+route.ID)
	return route, nil
}

func (s CompanyService) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	var trips domain.TripList
	if err := s.API.Get(ctx, "/company/trips", nil, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

func (s CompanyService) CreateTrip(ctx context.Context, data domain.CreateTripData) (domain.Trip, error) {
	if err := validateTripData(data); err != nil {
		return domain.Trip{}, err
	}
	var trip domain.Trip
	if err := s.API.Post(ctx, "/company/trips", data, &trip); err != nil {
		return domain.Trip{}, err
	}
	utils.LogEvent(s.RequestID, "company", "create_trip", "trip_id="+trip.ID)
	return trip, nil
}

func (s CompanyService) UpdateTrip(ctx context.Context, tripID string, data domain.UpdateTripData) (domain.Trip, error) {
	if tripID == "" {
		return domain.Trip{}, domain.ValidationError{Field: "trip_id", Msg: "trip id is required"}
	}
	var trip domain.Trip
	if err := s.API.Patch(ctx, "/company/trips/"+tripID, data, &trip); err != nil {
		return domain.Trip{}, err
	}
	utils.LogEvent(s.RequestID, "company", "update_trip", "trip_id="+tripID)
	return trip, nil
}

func (s CompanyService) DeleteTrip(ctx context.Context, tripID string) error {
	if tripID == "" {
		return domain.ValidationError{Field: "trip_id", Msg: "trip id is required"}
	}
	if err := s.API.Delete(ctx, "/company/trips/"+tripID, nil); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "company", "delete_trip", "trip_id="+tripID)
	return nil
}

func (s CompanyService) Bookings(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := s.API.Get(ctx, "/company/bookings", nil, &bookings)
	return bookings, err
}
