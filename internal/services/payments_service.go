package services

import (
	"context"
	"strings"

	"odyssweb/internal/apiclient"
	"odyssweb/internal/domain"
	"odyssweb/internal/utils"
)

// Reference prefixes distinguish which verification endpoint a Paystack
// callback belongs to.
const (
	RefPrefixTrip = "ODYSS-TRIP"
	RefPrefixJoin = "ODYSS-JOIN"
)

// PaymentsService drives the Paystack checkout flows: initiation for new
// and joined trips, verification on callback, and history.
type PaymentsService struct {
	API       *apiclient.Client
	RequestID string
}

type TripPaymentData struct {
	DepartureLoc  string  `json:"departureLoc"`
	ArrivalLoc    string  `json:"arrivalLoc"`
	DepartureDate string  `json:"departureDate"`
	ArrivalDate   string  `json:"arrivalDate"`
	Seats         int     `json:"seats"`
	Price         float64 `json:"price"`
	Vehicle       string  `json:"vehicle"`
	Company       string  `json:"company"`
	DepartureTOD  string  `json:"departureTOD"`
	Creator       string  `json:"creator"`
	Email         string  `json:"email"`
}

type JoinTripPaymentData struct {
	TripID string `json:"trip_id"`
	Email  string `json:"email"`
}

type PaymentInitiation struct {
	AuthorizationURL string `json:"authorization_url"`
	Reference        string `json:"reference"`
	AccessCode       string `json:"access_code"`
	BookingID        string `json:"booking_id,omitempty"`
	Message          string `json:"message,omitempty"`
}

type PaymentVerificationData struct {
	Reference string `json:"reference"`
	BookingID string `json:"booking_id,omitempty"`
}

type TripPaymentVerificationData struct {
	Reference string          `json:"reference"`
	Trip      TripPaymentData `json:"trip"`
}

type PaymentVerification struct {
	Status             string         `json:"status"`
	Message            string         `json:"message"`
	BookingID          string         `json:"booking_id,omitempty"`
	TripID             string         `json:"trip_id,omitempty"`
	SeatNumber         string         `json:"seat_number,omitempty"`
	BookingStatus      string         `json:"booking_status,omitempty"`
	TransactionDetails map[string]any `json:"transaction_details,omitempty"`
	TripDetails        map[string]any `json:"trip_details,omitempty"`
}

func (s PaymentsService) PaystackPublicKey(ctx context.Context) (string, error) {
	var resp struct {
		PublicKey string `json:"public_key"`
	}
	if err := s.API.Get(ctx, "/payments/paystack-public-key", nil, &resp); err != nil {
		return "", err
	}
	return resp.PublicKey, nil
}

// InitiateTripPayment opens a Paystack checkout for a trip about to be
// created. The trip itself is only created after verification.
func (s PaymentsService) InitiateTripPayment(ctx context.Context, data TripPaymentData) (PaymentInitiation, error) {
	if utils.TrimOrEmpty(data.Email) == "" {
		return PaymentInitiation{}, domain.ValidationError{Field: "email", Msg: "email is required"}
	}
	var resp PaymentInitiation
	if err := s.API.Post(ctx, "/payments/initiate-trip", data, &resp); err != nil {
		return PaymentInitiation{}, err
	}
	utils.LogEvent(s.RequestID, "payments", "initiate_trip", "reference="+resp.Reference)
	return resp, nil
}

// JoinTripPayment opens checkout for joining an existing trip. For free
// seats the server may confirm immediately without an authorization URL.
func (s PaymentsService) JoinTripPayment(ctx context.Context, data JoinTripPaymentData) (PaymentInitiation, error) {
	if data.TripID == "" {
		return PaymentInitiation{}, domain.ValidationError{Field: "trip_id", Msg: "trip id is required"}
	}
	if utils.TrimOrEmpty(data.Email) == "" {
		return PaymentInitiation{}, domain.ValidationError{Field: "email", Msg: "email is required"}
	}
	var resp PaymentInitiation
	if err := s.API.Post(ctx, "/payments/join-trip", data, &resp); err != nil {
		return PaymentInitiation{}, err
	}
	utils.LogEvent(s.RequestID, "payments", "join_trip", "reference="+resp.Reference)
	return resp, nil
}

func (s PaymentsService) VerifyPayment(ctx context.Context, data PaymentVerificationData) (PaymentVerification, error) {
	if data.Reference == "" {
		return PaymentVerification{}, domain.ValidationError{Field: "reference", Msg: "reference is required"}
	}
	var resp PaymentVerification
	err := s.API.Post(ctx, "/payments/verify", data, &resp)
	return resp, err
}

func (s PaymentsService) VerifyTripPayment(ctx context.Context, data TripPaymentVerificationData) (PaymentVerification, error) {
	if data.Reference == "" {
		return PaymentVerification{}, domain.ValidationError{Field: "reference", Msg: "reference is required"}
	}
	var resp PaymentVerification
	if err := s.API.Post(ctx, "/payments/verify-trip", data, &resp); err != nil {
		return PaymentVerification{}, err
	}
	utils.LogEvent(s.RequestID, "payments", "verify_trip", "reference="+data.Reference+" status="+resp.Status)
	return resp, nil
}

func (s PaymentsService) VerifyJoinTripPayment(ctx context.Context, reference string) (PaymentVerification, error) {
	if reference == "" {
		return PaymentVerification{}, domain.ValidationError{Field: "reference", Msg: "reference is required"}
	}
	var resp PaymentVerification
	if err := s.API.Post(ctx, "/payments/verify-join-trip", map[string]string{"reference": reference}, &resp); err != nil {
		return PaymentVerification{}, err
	}
	utils.LogEvent(s.RequestID, "payments", "verify_join_trip", "reference="+reference+" status="+resp.Status)
	return resp, nil
}

func (s PaymentsService) PaymentHistory(ctx context.Context) ([]domain.PaymentHistoryItem, error) {
	var items []domain.PaymentHistoryItem
	err := s.API.Get(ctx, "/payments/history", nil, &items)
	return items, err
}

// ClassifyReference routes a Paystack callback reference to the matching
// verification flow based on its prefix.
func ClassifyReference(reference string) string {
	switch {
	case strings.HasPrefix(reference, RefPrefixTrip):
		return RefPrefixTrip
	case strings.HasPrefix(reference, RefPrefixJoin):
		return RefPrefixJoin
	default:
		return ""
	}
}
