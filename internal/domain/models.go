package domain

// Entities as returned by the Odyss API. Field tags mirror the wire shapes
// exactly, including the mixed snake/camel casing the server uses.

// TripUser is the abbreviated profile embedded in trip member lists.
type TripUser struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
}

type Trip struct {
	ID             string     `json:"id"`
	Origin         string     `json:"origin"`
	Destination    string     `json:"destination"`
	DepartureTime  string     `json:"departure_time"`
	ArrivalTime    string     `json:"arrival_time"`
	SeatsAvailable int        `json:"seats_available"`
	DepartureDate  string     `json:"departureDate"`
	DepartureLoc   string     `json:"departureLoc"`
	ArrivalLoc     string     `json:"arrivalLoc"`
	DaysLeft       int        `json:"days_left"`
	Seats          int        `json:"seats"`
	Price          float64    `json:"price"`
	Vehicle        string     `json:"vehicle"`
	MemberIDs      []string   `json:"memberIds"`
	Users          []TripUser `json:"users"`
	Company        string     `json:"company"`
	DepartureTOD   string     `json:"departureTOD"`
	Creator        string     `json:"creator"`
	Fill           bool       `json:"fill"`
	Vibes          []string   `json:"vibes"`
	CreatedAt      string     `json:"created_at,omitempty"`
	UpdatedAt      string     `json:"updated_at,omitempty"`
}

// IsMember reports whether userID appears in the trip's member list.
func (t Trip) IsMember(userID string) bool {
	if userID == "" {
		return false
	}
	for _, id := range t.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// CreateTripData is the payload the trip wizard assembles for submission.
type CreateTripData struct {
	DepartureLoc  string   `json:"departureLoc"`
	ArrivalLoc    string   `json:"arrivalLoc"`
	DepartureDate string   `json:"departureDate"`
	ArrivalDate   string   `json:"arrivalDate"`
	Seats         int      `json:"seats"`
	Price         float64  `json:"price"`
	Vehicle       string   `json:"vehicle"`
	MemberIDs     []string `json:"memberIds"`
	Company       string   `json:"company"`
	DepartureTOD  string   `json:"departureTOD"`
	Creator       string   `json:"creator"`
	Fill          bool     `json:"fill"`
	Vibes         []string `json:"vibes"`
	RouteID       string   `json:"route_id"`
}

type UpdateTripData struct {
	DepartureLoc  *string  `json:"departureLoc,omitempty"`
	ArrivalLoc    *string  `json:"arrivalLoc,omitempty"`
	DepartureDate *string  `json:"departureDate,omitempty"`
	ArrivalDate   *string  `json:"arrivalDate,omitempty"`
	Seats         *int     `json:"seats,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	Vehicle       *string  `json:"vehicle,omitempty"`
	MemberIDs     []string `json:"memberIds,omitempty"`
	Company       *string  `json:"company,omitempty"`
	DepartureTOD  *string  `json:"departureTOD,omitempty"`
	Fill          *bool    `json:"fill,omitempty"`
	Vibes         []string `json:"vibes,omitempty"`
}

type TripSearchParams struct {
	Origin      string
	Destination string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
}

type Seat struct {
	SeatNumber    string `json:"seat_number"`
	IsAvailable   bool   `json:"is_available"`
	PassengerName string `json:"passenger_name,omitempty"`
}

type TripPassenger struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	SeatNumber string `json:"seat_number"`
	Phone      string `json:"phone,omitempty"`
	BookingID  string `json:"booking_id,omitempty"`
}

type CircleMember struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	JoinedAt  string `json:"joined_at"`
	IsCreator bool   `json:"is_creator"`
}

// Circle as returned by the API. The server is inconsistent about member
// shapes: sometimes a bare users id list, sometimes member records, and the
// two can overlap. Views must go through MemberIDs.
type Circle struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Departure   string         `json:"departure"`
	Destination string         `json:"destination"`
	StartDate   string         `json:"startDate"`
	EndDate     string         `json:"endDate"`
	Users       []string       `json:"users"`
	Members     []CircleMember `json:"members,omitempty"`
	CreatedAt   string         `json:"created_at,omitempty"`
	UpdatedAt   string         `json:"updated_at,omitempty"`
}

type CreateCircleData struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Departure   string   `json:"departure"`
	Destination string   `json:"destination"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Users       []string `json:"users"`
}

type PassengerDetail struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
}

type BookingTrip struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
	CompanyName   string `json:"company_name"`
}

type Booking struct {
	ID               string            `json:"id"`
	TripID           string            `json:"trip_id"`
	UserID           string            `json:"user_id"`
	PassengerCount   int               `json:"passenger_count"`
	TotalAmount      float64           `json:"total_amount"`
	Status           string            `json:"status"` // pending/confirmed/cancelled/completed
	SeatNumbers      []string          `json:"seat_numbers"`
	PassengerDetails []PassengerDetail `json:"passenger_details"`
	CreatedAt        string            `json:"created_at"`
	UpdatedAt        string            `json:"updated_at"`
	Trip             *BookingTrip      `json:"trip,omitempty"`
}

type UserProfile struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Nickname    string   `json:"nickname"`
	Bio         string   `json:"bio,omitempty"`
	PhoneNumber string   `json:"phone_number,omitempty"`
	Avatar      string   `json:"avatar,omitempty"`
	ProfilePic  string   `json:"profile_pic,omitempty"`
	IntroVideo  string   `json:"intro_video,omitempty"`
	DateOfBirth string   `json:"date_of_birth,omitempty"`
	Vibes       []string `json:"vibes,omitempty"`
	X           string   `json:"x,omitempty"`
	FB          string   `json:"fb,omitempty"`
	TikTok      string   `json:"tiktok,omitempty"`
	Insta       string   `json:"insta,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

type Company struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Logo        string `json:"logo,omitempty"`
	IsVerified  bool   `json:"is_verified"`
	CreatedAt   string `json:"created_at,omitempty"`
}

type CompanyRoute struct {
	ID          string   `json:"id"`
	Origin      string   `json:"origin"`
	DepTime     string   `json:"dep_time"`
	Destination string   `json:"destination"`
	CompanyID   string   `json:"company_id"`
	Price       float64  `json:"price"`
	Terminal    string   `json:"terminal,omitempty"`
	Vehicles    []string `json:"vehicles,omitempty"`
}

type CompanyVehicle struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	PlateNumber string `json:"plate_number"`
	Capacity    int    `json:"capacity"`
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at,omitempty"`
}

type PaymentHistoryItem struct {
	ID            string         `json:"id"`
	Amount        float64        `json:"amount"`
	Currency      string         `json:"currency"`
	Status        string         `json:"status"` // pending/success/failed
	Reference     string         `json:"reference"`
	PaymentMethod string         `json:"payment_method"`
	Description   string         `json:"description"`
	CreatedAt     string         `json:"created_at"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

type Notification struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}
