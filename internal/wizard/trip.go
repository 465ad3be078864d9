package wizard

import (
	"errors"

	"odyssweb/internal/domain"
	"odyssweb/internal/utils"
)

// TripStep names the trip wizard's states. Transitions are strictly
// linear; Payment is terminal.
type TripStep int

const (
	StepIntro TripStep = iota
	StepVehicle
	StepRoute
	StepVibes
	StepPricing
	StepPayment
)

func (s TripStep) String() string {
	switch s {
	case StepIntro:
		return "intro"
	case StepVehicle:
		return "vehicle"
	case StepRoute:
		return "route"
	case StepVibes:
		return "vibes"
	case StepPricing:
		return "pricing"
	case StepPayment:
		return "payment"
	default:
		return "unknown"
	}
}

// Smart fill policy options as shown to the user.
const (
	PolicyShareCost   = "Share cost among booked users"
	PolicyOfflineFill = "Allow offline fill-in"
)

// TripForm is the aggregate the wizard accumulates across steps. Fields
// survive back-navigation unchanged.
type TripForm struct {
	VehicleType        string
	SeatCount          int
	TransportPartner   string
	DepartureCity      string
	DestinationCity    string
	TripDate           string // YYYY-MM-DD
	TripTime           string // HH:MM
	TripPrice          float64
	SelectedRouteID    string
	SelectedRoutePrice float64
	SelectedVibes      []string
	RefundAcknowledged bool
	SmartFillPolicy    string
}

// TripWizard is the trip-creation state machine. Next only advances when
// the current step's guard passes and never mutates form data on failure;
// Previous always retreats with data retained.
type TripWizard struct {
	Catalog Catalog

	step TripStep
	form TripForm
}

func NewTripWizard(catalog Catalog) *TripWizard {
	return &TripWizard{Catalog: catalog, step: StepIntro}
}

func (w *TripWizard) Step() TripStep { return w.step }
func (w *TripWizard) Form() TripForm { return w.form }

// SetTransportPartner selects the company. Vehicle and route selections
// only exist within a partner's own fleet and network, so any of them
// the new partner cannot serve is cleared along with its dependents.
func (w *TripWizard) SetTransportPartner(name string) {
	if w.form.TransportPartner == name {
		return
	}
	w.form.TransportPartner = name
	if w.form.VehicleType != "" {
		if _, ok := w.Catalog.VehicleByType(name, w.form.VehicleType); !ok {
			w.form.VehicleType = ""
			w.form.SeatCount = 0
		}
	}
	switch {
	case w.form.DepartureCity != "" && !contains(w.Catalog.Origins(name), w.form.DepartureCity):
		w.form.DepartureCity = ""
		w.form.DestinationCity = ""
		w.form.TripTime = ""
		w.clearRoute()
	case w.form.DestinationCity != "" && !contains(w.Catalog.Destinations(name, w.form.DepartureCity), w.form.DestinationCity):
		w.form.DestinationCity = ""
		w.form.TripTime = ""
		w.clearRoute()
	case w.form.TripTime != "":
		// same time may map to a different route under the new partner
		if route, ok := w.Catalog.ResolveRoute(name, w.form.DepartureCity, w.form.DestinationCity, w.form.TripTime); ok {
			w.form.SelectedRouteID = route.ID
			w.form.SelectedRoutePrice = route.Price
			w.form.TripPrice = route.Price
		} else {
			w.form.TripTime = ""
			w.clearRoute()
		}
	}
}

// SetVehicleType selects a vehicle from the partner's fleet; seat count
// follows the vehicle's capacity and is not hand-editable.
func (w *TripWizard) SetVehicleType(vehicleType string) {
	w.form.VehicleType = vehicleType
	if v, ok := w.Catalog.VehicleByType(w.form.TransportPartner, vehicleType); ok {
		w.form.SeatCount = v.Capacity
	}
}

// SetDepartureCity clears everything downstream of the origin.
func (w *TripWizard) SetDepartureCity(city string) {
	if w.form.DepartureCity == city {
		return
	}
	w.form.DepartureCity = city
	w.form.DestinationCity = ""
	w.form.TripTime = ""
	w.clearRoute()
}

// SetDestinationCity clears the time and resolved route.
func (w *TripWizard) SetDestinationCity(city string) {
	if w.form.DestinationCity == city {
		return
	}
	w.form.DestinationCity = city
	w.form.TripTime = ""
	w.clearRoute()
}

func (w *TripWizard) SetTripDate(date string) {
	w.form.TripDate = utils.TrimOrEmpty(date)
}

// SetTripTime completes the route selection. A full (origin, destination,
// time) triple resolves to one route whose price becomes authoritative.
func (w *TripWizard) SetTripTime(depTime string) {
	w.form.TripTime = depTime
	if route, ok := w.Catalog.ResolveRoute(w.form.TransportPartner, w.form.DepartureCity, w.form.DestinationCity, depTime); ok {
		w.form.SelectedRouteID = route.ID
		w.form.SelectedRoutePrice = route.Price
		w.form.TripPrice = route.Price
	} else {
		w.clearRoute()
	}
}

// SetTripPrice is only honored while no route has resolved; a resolved
// route's price cannot be hand-edited.
func (w *TripWizard) SetTripPrice(price float64) {
	if w.form.SelectedRouteID != "" {
		return
	}
	w.form.TripPrice = price
}

func (w *TripWizard) ToggleVibe(vibe string) {
	for i, v := range w.form.SelectedVibes {
		if v == vibe {
			w.form.SelectedVibes = append(w.form.SelectedVibes[:i], w.form.SelectedVibes[i+1:]...)
			return
		}
	}
	w.form.SelectedVibes = append(w.form.SelectedVibes, vibe)
}

func (w *TripWizard) SetRefundAcknowledged(ok bool) { w.form.RefundAcknowledged = ok }

func (w *TripWizard) SetSmartFillPolicy(policy string) { w.form.SmartFillPolicy = policy }

func (w *TripWizard) clearRoute() {
	w.form.SelectedRouteID = ""
	w.form.SelectedRoutePrice = 0
}

// Next advances one step when the current step's guard passes. On guard
// failure it returns the blocking message and changes nothing.
func (w *TripWizard) Next() error {
	if w.step >= StepPricing {
		return errors.New("use Submit to leave the pricing step")
	}
	if err := w.validateStep(w.step); err != nil {
		return err
	}
	w.step++
	return nil
}

// Previous retreats one step unconditionally, retaining entered data.
func (w *TripWizard) Previous() {
	if w.step > StepIntro {
		w.step--
	}
}

func (w *TripWizard) validateStep(step TripStep) error {
	switch step {
	case StepVehicle:
		if w.form.VehicleType == "" {
			return domain.ValidationError{Field: "vehicleType", Msg: "Vehicle type is required."}
		}
		if w.form.SeatCount <= 0 {
			return domain.ValidationError{Field: "seatCount", Msg: "Number of seats must be a positive number."}
		}
		if w.form.TransportPartner == "" {
			return domain.ValidationError{Field: "transportPartner", Msg: "Transport partner is required."}
		}
	case StepRoute:
		if w.form.DepartureCity == "" || w.form.DestinationCity == "" || w.form.TripDate == "" || w.form.TripTime == "" {
			return domain.ValidationError{Msg: "Please select all trip details (departure, destination, date, and time)."}
		}
	}
	return nil
}

// Validate runs the holistic submission checks over the whole aggregate.
func (w *TripWizard) Validate() error {
	f := w.form
	switch {
	case f.VehicleType == "":
		return domain.ValidationError{Field: "vehicleType", Msg: "Vehicle type is required."}
	case f.SeatCount <= 0:
		return domain.ValidationError{Field: "seatCount", Msg: "Number of seats must be a positive number."}
	case f.TransportPartner == "":
		return domain.ValidationError{Field: "transportPartner", Msg: "Transport partner is required."}
	case f.DepartureCity == "":
		return domain.ValidationError{Field: "departureCity", Msg: "Departure city is required."}
	case f.DestinationCity == "":
		return domain.ValidationError{Field: "destinationCity", Msg: "Destination city is required."}
	case f.TripDate == "":
		return domain.ValidationError{Field: "tripDate", Msg: "Trip date is required."}
	case f.TripTime == "":
		return domain.ValidationError{Field: "tripTime", Msg: "Trip time is required."}
	case w.effectivePrice() <= 0:
		return domain.ValidationError{Field: "tripPrice", Msg: "Trip price is required and must be greater than 0."}
	case !f.RefundAcknowledged:
		return domain.ValidationError{Field: "refundPolicy", Msg: "You must acknowledge the refund policy."}
	case f.SmartFillPolicy == "":
		return domain.ValidationError{Field: "smartFillPolicy", Msg: "Smart fill policy selection is required."}
	}
	return nil
}

// Submit validates the aggregate, assembles the trip payload, and moves
// the wizard into the terminal payment state. The caller stashes the
// payload for the payment landing page.
func (w *TripWizard) Submit(creatorID string) (domain.CreateTripData, error) {
	if err := w.Validate(); err != nil {
		return domain.CreateTripData{}, err
	}
	f := w.form
	data := domain.CreateTripData{
		DepartureLoc:  f.DepartureCity,
		ArrivalLoc:    f.DestinationCity,
		DepartureDate: f.TripDate,
		ArrivalDate:   f.TripDate,
		Seats:         f.SeatCount,
		Price:         w.effectivePrice(),
		Vehicle:       f.VehicleType,
		MemberIDs:     []string{},
		Company:       f.TransportPartner,
		DepartureTOD:  f.TripTime,
		Creator:       creatorID,
		Fill:          f.SmartFillPolicy == PolicyOfflineFill,
		Vibes:         f.SelectedVibes,
		RouteID:       f.SelectedRouteID,
	}
	w.step = StepPayment
	return data, nil
}

// effectivePrice prefers the resolved route's price over the hand-entered
// one.
func (w *TripWizard) effectivePrice() float64 {
	if w.form.SelectedRoutePrice > 0 {
		return w.form.SelectedRoutePrice
	}
	return w.form.TripPrice
}
