package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odyssweb/internal/domain"
)

func readyWizard(t *testing.T) *TripWizard {
	t.Helper()
	w := NewTripWizard(testCatalog())
	w.SetTransportPartner("GIGM")
	w.SetVehicleType("Sienna")
	w.SetDepartureCity("Lagos")
	w.SetDestinationCity("Abuja")
	w.SetTripDate("2026-03-15")
	w.SetTripTime("08:30")
	w.ToggleVibe("music")
	w.SetRefundAcknowledged(true)
	w.SetSmartFillPolicy(PolicyOfflineFill)
	return w
}

func TestNextBlockedByGuard(t *testing.T) {
	w := NewTripWizard(testCatalog())
	require.NoError(t, w.Next()) // intro has no guard
	assert.Equal(t, StepVehicle, w.Step())

	err := w.Next()
	require.Error(t, err)
	assert.Equal(t, StepVehicle, w.Step(), "failed guard must not advance")
	assert.Equal(t, TripForm{}, w.Form(), "failed guard must not mutate data")
}

func TestPreviousRetainsData(t *testing.T) {
	w := NewTripWizard(testCatalog())
	require.NoError(t, w.Next())
	w.SetTransportPartner("GIGM")
	w.SetVehicleType("Hiace Bus")
	require.NoError(t, w.Next())
	assert.Equal(t, StepRoute, w.Step())

	w.Previous()
	assert.Equal(t, StepVehicle, w.Step())
	assert.Equal(t, "Hiace Bus", w.Form().VehicleType)
	assert.Equal(t, 14, w.Form().SeatCount)

	w.Previous()
	w.Previous()
	assert.Equal(t, StepIntro, w.Step(), "previous at the first step stays put")
}

func TestSeatCountFollowsVehicleCapacity(t *testing.T) {
	w := NewTripWizard(testCatalog())
	w.SetTransportPartner("GIGM")

	w.SetVehicleType("Sienna")
	assert.Equal(t, 6, w.Form().SeatCount)

	w.SetVehicleType("Hiace Bus")
	assert.Equal(t, 14, w.Form().SeatCount)
}

func TestCompanyChangeClearsUnavailableVehicle(t *testing.T) {
	w := NewTripWizard(testCatalog())
	w.SetTransportPartner("GIGM")
	w.SetVehicleType("Sienna")
	require.Equal(t, 6, w.Form().SeatCount)

	w.SetTransportPartner("ABC Transport")
	assert.Equal(t, "", w.Form().VehicleType)
	assert.Equal(t, 0, w.Form().SeatCount)

	w.SetVehicleType("Sprinter")
	assert.Equal(t, 18, w.Form().SeatCount)
}

func TestCompanyChangeClearsForeignRoute(t *testing.T) {
	w := NewTripWizard(testCatalog())
	w.SetTransportPartner("GIGM")
	w.SetDepartureCity("Lagos")
	w.SetDestinationCity("Abuja")
	w.SetTripTime("08:30")
	require.Equal(t, "r1", w.Form().SelectedRouteID)

	// ABC Transport serves Lagos to Abuja, but not at 08:30
	w.SetTransportPartner("ABC Transport")
	f := w.Form()
	assert.Equal(t, "Lagos", f.DepartureCity)
	assert.Equal(t, "Abuja", f.DestinationCity)
	assert.Equal(t, "", f.TripTime)
	assert.Equal(t, "", f.SelectedRouteID)
	assert.Equal(t, 0.0, f.SelectedRoutePrice)
}

func TestCompanyChangeClearsForeignOrigin(t *testing.T) {
	w := NewTripWizard(testCatalog())
	w.SetTransportPartner("ABC Transport")
	w.SetDepartureCity("Enugu")
	w.SetDestinationCity("Abuja")
	w.SetTripTime("07:15")
	require.Equal(t, "r4", w.Form().SelectedRouteID)

	// GIGM runs nothing out of Enugu
	w.SetTransportPartner("GIGM")
	f := w.Form()
	assert.Equal(t, "", f.DepartureCity)
	assert.Equal(t, "", f.DestinationCity)
	assert.Equal(t, "", f.TripTime)
	assert.Equal(t, "", f.SelectedRouteID)
}

func TestCompanyChangeRemapsSharedTime(t *testing.T) {
	c := testCatalog()
	c.Routes = append(c.Routes, domain.CompanyRoute{ID: "r7", Origin: "Lagos", Destination: "Abuja", DepTime: "08:30", CompanyID: "co2", Price: 14000})
	w := NewTripWizard(c)
	w.SetTransportPartner("GIGM")
	w.SetDepartureCity("Lagos")
	w.SetDestinationCity("Abuja")
	w.SetTripTime("08:30")
	require.Equal(t, "r1", w.Form().SelectedRouteID)

	w.SetTransportPartner("ABC Transport")
	f := w.Form()
	assert.Equal(t, "r7", f.SelectedRouteID)
	assert.Equal(t, 14000.0, f.SelectedRoutePrice)
	assert.Equal(t, 14000.0, f.TripPrice)
}

func TestOriginChangeClearsDownstream(t *testing.T) {
	w := NewTripWizard(testCatalog())
	w.SetTransportPartner("GIGM")
	w.SetDepartureCity("Lagos")
	w.SetDestinationCity("Abuja")
	w.SetTripTime("08:30")
	require.Equal(t, "r1", w.Form().SelectedRouteID)

	w.SetDepartureCity("Enugu")
	f := w.Form()
	assert.Equal(t, "", f.DestinationCity)
	assert.Equal(t, "", f.TripTime)
	assert.Equal(t, "", f.SelectedRouteID)
	assert.Equal(t, 0.0, f.SelectedRoutePrice)
}

func TestDestinationChangeClearsTime(t *testing.T) {
	w := NewTripWizard(testCatalog())
	w.SetTransportPartner("GIGM")
	w.SetDepartureCity("Lagos")
	w.SetDestinationCity("Abuja")
	w.SetTripTime("14:00")
	require.Equal(t, "r2", w.Form().SelectedRouteID)

	w.SetDestinationCity("Benin")
	assert.Equal(t, "", w.Form().TripTime)
	assert.Equal(t, "", w.Form().SelectedRouteID)
}

func TestRoutePriceIsAuthoritative(t *testing.T) {
	w := NewTripWizard(testCatalog())
	w.SetTransportPartner("GIGM")
	w.SetDepartureCity("Lagos")
	w.SetDestinationCity("Abuja")
	w.SetTripPrice(999)
	w.SetTripTime("08:30")

	assert.Equal(t, 15000.0, w.Form().TripPrice)

	// once a route resolved, hand edits are ignored
	w.SetTripPrice(1)
	assert.Equal(t, 15000.0, w.Form().TripPrice)
}

func TestSubmitAssemblesPayload(t *testing.T) {
	w := readyWizard(t)

	data, err := w.Submit("u1")
	require.NoError(t, err)
	assert.Equal(t, StepPayment, w.Step())

	assert.Equal(t, domain.CreateTripData{
		DepartureLoc:  "Lagos",
		ArrivalLoc:    "Abuja",
		DepartureDate: "2026-03-15",
		ArrivalDate:   "2026-03-15",
		Seats:         6,
		Price:         15000,
		Vehicle:       "Sienna",
		MemberIDs:     []string{},
		Company:       "GIGM",
		DepartureTOD:  "08:30",
		Creator:       "u1",
		Fill:          true,
		Vibes:         []string{"music"},
		RouteID:       "r1",
	}, data)
}

func TestSubmitFillMapping(t *testing.T) {
	w := readyWizard(t)
	w.SetSmartFillPolicy(PolicyShareCost)

	data, err := w.Submit("u1")
	require.NoError(t, err)
	assert.False(t, data.Fill)
}

func TestSubmitValidationMessages(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TripWizard)
		want   string
	}{
		{"vehicle", func(w *TripWizard) { w.form.VehicleType = "" }, "Vehicle type is required."},
		{"seats", func(w *TripWizard) { w.form.SeatCount = 0 }, "Number of seats must be a positive number."},
		{"partner", func(w *TripWizard) { w.form.TransportPartner = "" }, "Transport partner is required."},
		{"departure", func(w *TripWizard) { w.form.DepartureCity = "" }, "Departure city is required."},
		{"destination", func(w *TripWizard) { w.form.DestinationCity = "" }, "Destination city is required."},
		{"date", func(w *TripWizard) { w.form.TripDate = "" }, "Trip date is required."},
		{"time", func(w *TripWizard) { w.form.TripTime = "" }, "Trip time is required."},
		{"price", func(w *TripWizard) {
			w.form.SelectedRoutePrice = 0
			w.form.TripPrice = 0
		}, "Trip price is required and must be greater than 0."},
		{"refund", func(w *TripWizard) { w.form.RefundAcknowledged = false }, "You must acknowledge the refund policy."},
		{"policy", func(w *TripWizard) { w.form.SmartFillPolicy = "" }, "Smart fill policy selection is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := readyWizard(t)
			tt.mutate(w)
			_, err := w.Submit("u1")
			require.Error(t, err)
			var vErr domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.want, vErr.Msg)
			assert.NotEqual(t, StepPayment, w.Step(), "failed submit must not reach payment")
		})
	}
}
