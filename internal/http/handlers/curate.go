package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"odyssweb/internal/errmsg"
	"odyssweb/internal/services"
	"odyssweb/internal/wizard"
)

// loadCatalog fetches the reference lists for a new wizard session.
// Failures are tolerated per list; the wizard degrades to empty options
// and the next session fetches again.
func (h *Handlers) loadCatalog(c *gin.Context) wizard.Catalog {
	ctx := c.Request.Context()
	users := h.users(c)
	var cat wizard.Catalog
	if companies, err := users.AllCompanies(ctx); err == nil {
		cat.Companies = companies
	}
	if vehicles, err := users.AllCompanyVehicles(ctx); err == nil {
		cat.Vehicles = vehicles
	}
	if routes, err := users.AllCompanyRoutes(ctx); err == nil {
		cat.Routes = routes
	}
	return cat
}

// curate returns the one in-flight trip wizard, creating it on first use.
func (h *Handlers) curate(c *gin.Context) *wizard.TripWizard {
	if h.tripWizard == nil {
		h.tripWizard = wizard.NewTripWizard(h.loadCatalog(c))
	}
	return h.tripWizard
}

// curateState reports the wizard step, the form aggregate, and the option
// lists the current selections allow.
func curateState(w *wizard.TripWizard) gin.H {
	f := w.Form()
	return gin.H{
		"step": w.Step().String(),
		"form": gin.H{
			"transport_partner":   f.TransportPartner,
			"vehicle_type":        f.VehicleType,
			"seat_count":          strconv.Itoa(f.SeatCount),
			"departure_city":      f.DepartureCity,
			"destination_city":    f.DestinationCity,
			"trip_date":           f.TripDate,
			"trip_time":           f.TripTime,
			"trip_price":          f.TripPrice,
			"selected_route_id":   f.SelectedRouteID,
			"vibes":               f.SelectedVibes,
			"refund_acknowledged": f.RefundAcknowledged,
			"smart_fill_policy":   f.SmartFillPolicy,
		},
		"options": gin.H{
			"companies":    w.Catalog.CompanyNames(),
			"vehicles":     w.Catalog.VehiclesForCompany(f.TransportPartner),
			"origins":      w.Catalog.Origins(f.TransportPartner),
			"destinations": w.Catalog.Destinations(f.TransportPartner, f.DepartureCity),
			"times":        w.Catalog.DepartureTimes(f.TransportPartner, f.DepartureCity, f.DestinationCity),
			"policies":     []string{wizard.PolicyShareCost, wizard.PolicyOfflineFill},
		},
	}
}

func (h *Handlers) CurateState(c *gin.Context) {
	h.wizardMu.Lock()
	defer h.wizardMu.Unlock()
	c.JSON(http.StatusOK, curateState(h.curate(c)))
}

// CurateSelect applies one field update and returns the recomputed state,
// so the caller sees every cascade effect of the change.
func (h *Handlers) CurateSelect(c *gin.Context) {
	var data struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if !BindJSONOrError(c, &data) {
		return
	}

	h.wizardMu.Lock()
	defer h.wizardMu.Unlock()
	w := h.curate(c)
	switch data.Field {
	case "transport_partner":
		w.SetTransportPartner(data.Value)
	case "vehicle_type":
		w.SetVehicleType(data.Value)
	case "departure_city":
		w.SetDepartureCity(data.Value)
	case "destination_city":
		w.SetDestinationCity(data.Value)
	case "trip_date":
		w.SetTripDate(data.Value)
	case "trip_time":
		w.SetTripTime(data.Value)
	case "trip_price":
		price, err := strconv.ParseFloat(data.Value, 64)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "trip_price must be a number", err)
			return
		}
		w.SetTripPrice(price)
	case "vibe":
		w.ToggleVibe(data.Value)
	case "refund_acknowledged":
		w.SetRefundAcknowledged(data.Value == "true" || data.Value == "1")
	case "smart_fill_policy":
		w.SetSmartFillPolicy(data.Value)
	default:
		RespondError(c, http.StatusBadRequest, "unknown field: "+data.Field, nil)
		return
	}
	c.JSON(http.StatusOK, curateState(w))
}

func (h *Handlers) CurateNext(c *gin.Context) {
	h.wizardMu.Lock()
	defer h.wizardMu.Unlock()
	w := h.curate(c)
	if err := w.Next(); err != nil {
		RespondServiceError(c, errmsg.ContextTripCreation, err)
		return
	}
	c.JSON(http.StatusOK, curateState(w))
}

func (h *Handlers) CuratePrevious(c *gin.Context) {
	h.wizardMu.Lock()
	defer h.wizardMu.Unlock()
	w := h.curate(c)
	w.Previous()
	c.JSON(http.StatusOK, curateState(w))
}

// CurateReset abandons the in-flight wizard and its stashed payload.
func (h *Handlers) CurateReset(c *gin.Context) {
	h.wizardMu.Lock()
	defer h.wizardMu.Unlock()
	h.tripWizard = nil
	_ = h.Session.ClearPendingTrip()
	c.Status(http.StatusNoContent)
}

// CurateSubmit validates the aggregate, stashes the trip payload for the
// payment landing page, and starts the gateway checkout.
func (h *Handlers) CurateSubmit(c *gin.Context) {
	user := h.Session.User()
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	h.wizardMu.Lock()
	defer h.wizardMu.Unlock()

	w := h.curate(c)
	data, err := w.Submit(user.ID)
	if err != nil {
		RespondServiceError(c, errmsg.ContextTripCreation, err)
		return
	}
	if err := h.Session.SetPendingTrip(&data); err != nil {
		RespondServiceError(c, errmsg.ContextTripCreation, err)
		return
	}

	init, err := h.payments(c).InitiateTripPayment(c.Request.Context(), services.TripPaymentData{
		DepartureLoc:  data.DepartureLoc,
		ArrivalLoc:    data.ArrivalLoc,
		DepartureDate: data.DepartureDate,
		ArrivalDate:   data.ArrivalDate,
		Seats:         data.Seats,
		Price:         data.Price,
		Vehicle:       data.Vehicle,
		Company:       data.Company,
		DepartureTOD:  data.DepartureTOD,
		Creator:       data.Creator,
		Email:         user.Email,
	})
	if err != nil {
		RespondServiceError(c, errmsg.ContextPayment, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authorization_url": init.AuthorizationURL,
		"reference":         init.Reference,
	})
}
