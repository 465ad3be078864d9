package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"odyssweb/internal/domain"
	"odyssweb/internal/errmsg"
	"odyssweb/internal/services"
)

// CompanyLogin authenticates a transport operator. The returned token
// pair is stored so the operator endpoints carry the company bearer.
func (h *Handlers) CompanyLogin(c *gin.Context) {
	var data services.CompanyLoginData
	if !BindJSONOrError(c, &data) {
		return
	}
	resp, err := h.companies(c).Login(c.Request.Context(), data)
	if err != nil {
		RespondAuthError(c, err)
		return
	}
	if err := h.Session.SetTokens(resp.AccessToken, resp.RefreshToken); err != nil {
		RespondServiceError(c, errmsg.ContextLogin, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": resp.Company})
}

func (h *Handlers) CompanySignup(c *gin.Context) {
	var data services.CompanySignupData
	if !BindJSONOrError(c, &data) {
		return
	}
	resp, err := h.companies(c).Signup(c.Request.Context(), data)
	if err != nil {
		RespondAuthError(c, err)
		return
	}
	if err := h.Session.SetTokens(resp.AccessToken, resp.RefreshToken); err != nil {
		RespondServiceError(c, errmsg.ContextSignup, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"company": resp.Company})
}

func (h *Handlers) CompanyProfile(c *gin.Context) {
	profile, err := h.companies(c).Profile(c.Request.Context())
	if err != nil {
		RespondServiceError(c, errmsg.ContextProfileLoading, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": profile})
}

func (h *Handlers) CompanyVehicles(c *gin.Context) {
	vehicles, err := h.companies(c).Vehicles(c.Request.Context())
	if err != nil {
		RespondServiceError(c, errmsg.ContextProfileLoading, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

func (h *Handlers) CompanyAddVehicle(c *gin.Context) {
	var data services.CreateVehicleData
	if !BindJSONOrError(c, &data) {
		return
	}
	vehicle, err := h.companies(c).AddVehicle(c.Request.Context(), data)
	if err != nil {
		RespondServiceError(c, errmsg.ContextTripCreation, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"vehicle": vehicle})
}

func (h *Handlers) CompanyRoutes(c *gin.Context) {
	routes, err := h.companies(c).Routes(c.Request.Context())
	if err != nil {
		RespondServiceError(c, errmsg.ContextProfileLoading, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": routes})
}

func (h *Handlers) CompanyCreateRoute(c *gin.Context) {
	var data services.CreateRouteData
	if !BindJSONOrError(c, &data) {
		return
	}
	route, err := h.companies(c).CreateRoute(c.Request.Context(), data)
	if err != nil {
		RespondServiceError(c, errmsg.ContextTripCreation, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"route": route})
}

func (h *Handlers) CompanyTrips(c *gin.Context) {
	trips, err := h.companies(c).ListTrips(c.Request.Context())
	if err != nil {
		RespondServiceError(c, errmsg.ContextTripLoading, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

func (h *Handlers) CompanyCreateTrip(c *gin.Context) {
	var data domain.CreateTripData
	if !BindJSONOrError(c, &data) {
		return
	}
	trip, err := h.companies(c).CreateTrip(c.Request.Context(), data)
	if err != nil {
		RespondServiceError(c, errmsg.ContextTripCreation, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"trip": trip})
}

func (h *Handlers) CompanyUpdateTrip(c *gin.Context) {
	var data domain.UpdateTripData
	if !BindJSONOrError(c, &data) {
		return
	}
	trip, err := h.companies(c).UpdateTrip(c.Request.Context(), c.Param("id"), data)
	if err != nil {
		RespondServiceError(c, errmsg.ContextTripCreation, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip})
}

func (h *Handlers) CompanyDeleteTrip(c *gin.Context) {
	if err := h.companies(c).DeleteTrip(c.Request.Context(), c.Param("id")); err != nil {
		RespondServiceError(c, errmsg.ContextTripLoading, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) CompanyBookings(c *gin.Context) {
	bookings, err := h.companies(c).Bookings(c.Request.Context())
	if err != nil {
		RespondServiceError(c, errmsg.ContextBooking, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
