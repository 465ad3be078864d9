// Package handlers exposes the client's route surface. Each handler
// delegates to a service, translates failures through errmsg, and keeps
// the session store as the single source of identity.
package handlers

import (
	"sync"

	"github.com/gin-gonic/gin"

	"odyssweb/internal/config"
	"odyssweb/internal/http/middleware"
	"odyssweb/internal/search"
	"odyssweb/internal/services"
	"odyssweb/internal/session"
	"odyssweb/internal/wizard"
)

// Handlers carries the shared dependencies. Services are value types;
// handlers copy them per request to attach the request id.
type Handlers struct {
	Env           config.Env
	Session       *session.Store
	Auth          services.AuthService
	Users         services.UsersService
	Trips         services.TripsService
	Circles       services.CirclesService
	Bookings      services.BookingsService
	Payments      services.PaymentsService
	Notifications services.NotificationsService
	Tickets       services.TicketService
	Companies     services.CompanyService
	SearchCache   *search.ResultCache

	wizardMu     sync.Mutex
	tripWizard   *wizard.TripWizard
	signupWizard *wizard.SignupWizard
}

func (h *Handlers) auth(c *gin.Context) services.AuthService {
	s := h.Auth
	s.RequestID = middleware.GetRequestID(c)
	return s
}

func (h *Handlers) users(c *gin.Context) services.UsersService {
	s := h.Users
	s.RequestID = middleware.GetRequestID(c)
	return s
}

func (h *Handlers) trips(c *gin.Context) services.TripsService {
	s := h.Trips
	s.RequestID = middleware.GetRequestID(c)
	return s
}

func (h *Handlers) circles(c *gin.Context) services.CirclesService {
	s := h.Circles
	s.RequestID = middleware.GetRequestID(c)
	return s
}

func (h *Handlers) bookings(c *gin.Context) services.BookingsService {
	s := h.Bookings
	s.RequestID = middleware.GetRequestID(c)
	return s
}

func (h *Handlers) payments(c *gin.Context) services.PaymentsService {
	s := h.Payments
	s.RequestID = middleware.GetRequestID(c)
	return s
}

func (h *Handlers) notifications(c *gin.Context) services.NotificationsService {
	s := h.Notifications
	s.RequestID = middleware.GetRequestID(c)
	return s
}

func (h *Handlers) tickets(c *gin.Context) services.TicketService {
	s := h.Tickets
	s.RequestID = middleware.GetRequestID(c)
	return s
}

func (h *Handlers) companies(c *gin.Context) services.CompanyService {
	s := h.Companies
	s.RequestID = middleware.GetRequestID(c)
	return s
}
