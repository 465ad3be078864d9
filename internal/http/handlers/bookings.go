package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"odyssweb/internal/errmsg"
)

func (h *Handlers) ListBookings(c *gin.Context) {
	bookings, err := h.bookings(c).UserBookings(c.Request.Context())
	if err != nil {
		RespondServiceError(c, errmsg.ContextBooking, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handlers) CancelBooking(c *gin.Context) {
	resp, err := h.bookings(c).CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondServiceError(c, errmsg.ContextBooking, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BookRide reserves a seat on a trip directly (offline fill-in flow).
func (h *Handlers) BookRide(c *gin.Context) {
	var data struct {
		SeatNumber int `json:"seat_number"`
	}
	if !BindJSONOrError(c, &data) {
		return
	}
	resp, err := h.trips(c).BookTrip(c.Request.Context(), c.Param("id"), data.SeatNumber)
	if err != nil {
		RespondServiceError(c, errmsg.ContextBooking, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *Handlers) DownloadETicket(c *gin.Context) {
	pdf, filename, err := h.tickets(c).GenerateETicket(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondServiceError(c, errmsg.ContextBooking, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *Handlers) DownloadReceipt(c *gin.Context) {
	pdf, filename, err := h.tickets(c).GenerateReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondServiceError(c, errmsg.ContextBooking, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
