package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"odyssweb/internal/domain"
	"odyssweb/internal/utils"
)

// TicketService renders downloadable PDFs for confirmed bookings and
// payment receipts.
type TicketService struct {
	Bookings  BookingsService
	Payments  PaymentsService
	RequestID string
	Loader    func(context.Context, string) (ticketDocData, error)
}

type ticketDocData struct {
	BookingID     string
	PassengerName string
	Phone         string
	Seats         []string
	RouteFrom     string
	RouteTo       string
	TripDate      string
	TripTime      string
	CompanyName   string
	Amount        float64
	Reference     string
	Status        string
}

func (s TicketService) GenerateETicket(ctx context.Context, bookingID string) ([]byte, string, error) {
	data, err := s.loadTicketData(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "ticket", "generate_eticket", "booking_id="+bookingID)
	return buildETicketPDF(data)
}

func (s TicketService) GenerateReceipt(ctx context.Context, bookingID string) ([]byte, string, error) {
	data, err := s.loadTicketData(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "ticket", "generate_receipt", "booking_id="+bookingID)
	return buildReceiptPDF(data)
}

func (s TicketService) loadTicketData(ctx context.Context, bookingID string) (ticketDocData, error) {
	if s.Loader != nil {
		return s.Loader(ctx, bookingID)
	}
	if bookingID == "" {
		return ticketDocData{}, domain.ValidationError{Field: "booking_id", Msg: "booking id is required"}
	}

	bookings, err := s.Bookings.UserBookings(ctx)
	if err != nil {
		return ticketDocData{}, err
	}
	var booking *domain.Booking
	for i := range bookings {
		if bookings[i].ID == bookingID {
			booking = &bookings[i]
			break
		}
	}
	if booking == nil {
		return ticketDocData{}, domain.NotFoundError{Resource: "booking"}
	}

	out := ticketDocData{
		BookingID: booking.ID,
		Seats:     booking.SeatNumbers,
		Amount:    booking.TotalAmount,
		Status:    booking.Status,
	}
	if len(booking.PassengerDetails) > 0 {
		p := booking.PassengerDetails[0]
		out.PassengerName = strings.TrimSpace(p.FirstName + " " + p.LastName)
		out.Phone = p.Phone
	}
	if booking.Trip != nil {
		out.RouteFrom = booking.Trip.Origin
		out.RouteTo = booking.Trip.Destination
		out.TripDate = dateOnly(booking.Trip.DepartureTime)
		out.TripTime = timeHM(tailClock(booking.Trip.DepartureTime))
		out.CompanyName = booking.Trip.CompanyName
	}

	// pull the Paystack reference off payment history when available
	if history, err := s.Payments.PaymentHistory(ctx); err == nil {
		for _, item := range history {
			if id, ok := item.Metadata["booking_id"].(string); ok && id == booking.ID {
				out.Reference = item.Reference
				break
			}
		}
	}
	return out, nil
}

func buildETicketPDF(d ticketDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "ODYSS E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger    : %s", safe(d.PassengerName, "-")),
		fmt.Sprintf("Phone        : %s", safe(d.Phone, "-")),
		fmt.Sprintf("Seats        : %s", safe(strings.Join(d.Seats, ", "), "-")),
		fmt.Sprintf("Route        : %s -> %s", safe(d.RouteFrom, "-"), safe(d.RouteTo, "-")),
		fmt.Sprintf("Date/Time    : %s %s", safe(d.TripDate, "-"), safe(d.TripTime, "-")),
		fmt.Sprintf("Operator     : %s", safe(d.CompanyName, "-")),
		fmt.Sprintf("Booking Ref  : %s", safe(d.BookingID, "-")),
		fmt.Sprintf("Status       : %s", safe(d.Status, "-")),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this ticket at boarding. Seats are held until departure time.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s.pdf", safeFilenamePart(d.BookingID))
	return buf.Bytes(), filename, nil
}

func buildReceiptPDF(d ticketDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PAYMENT RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Booking     : "+safe(d.BookingID, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Reference   : "+safe(d.Reference, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued      : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Name  : %s", safe(d.PassengerName, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Phone : %s", safe(d.Phone, "-")))
	pdf.Ln(10)

	desc := fmt.Sprintf("Trip %s -> %s (%s %s), seats %s",
		safe(d.RouteFrom, "-"), safe(d.RouteTo, "-"),
		safe(d.TripDate, "-"), safe(d.TripTime, "-"),
		safe(strings.Join(d.Seats, ", "), "-"),
	)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Details:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, "1) "+desc, "", "", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatNaira(d.Amount))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Keep this receipt for your records.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%s.pdf", safeFilenamePart(d.BookingID))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func dateOnly(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 10 {
		return v[:10]
	}
	return v
}

func timeHM(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 5 {
		return v[:5]
	}
	return v
}

// tailClock extracts the clock part of "YYYY-MM-DD HH:MM" or RFC3339.
func tailClock(v string) string {
	v = strings.TrimSpace(v)
	if len(v) <= 11 {
		return ""
	}
	return v[11:]
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
