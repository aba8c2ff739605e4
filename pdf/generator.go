package pdf

import (
	"bytes"
	"fmt"
	"regexp"

	"event-ease/models"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// BatchFileName is the download name for the all-tickets export.
const BatchFileName = "Event-Ease-All-Tickets.pdf"

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// TicketFileName derives the single-ticket download name from the concert
// title, with every non-alphanumeric character replaced.
func TicketFileName(ticket models.Ticket) string {
	return fmt.Sprintf("Event-Ease-Ticket-%s.pdf", nonAlphanumeric.ReplaceAllString(ticket.Concert.Title, "-"))
}

// TicketPDF renders a single ticket to a downloadable document.
func TicketPDF(ticket models.Ticket) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	if err := renderTicketPage(pdf, ticket); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render ticket pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// AllTicketsPDF renders one page per ticket into a single document.
func AllTicketsPDF(tickets []models.Ticket) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)

	for _, ticket := range tickets {
		pdf.AddPage()
		if err := renderTicketPage(pdf, ticket); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render batch pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func renderTicketPage(pdf *gofpdf.Fpdf, ticket models.Ticket) error {
	// Header
	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 12, "EVENT EASE", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Concert Ticket", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetDrawColor(220, 220, 220)
	pdf.Line(12, pdf.GetY(), 198, pdf.GetY())
	pdf.Ln(6)

	// Identifying content
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, ticket.Concert.Title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, "by "+ticket.Concert.Artist, "", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "", 10)
	rows := [][2]string{
		{"Date", ticket.Concert.Date},
		{"Time", ticket.Concert.Time},
		{"Venue", ticket.Concert.Venue},
		{"Tier", ticket.Tier},
		{"Seat", ticket.SeatNumber},
		{"Price", "INR " + ticket.Price.StringFixed(2)},
		{"Ticket ID", ticket.ID},
		{"Purchase Date", ticket.PurchaseDate.Format("2006-01-02")},
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(34, 6, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, row[1], "", 1, "L", false, 0, "")
	}

	// Entry QR, encodes the ticket id
	png, err := qrcode.Encode(ticket.ID, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("encode ticket qr: %w", err)
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr-"+ticket.ID, opts, bytes.NewReader(png))
	pdf.ImageOptions("qr-"+ticket.ID, 160, 38, 32, 32, false, opts, 0, "")

	pdf.SetY(-24)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, "This ticket is valid for entry to the specified event.", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, "Please arrive 30 minutes before the event starts.", "", 1, "C", false, 0, "")

	if pdf.Err() {
		return fmt.Errorf("render ticket page: %v", pdf.Error())
	}
	return nil
}
