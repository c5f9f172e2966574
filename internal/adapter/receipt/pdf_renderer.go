// Package receipt renders booking receipts as PDF documents.
package receipt

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/domain"
	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/pricing"
)

const receiptDateLayout = "02/01/2006"

// PDFRenderer implements ports.ReceiptRenderer. It is pure: all data comes
// in on the booking, which must carry its joined kos and guest.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(booking *domain.Booking) ([]byte, error) {
	if booking.Kos == nil || booking.User == nil {
		return nil, fmt.Errorf("booking %s is missing kos or guest data", booking.ID)
	}

	nights, err := pricing.Nights(booking.CheckIn, booking.CheckOut)
	if err != nil {
		return nil, err
	}

	// Receipts use the pro-rated strategy, not the flat-nights total the
	// booking was created with.
	totalPrice, err := pricing.ProRated(booking.Kos.PricePerMonth, booking.CheckIn, booking.CheckOut)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "BOOKING RECEIPT", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 6, "========================================", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.CellFormat(0, 6, fmt.Sprintf("Booking ID: %s", booking.ID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", time.Now().Format(receiptDateLayout)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	section(pdf, "GUEST INFORMATION")
	line(pdf, "Name: %s", booking.User.Name)
	line(pdf, "Email: %s", booking.User.Email)
	line(pdf, "Phone: %s", booking.User.Phone)
	pdf.Ln(4)

	section(pdf, "KOS INFORMATION")
	line(pdf, "Kos Name: %s", booking.Kos.Name)
	line(pdf, "Address: %s", booking.Kos.Address)
	line(pdf, "Gender: %s", string(booking.Kos.Gender))
	pdf.Ln(4)

	section(pdf, "BOOKING DETAILS")
	line(pdf, "Check-in: %s", booking.CheckIn.Format(receiptDateLayout))
	line(pdf, "Check-out: %s", booking.CheckOut.Format(receiptDateLayout))
	line(pdf, "Duration: %d nights", nights)
	line(pdf, "Price per Month: Rp %s", formatRupiah(booking.Kos.PricePerMonth))
	pdf.SetFont("Helvetica", "B", 12)
	line(pdf, "Total Price: Rp %s", formatRupiah(totalPrice))
	pdf.SetFont("Helvetica", "", 12)
	pdf.Ln(4)

	line(pdf, "Status: %s", string(booking.Status))
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Thank you for booking with us!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "BU", 12)
	pdf.CellFormat(0, 6, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
}

func line(pdf *gofpdf.Fpdf, format string, args ...interface{}) {
	pdf.CellFormat(0, 6, fmt.Sprintf(format, args...), "", 1, "L", false, 0, "")
}

// formatRupiah renders an amount with id-ID thousand separators, e.g.
// 1500000 -> "1.500.000".
func formatRupiah(amount float64) string {
	s := strconv.FormatInt(int64(math.Round(amount)), 10)

	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}
