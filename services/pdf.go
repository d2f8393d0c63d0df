package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// PDFData carries everything the itinerary PDF needs. It is assembled
// per request from the posted flight list; nothing is stored.
type PDFData struct {
	Details     SearchDetails
	Preference  Preference
	Flights     []FlightOption
	Summary     string
	IsEstimated bool // true when the flights are mock data
}

// GeneratePDFBytes renders the ranked flight options and summary into a
// PDF and returns raw bytes (no filesystem needed).
func GeneratePDFBytes(data PDFData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "SkyPlanner", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Flight Options & Itinerary Summary", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Advisory ─────────────────────────────────────────────
	pdf.SetFillColor(255, 248, 225)
	pdf.SetDrawColor(212, 168, 67)
	pdf.SetTextColor(130, 90, 20)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetLineWidth(0.4)
	y := pdf.GetY()
	pdf.Rect(20, y, 170, 12, "FD")
	pdf.SetXY(23, y+2)
	advisory := AdvisoryText()
	if data.IsEstimated {
		advisory = "Estimated demo data - no live provider configured. " + advisory
	}
	pdf.MultiCell(164, 4, advisory, "", "C", false)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Ln(6)

	// ── Section Helper ───────────────────────────────────────
	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	// ── Search Overview ──────────────────────────────────────
	sectionHeader("Search Overview")
	row("Route", fmt.Sprintf("%s -> %s", data.Details.Origin, data.Details.Destination))
	row("Date", fmtDateReadable(data.Details.Date))
	row("Ranked by", string(data.Preference))
	row("Generated", time.Now().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	// ── Flight Options ───────────────────────────────────────
	for i, f := range data.Flights {
		sectionHeader(fmt.Sprintf("Option %d - %s", i+1, f.Airline))

		origin, destination := routeOf(f, data.Details)
		row("Route", fmt.Sprintf("%s -> %s", origin, destination))
		if len(f.Segments) > 0 {
			row("Departure", f.Segments[0].Departure)
			row("Arrival", f.Segments[len(f.Segments)-1].Arrival)
		}

		hours := float64(totalDurationMinutes(f)) / 60
		row("Duration", fmt.Sprintf("%.1f h", hours))

		stops := "Direct"
		if f.Stops > 0 {
			stops = fmt.Sprintf("%d stop(s)", f.Stops)
		}
		row("Stops", stops)
		row("Price", fmt.Sprintf("%s %.0f per person", f.Currency, f.Price))
		if f.CarbonKg > 0 {
			row("Est. CO2", fmt.Sprintf("%.2f kg", f.CarbonKg))
		}
		pdf.Ln(4)
	}

	// ── Summary ──────────────────────────────────────────────
	if data.Summary != "" {
		sectionHeader("Itinerary Summary")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		pdf.MultiCell(170, 5, data.Summary, "", "L", false)
		pdf.Ln(4)
	}

	// ── Footer ───────────────────────────────────────────────
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Generated by SkyPlanner - Not a booking confirmation - Prices subject to change",
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func fmtDateReadable(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02 Jan 2006 (Mon)")
}
