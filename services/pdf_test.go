package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePDFBytes(t *testing.T) {
	details := SearchDetails{Origin: "LOS", Destination: "ABV", Date: "2024-01-01"}
	ranked := RankFlights(testFlights(), PreferencePrice)

	pdfBytes, err := GeneratePDFBytes(PDFData{
		Details:     details,
		Preference:  PreferencePrice,
		Flights:     ranked,
		Summary:     "Fly WestAir, it is the cheapest.",
		IsEstimated: true,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestGeneratePDFBytesSegmentlessOption(t *testing.T) {
	pdfBytes, err := GeneratePDFBytes(PDFData{
		Details:    SearchDetails{Origin: "LOS", Destination: "ABV", Date: "2024-01-01"},
		Preference: PreferencePrice,
		Flights:    []FlightOption{NewFlightOption("X1", "Unknown", 100, "NGN", nil, 0, "")},
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestGeneratePDFBytesNoFlights(t *testing.T) {
	pdfBytes, err := GeneratePDFBytes(PDFData{
		Details:    SearchDetails{Origin: "LOS", Destination: "ABV", Date: "2024-01-01"},
		Preference: PreferenceTime,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}
