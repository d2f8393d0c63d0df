package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 150, ParseDuration("PT2H30M"))
	assert.Equal(t, 300, ParseDuration("PT5H0M"))
	assert.Equal(t, 75, ParseDuration("PT1H15M"))

	// Malformed tokens yield zero minutes, never an error.
	assert.Equal(t, 0, ParseDuration("garbage"))
	assert.Equal(t, 0, ParseDuration(""))
	assert.Equal(t, 0, ParseDuration("PT2H"))
}

func TestNewFlightOptionDerivesStops(t *testing.T) {
	one := NewFlightOption("F1", "Demo Air", 100, "NGN", []Segment{{}}, 0, "")
	assert.Equal(t, 0, one.Stops)

	two := NewFlightOption("F2", "Demo Air", 100, "NGN", []Segment{{}, {}}, 0, "")
	assert.Equal(t, 1, two.Stops)
}

func TestGenerateMockFlights(t *testing.T) {
	criteria := SearchCriteria{Origin: "LOS", Destination: "ABV", Date: "2024-01-01", Passengers: 1}

	flights := GenerateMockFlights(criteria)
	assert.Len(t, flights, 3)

	assert.Equal(t, "MOCK1", flights[0].ID)
	assert.Equal(t, "MOCK2", flights[1].ID)
	assert.Equal(t, "MOCK3", flights[2].ID)

	assert.Equal(t, 80000.0, flights[0].Price)
	assert.Equal(t, 90000.0, flights[1].Price)
	assert.Equal(t, 75000.0, flights[2].Price)

	for _, f := range flights {
		assert.Equal(t, "NGN", f.Currency)
		assert.Equal(t, len(f.Segments)-1, f.Stops)
		assert.Equal(t, "LOS", f.Segments[0].Origin)
		assert.Equal(t, "ABV", f.Segments[len(f.Segments)-1].Destination)
	}

	// The two-leg option routes through the fixed hub.
	assert.Equal(t, 1, flights[2].Stops)
	assert.Equal(t, "ACC", flights[2].Segments[0].Destination)
	assert.Equal(t, "ACC", flights[2].Segments[1].Origin)

	// Deterministic for the same criteria.
	assert.Equal(t, flights, GenerateMockFlights(criteria))
}

const sampleOffersJSON = `{
	"data": [
		{
			"id": "1",
			"price": {"total": "250.00", "currency": "EUR"},
			"itineraries": [
				{
					"segments": [
						{
							"departure": {"iataCode": "LOS", "at": "2024-01-01T08:00:00"},
							"arrival": {"iataCode": "ACC", "at": "2024-01-01T10:30:00"},
							"carrierCode": "WA",
							"number": "101",
							"duration": "PT2H30M"
						},
						{
							"departure": {"iataCode": "ACC", "at": "2024-01-01T12:00:00"},
							"arrival": {"iataCode": "ABV", "at": "2024-01-01T13:15:00"},
							"carrierCode": "WA",
							"number": "102",
							"duration": "PT1H15M"
						}
					]
				}
			],
			"links": {"flightOffers": "https://example.com/offers/1"}
		},
		{
			"id": "2",
			"price": {"total": "310.50"},
			"itineraries": [
				{
					"segments": [
						{
							"departure": {"iataCode": "LOS", "at": "2024-01-01T09:00:00"},
							"arrival": {"iataCode": "ABV", "at": "2024-01-01T10:10:00"},
							"carrierCode": "P4",
							"number": "7120",
							"duration": "bogus"
						}
					]
				}
			]
		}
	]
}`

func TestParseFlightOffers(t *testing.T) {
	options, err := parseFlightOffers([]byte(sampleOffersJSON))
	assert.NoError(t, err)
	assert.Len(t, options, 2)

	first := options[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "WA", first.Airline)
	assert.Equal(t, 250.0, first.Price)
	assert.Equal(t, "EUR", first.Currency)
	assert.Len(t, first.Segments, 2)
	assert.Equal(t, 1, first.Stops)
	assert.Equal(t, 150, first.Segments[0].DurationMinutes)
	assert.Equal(t, 75, first.Segments[1].DurationMinutes)
	assert.Equal(t, "https://example.com/offers/1", first.DeepLink)

	// 3.75 h of flying at 800 km/h is 3000 km.
	assert.Equal(t, EstimateEF(3000), first.CarbonKg)

	second := options[1]
	assert.Equal(t, "USD", second.Currency, "missing currency defaults to USD")
	assert.Equal(t, "", second.DeepLink, "missing deep link defaults to empty")
	assert.Equal(t, 0, second.Segments[0].DurationMinutes, "malformed duration counts as zero")
	assert.Equal(t, 0, second.Stops)
}

func TestParsePrice(t *testing.T) {
	assert.Equal(t, 250.0, parsePrice("250.00"))
	assert.Equal(t, 310.5, parsePrice(" 310.50 "))

	// Junk yields zero, including numeric prefixes with trailing garbage.
	assert.Equal(t, 0.0, parsePrice("12abc"))
	assert.Equal(t, 0.0, parsePrice("abc"))
	assert.Equal(t, 0.0, parsePrice(""))
}

func TestParseFlightOffersRejectsMalformedJSON(t *testing.T) {
	_, err := parseFlightOffers([]byte("not json"))
	assert.Error(t, err)
}

func TestSearchFlightsDemoMode(t *testing.T) {
	old := flightClient
	defer func() { flightClient = old }()
	flightClient = nil

	criteria := SearchCriteria{Origin: "LOS", Destination: "ABV", Date: "2024-01-01", Passengers: 1}
	flights, source := SearchFlights(criteria)

	assert.Equal(t, "estimated", source)
	assert.Len(t, flights, 3)
	assert.Equal(t, "MOCK1", flights[0].ID)
	assert.Equal(t, 1, flights[2].Stops)
}

func TestSearchFlightsFallsBackOnProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	old := flightClient
	defer func() { flightClient = old }()
	flightClient = NewAmadeusClient("id", "secret", srv.URL)

	flights, source := SearchFlights(SearchCriteria{Origin: "LOS", Destination: "ABV", Date: "2024-01-01", Passengers: 1})

	assert.Equal(t, "estimated", source)
	assert.Len(t, flights, 3)
	assert.Equal(t, "MOCK2", flights[1].ID)
}

func TestSearchFlightsLive(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.FormValue("grant_type"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "tok", "expires_in": 1799}`))
	})
	mux.HandleFunc("/v2/shopping/flight-offers", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "LOS", r.URL.Query().Get("originLocationCode"))
		assert.Equal(t, "ABV", r.URL.Query().Get("destinationLocationCode"))
		assert.Equal(t, "5", r.URL.Query().Get("max"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleOffersJSON))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	old := flightClient
	defer func() { flightClient = old }()
	flightClient = NewAmadeusClient("id", "secret", srv.URL)

	flights, source := SearchFlights(SearchCriteria{Origin: "los", Destination: "abv", Date: "2024-01-01", Passengers: 2})

	assert.Equal(t, "live", source)
	assert.Len(t, flights, 2)
	assert.Equal(t, "1", flights[0].ID)
}
