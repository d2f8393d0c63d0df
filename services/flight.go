package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"skyplanner/config"
)

// ─── Types ────────────────────────────────────────────────────────────────────

// Segment is one non-stop flight leg. Immutable once built.
type Segment struct {
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	Departure       string `json:"departure"`
	Arrival         string `json:"arrival"`
	Carrier         string `json:"carrier"`
	FlightNumber    string `json:"flight_number"`
	DurationMinutes int    `json:"duration_minutes"`
}

// FlightOption is one bookable itinerary of one or more segments.
// Stops is always derived from the segment count, never set directly.
type FlightOption struct {
	ID       string    `json:"id"`
	Airline  string    `json:"airline"`
	Price    float64   `json:"price"`
	Currency string    `json:"currency"`
	Segments []Segment `json:"segments"`
	Stops    int       `json:"stops"`
	CarbonKg float64   `json:"carbon_kg,omitempty"`
	DeepLink string    `json:"deep_link,omitempty"`
}

// NewFlightOption builds an option with the stop count derived from the
// segment list.
func NewFlightOption(id, airline string, price float64, currency string, segments []Segment, carbonKg float64, deepLink string) FlightOption {
	return FlightOption{
		ID:       id,
		Airline:  airline,
		Price:    price,
		Currency: currency,
		Segments: segments,
		Stops:    len(segments) - 1,
		CarbonKg: carbonKg,
		DeepLink: deepLink,
	}
}

// SearchCriteria is the caller-supplied search input.
type SearchCriteria struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Passengers  int    `json:"passengers"`
}

// ─── Amadeus Client ───────────────────────────────────────────────────────────

type AmadeusClient struct {
	clientID     string
	clientSecret string
	baseURL      string
	accessToken  string
	tokenExpiry  time.Time
	mu           sync.Mutex
	httpClient   *http.Client
}

var flightClient *AmadeusClient

// InitFlights wires the flight provider from configuration. Missing
// credentials leave the client nil and every search serves mock data.
func InitFlights(cfg config.Config) {
	if cfg.AmadeusClientID == "" || cfg.AmadeusClientSecret == "" {
		flightClient = nil
		log.Println("⚠️  AMADEUS_CLIENT_ID or AMADEUS_CLIENT_SECRET not set — flight search will use mock data")
		return
	}

	flightClient = NewAmadeusClient(cfg.AmadeusClientID, cfg.AmadeusClientSecret, cfg.AmadeusBaseURL)

	// Pre-warm the token
	if err := flightClient.refreshToken(); err != nil {
		log.Printf("⚠️  Amadeus token pre-warm failed: %v", err)
	} else {
		log.Println("✅ Amadeus API authenticated")
	}
}

func NewAmadeusClient(clientID, clientSecret, baseURL string) *AmadeusClient {
	return &AmadeusClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ─── OAuth2 Token ─────────────────────────────────────────────────────────────

func (c *AmadeusClient) refreshToken() error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequest("POST",
		c.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token request failed (%d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse token response: %v", err)
	}

	c.mu.Lock()
	c.accessToken = result.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(result.ExpiresIn-30) * time.Second)
	c.mu.Unlock()

	return nil
}

func (c *AmadeusClient) getToken() (string, error) {
	c.mu.Lock()
	expired := time.Now().After(c.tokenExpiry)
	token := c.accessToken
	c.mu.Unlock()

	if expired || token == "" {
		if err := c.refreshToken(); err != nil {
			return "", err
		}
		c.mu.Lock()
		token = c.accessToken
		c.mu.Unlock()
	}
	return token, nil
}

func (c *AmadeusClient) doRequest(method, path string) ([]byte, error) {
	token, err := c.getToken()
	if err != nil {
		return nil, fmt.Errorf("auth failed: %w", err)
	}

	req, err := http.NewRequest(method, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("amadeus error (%d): %s", resp.StatusCode, string(respBody))
	}
	return respBody, nil
}

// ProviderConfigured reports whether a live flight provider is wired.
func ProviderConfigured() bool {
	return flightClient != nil
}

// ─── Flight Search ────────────────────────────────────────────────────────────

// SearchFlights normalizes search criteria into flight options. Without
// configured provider credentials it serves mock data immediately; any
// provider-level failure falls back to mock data as well, so the caller
// always gets a complete list. The second return value reports the data
// source: "live" or "estimated".
func SearchFlights(criteria SearchCriteria) ([]FlightOption, string) {
	if flightClient == nil {
		return GenerateMockFlights(criteria), "estimated"
	}

	flights, err := flightClient.SearchFlights(criteria)
	if err != nil {
		log.Printf("⚠️  Amadeus flight search failed: %v — using mock data", err)
		return GenerateMockFlights(criteria), "estimated"
	}
	return flights, "live"
}

// SearchFlights queries the Amadeus Flight Offers Search API and
// converts the raw offers into the canonical model.
func (c *AmadeusClient) SearchFlights(criteria SearchCriteria) ([]FlightOption, error) {
	path := fmt.Sprintf(
		"/v2/shopping/flight-offers?originLocationCode=%s&destinationLocationCode=%s"+
			"&departureDate=%s&adults=%d&max=5",
		url.QueryEscape(strings.ToUpper(criteria.Origin)),
		url.QueryEscape(strings.ToUpper(criteria.Destination)),
		url.QueryEscape(criteria.Date),
		criteria.Passengers,
	)

	body, err := c.doRequest("GET", path)
	if err != nil {
		return nil, fmt.Errorf("flight search failed: %w", err)
	}

	return parseFlightOffers(body)
}

// Amadeus flight offers response structures
type amadeusFlightOffersResponse struct {
	Data []amadeusFlightOffer `json:"data"`
}

type amadeusFlightOffer struct {
	ID    string `json:"id"`
	Price struct {
		Total    string `json:"total"`
		Currency string `json:"currency"`
	} `json:"price"`
	Itineraries []struct {
		Segments []struct {
			Departure struct {
				IataCode string `json:"iataCode"`
				At       string `json:"at"`
			} `json:"departure"`
			Arrival struct {
				IataCode string `json:"iataCode"`
				At       string `json:"at"`
			} `json:"arrival"`
			CarrierCode string `json:"carrierCode"`
			Number      string `json:"number"`
			Duration    string `json:"duration"`
		} `json:"segments"`
	} `json:"itineraries"`
	Links struct {
		FlightOffers string `json:"flightOffers"`
	} `json:"links"`
}

func parseFlightOffers(data []byte) ([]FlightOption, error) {
	var resp amadeusFlightOffersResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse flight offers: %w", err)
	}

	options := make([]FlightOption, 0, len(resp.Data))

	for _, offer := range resp.Data {
		// Flatten every itinerary's segments into one ordered leg list.
		var segments []Segment
		for _, itin := range offer.Itineraries {
			for _, seg := range itin.Segments {
				segments = append(segments, Segment{
					Origin:          seg.Departure.IataCode,
					Destination:     seg.Arrival.IataCode,
					Departure:       seg.Departure.At,
					Arrival:         seg.Arrival.At,
					Carrier:         seg.CarrierCode,
					FlightNumber:    seg.Number,
					DurationMinutes: ParseDuration(seg.Duration),
				})
			}
		}

		price := parsePrice(offer.Price.Total)
		currency := offer.Price.Currency
		if currency == "" {
			currency = "USD"
		}

		airline := "Unknown"
		if len(segments) > 0 {
			airline = segments[0].Carrier
		}

		carbonKg := EstimateEF(EstimateDistance(segments))

		options = append(options, NewFlightOption(
			offer.ID, airline, price, currency, segments, carbonKg, offer.Links.FlightOffers,
		))
	}

	return options, nil
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

var durationPattern = regexp.MustCompile(`PT(\d+)H(\d+)M?`)

// ParseDuration converts an ISO 8601 duration token of the form
// PT<H>H<M>M into total minutes. Unparseable input yields 0, never an
// error.
func ParseDuration(duration string) int {
	match := durationPattern.FindStringSubmatch(duration)
	if match == nil {
		return 0
	}
	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	return hours*60 + minutes
}

func parsePrice(s string) float64 {
	price, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return price
}
