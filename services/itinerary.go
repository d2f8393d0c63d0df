package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"strconv"
	"time"

	"skyplanner/config"
)

// ─── Ranking ──────────────────────────────────────────────────────────────────

// Preference selects the ranking sort key.
type Preference string

const (
	PreferencePrice Preference = "price"
	PreferenceTime  Preference = "time"
)

// ParsePreference maps a raw preference string to a Preference.
// Anything other than "time" ranks by price; an unrecognized value is a
// documented fallback, not an error.
func ParsePreference(s string) Preference {
	if s == string(PreferenceTime) {
		return PreferenceTime
	}
	return PreferencePrice
}

func totalDurationMinutes(f FlightOption) int {
	total := 0
	for _, seg := range f.Segments {
		total += seg.DurationMinutes
	}
	return total
}

// RankFlights returns a new slice ordered by the given preference:
// ascending total duration for "time", ascending price otherwise. The
// sort is stable, so ties keep their input order, and the input slice
// is not mutated.
func RankFlights(flights []FlightOption, preference Preference) []FlightOption {
	ranked := make([]FlightOption, len(flights))
	copy(ranked, flights)

	if preference == PreferenceTime {
		sort.SliceStable(ranked, func(i, j int) bool {
			return totalDurationMinutes(ranked[i]) < totalDurationMinutes(ranked[j])
		})
	} else {
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Price < ranked[j].Price
		})
	}
	return ranked
}

// ─── Composition ──────────────────────────────────────────────────────────────

// SearchDetails is the original search context echoed into summaries.
type SearchDetails struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
}

type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

var composerClient *GeminiClient

// InitComposer wires the generative-text backend from configuration.
// Without a key the composer produces deterministic templated
// summaries.
func InitComposer(cfg config.Config) {
	if cfg.GeminiAPIKey == "" {
		composerClient = nil
		log.Println("⚠️  GOOGLE_GENAI_API_KEY not set — itinerary summaries will use template text")
		return
	}

	composerClient = NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL)
	log.Println("✅ Gemini composer initialized with model:", cfg.GeminiModel)
}

func NewGeminiClient(apiKey, model, baseURL string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// ComposerConfigured reports whether a generative backend is wired.
func ComposerConfigured() bool {
	return composerClient != nil
}

// ComposeItinerary produces a traveller-facing summary of the ranked
// flights. With a generative backend configured it asks for a concise
// Lagos-time, Naira-denominated summary; a request failure is logged
// and yields an empty string. Without a backend it builds the
// deterministic templated summary. Either way it never fails.
func ComposeItinerary(flights []FlightOption, preference Preference, details SearchDetails) string {
	if composerClient == nil {
		return templateSummary(flights, details)
	}

	prompt := buildPrompt(flights, preference, details)
	summary, err := composerClient.Summarize(prompt)
	if err != nil {
		log.Printf("⚠️  Gemini summary failed: %v", err)
		return ""
	}
	return summary
}

// routeOf returns the end-to-end route of an option, falling back to
// the search details for a degenerate option with no segments so the
// summary paths can never index out of range.
func routeOf(f FlightOption, details SearchDetails) (string, string) {
	if len(f.Segments) == 0 {
		return details.Origin, details.Destination
	}
	return f.Segments[0].Origin, f.Segments[len(f.Segments)-1].Destination
}

// templateSummary is the deterministic fallback: one numbered line per
// flight in rank order, joined with spaces after the prefix sentence.
// Valid even for an empty flight list.
func templateSummary(flights []FlightOption, details SearchDetails) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Here are your options for %s to %s on %s: ",
		details.Origin, details.Destination, details.Date)

	for i, f := range flights {
		if i > 0 {
			buf.WriteByte(' ')
		}
		hours := float64(totalDurationMinutes(f)) / 60
		plural := "s"
		if f.Stops == 1 {
			plural = ""
		}
		origin, destination := routeOf(f, details)
		fmt.Fprintf(&buf, "%d. %s – %s→%s at NGN %.0f (~%.1fh, %d stop%s).",
			i+1, f.Airline, origin, destination,
			f.Price, hours, f.Stops, plural)
	}
	return buf.String()
}

func buildPrompt(flights []FlightOption, preference Preference, details SearchDetails) string {
	var content bytes.Buffer
	for i, f := range flights {
		if i > 0 {
			content.WriteByte('\n')
		}
		hours := float64(totalDurationMinutes(f)) / 60
		carbon := "?"
		if f.CarbonKg != 0 {
			carbon = strconv.FormatFloat(f.CarbonKg, 'f', -1, 64)
		}
		origin, destination := routeOf(f, details)
		fmt.Fprintf(&content, "%s flight %s from %s to %s on %s, price %s %s, duration %.1f hours, %d stop(s), CO2 %skg.",
			f.Airline, f.ID, origin, destination,
			details.Date,
			strconv.FormatFloat(f.Price, 'f', -1, 64), f.Currency,
			hours, f.Stops, carbon)
	}

	return fmt.Sprintf("You are an AI travel agent. Summarize and rank these flight options based on %s. "+
		"Provide a concise summary for the traveller in Lagos time and Nigerian Naira (NGN). Options:\n%s",
		preference, content.String())
}

// ─── Gemini API ───────────────────────────────────────────────────────────────

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Summarize sends the prompt to the generateContent endpoint and
// returns the first candidate's text. An unexpected response shape
// yields a generic phrase rather than an error.
func (c *GeminiClient) Summarize(prompt string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var result geminiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse Gemini response: %v", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 ||
		result.Candidates[0].Content.Parts[0].Text == "" {
		return "Here are some flight options.", nil
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}
