package services

// Fixture constants for demo mode. The price deltas and the ACC hub are
// fixed values kept for compatibility with existing clients.
const (
	mockBasePrice = 80000
	mockHub       = "ACC"
)

// GenerateMockFlights produces exactly three deterministic flight
// options for demo mode: two single-leg flights and one two-leg flight
// through the ACC hub. Pure function of the criteria, so the same
// search always yields the same options.
func GenerateMockFlights(criteria SearchCriteria) []FlightOption {
	return []FlightOption{
		NewFlightOption(
			"MOCK1", "Demo Air", mockBasePrice, "NGN",
			[]Segment{
				{
					Origin:          criteria.Origin,
					Destination:     criteria.Destination,
					Departure:       criteria.Date + "T09:00:00",
					Arrival:         criteria.Date + "T11:00:00",
					Carrier:         "DM",
					FlightNumber:    "001",
					DurationMinutes: 120,
				},
			},
			EstimateEF(800*2),
			"https://example.com/book/MOCK1",
		),
		NewFlightOption(
			"MOCK2", "Sky Nigeria", mockBasePrice+10000, "NGN",
			[]Segment{
				{
					Origin:          criteria.Origin,
					Destination:     criteria.Destination,
					Departure:       criteria.Date + "T14:00:00",
					Arrival:         criteria.Date + "T18:00:00",
					Carrier:         "SN",
					FlightNumber:    "432",
					DurationMinutes: 240,
				},
			},
			EstimateEF(800*4),
			"https://example.com/book/MOCK2",
		),
		NewFlightOption(
			"MOCK3", "WestAir", mockBasePrice-5000, "NGN",
			[]Segment{
				{
					Origin:          criteria.Origin,
					Destination:     mockHub,
					Departure:       criteria.Date + "T06:00:00",
					Arrival:         criteria.Date + "T08:00:00",
					Carrier:         "WA",
					FlightNumber:    "323",
					DurationMinutes: 120,
				},
				{
					Origin:          mockHub,
					Destination:     criteria.Destination,
					Departure:       criteria.Date + "T09:00:00",
					Arrival:         criteria.Date + "T11:30:00",
					Carrier:         "WA",
					FlightNumber:    "324",
					DurationMinutes: 150,
				},
			},
			EstimateEF(800*4.5),
			"https://example.com/book/MOCK3",
		),
	}
}
