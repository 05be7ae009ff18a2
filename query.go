package fareplanner

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/voyagetools/paris-fare-planner/calendar"
	"github.com/voyagetools/paris-fare-planner/planner"
)

type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

func parseDate(s, name string) (time.Time, error) {
	if s == "" {
		return time.Time{}, &QueryError{Msg: "You must provide " + name + "."}
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, &QueryError{Msg: "Invalid " + name + ": " + s + " (expected YYYY-MM-DD)."}
	}
	return t, nil
}

func parseTrips(s string) (int, error) {
	if s == "" {
		return 0, &QueryError{Msg: "You must provide trips."}
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 || v > 10 {
		return 0, &QueryError{Msg: "trips must be an integer between 0 and 10."}
	}
	return v, nil
}

// normalizeBags maps the bags parameter onto a BagOption. A '+' in a query
// string decodes to a space, so "backpack carrier" and "backpack-carrier"
// are accepted spellings of "backpack+carrier".
func normalizeBags(s string) (planner.BagOption, error) {
	s = strings.TrimSpace(lower(s))
	s = strings.NewReplacer(" ", "+", "-carrier", "+carrier").Replace(s)
	switch s {
	case "", "backpack":
		return planner.BagBackpack, nil
	case "backpack+carrier":
		return planner.BagBackpackCarrier, nil
	case "multi+carrier", "multi-carrier", "multicarrier":
		return planner.BagMultiCarrier, nil
	}
	return "", &QueryError{Msg: "Unsupported bags option: " + s}
}

func normalizeCard(s string) (planner.CardType, error) {
	switch strings.TrimSpace(lower(s)) {
	case "", "mobile":
		return planner.CardMobile, nil
	case "physical":
		return planner.CardPhysical, nil
	}
	return "", &QueryError{Msg: "Unsupported card type: " + s}
}

// parseAndValidateTravelQuery turns query parameters into a TravelInput.
// A departure before the arrival is rejected here; the planner itself
// treats that case as an empty result.
func parseAndValidateTravelQuery(params map[string]string) (planner.TravelInput, error) {
	m := map[string]string{}
	for k, v := range params {
		m[lower(k)] = strings.TrimSpace(v)
	}

	arrival, err := parseDate(m["arrival"], "an arrival date")
	if err != nil {
		return planner.TravelInput{}, err
	}
	departure, err := parseDate(m["departure"], "a departure date")
	if err != nil {
		return planner.TravelInput{}, err
	}
	trips, err := parseTrips(m["trips"])
	if err != nil {
		return planner.TravelInput{}, err
	}
	bags, err := normalizeBags(m["bags"])
	if err != nil {
		return planner.TravelInput{}, err
	}
	card, err := normalizeCard(m["card"])
	if err != nil {
		return planner.TravelInput{}, err
	}

	in := planner.TravelInput{
		Arrival:    arrival,
		Departure:  departure,
		Bags:       bags,
		DailyTrips: trips,
		Card:       card,
	}
	if calendar.DaysBetween(in.Arrival, in.Departure) <= 0 {
		return planner.TravelInput{}, &QueryError{Msg: "Departure date precedes arrival date."}
	}
	if err := in.Validate(); err != nil {
		return planner.TravelInput{}, &QueryError{Msg: err.Error()}
	}
	return in, nil
}

func lower(s string) string {
	bs := []rune(s)
	for i, r := range bs {
		if r >= 'A' && r <= 'Z' {
			bs[i] = r + 32
		}
	}
	return string(bs)
}

func buildErrorPayload(format, msg string) []byte {
	if format == "text" {
		return []byte("error: " + msg + "\n")
	}
	type quoteErr struct {
		Error struct {
			Description string `json:"description"`
		} `json:"error"`
	}
	var e quoteErr
	e.Error.Description = msg
	b, _ := json.Marshal(e)
	return b
}

// ParseTravelQuery is the exported entry point used by the CLI; it applies
// the same parsing and validation as the HTTP handlers.
func ParseTravelQuery(params map[string]string) (planner.TravelInput, error) {
	return parseAndValidateTravelQuery(params)
}
