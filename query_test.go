package fareplanner

import (
	"strings"
	"testing"

	"github.com/voyagetools/paris-fare-planner/planner"
)

func TestParseTravelQuery_Complete(t *testing.T) {
	in, err := parseAndValidateTravelQuery(map[string]string{
		"arrival":   "2026-08-31",
		"departure": "2026-09-06",
		"bags":      "backpack",
		"trips":     "4",
		"card":      "mobile",
	})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if in.DailyTrips != 4 || in.Card != planner.CardMobile || in.Bags != planner.BagBackpack {
		t.Errorf("unexpected input: %+v", in)
	}
	if in.Arrival.Month() != 8 || in.Departure.Day() != 6 {
		t.Errorf("dates not parsed: %+v", in)
	}
}

func TestParseTravelQuery_Defaults(t *testing.T) {
	in, err := parseAndValidateTravelQuery(map[string]string{
		"arrival":   "2026-08-31",
		"departure": "2026-09-06",
		"trips":     "2",
	})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if in.Bags != planner.BagBackpack || in.Card != planner.CardMobile {
		t.Errorf("missing bags/card should default to backpack+mobile, got %+v", in)
	}
}

// A literal '+' in a query string reaches the handler as a space, so all
// the observed spellings of the carrier options must normalize.
func TestParseTravelQuery_BagSpellings(t *testing.T) {
	cases := map[string]planner.BagOption{
		"backpack":         planner.BagBackpack,
		"backpack+carrier": planner.BagBackpackCarrier,
		"backpack carrier": planner.BagBackpackCarrier,
		"backpack-carrier": planner.BagBackpackCarrier,
		"Multi-Carrier":    planner.BagMultiCarrier,
		"multicarrier":     planner.BagMultiCarrier,
	}
	for raw, want := range cases {
		in, err := parseAndValidateTravelQuery(map[string]string{
			"arrival":   "2026-08-31",
			"departure": "2026-09-06",
			"trips":     "2",
			"bags":      raw,
		})
		if err != nil {
			t.Errorf("%q: %v", raw, err)
			continue
		}
		if in.Bags != want {
			t.Errorf("%q: got %q, want %q", raw, in.Bags, want)
		}
	}
}

func TestParseTravelQuery_Errors(t *testing.T) {
	cases := []struct {
		name   string
		params map[string]string
		want   string
	}{
		{"missing arrival", map[string]string{"departure": "2026-09-06", "trips": "2"}, "arrival date"},
		{"bad date", map[string]string{"arrival": "31/08/2026", "departure": "2026-09-06", "trips": "2"}, "YYYY-MM-DD"},
		{"missing trips", map[string]string{"arrival": "2026-08-31", "departure": "2026-09-06"}, "trips"},
		{"trips too high", map[string]string{"arrival": "2026-08-31", "departure": "2026-09-06", "trips": "11"}, "between 0 and 10"},
		{"bad bags", map[string]string{"arrival": "2026-08-31", "departure": "2026-09-06", "trips": "2", "bags": "suitcase"}, "bags"},
		{"bad card", map[string]string{"arrival": "2026-08-31", "departure": "2026-09-06", "trips": "2", "card": "paper"}, "card"},
		{"reversed dates", map[string]string{"arrival": "2026-09-06", "departure": "2026-08-31", "trips": "2"}, "precedes"},
	}
	for _, tc := range cases {
		_, err := parseAndValidateTravelQuery(tc.params)
		if err == nil {
			t.Errorf("%s: expected an error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q should mention %q", tc.name, err, tc.want)
		}
	}
}

func TestParseTravelQuery_KeysAreCaseInsensitive(t *testing.T) {
	in, err := parseAndValidateTravelQuery(map[string]string{
		"Arrival":   "2026-08-31",
		"Departure": "2026-09-06",
		"Trips":     "3",
	})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if in.DailyTrips != 3 {
		t.Errorf("trips not picked up from mixed-case key: %+v", in)
	}
}
