package planner

import (
	"sort"
	"time"

	"github.com/voyagetools/paris-fare-planner/calendar"
	"github.com/voyagetools/paris-fare-planner/fares"
)

// ComputeStrategies enumerates the three ticketing strategies for the
// stay, ranked ascending by total cost with the cheapest flagged as
// recommended. A non-positive trip length yields an empty slice.
func ComputeStrategies(in TravelInput, table fares.Table) []Strategy {
	days := calendar.DaysBetween(in.Arrival, in.Departure)
	if days <= 0 {
		return []Strategy{}
	}

	transfer, transferLabel := airportLeg(in.Bags, table)

	strategies := []Strategy{
		perRideStrategy(in, table, days, transfer, transferLabel),
		dayPassStrategy(in, table, days, transfer, transferLabel),
		hybridStrategy(in, table, days, transfer, transferLabel),
	}
	rank(strategies)
	return strategies
}

// airportLeg picks the transfer fare for one airport traversal. Two or
// more large bags rule out the RER.
func airportLeg(bags BagOption, table fares.Table) (float64, string) {
	if bags == BagMultiCarrier {
		return table.AirportTaxi, LabelAirportTaxi
	}
	return table.AirportRER, LabelAirportRER
}

// perRideStrategy prices every in-city day with t+ tickets.
func perRideStrategy(in TravelInput, table fares.Table, days int, transfer float64, transferLabel string) Strategy {
	perDay := float64(in.DailyTrips) * table.SingleRide
	return flatStrategy(in, table, days, transfer, transferLabel, perDay, LabelSingleTickets,
		"Pay per ride", "Single t+ tickets for every trip, airport transfers on arrival and departure days.")
}

// dayPassStrategy prices every in-city day with a Mobilis pass.
func dayPassStrategy(in TravelInput, table fares.Table, days int, transfer float64, transferLabel string) Strategy {
	return flatStrategy(in, table, days, transfer, transferLabel, table.DayPass, LabelDayPass,
		"Day passes", "A Mobilis day pass for every in-city day, airport transfers on arrival and departure days.")
}

// flatStrategy builds a strategy with one uniform in-city price. Airport
// days are charged the transfer only; a one-day trip is both arrival and
// departure and is charged a single transfer.
func flatStrategy(in TravelInput, table fares.Table, days int, transfer float64, transferLabel string, perDay float64, perDayLabel, name, description string) Strategy {
	breakdown := make([]DailyDetail, 0, days)
	for i := 0; i < days; i++ {
		date := calendar.AddDays(in.Arrival, i)
		if i == 0 || i == days-1 {
			breakdown = append(breakdown, DailyDetail{Date: date, PassType: transferLabel, Cost: transfer})
			continue
		}
		breakdown = append(breakdown, DailyDetail{Date: date, PassType: perDayLabel, Cost: perDay})
	}

	fee := 0.0
	cardName := cardNameMobile
	if in.Card == CardPhysical {
		fee = table.EasyCardFee
		cardName = cardNameEasy
	}
	return Strategy{
		Name:           name,
		TotalCost:      fares.Round2(breakdownSum(breakdown) + fee),
		Description:    description,
		DailyBreakdown: breakdown,
		CardName:       cardName,
	}
}

// hybridStrategy partitions the stay into calendar weeks and buys a
// Navigo week pass for every week where the pass beats per-day pricing.
//
// The arrival week is only pass-eligible when the arrival falls early
// enough in the week: Monday through Thursday on a phone, Monday through
// Wednesday on a physical card, because the physical card first has to be
// bought after the airport leg. Later weeks all open on a Monday and are
// always eligible.
func hybridStrategy(in TravelInput, table fares.Table, days int, transfer float64, transferLabel string) Strategy {
	perDay := float64(in.DailyTrips) * table.SingleRide
	perDayLabel := LabelSingleTickets
	if table.DayPass < perDay {
		perDay = table.DayPass
		perDayLabel = LabelDayPass
	}

	isAirportDay := func(i int) bool { return i == 0 || i == days-1 }

	breakdown := make([]DailyDetail, 0, days)
	passUsed := false
	ticketDays := false
	for wi, week := range calendar.WeekSpans(in.Arrival, days) {
		// Per-day alternative for this week's trip days. Airport days
		// contribute nothing: their transfer is paid in every strategy.
		alt := 0.0
		for d := week.Start; d < week.Start+week.Days; d++ {
			if !isAirportDay(d) {
				alt += perDay
			}
		}

		eligible := wi > 0 || arrivalWeekEligible(in.Card, in.Arrival.Weekday())
		passCost := table.WeekPass
		if in.Card == CardPhysical && !passUsed {
			passCost += table.DecouverteCardFee
		}

		if eligible && passCost < alt {
			passUsed = true
			for d := week.Start; d < week.Start+week.Days; d++ {
				detail := DailyDetail{Date: calendar.AddDays(in.Arrival, d), PassType: LabelWeekPassCovered}
				if d == week.Start {
					detail.PassType = LabelWeekPass
					detail.Cost = table.WeekPass
				}
				if isAirportDay(d) {
					detail.PassType += " + " + transferLabel
					detail.Cost += transfer
				}
				breakdown = append(breakdown, detail)
			}
			continue
		}

		for d := week.Start; d < week.Start+week.Days; d++ {
			date := calendar.AddDays(in.Arrival, d)
			if isAirportDay(d) {
				breakdown = append(breakdown, DailyDetail{Date: date, PassType: transferLabel, Cost: transfer})
				continue
			}
			ticketDays = true
			breakdown = append(breakdown, DailyDetail{Date: date, PassType: perDayLabel, Cost: perDay})
		}
	}

	// Fees are additive: ticket days need the Easy card, pass weeks need
	// the Découverte card, and a stay can need both.
	fee := 0.0
	cardName := cardNameMobile
	if in.Card == CardPhysical {
		cardName = ""
		if ticketDays {
			fee += table.EasyCardFee
			cardName = cardNameEasy
		}
		if passUsed {
			fee += table.DecouverteCardFee
			if cardName != "" {
				cardName += " + "
			}
			cardName += cardNameDecouverte
		}
	}

	return Strategy{
		Name:           "Week pass mix",
		TotalCost:      fares.Round2(breakdownSum(breakdown) + fee),
		Description:    "Navigo week passes for the weeks where they pay off, cheapest per-day pricing elsewhere.",
		DailyBreakdown: breakdown,
		CardName:       cardName,
	}
}

// arrivalWeekEligible reports whether a week pass may still be bought for
// the arrival week.
func arrivalWeekEligible(card CardType, day time.Weekday) bool {
	switch day {
	case time.Monday, time.Tuesday, time.Wednesday:
		return true
	case time.Thursday:
		return card == CardMobile
	default:
		return false
	}
}

func breakdownSum(breakdown []DailyDetail) float64 {
	sum := 0.0
	for _, d := range breakdown {
		sum += d.Cost
	}
	return sum
}

// rank sorts strategies ascending by total cost. The slice arrives in the
// fixed priority order (per ride, day passes, hybrid) and the sort is
// stable, so exact ties keep that order. The first entry after sorting is
// the recommendation.
func rank(strategies []Strategy) {
	sort.SliceStable(strategies, func(i, j int) bool {
		return strategies[i].TotalCost < strategies[j].TotalCost
	})
	for i := range strategies {
		strategies[i].Recommended = i == 0
	}
}
