package planner

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

// BagOption is the traveler's luggage profile.
type BagOption string

const (
	BagBackpack        BagOption = "backpack"
	BagBackpackCarrier BagOption = "backpack+carrier"
	BagMultiCarrier    BagOption = "multi-carrier"
)

// CardType selects the transit card medium. Physical cards carry issuance
// fees; cards on a phone are free.
type CardType string

const (
	CardMobile   CardType = "mobile"
	CardPhysical CardType = "physical"
)

// TravelInput describes one stay. Arrival and Departure are calendar
// dates; the time-of-day portion is ignored.
type TravelInput struct {
	Arrival    time.Time `json:"arrivalDate"`
	Departure  time.Time `json:"departureDate"`
	Bags       BagOption `json:"bagOption" validate:"oneof=backpack backpack+carrier multi-carrier"`
	DailyTrips int       `json:"dailyTrips" validate:"gte=0,lte=10"`
	Card       CardType  `json:"cardType" validate:"oneof=mobile physical"`
}

// Validate checks field ranges and enum membership. A departure before the
// arrival is not an error here: ComputeStrategies defines that case as an
// empty result.
func (in TravelInput) Validate() error {
	if in.Arrival.IsZero() || in.Departure.IsZero() {
		return errors.New("arrival and departure dates are required")
	}
	return validator.New().Struct(in)
}

// DailyDetail is one day of a strategy's breakdown.
type DailyDetail struct {
	Date     time.Time `json:"date"`
	PassType string    `json:"passType"`
	Cost     float64   `json:"cost"`
}

// Strategy is one costed ticketing alternative for the whole stay.
type Strategy struct {
	Name           string        `json:"name"`
	TotalCost      float64       `json:"totalCost"`
	Description    string        `json:"description"`
	DailyBreakdown []DailyDetail `json:"dailyBreakdown"`
	CardName       string        `json:"cardName,omitempty"`
	Recommended    bool          `json:"isRecommended"`
}

// Pass type labels used in daily breakdowns.
const (
	LabelSingleTickets   = "t+ tickets"
	LabelDayPass         = "Mobilis day pass"
	LabelWeekPass        = "Navigo week pass"
	LabelWeekPassCovered = "Navigo week pass (covered)"
	LabelAirportRER      = "Airport RER B"
	LabelAirportTaxi     = "Airport taxi"
)

// Card names surfaced on strategies.
const (
	cardNameMobile     = "Navigo on smartphone"
	cardNameEasy       = "Navigo Easy"
	cardNameDecouverte = "Navigo Découverte"
)
