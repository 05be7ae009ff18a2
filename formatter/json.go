package formatter

import (
	"encoding/json"

	"github.com/voyagetools/paris-fare-planner/planner"
)

// Quote is the response envelope around a set of computed strategies.
type Quote struct {
	QuoteID     string             `json:"quoteId"`
	GeneratedAt string             `json:"generatedAt"`
	Strategies  []planner.Strategy `json:"strategies"`
}

type responseBuilder struct{}

func newResponseBuilder() *responseBuilder { return &responseBuilder{} }

// NewResponseBuilder creates a new response builder for formatting quotes
func NewResponseBuilder() *responseBuilder {
	return newResponseBuilder()
}

// BuildJSON serializes a quote to JSON
func (rb *responseBuilder) BuildJSON(q *Quote) []byte {
	b, _ := json.Marshal(q)
	return b
}
