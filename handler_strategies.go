package fareplanner

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/voyagetools/paris-fare-planner/config"
	"github.com/voyagetools/paris-fare-planner/formatter"
	"github.com/voyagetools/paris-fare-planner/planner"
)

func handleStrategiesJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	serveStrategies(w, r, "json")
}

func handleStrategiesText(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	serveStrategies(w, r, "text")
}

func serveStrategies(w http.ResponseWriter, r *http.Request, format string) {
	params := map[string]string{}
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	in, err := parseAndValidateTravelQuery(params)
	if err != nil {
		w.WriteHeader(400)
		_, _ = w.Write(buildErrorPayload(format, err.Error()))
		return
	}

	key := memoKey("strategies", format,
		in.Arrival.Format("2006-01-02"), in.Departure.Format("2006-01-02"),
		string(in.Bags), strconv.Itoa(in.DailyTrips), string(in.Card))
	if buf, ok := quoteCache.Get(r.Context(), key); ok {
		_, _ = w.Write(buf)
		return
	}

	strategies := planner.ComputeStrategies(in, config.Table())
	quote := &formatter.Quote{
		QuoteID:     uuid.NewString(),
		GeneratedAt: iso8601Now(),
		Strategies:  strategies,
	}
	rb := formatter.NewResponseBuilder()
	var buf []byte
	if format == "text" {
		buf = rb.BuildText(quote)
	} else {
		buf = rb.BuildJSON(quote)
	}
	_ = quoteCache.Set(r.Context(), key, buf)
	_, _ = w.Write(buf)
}
