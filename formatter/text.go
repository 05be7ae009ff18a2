package formatter

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/voyagetools/paris-fare-planner/calendar"
)

// BuildText renders a quote as an aligned table for terminal output.
// Strategies appear in the order given, the recommended one first and
// marked as such.
func (rb *responseBuilder) BuildText(q *Quote) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "Quote %s (%s)\n", q.QuoteID, q.GeneratedAt)
	for _, s := range q.Strategies {
		b.WriteString("\n")
		marker := ""
		if s.Recommended {
			marker = "  [recommended]"
		}
		fmt.Fprintf(&b, "%s — %.2f EUR%s\n", s.Name, s.TotalCost, marker)
		if s.CardName != "" {
			fmt.Fprintf(&b, "Card: %s\n", s.CardName)
		}
		fmt.Fprintf(&b, "%s\n", s.Description)

		w := tabwriter.NewWriter(&b, 2, 4, 2, ' ', 0)
		for _, d := range s.DailyBreakdown {
			fmt.Fprintf(w, "  %s\t%s\t%.2f\n", calendar.MonthDay(d.Date), d.PassType, d.Cost)
		}
		_ = w.Flush()
	}
	return []byte(b.String())
}
