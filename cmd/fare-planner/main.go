package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	lib "github.com/voyagetools/paris-fare-planner"
	"github.com/voyagetools/paris-fare-planner/config"
	"github.com/voyagetools/paris-fare-planner/formatter"
	"github.com/voyagetools/paris-fare-planner/planner"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	format := flag.String("format", "text", "json|text")
	arrival := flag.String("arrival", "", "arrival date YYYY-MM-DD")
	departure := flag.String("departure", "", "departure date YYYY-MM-DD")
	bags := flag.String("bags", "backpack", "backpack|backpack+carrier|multi-carrier")
	trips := flag.Int("trips", 2, "expected trips per day (0-10)")
	card := flag.String("card", "mobile", "mobile|physical")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	lib.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		panic(err)
	}

	switch *mode {
	case "serve":
		lib.InitCache()
		lib.StartServer()
		lib.HandleGracefulShutdown()
	case "oneshot":
		params := map[string]string{
			"arrival":   *arrival,
			"departure": *departure,
			"bags":      *bags,
			"trips":     fmt.Sprintf("%d", *trips),
			"card":      *card,
		}
		in, err := lib.ParseTravelQuery(params)
		if err != nil {
			panic(err)
		}
		quote := &formatter.Quote{
			QuoteID:     uuid.NewString(),
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			Strategies:  planner.ComputeStrategies(in, config.Table()),
		}
		rb := formatter.NewResponseBuilder()
		if *format == "json" {
			fmt.Println(string(rb.BuildJSON(quote)))
		} else {
			fmt.Println(string(rb.BuildText(quote)))
		}
	default:
		panic("unknown mode")
	}
}
