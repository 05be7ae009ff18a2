// Package planner is the strategy calculation engine of the fare planner.
//
// Given a validated TravelInput and a fare table it enumerates three
// ticketing strategies for the stay:
//
//   - Pay per ride: t+ tickets for every in-city day.
//   - Day passes: a Mobilis pass for every in-city day.
//   - Week pass mix: Navigo week passes for the calendar weeks where a
//     pass beats per-day pricing, per-day pricing elsewhere.
//
// Every strategy carries a chronological per-day breakdown whose costs,
// together with the attributed card issuance fees, sum to the strategy
// total. The returned list is sorted ascending by total cost and the first
// entry is flagged as the recommendation.
//
// # Purity
//
// ComputeStrategies is a pure function: it reads only its arguments,
// allocates its results fresh on every call and keeps no state between
// calls, so it is safe to invoke from any number of goroutines without
// locking. Callers are expected to recompute on every input change rather
// than patch previous results; a computation is bounded by the trip length
// and always terminates.
package planner
