// Package calendar provides date arithmetic for the fare planner.
//
// All computations work on calendar days: times are truncated to midnight
// UTC before comparison, so two timestamps on the same civil date always
// count as the same day. Weeks follow the Île-de-France pass convention
// and start on Monday.
package calendar
