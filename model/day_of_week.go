package model

import (
	"fmt"
	"strings"
)

// Days is the closed set of day-of-week literals accepted on stream events,
// in schedule order. The grid starts on Monday
var Days = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// DayRank maps each day literal to its position in the weekly grid,
// Monday=1 through Sunday=7. Events are sorted by this rank, never by the
// natural string order of the labels
var DayRank = func() map[string]int {
	m := make(map[string]int, len(Days))
	for i, d := range Days {
		m[d] = i + 1
	}
	return m
}()

// ValidDay reports whether d is one of the seven accepted literals
func ValidDay(d string) bool {
	_, ok := DayRank[d]
	return ok
}

// DayOrderExpr builds the ORDER BY fragment that sorts events by day rank
// first and start time second. The CASE arms are generated from Days so the
// rank table has a single source of truth
func DayOrderExpr() string {
	var b strings.Builder

	b.WriteString("CASE day_of_week")
	for _, d := range Days {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", d, DayRank[d])
	}
	b.WriteString(" END, start_time")

	return b.String()
}
