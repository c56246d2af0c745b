package domain

import "time"

// FilterToken named period used by the console filters
type FilterToken string

const (
	TokenToday     FilterToken = "Today"
	TokenYesterday FilterToken = "Yesterday"
	TokenTomorrow  FilterToken = "Tomorrow"
	TokenThisWeek  FilterToken = "This week"
	TokenLastWeek  FilterToken = "Last week"
	TokenThisMonth FilterToken = "This month"
	TokenThisYear  FilterToken = "This year"
	TokenCustom    FilterToken = "Custom"
)

// FilterTokens every supported token in display order
var FilterTokens = []FilterToken{
	TokenToday,
	TokenYesterday,
	TokenTomorrow,
	TokenThisWeek,
	TokenLastWeek,
	TokenThisMonth,
	TokenThisYear,
	TokenCustom,
}

// DateRange inclusive interval of instants
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains returns true if Start <= t <= End
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// IsZeroWidth returns true for a degenerate range where Start equals End
func (r DateRange) IsZeroWidth() bool {
	return r.Start.Equal(r.End)
}

// IsKnown returns true for a supported token
func (t FilterToken) IsKnown() bool {
	for _, token := range FilterTokens {
		if t == token {
			return true
		}
	}
	return false
}
